package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ChartPull/internal/domain/models"
	drepo "ChartPull/internal/domain/repository"
	"ChartPull/pkg/config"
	xhttp "ChartPull/pkg/http"
)

// Client fetches raw series arrays from the upstream history API. The
// payload is passed through untouched; cleaning happens in the transform
// layer so upstream quirks never leak past it.
type Client struct {
	baseURL string
	path    string
	client  *xhttp.Client
}

// New creates an upstream series source from config.
func New(cfg *config.Config) *Client {
	timeout := cfg.Upstream.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	path := cfg.Upstream.Path
	if path == "" {
		path = "/history"
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		path:    path,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// upstreamRecord mirrors the loose upstream row shape. Value stays
// untyped: some feeds send numbers, some send strings.
type upstreamRecord struct {
	Value     interface{} `json:"value"`
	Timestamp string      `json:"timestamp,omitempty"`
	Date      string      `json:"date,omitempty"`
}

type wrappedResponse struct {
	Data []upstreamRecord `json:"data"`
}

// Fetch retrieves the raw record array for a symbol.
func (c *Client) Fetch(ctx context.Context, symbol string) ([]models.RawRecord, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("upstream base url not configured")
	}

	var raw []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + c.path,
		QueryParams: map[string][]string{"symbol": {symbol}},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", symbol, err)
	}
	return records, nil
}

// decodeRecords accepts both a bare array and a {"data": [...]} wrapper.
func decodeRecords(raw []byte) ([]models.RawRecord, error) {
	trimmed := strings.TrimSpace(string(raw))
	var rows []upstreamRecord
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
	} else {
		var wrapped wrappedResponse
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, err
		}
		rows = wrapped.Data
	}

	records := make([]models.RawRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.RawRecord{
			Value:     r.Value,
			Timestamp: r.Timestamp,
			Date:      r.Date,
		})
	}
	return records, nil
}

var _ drepo.SeriesSource = (*Client)(nil)
