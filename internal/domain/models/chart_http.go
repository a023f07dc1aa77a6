package models

// Requests and responses for chart HTTP endpoints. Defined in domain for
// consistency and reuse.

type SeriesRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Preset string `query:"preset" json:"preset" default:"MAX" validate:"oneof=7D 30D 90D 6M 1Y MAX"`
	Mode   string `query:"mode" json:"mode" default:"raw" validate:"oneof=raw index100 pct minmax band6m_price band6m_pct"`
}

type BandRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Window string `query:"window" json:"window" default:"1Y" validate:"oneof=6M 1Y 2Y MAX"`
}

type YesRequest struct {
	Symbol string   `query:"symbol" json:"symbol" validate:"required"`
	Window string   `query:"window" json:"window" default:"1Y" validate:"oneof=6M 1Y 2Y MAX"`
	Value  *float64 `query:"value" json:"value,omitempty"`
}

type PresetsRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
}

type SeriesResponse struct {
	Symbol string            `json:"symbol"`
	Preset string            `json:"preset"`
	Mode   string            `json:"mode"`
	Points []NormalizedPoint `json:"points"`
	Band   *BandInfo         `json:"band,omitempty"`
}

type BandResponse struct {
	Symbol string `json:"symbol"`
	Band   *Band  `json:"band"`
}

type YesResponse struct {
	Symbol     string  `json:"symbol"`
	Value      float64 `json:"value"`
	YesPercent float64 `json:"yes_percent"`
	Band       *Band   `json:"band,omitempty"`
}

// PresetRange is one resolved preset entry. Nil bounds mean unbounded.
type PresetRange struct {
	Preset string `json:"preset"`
	Start  *int64 `json:"start,omitempty"` // unix seconds
	End    *int64 `json:"end,omitempty"`
}

type PresetsResponse struct {
	Symbol  string        `json:"symbol"`
	Presets []PresetRange `json:"presets"`
}
