package api

import (
	models "ChartPull/internal/domain/models"
	"ChartPull/internal/usecase"
	xhttp "ChartPull/pkg/http"
	xlogger "ChartPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartEchoHandler implements Echo-based HTTP handlers for chart endpoints.
type ChartEchoHandler struct {
	logger *xlogger.Logger
	charts *usecase.ChartService
}

func NewChartEchoHandler(logger *xlogger.Logger, charts *usecase.ChartService) *ChartEchoHandler {
	return &ChartEchoHandler{logger: logger, charts: charts}
}

func (h *ChartEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/series", h.Series)
	g.GET("/band", h.Band)
	g.GET("/yes", h.Yes)
	g.GET("/presets", h.Presets)
}

func (h *ChartEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.charts.Series(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) Band(c echo.Context) error {
	req := &models.BandRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.charts.Band(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("band usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) Yes(c echo.Context) error {
	req := &models.YesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.charts.Yes(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("yes usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) Presets(c echo.Context) error {
	req := &models.PresetsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.charts.Presets(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("presets usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

var _ xhttp.Handler = (*ChartEchoHandler)(nil)
