package api

import (
	"errors"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/market"
	"CoinPulse/internal/usecase"
	xhttp "CoinPulse/pkg/http"
	xlogger "CoinPulse/pkg/logger"
	"CoinPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

// MarketsHandler exposes the market data layer over HTTP.
type MarketsHandler struct {
	logger  *xlogger.Logger
	service *usecase.MarketService
}

func NewMarketsHandler(logger *xlogger.Logger, service *usecase.MarketService) *MarketsHandler {
	return &MarketsHandler{logger: logger, service: service}
}

func (h *MarketsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/markets", h.List)
	g.GET("/markets/:id", h.Detail)
	g.GET("/markets/:id/chart", h.Chart)
	g.GET("/markets/:id/risk", h.Risk)
	g.GET("/search", h.Search)
	g.GET("/compare", h.Compare)
}

func (h *MarketsHandler) List(c echo.Context) error {
	req := &models.ListMarketsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	currency := models.ParseCurrency(req.Currency)

	page, err := h.service.Overview(c.Request().Context(), currency, req.Page, req.PerPage)
	if err != nil {
		h.logger.Error("market overview failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, page)
}

func (h *MarketsHandler) Detail(c echo.Context) error {
	req := &models.DetailRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	id := c.Param("id")

	detail, err := h.service.Detail(c.Request().Context(), id, models.ParseCurrency(req.Currency))
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("asset %q not found", id))
		}
		h.logger.Error("asset detail failed", xlogger.String("id", id), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, detail)
}

func (h *MarketsHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	id := c.Param("id")

	chart, err := h.service.Chart(c.Request().Context(), id, req.Days, models.ParseCurrency(req.Currency))
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("asset %q not found", id))
		}
		h.logger.Error("asset chart failed", xlogger.String("id", id), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

func (h *MarketsHandler) Risk(c echo.Context) error {
	id := c.Param("id")

	assessment, err := h.service.Risk(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("asset %q not found", id))
		}
		h.logger.Error("risk assessment failed", xlogger.String("id", id), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, assessment)
}

func (h *MarketsHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	results := h.service.Search(c.Request().Context(), req.Query, req.Limit)
	return xhttp.ListResponse(c, results, int64(len(results)))
}

func (h *MarketsHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ids := util.SplitCSV(req.IDs)
	if len(ids) == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("ids must name at least one asset"))
	}

	result, err := h.service.Compare(c.Request().Context(), ids, req.Days, models.ParseCurrency(req.Currency))
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("one or more assets not found"))
		}
		h.logger.Error("compare failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}
