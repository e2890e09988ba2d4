package api

import (
	"CoinPulse/internal/domain/repository"
	xhttp "CoinPulse/pkg/http"
	xlogger "CoinPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EventsHandler serves the crypto calendar feed.
type EventsHandler struct {
	logger *xlogger.Logger
	source repository.EventSource
}

func NewEventsHandler(logger *xlogger.Logger, source repository.EventSource) *EventsHandler {
	return &EventsHandler{logger: logger, source: source}
}

func (h *EventsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/events", h.List)
}

func (h *EventsHandler) List(c echo.Context) error {
	events, err := h.source.Events(c.Request().Context())
	if err != nil {
		h.logger.Error("calendar events failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, events, int64(len(events)))
}
