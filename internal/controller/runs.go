package controller

import (
	"errors"
	"net/http"

	"bid-tracking-api/internal/service"

	"github.com/labstack/echo"
)

type runRoutesHandler struct {
	syncService      service.Sync
	discoveryService service.Discovery
}

func newRunRoutesHandler(outer *echo.Group, services *service.Services) *runRoutesHandler {
	h := &runRoutesHandler{syncService: services.Sync, discoveryService: services.Discovery}
	outer.POST("/runs/sync", h.TriggerSync)
	outer.POST("/runs/discovery", h.TriggerDiscovery)

	return h
}

// /runs/sync
func (h *runRoutesHandler) TriggerSync(c echo.Context) error {
	report, err := h.syncService.Run(c.Request().Context())
	if err == nil {
		return c.JSON(http.StatusOK, report)
	}

	if errors.Is(err, service.ErrConfiguration) {
		if e := c.JSON(http.StatusConflict, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

// /runs/discovery
func (h *runRoutesHandler) TriggerDiscovery(c echo.Context) error {
	report, err := h.discoveryService.Poll(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, report)
}
