package controller

import (
	"net/http"

	"bid-tracking-api/internal/service"

	"github.com/labstack/echo"
)

type stagingRoutesHandler struct {
	discoveryService service.Discovery
}

func newStagingRoutesHandler(outer *echo.Group, services *service.Services) *stagingRoutesHandler {
	h := &stagingRoutesHandler{discoveryService: services.Discovery}
	outer.GET("/staging", h.GetStaged)
	outer.POST("/staging/promote", h.PromoteStaged)

	return h
}

// /staging
func (h *stagingRoutesHandler) GetStaged(c echo.Context) error {
	staged, err := h.discoveryService.ListStaged(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, staged)
}

type promoteOutput struct {
	Promoted int `json:"promoted"`
}

// /staging/promote
func (h *stagingRoutesHandler) PromoteStaged(c echo.Context) error {
	promoted, err := h.discoveryService.PromoteStaged(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	return c.JSON(http.StatusOK, promoteOutput{Promoted: promoted})
}
