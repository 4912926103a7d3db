package controller

import (
	"bid-tracking-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, allowedDomain string) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	api.Use(newDomainGate(allowedDomain))

	newDiagnosticRoutesHandler(api, services)
	newBidRoutesHandler(api, services, validate)
	newStagingRoutesHandler(api, services)
	newRunRoutesHandler(api, services)
}
