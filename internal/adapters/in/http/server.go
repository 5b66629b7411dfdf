// Package http exposes the order-management screen and the package catalog
// over a JSON API. Handlers translate requests into commands and queries and
// map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	toggleTaskHandler        commands.ToggleTaskCommandHandler
	applyTemplateHandler     commands.ApplyTemplateCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createPackageHandler     commands.CreatePackageCommandHandler
	updatePackageHandler     commands.UpdatePackageCommandHandler
	deletePackageHandler     commands.DeletePackageCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderWorkflowHandler queries.GetOrderWorkflowQueryHandler
	listPackagesHandler     queries.ListPackagesQueryHandler
	listTemplatesHandler    queries.ListTemplatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	toggleTaskHandler commands.ToggleTaskCommandHandler,
	applyTemplateHandler commands.ApplyTemplateCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createPackageHandler commands.CreatePackageCommandHandler,
	updatePackageHandler commands.UpdatePackageCommandHandler,
	deletePackageHandler commands.DeletePackageCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderWorkflowHandler queries.GetOrderWorkflowQueryHandler,
	listPackagesHandler queries.ListPackagesQueryHandler,
	listTemplatesHandler queries.ListTemplatesQueryHandler,
) *Server {
	return &Server{
		toggleTaskHandler:        toggleTaskHandler,
		applyTemplateHandler:     applyTemplateHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createPackageHandler:     createPackageHandler,
		updatePackageHandler:     updatePackageHandler,
		deletePackageHandler:     deletePackageHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderWorkflowHandler:  getOrderWorkflowHandler,
		listPackagesHandler:      listPackagesHandler,
		listTemplatesHandler:     listTemplatesHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id/workflow", s.GetOrderWorkflow)
	api.POST("/orders/:id/tasks/toggle", s.ToggleTask)
	api.POST("/orders/:id/template", s.ApplyTemplate)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/packages", s.ListPackages)
	api.POST("/packages", s.CreatePackage)
	api.PUT("/packages/:id", s.UpdatePackage)
	api.DELETE("/packages/:id", s.DeletePackage)

	api.GET("/templates", s.ListTemplates)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps a command or query failure onto an HTTP response.
// Not-found lookups become 404, rejected values become 400 and everything
// else becomes 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
