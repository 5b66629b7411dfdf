package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"

	"github.com/labstack/echo/v4"
)

// LineItem is the wire form of a purchased product reference.
type LineItem struct {
	Name string `json:"name"`
}

// CategoryProgress is the wire form of a row's per-category completion.
type CategoryProgress struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// OrderRow is one row of the order listing.
type OrderRow struct {
	ID            string             `json:"id"`
	Virtual       bool               `json:"virtual"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	CreatedAt     *time.Time         `json:"createdAt,omitempty"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
	Items         []LineItem         `json:"items"`
	Status        string             `json:"status"`
	Categories    []CategoryProgress `json:"categories"`
}

// StatusCounts aggregates the visible listing rows by derived status.
type StatusCounts struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
}

// OrderListing is the response body of the order listing endpoint.
type OrderListing struct {
	Orders []OrderRow   `json:"orders"`
	Counts StatusCounts `json:"counts"`
}

// ListOrders handles GET /api/v1/orders - retrieves the order listing.
// Optional query parameters: status (pending|processing|completed), search.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(statusFilter, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, "Invalid listing query: "+err.Error())
	}

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	listing := OrderListing{
		Orders: make([]OrderRow, len(resp.Orders)),
		Counts: StatusCounts(resp.Counts),
	}
	for i, row := range resp.Orders {
		listing.Orders[i] = toOrderRow(row)
	}

	return ctx.JSON(http.StatusOK, listing)
}

func toOrderRow(row queries.ListOrdersQueryRow) OrderRow {
	items := make([]LineItem, len(row.Items))
	for i, item := range row.Items {
		items[i] = LineItem{Name: item.DisplayName()}
	}

	categories := make([]CategoryProgress, len(row.Categories))
	for i, category := range row.Categories {
		categories[i] = CategoryProgress(category)
	}

	out := OrderRow{
		ID:            row.ID.String(),
		Virtual:       row.Virtual,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Items:         items,
		Status:        row.Status.String(),
		Categories:    categories,
	}
	if !row.CreatedAt.IsZero() {
		createdAt := row.CreatedAt
		dueDate := row.DueDate
		out.CreatedAt = &createdAt
		out.DueDate = &dueDate
	}
	return out
}

// Task is the wire form of a checklist task.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Category is the wire form of a checklist category.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Workflow is the response body of the checklist endpoint.
type Workflow struct {
	OrderID    string     `json:"orderId"`
	Virtual    bool       `json:"virtual"`
	Categories []Category `json:"categories"`
}

// GetOrderWorkflow handles GET /api/v1/orders/:id/workflow - retrieves the
// editable checklist of a row. Virtual rows pass virtual=true and the
// backing contract's id.
func (s *Server) GetOrderWorkflow(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderWorkflowQuery(orderID, ctx.QueryParam("virtual") == "true")
	if err != nil {
		return badRequest(ctx, "Invalid checklist query: "+err.Error())
	}

	resp, err := s.getOrderWorkflowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Workflow{
		OrderID:    resp.OrderID.String(),
		Virtual:    resp.Virtual,
		Categories: toCategories(resp.Categories),
	})
}

func toCategories(wf []workflow.Category) []Category {
	categories := make([]Category, len(wf))
	for i, c := range wf {
		tasks := make([]Task, len(c.Tasks))
		for j, t := range c.Tasks {
			tasks[j] = Task(t)
		}
		categories[i] = Category{ID: c.ID, Name: c.Name, Tasks: tasks}
	}
	return categories
}

// ToggleTaskRequest is the request body of the task-change endpoint.
type ToggleTaskRequest struct {
	Virtual       bool `json:"virtual"`
	CategoryIndex int  `json:"categoryIndex"`
	TaskIndex     int  `json:"taskIndex"`
	Done          bool `json:"done"`
}

// ToggleTask handles POST /api/v1/orders/:id/tasks/toggle - flips one
// checklist task and syncs the delivery tasks to the linked contract.
func (s *Server) ToggleTask(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req ToggleTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewToggleTaskCommand(
		orderID, req.Virtual, req.CategoryIndex, req.TaskIndex, req.Done,
	)
	if err != nil {
		return badRequest(ctx, "Invalid task change: "+err.Error())
	}

	if handleErr := s.toggleTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyTemplateRequest is the request body of the apply-template endpoint.
type ApplyTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

// ApplyTemplate handles POST /api/v1/orders/:id/template - replaces the
// order's checklist with a template instantiation.
func (s *Server) ApplyTemplate(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req ApplyTemplateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	templateID, err := kernel.UUIDFromString(req.TemplateID)
	if err != nil {
		return badRequest(ctx, "Invalid template ID: "+err.Error())
	}

	cmd, err := commands.NewApplyTemplateCommand(orderID, templateID)
	if err != nil {
		return badRequest(ctx, "Invalid template application: "+err.Error())
	}

	if handleErr := s.applyTemplateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatusRequest is the request body of the status override endpoint.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - overwrites the
// stored status of an order. The listing keeps showing the derived status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes a stored order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order deletion: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
