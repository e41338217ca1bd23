package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant-pos/internal/service"
)

type TableHandler struct {
	tableService *service.TableService
	orderService *service.OrderService
}

// NewTableHandler creates a new instance of TableHandler.
func NewTableHandler(tableService *service.TableService, orderService *service.OrderService) *TableHandler {
	return &TableHandler{tableService: tableService, orderService: orderService}
}

type DeleteTableOrdersRequest struct {
	RestaurantTableID int `json:"restaurant_table_id"`
}

// GetTables lists all tables --> GET /api/table
func (h *TableHandler) GetTables(c echo.Context) error {
	tables, err := h.tableService.GetTables(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, tables)
}

// GetTableOrders lists the active orders on a table --> GET /api/table/:id/order
func (h *TableHandler) GetTableOrders(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	orders, err := h.orderService.GetTableOrders(c.Request().Context(), id)
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, orders)
}

// DeleteTableOrders ends a table session --> DELETE /api/table/order
func (h *TableHandler) DeleteTableOrders(c echo.Context) error {
	req := DeleteTableOrdersRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.orderService.ClearTable(c.Request().Context(), req.RestaurantTableID); err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]string{"message": "Table orders cleared"})
}
