package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type AddOrderRequest struct {
	RestaurantTableID int `json:"restaurant_table_id"`
	MenuID            int `json:"menu_id"`
}

type AddOrdersRequest struct {
	RestaurantTableID int   `json:"restaurant_table_id"`
	MenuIDs           []int `json:"menu_ids"`
}

type DeleteOrderRequest struct {
	OrderID int64 `json:"order_id"`
}

type CompleteOrderRequest struct {
	OrderID int64 `json:"order_id"`
}

// orderError maps engine failures to responses without leaking store
// internals: referential misses are client errors, the rest is a 500.
func orderError(c echo.Context, err error) error {
	var validationErr service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(400, map[string]string{"error": validationErr.Error()})
	case errors.Is(err, repository.ErrMenuNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrTableNotFound):
		return c.JSON(400, map[string]string{"error": err.Error()})
	default:
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}
}

// CreateOrder places a single order --> POST /api/order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	order := AddOrderRequest{}
	if err := c.Bind(&order); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user := identity(c)
	if user == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	orderID, err := h.orderService.PlaceOrder(c.Request().Context(), order.RestaurantTableID, order.MenuID, user)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]int64{"order_id": orderID})
}

// CreateOrders places a batch order --> POST /api/orders
func (h *OrderHandler) CreateOrders(c echo.Context) error {
	order := AddOrdersRequest{}
	if err := c.Bind(&order); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user := identity(c)
	if user == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	rowCount, err := h.orderService.PlaceOrders(c.Request().Context(), order.RestaurantTableID, order.MenuIDs, user)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]int64{"row_count": rowCount})
}

// CancelOrder soft-deletes an order --> DELETE /api/order
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	req := DeleteOrderRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.orderService.CancelOrder(c.Request().Context(), req.OrderID); err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]string{"message": "Order cancelled"})
}

// CompleteOrder marks an order served --> DELETE /api/order/complete
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	req := CompleteOrderRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user := identity(c)
	if user == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	if err := h.orderService.CompleteOrder(c.Request().Context(), req.OrderID, user); err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]string{"message": "Order completed"})
}

// GetOrder returns one active order view --> GET /api/order/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}
	if order == nil {
		return c.JSON(200, "")
	}

	return c.JSON(200, order)
}
