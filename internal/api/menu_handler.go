package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/service"
)

type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new instance of MenuHandler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenus lists the whole menu --> GET /api/menu
func (h *MenuHandler) GetMenus(c echo.Context) error {
	menus, err := h.menuService.GetMenus(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, menus)
}

// GetMenu fetches one menu item --> GET /api/menu/:id
func (h *MenuHandler) GetMenu(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	menu, err := h.menuService.GetMenu(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return c.JSON(200, "")
		}
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, menu)
}
