package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"restaurant-pos/internal/cache"
)

type RedisHandler struct {
	store *cache.Store
}

// NewRedisHandler creates a new instance of RedisHandler.
func NewRedisHandler(store *cache.Store) *RedisHandler {
	return &RedisHandler{store: store}
}

type SetRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SetExRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Ex    int    `json:"ex"` // seconds
}

// Get reads a key --> GET /api/redis/:key
func (h *RedisHandler) Get(c echo.Context) error {
	val, err := h.store.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return c.String(404, "not found")
		}
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.String(200, val)
}

// Set writes a key --> POST /api/redis
func (h *RedisHandler) Set(c echo.Context) error {
	req := SetRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.store.Set(c.Request().Context(), req.Key, req.Value); err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.String(200, "OK")
}

// SetEx writes a key with a TTL --> POST /api/redis/expire
func (h *RedisHandler) SetEx(c echo.Context) error {
	req := SetExRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	ttl := time.Duration(req.Ex) * time.Second
	if err := h.store.SetEx(c.Request().Context(), req.Key, req.Value, ttl); err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.String(200, "OK")
}

// Has checks key existence --> GET /api/redis/has/:key
func (h *RedisHandler) Has(c echo.Context) error {
	exists, err := h.store.Has(c.Request().Context(), c.Param("key"))
	if err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.JSON(200, map[string]bool{"exists": exists})
}
