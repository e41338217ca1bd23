package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/segmentio/kafka-go"

	"restaurant-pos/internal/events"
	"restaurant-pos/internal/service"
)

type EventsHandler struct {
	broadcaster *events.Broadcaster
	publisher   service.EventPublisher
}

// NewEventsHandler creates a new instance of EventsHandler.
func NewEventsHandler(broadcaster *events.Broadcaster, publisher service.EventPublisher) *EventsHandler {
	return &EventsHandler{broadcaster: broadcaster, publisher: publisher}
}

type PublishRequest struct {
	Msg string `json:"msg"`
}

// Stream pushes order events to the client over SSE --> GET /api/events
func (h *EventsHandler) Stream(c echo.Context) error {
	ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(ch)

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(200)
	c.Response().Flush()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", msg); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}

// Publish broadcasts an arbitrary message to subscribers --> POST /api/publish
func (h *EventsHandler) Publish(c echo.Context) error {
	req := PublishRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	msg := kafka.Message{Value: []byte(req.Msg)}
	if err := h.publisher.WriteMessages(c.Request().Context(), msg); err != nil {
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}

	return c.String(200, "Message broadcasted")
}
