package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"restaurant-pos/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// MaxBatchSize caps one batch order submission.
const MaxBatchSize = 100

// OrderStore runs each order mutation inside one transaction, existence
// checks included, and only reports success after commit.
type OrderStore interface {
	CreateOrder(ctx context.Context, tableID, menuID int, userName string) (int64, error)
	CreateOrders(ctx context.Context, tableID int, menuIDs []int, userName string) (int64, error)
	CancelOrder(ctx context.Context, orderID int64) error
	CompleteOrder(ctx context.Context, orderID int64, userName string) error
	DeleteTableOrders(ctx context.Context, tableID int) error
	GetTableOrders(ctx context.Context, tableID int) ([]entity.TableOrder, error)
	GetOrderByID(ctx context.Context, orderID int64) (*entity.TableOrder, error)
}

// EventPublisher is satisfied by *kafka.Writer.
type EventPublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderEvent is what subscribers see after an order mutation committed.
type OrderEvent struct {
	Event             string `json:"event"`
	OrderID           int64  `json:"order_id,omitempty"`
	RestaurantTableID int    `json:"restaurant_table_id,omitempty"`
	MenuIDs           []int  `json:"menu_ids,omitempty"`
	RowCount          int64  `json:"row_count,omitempty"`
	UserName          string `json:"user_name,omitempty"`
}

// OrderService is the transaction engine's policy layer: request validation
// before any I/O, delegation to the store, event publishing after commit.
type OrderService struct {
	orders    OrderStore
	publisher EventPublisher
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(orders OrderStore, publisher EventPublisher) *OrderService {
	return &OrderService{orders: orders, publisher: publisher}
}

// PlaceOrder places a single order for a table.
func (s *OrderService) PlaceOrder(ctx context.Context, tableID, menuID int, userName string) (int64, error) {
	orderID, err := s.orders.CreateOrder(ctx, tableID, menuID, userName)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating order on table %d", tableID)
		return 0, err
	}

	s.publishEvent(ctx, OrderEvent{
		Event:             "created",
		OrderID:           orderID,
		RestaurantTableID: tableID,
		MenuIDs:           []int{menuID},
		UserName:          userName,
	})

	return orderID, nil
}

// PlaceOrders places a batch order. Duplicate, empty and over-limit batches
// are rejected before touching the database; the store inserts the rest
// atomically.
func (s *OrderService) PlaceOrders(ctx context.Context, tableID int, menuIDs []int, userName string) (int64, error) {
	if err := validateBatch(menuIDs); err != nil {
		return 0, err
	}

	rowCount, err := s.orders.CreateOrders(ctx, tableID, menuIDs, userName)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating batch order on table %d", tableID)
		return 0, err
	}

	s.publishEvent(ctx, OrderEvent{
		Event:             "batch-created",
		RestaurantTableID: tableID,
		MenuIDs:           menuIDs,
		RowCount:          rowCount,
		UserName:          userName,
	})

	return rowCount, nil
}

// CancelOrder soft-deletes an order. Cancelling twice is a silent success.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) error {
	if err := s.orders.CancelOrder(ctx, orderID); err != nil {
		logger.Error().Err(err).Msgf("Error cancelling order %d", orderID)
		return err
	}

	s.publishEvent(ctx, OrderEvent{Event: "cancelled", OrderID: orderID})
	return nil
}

// CompleteOrder soft-deletes an order and attributes it to the serving user.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID int64, userName string) error {
	if err := s.orders.CompleteOrder(ctx, orderID, userName); err != nil {
		logger.Error().Err(err).Msgf("Error completing order %d", orderID)
		return err
	}

	s.publishEvent(ctx, OrderEvent{Event: "completed", OrderID: orderID, UserName: userName})
	return nil
}

// ClearTable soft-deletes every active order on a table.
func (s *OrderService) ClearTable(ctx context.Context, tableID int) error {
	if err := s.orders.DeleteTableOrders(ctx, tableID); err != nil {
		logger.Error().Err(err).Msgf("Error clearing orders on table %d", tableID)
		return err
	}

	s.publishEvent(ctx, OrderEvent{Event: "table-cleared", RestaurantTableID: tableID})
	return nil
}

func (s *OrderService) GetTableOrders(ctx context.Context, tableID int) ([]entity.TableOrder, error) {
	orders, err := s.orders.GetTableOrders(ctx, tableID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting orders for table %d", tableID)
		return nil, err
	}

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*entity.TableOrder, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting order %d", orderID)
		return nil, err
	}

	return order, nil
}

func validateBatch(menuIDs []int) error {
	if len(menuIDs) == 0 {
		return ValidationError{Field: "menu_ids", Message: "menu ids cannot be empty"}
	}

	if len(menuIDs) > MaxBatchSize {
		return ValidationError{Field: "menu_ids", Message: fmt.Sprintf("a maximum of %d menu ids is allowed", MaxBatchSize)}
	}

	seen := make(map[int]bool, len(menuIDs))
	for _, id := range menuIDs {
		if seen[id] {
			return ValidationError{Field: "menu_ids", Message: "menu ids must be distinct"}
		}
		seen[id] = true
	}

	return nil
}

// publishEvent notifies subscribers of a committed mutation. The row is
// already durable, so a publish failure is logged and swallowed.
func (s *OrderService) publishEvent(ctx context.Context, event OrderEvent) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling order event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", event.Event, event.OrderID)),
		Value: payload,
	}

	if err := s.publisher.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order event %s", event.Event)
	}
}
