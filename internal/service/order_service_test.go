package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"

	"restaurant-pos/internal/entity"
)

type fakeOrderStore struct {
	createCalls      int
	createBatchCalls int
	batchErr         error
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, tableID, menuID int, userName string) (int64, error) {
	f.createCalls++
	return 42, nil
}

func (f *fakeOrderStore) CreateOrders(ctx context.Context, tableID int, menuIDs []int, userName string) (int64, error) {
	f.createBatchCalls++
	if f.batchErr != nil {
		return 0, f.batchErr
	}
	return int64(len(menuIDs)), nil
}

func (f *fakeOrderStore) CancelOrder(ctx context.Context, orderID int64) error { return nil }

func (f *fakeOrderStore) CompleteOrder(ctx context.Context, orderID int64, userName string) error {
	return nil
}

func (f *fakeOrderStore) DeleteTableOrders(ctx context.Context, tableID int) error { return nil }

func (f *fakeOrderStore) GetTableOrders(ctx context.Context, tableID int) ([]entity.TableOrder, error) {
	return nil, nil
}

func (f *fakeOrderStore) GetOrderByID(ctx context.Context, orderID int64) (*entity.TableOrder, error) {
	return nil, nil
}

type fakePublisher struct {
	messages []kafka.Message
	err      error
}

func (f *fakePublisher) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func manyMenuIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func TestPlaceOrdersValidation(t *testing.T) {
	tests := []struct {
		name    string
		menuIDs []int
		wantErr bool
	}{
		{name: "valid batch", menuIDs: []int{1, 2, 3}, wantErr: false},
		{name: "empty batch", menuIDs: []int{}, wantErr: true},
		{name: "duplicate menu ids", menuIDs: []int{1, 2, 1}, wantErr: true},
		{name: "at the cap", menuIDs: manyMenuIDs(MaxBatchSize), wantErr: false},
		{name: "over the cap", menuIDs: manyMenuIDs(MaxBatchSize + 1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeOrderStore{}
			svc := NewOrderService(store, &fakePublisher{})

			rowCount, err := svc.PlaceOrders(context.Background(), 4, tt.menuIDs, "alice")
			if tt.wantErr {
				var validationErr ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("error = %v, want ValidationError", err)
				}
				if store.createBatchCalls != 0 {
					t.Error("store touched before validation passed")
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceOrders: %v", err)
			}
			if rowCount != int64(len(tt.menuIDs)) {
				t.Errorf("row count = %d, want %d", rowCount, len(tt.menuIDs))
			}
		})
	}
}

func TestPlaceOrderPublishesAfterCommit(t *testing.T) {
	store := &fakeOrderStore{}
	publisher := &fakePublisher{}
	svc := NewOrderService(store, publisher)

	orderID, err := svc.PlaceOrder(context.Background(), 4, 7, "alice")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if orderID != 42 {
		t.Errorf("order id = %d, want 42", orderID)
	}

	if len(publisher.messages) != 1 {
		t.Fatalf("published %d messages, want 1", len(publisher.messages))
	}

	event := OrderEvent{}
	if err := json.Unmarshal(publisher.messages[0].Value, &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.Event != "created" || event.OrderID != 42 || event.UserName != "alice" {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestPlaceOrderSucceedsWhenPublishFails(t *testing.T) {
	store := &fakeOrderStore{}
	publisher := &fakePublisher{err: errors.New("broker down")}
	svc := NewOrderService(store, publisher)

	if _, err := svc.PlaceOrder(context.Background(), 4, 7, "alice"); err != nil {
		t.Fatalf("PlaceOrder should not fail on publish error, got %v", err)
	}
}

func TestPlaceOrdersNoEventOnStoreError(t *testing.T) {
	store := &fakeOrderStore{batchErr: errors.New("insert failed")}
	publisher := &fakePublisher{}
	svc := NewOrderService(store, publisher)

	if _, err := svc.PlaceOrders(context.Background(), 4, []int{1, 2}, "alice"); err == nil {
		t.Fatal("expected error")
	}
	if len(publisher.messages) != 0 {
		t.Errorf("published %d messages for a failed batch, want 0", len(publisher.messages))
	}
}
