package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// Existence checks run through the same transaction handle as the eventual
// write so that checks and insert observe one consistent snapshot. Lookups
// that miss return the not-found sentinels from errors.go.

func menuCookTime(ctx context.Context, tx *sql.Tx, menuID int) (int, error) {
	var seconds int
	err := tx.QueryRowContext(ctx, `SELECT cook_time_seconds FROM menus WHERE id = ?`, menuID).Scan(&seconds)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrMenuNotFound
		}
		return 0, err
	}
	return seconds, nil
}

func userIDByName(ctx context.Context, tx *sql.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE name = ?`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return id, nil
}

func checkTableExists(ctx context.Context, tx *sql.Tx, tableID int) error {
	var id int
	err := tx.QueryRowContext(ctx, `SELECT id FROM restaurant_tables WHERE id = ?`, tableID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTableNotFound
		}
		return err
	}
	return nil
}

// CreateOrder validates the referenced menu, user and table and inserts one
// order row, all inside a single transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, tableID, menuID int, userName string) (int64, error) {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	seconds, err := menuCookTime(ctx, tx, menuID)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	userID, err := userIDByName(ctx, tx, userName)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := checkTableExists(ctx, tx, tableID); err != nil {
		tx.Rollback()
		return 0, err
	}

	// Each id is ok. Inserting.
	finishTime := time.Now().Add(time.Duration(seconds) * time.Second)

	query := `INSERT INTO orders (restaurant_table_id, menu_id, checked_by_user_id, expected_cook_finish_time, is_served_by_staff) VALUES (?, ?, ?, ?, false)`
	res, err := tx.ExecContext(ctx, query, tableID, menuID, userID, finishTime)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// Commit the transaction
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return orderID, nil
}

// CreateOrders inserts one row per menu id with a single multi-row statement.
// Either the whole batch lands or none of it does; a reader can never observe
// a partial batch. menuIDs must already be distinct and within the batch cap.
func (r *OrderRepository) CreateOrders(ctx context.Context, tableID int, menuIDs []int, userName string) (int64, error) {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	// Resolve all menu items in one lookup. Any unknown id fails the batch.
	cookTimes, err := menuCookTimes(ctx, tx, menuIDs)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	userID, err := userIDByName(ctx, tx, userName)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := checkTableExists(ctx, tx, tableID); err != nil {
		tx.Rollback()
		return 0, err
	}

	now := time.Now()
	query, values := buildOrdersInsert(tableID, userID, menuIDs, cookTimes, now)

	res, err := tx.ExecContext(ctx, query, values...)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	rowCount, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// Commit the transaction
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return rowCount, nil
}

// menuCookTimes resolves cook times for all requested menu ids at once and
// fails with ErrMenuNotFound unless every id resolved.
func menuCookTimes(ctx context.Context, tx *sql.Tx, menuIDs []int) (map[int]int, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(menuIDs)), ",")
	query := `SELECT id, cook_time_seconds FROM menus WHERE id IN (` + placeholders + `)`

	args := make([]interface{}, 0, len(menuIDs))
	for _, id := range menuIDs {
		args = append(args, id)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cookTimes := make(map[int]int, len(menuIDs))
	for rows.Next() {
		var id, seconds int
		if err := rows.Scan(&id, &seconds); err != nil {
			return nil, err
		}
		cookTimes[id] = seconds
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(cookTimes) != len(menuIDs) {
		return nil, ErrMenuNotFound
	}

	return cookTimes, nil
}

// buildOrdersInsert builds one parameterized multi-row insert, one parameter
// group per menu id. Each row gets its own expected finish time derived from
// that item's cook duration.
func buildOrdersInsert(tableID, userID int, menuIDs []int, cookTimes map[int]int, now time.Time) (string, []interface{}) {
	query := `INSERT INTO orders (restaurant_table_id, menu_id, checked_by_user_id, expected_cook_finish_time, is_served_by_staff) VALUES `

	var values []interface{}
	for _, menuID := range menuIDs {
		query += "(?, ?, ?, ?, false),"
		finishTime := now.Add(time.Duration(cookTimes[menuID]) * time.Second)
		values = append(values, tableID, menuID, userID, finishTime)
	}

	// Remove the trailing comma
	query = query[:len(query)-1]

	return query, values
}

// CancelOrder soft-deletes an order unconditionally. Re-cancelling an already
// cancelled order is a silent success.
func (r *OrderRepository) CancelOrder(ctx context.Context, orderID int64) error {
	query := `UPDATE orders SET deleted_at = NOW() WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, orderID)
	return err
}

// CompleteOrder resolves the serving user and closes the order in one
// transaction: soft delete plus serving attribution.
func (r *OrderRepository) CompleteOrder(ctx context.Context, orderID int64, userName string) error {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	userID, err := userIDByName(ctx, tx, userName)
	if err != nil {
		tx.Rollback()
		return err
	}

	query := `UPDATE orders SET deleted_at = NOW(), served_by_user_id = ?, is_served_by_staff = true WHERE id = ?`
	if _, err := tx.ExecContext(ctx, query, userID, orderID); err != nil {
		tx.Rollback()
		return err
	}

	// Commit the transaction
	return tx.Commit()
}

// DeleteTableOrders soft-deletes every active order on a table, used when a
// table session ends.
func (r *OrderRepository) DeleteTableOrders(ctx context.Context, tableID int) error {
	query := `UPDATE orders SET deleted_at = NOW() WHERE restaurant_table_id = ?`
	_, err := r.db.ExecContext(ctx, query, tableID)
	return err
}

const tableOrderQuery = `
	SELECT
		rt.id AS restaurant_table_id,
		rt.table_number AS table_number,
		rt.note AS table_note,
		mn.name AS menu_name,
		mn.price AS price,
		mn.cook_time_seconds AS cook_time_seconds,
		odr.id AS order_id,
		odr.expected_cook_finish_time AS expected_cook_finish_time,
		odr.created_at AS ordered_time,
		odr.is_served_by_staff AS is_served_by_staff,
		odr.served_by_user_id AS served_by_user_id,
		serve_user.name AS serve_staff_name,
		odr.checked_by_user_id AS checked_by_user_id,
		check_user.name AS check_staff_name
	FROM restaurant_tables AS rt
	INNER JOIN orders AS odr ON rt.id = odr.restaurant_table_id
	INNER JOIN menus AS mn ON odr.menu_id = mn.id
	LEFT JOIN users AS serve_user ON odr.served_by_user_id = serve_user.id
	INNER JOIN users AS check_user ON odr.checked_by_user_id = check_user.id
	WHERE %s AND odr.deleted_at IS NULL`

func scanTableOrder(rows *sql.Rows) (entity.TableOrder, error) {
	order := entity.TableOrder{}
	err := rows.Scan(
		&order.RestaurantTableID,
		&order.TableNumber,
		&order.TableNote,
		&order.MenuName,
		&order.Price,
		&order.CookTimeSeconds,
		&order.OrderID,
		&order.ExpectedCookFinishTime,
		&order.OrderedTime,
		&order.IsServedByStaff,
		&order.ServedByUserID,
		&order.ServeStaffName,
		&order.CheckedByUserID,
		&order.CheckStaffName,
	)
	return order, err
}

// GetTableOrders returns the denormalized active orders for a table.
func (r *OrderRepository) GetTableOrders(ctx context.Context, tableID int) ([]entity.TableOrder, error) {
	query := fmt.Sprintf(tableOrderQuery, "rt.id = ?")
	rows, err := r.db.QueryContext(ctx, query, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.TableOrder{}
	for rows.Next() {
		order, err := scanTableOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// GetOrderByID returns a single active order view, or nil when the order does
// not exist or is soft-deleted.
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*entity.TableOrder, error) {
	query := fmt.Sprintf(tableOrderQuery, "odr.id = ?")
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	order, err := scanTableOrder(rows)
	if err != nil {
		return nil, err
	}

	return &order, nil
}
