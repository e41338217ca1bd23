package entity

import "time"

// Order is the core mutable entity. Cancellation and completion are both
// soft deletes: deleted_at is set and the row drops out of every active-order
// query. A completed order additionally carries the serving staff id.
type Order struct {
	ID                     int64      `json:"id"`
	RestaurantTableID      int        `json:"restaurant_table_id"`
	MenuID                 int        `json:"menu_id"`
	CheckedByUserID        int        `json:"checked_by_user_id"`
	ServedByUserID         *int       `json:"served_by_user_id"`
	ExpectedCookFinishTime time.Time  `json:"expected_cook_finish_time"`
	IsServedByStaff        bool       `json:"is_served_by_staff"`
	CreatedAt              time.Time  `json:"created_at"`
	DeletedAt              *time.Time `json:"deleted_at"`
}

// TableOrder is the denormalized active-order view joining the table, the
// menu item and the checking/serving staff.
type TableOrder struct {
	RestaurantTableID      int        `json:"id"`
	TableNumber            int        `json:"table_number"`
	TableNote              *string    `json:"table_note"`
	MenuName               string     `json:"menu_name"`
	Price                  int        `json:"price"`
	CookTimeSeconds        int        `json:"cook_time_seconds"`
	OrderID                int64      `json:"order_id"`
	ExpectedCookFinishTime time.Time  `json:"expected_cook_finish_time"`
	OrderedTime            time.Time  `json:"ordered_time"`
	IsServedByStaff        bool       `json:"is_served_by_staff"`
	ServedByUserID         *int       `json:"served_by_user_id"`
	ServeStaffName         *string    `json:"serve_staff_name"`
	CheckedByUserID        int        `json:"checked_by_user_id"`
	CheckStaffName         string     `json:"check_staff_name"`
}

/*
Mysql Table

CREATE TABLE orders (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	restaurant_table_id INT NOT NULL,
	menu_id INT NOT NULL,
	checked_by_user_id INT NOT NULL,
	served_by_user_id INT NULL,
	expected_cook_finish_time DATETIME NOT NULL,
	is_served_by_staff BOOL NOT NULL DEFAULT FALSE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	deleted_at DATETIME NULL
);
*/
