package migrations

import (
	"database/sql"
	"time"
)

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateTables creates the restaurant_tables table if it does not exist.
func AutoMigrateTables(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS restaurant_tables (
			id INT AUTO_INCREMENT PRIMARY KEY,
			table_number INT NOT NULL,
			note VARCHAR(255) NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateMenus creates the menus table if it does not exist.
func AutoMigrateMenus(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS menus (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			cook_time_seconds INT NOT NULL,
			price INT NOT NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateOrders creates the orders table if it does not exist. Orders are
// soft-deleted only; deleted_at doubles as the cancellation and completion
// marker.
func AutoMigrateOrders(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
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
	`
	return execWithRetry(db, query, retries)
}
