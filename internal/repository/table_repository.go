package repository

import (
	"context"
	"database/sql"

	"restaurant-pos/internal/entity"
)

type TableRepository struct {
	db *sql.DB
}

func NewTableRepository(db *sql.DB) *TableRepository {
	return &TableRepository{db}
}

// GetTables fetches every restaurant table. The table list is small and
// long-lived, so no paging.
func (r *TableRepository) GetTables(ctx context.Context) ([]entity.RestaurantTable, error) {
	query := `SELECT id, table_number, note FROM restaurant_tables`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []entity.RestaurantTable{}
	for rows.Next() {
		table := entity.RestaurantTable{}
		if err := rows.Scan(&table.ID, &table.TableNumber, &table.Note); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}
