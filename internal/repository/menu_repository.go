package repository

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-pos/internal/entity"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) GetMenus(ctx context.Context) ([]entity.Menu, error) {
	query := `SELECT id, name, cook_time_seconds, price FROM menus`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []entity.Menu{}
	for rows.Next() {
		menu := entity.Menu{}
		if err := rows.Scan(&menu.ID, &menu.Name, &menu.CookTimeSeconds, &menu.Price); err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	return menus, rows.Err()
}

func (r *MenuRepository) GetMenuByID(ctx context.Context, id int) (*entity.Menu, error) {
	menu := entity.Menu{}
	query := `SELECT id, name, cook_time_seconds, price FROM menus WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&menu.ID, &menu.Name, &menu.CookTimeSeconds, &menu.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	return &menu, nil
}
