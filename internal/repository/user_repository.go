package repository

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-pos/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// GetUserByName returns the user and its stored bcrypt hash.
func (r *UserRepository) GetUserByName(ctx context.Context, name string) (*entity.User, string, error) {
	user := entity.User{}
	var password string
	query := `SELECT id, name, password FROM users WHERE name = ?`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&user.ID, &user.Name, &password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	return &user, password, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user := entity.User{}
	query := `SELECT id, name FROM users WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, name FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		user := entity.User{}
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
