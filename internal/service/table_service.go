package service

import (
	"context"

	"restaurant-pos/internal/entity"
)

// TableStore is the read-only restaurant table lookup capability.
type TableStore interface {
	GetTables(ctx context.Context) ([]entity.RestaurantTable, error)
}

type TableService struct {
	tables TableStore
}

func NewTableService(tables TableStore) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) GetTables(ctx context.Context) ([]entity.RestaurantTable, error) {
	tables, err := s.tables.GetTables(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting tables")
		return nil, err
	}

	return tables, nil
}
