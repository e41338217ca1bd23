package service

import (
	"context"
	"errors"

	"restaurant-pos/internal/entity"
	"restaurant-pos/internal/repository"
)

// MenuStore is the read-only menu lookup capability.
type MenuStore interface {
	GetMenus(ctx context.Context) ([]entity.Menu, error)
	GetMenuByID(ctx context.Context, id int) (*entity.Menu, error)
}

type MenuService struct {
	menus MenuStore
}

func NewMenuService(menus MenuStore) *MenuService {
	return &MenuService{menus: menus}
}

func (s *MenuService) GetMenus(ctx context.Context) ([]entity.Menu, error) {
	menus, err := s.menus.GetMenus(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting menus")
		return nil, err
	}

	return menus, nil
}

func (s *MenuService) GetMenu(ctx context.Context, id int) (*entity.Menu, error) {
	menu, err := s.menus.GetMenuByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrMenuNotFound) {
			logger.Error().Err(err).Msgf("Error getting menu %d", id)
		}
		return nil, err
	}

	return menu, nil
}
