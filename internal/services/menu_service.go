package services

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MenuServiceImpl implements domain.MenuService
type MenuServiceImpl struct {
	menuRepo domain.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo domain.MenuRepository) domain.MenuService {
	return &MenuServiceImpl{menuRepo: menuRepo}
}

// Menu implements domain.MenuService, returning the full catalog in
// insertion order
func (s *MenuServiceImpl) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// AvailableMenu implements domain.MenuService, filtering out items marked
// unavailable
func (s *MenuServiceImpl) AvailableMenu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

// ReplaceMenu implements domain.MenuService. Saving is a whole-table
// replace: the submitted list becomes the catalog, last full write wins.
// Names must be unique and prices non-negative.
func (s *MenuServiceImpl) ReplaceMenu(ctx context.Context, items []domain.MenuItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Name == "" {
			return domain.ErrMenuItemName
		}
		if item.Price < 0 {
			return domain.ErrInvalidPrice
		}
		if _, dup := seen[item.Name]; dup {
			return domain.ErrDuplicateMenuItem
		}
		seen[item.Name] = struct{}{}
	}

	return s.menuRepo.ReplaceAll(ctx, items)
}
