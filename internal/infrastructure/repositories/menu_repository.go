package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MenuRepositoryImpl implements domain.MenuRepository using GORM
type MenuRepositoryImpl struct {
	db *gorm.DB
}

// DBMenuItem represents the database model for MenuItem (with GORM tags).
// Position preserves insertion order across full-table replacement.
type DBMenuItem struct {
	ID        uint    `gorm:"primaryKey"`
	Position  int     `gorm:"index"`
	Name      string  `gorm:"uniqueIndex;size:255"`
	Price     float64 `gorm:"not null"`
	Available bool
}

// TableName returns the table name for GORM
func (DBMenuItem) TableName() string {
	return "menu_items"
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domain.MenuRepository {
	return &MenuRepositoryImpl{db: db}
}

// List implements domain.MenuRepository, returning items in insertion order
func (r *MenuRepositoryImpl) List(ctx context.Context) ([]domain.MenuItem, error) {
	var rows []DBMenuItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for i := range rows {
		items = append(items, r.dbToDomain(&rows[i]))
	}
	return items, nil
}

// FindByName implements domain.MenuRepository
func (r *MenuRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	var row DBMenuItem
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	item := r.dbToDomain(&row)
	return &item, nil
}

// ReplaceAll implements domain.MenuRepository. The whole catalog is swapped
// in one transaction: last full write wins.
func (r *MenuRepositoryImpl) ReplaceAll(ctx context.Context, items []domain.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&DBMenuItem{}).Error; err != nil {
			return err
		}
		for i, item := range items {
			row := DBMenuItem{
				Position:  i,
				Name:      item.Name,
				Price:     item.Price,
				Available: item.Available,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// dbToDomain converts a database row to a domain menu item
func (r *MenuRepositoryImpl) dbToDomain(row *DBMenuItem) domain.MenuItem {
	return domain.MenuItem{
		Name:      row.Name,
		Price:     row.Price,
		Available: row.Available,
	}
}
