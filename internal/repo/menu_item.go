package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type MenuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// Published lists published banners ordered by set_order. An empty position
// returns every position; a zone also matches banners without a zone.
func (r *MenuItemRepository) Published(ctx context.Context, position, zoneID string) ([]models.MenuItemBanner, error) {
	q := r.db.WithContext(ctx).Where(truthy(r.db, "is_publish"))
	if position != "" {
		q = q.Where(eq("position", position))
	}
	if zoneID != "" {
		q = q.Where(clause.Or(eq("zoneId", zoneID), isNull("zoneId"), eq("zoneId", "")))
	}

	var banners []models.MenuItemBanner
	err := q.Order(orderBy("set_order", false)).Find(&banners).Error
	return banners, err
}

// FindByID returns nil when the banner does not exist.
func (r *MenuItemRepository) FindByID(ctx context.Context, id string) (*models.MenuItemBanner, error) {
	var banners []models.MenuItemBanner
	if err := r.db.WithContext(ctx).Where(eq("id", id)).Limit(1).Find(&banners).Error; err != nil {
		return nil, err
	}
	if len(banners) == 0 {
		return nil, nil
	}
	return &banners[0], nil
}
