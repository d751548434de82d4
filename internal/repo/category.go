package repo

import (
	"context"

	"gorm.io/gorm"

	"jippymart/pkg/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Home lists published categories flagged for the home page.
func (r *CategoryRepository) Home(ctx context.Context) ([]models.VendorCategory, error) {
	var categories []models.VendorCategory
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "show_in_homepage")).
		Where(truthy(r.db, "publish")).
		Order(orderBy("title", false)).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Published(ctx context.Context) ([]models.VendorCategory, error) {
	var categories []models.VendorCategory
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "publish")).
		Order(orderBy("title", false)).
		Find(&categories).Error
	return categories, err
}

// FindByID returns nil when the category does not exist.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.VendorCategory, error) {
	var categories []models.VendorCategory
	if err := r.db.WithContext(ctx).Where(eq("id", id)).Limit(1).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}
	return &categories[0], nil
}

// FindScoped returns the category only when it belongs to one of the
// restaurant keys, nil otherwise.
func (r *CategoryRepository) FindScoped(ctx context.Context, id string, restaurantKeys []string) (*models.VendorCategory, error) {
	if len(restaurantKeys) == 0 {
		return nil, nil
	}
	var categories []models.VendorCategory
	err := r.db.WithContext(ctx).
		Where(eq("id", id)).
		Where(in("restaurant_id", anys(restaurantKeys)...)).
		Limit(1).
		Find(&categories).Error
	if err != nil || len(categories) == 0 {
		return nil, err
	}
	return &categories[0], nil
}

// ByIDs loads categories by id. With restaurantKeys set only categories
// owned by one of them are returned.
func (r *CategoryRepository) ByIDs(ctx context.Context, ids, restaurantKeys []string) ([]models.VendorCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Where(in("id", anys(ids)...))
	if len(restaurantKeys) > 0 {
		q = q.Where(in("restaurant_id", anys(restaurantKeys)...))
	}
	var categories []models.VendorCategory
	err := q.Find(&categories).Error
	return categories, err
}

// Search matches published categories by title or description.
func (r *CategoryRepository) Search(ctx context.Context, term string, offset, limit int) ([]models.VendorCategory, error) {
	var categories []models.VendorCategory
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "publish")).
		Where(likeAny(r.db, term, "title", "description")).
		Order(orderBy("title", false)).
		Offset(offset).
		Limit(limit).
		Find(&categories).Error
	return categories, err
}

func anys(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
