package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// ActiveForRestaurant returns the available promotions whose window contains
// now. restaurantKeys holds the ids and titles a promotion may reference.
func (r *PromotionRepository) ActiveForRestaurant(ctx context.Context, restaurantKeys []string, now time.Time) ([]models.Promotion, error) {
	if len(restaurantKeys) == 0 {
		return nil, nil
	}
	keys := make([]any, len(restaurantKeys))
	for i, k := range restaurantKeys {
		keys[i] = k
	}
	ts := now.Format("2006-01-02 15:04:05")

	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Where(in("restaurant_id", keys...)).
		Where(truthy(r.db, "isAvailable")).
		Where(clause.Or(isNull("start_time"), clause.Lte{Column: col("start_time"), Value: ts})).
		Where(clause.Or(isNull("end_time"), clause.Gte{Column: col("end_time"), Value: ts})).
		Find(&promotions).Error
	return promotions, err
}

// AvailableForProduct returns the available promotions of a product
// regardless of their window.
func (r *PromotionRepository) AvailableForProduct(ctx context.Context, productID string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Where(eq("product_id", productID)).
		Where(truthy(r.db, "isAvailable")).
		Find(&promotions).Error
	return promotions, err
}
