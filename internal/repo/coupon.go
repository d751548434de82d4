package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// ActiveForVendor lists enabled public coupons of a vendor that have not
// expired at now.
func (r *CouponRepository) ActiveForVendor(ctx context.Context, vendorID string, now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.WithContext(ctx).
		Where(eq("resturant_id", vendorID)).
		Where(truthy(r.db, "isEnabled")).
		Where(truthy(r.db, "isPublic")).
		Where(clause.Gte{Column: col("expiresAt"), Value: now.Format("2006-01-02 15:04:05")}).
		Find(&coupons).Error
	return coupons, err
}
