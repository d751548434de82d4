package repo

import (
	"context"

	"gorm.io/gorm"

	"jippymart/pkg/models"
)

// PaidStatus marks settled payouts.
const PaidStatus = "Success"

// LedgerRepository reads payouts and wallet transactions for the admin
// listings.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// RestaurantPayouts lists settled payouts, latest first. An empty vendorID
// lists every vendor.
func (r *LedgerRepository) RestaurantPayouts(ctx context.Context, vendorID string) ([]models.Payout, error) {
	q := r.db.WithContext(ctx).Where(eq("paymentStatus", PaidStatus))
	if vendorID != "" {
		q = q.Where(eq("vendorID", vendorID))
	}
	var payouts []models.Payout
	err := q.Order(orderBy("paidDate", true)).Find(&payouts).Error
	return payouts, err
}

func (r *LedgerRepository) DriverPayouts(ctx context.Context, driverID string) ([]models.DriverPayout, error) {
	q := r.db.WithContext(ctx).Where(eq("paymentStatus", PaidStatus))
	if driverID != "" {
		q = q.Where(eq("driverID", driverID))
	}
	var payouts []models.DriverPayout
	err := q.Order(orderBy("paidDate", true)).Find(&payouts).Error
	return payouts, err
}

func (r *LedgerRepository) WalletTransactions(ctx context.Context, userID string) ([]models.WalletTransaction, error) {
	q := r.db.WithContext(ctx)
	if userID != "" {
		q = q.Where(eq("user_id", userID))
	}
	var txs []models.WalletTransaction
	err := q.Order(orderBy("date", true)).Find(&txs).Error
	return txs, err
}
