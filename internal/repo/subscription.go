package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// LatestActive returns, per vendor, the subscription row with the latest
// expiry that has not expired at now. Rows without an expiry count as active.
func (r *SubscriptionRepository) LatestActive(ctx context.Context, vendorIDs []string, now time.Time) (map[string]models.SubscriptionHistory, error) {
	out := make(map[string]models.SubscriptionHistory, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return out, nil
	}

	ids := make([]any, len(vendorIDs))
	for i, id := range vendorIDs {
		ids[i] = id
	}

	var rows []models.SubscriptionHistory
	err := r.db.WithContext(ctx).
		Where(in("user_id", ids...)).
		Where(clause.Or(
			clause.Gte{Column: col("expiry_date"), Value: now.Format("2006-01-02 15:04:05")},
			isNull("expiry_date"),
		)).
		Order(orderBy("expiry_date", true)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// Dated rows win over undated ones whatever the dialect's NULL ordering.
	for _, row := range rows {
		current, seen := out[row.UserID]
		if !seen || (current.ExpiryDate == nil && row.ExpiryDate != nil) {
			out[row.UserID] = row
		}
	}
	return out, nil
}
