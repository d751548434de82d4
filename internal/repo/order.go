package repo

import (
	"context"

	"gorm.io/gorm"

	"jippymart/internal/commission"
)

// CompletedStatus is the status of orders that count towards commission.
const CompletedStatus = "Order Completed"

// OrderRepository reads restaurant_orders as raw rows. The amount columns
// differ between app versions, so rows are normalized by commission.FromRow
// instead of being mapped onto a model.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("restaurant_orders")
}

// FindByID returns nil when the order does not exist.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*commission.Order, error) {
	var rows []map[string]any
	if err := r.table(ctx).Where(eq("id", id)).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	order := commission.FromRow(rows[0])
	return &order, nil
}

// EachCompleted streams completed orders to fn, at most limit when limit > 0.
func (r *OrderRepository) EachCompleted(ctx context.Context, limit int, fn func(commission.Order) error) error {
	q := r.table(ctx).Where(eq("status", CompletedStatus))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		row := map[string]any{}
		if err := r.db.ScanRows(rows, &row); err != nil {
			return err
		}
		if err := fn(commission.FromRow(row)); err != nil {
			return err
		}
	}
	return rows.Err()
}

// UpdateCommission stores the computed commission and its type on an order.
func (r *OrderRepository) UpdateCommission(ctx context.Context, id string, amount float64, kind string) error {
	return r.table(ctx).Where(eq("id", id)).Updates(map[string]any{
		"adminCommission":     amount,
		"adminCommissionType": kind,
	}).Error
}
