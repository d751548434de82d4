package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"jippymart/internal/commission"
	"jippymart/pkg/models"
)

type fakeOrders struct {
	orders  []commission.Order
	updates map[string]float64
	kinds   map[string]string
}

func (f *fakeOrders) FindByID(_ context.Context, id string) (*commission.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) EachCompleted(_ context.Context, limit int, fn func(commission.Order) error) error {
	for i, o := range f.orders {
		if limit > 0 && i >= limit {
			break
		}
		if err := fn(o); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeOrders) UpdateCommission(_ context.Context, id string, amount float64, kind string) error {
	if f.updates == nil {
		f.updates, f.kinds = map[string]float64{}, map[string]string{}
	}
	f.updates[id] = amount
	f.kinds[id] = kind
	return nil
}

type countingVendors struct {
	*fakeVendors
	lookups int
}

func (c *countingVendors) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	c.lookups++
	return c.fakeVendors.FindByID(ctx, id)
}

type staticCommission struct{ settings *commission.Settings }

func (s staticCommission) AdminCommission() *commission.Settings { return s.settings }

func commissionFixture() (*fakeOrders, *countingVendors, *CommissionService) {
	fixed := newVendor("v1", 17.0, 78.0)
	fixed.AdminCommission = datatypes.JSON(`{"isEnabled":true,"commissionType":"Fixed","fix_commission":5}`)
	vendors := &countingVendors{fakeVendors: &fakeVendors{vendors: []models.Vendor{fixed, newVendor("v2", 17.0, 78.0)}}}

	orders := &fakeOrders{orders: []commission.Order{
		{ID: "o1", VendorID: "", Amount: 100},
		{ID: "o2", VendorID: "v1", Amount: 300},
		{ID: "o3", VendorID: "v2", Amount: 200, Stored: 20},
		{ID: "o4", VendorID: "v1", Amount: 50},
	}}
	global := staticCommission{&commission.Settings{Enabled: true, Type: commission.TypePercent, Value: 10}}
	return orders, vendors, NewCommissionService(orders, vendors, global)
}

func TestCommissionTotal(t *testing.T) {
	_, vendors, svc := commissionFixture()

	// 10 (global 10%) + 5 + 40 (stored rate 20%) + 5
	assert.Equal(t, 60.0, svc.Total(context.Background()))
	assert.Equal(t, 2, vendors.lookups)
}

func TestCommissionForOrder(t *testing.T) {
	_, _, svc := commissionFixture()

	oc, err := svc.ForOrder(context.Background(), "o3")
	require.NoError(t, err)
	assert.Equal(t, 40.0, oc.Commission)
	assert.Equal(t, 20.0, oc.Calculated)
	assert.Equal(t, commission.TypePercent, oc.CommissionType)

	oc, err = svc.ForOrder(context.Background(), "o2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, oc.Commission)
	assert.Equal(t, commission.TypeFixed, oc.CommissionType)

	_, err = svc.ForOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommissionRecalculate(t *testing.T) {
	orders, _, svc := commissionFixture()

	amount, err := svc.Recalculate(context.Background(), "o3")
	require.NoError(t, err)
	assert.Equal(t, 20.0, amount)
	assert.Equal(t, 20.0, orders.updates["o3"])

	_, err = svc.Recalculate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommissionRecalculateAllHonoursLimit(t *testing.T) {
	orders, _, svc := commissionFixture()

	n, err := svc.RecalculateAll(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]float64{"o1": 10, "o2": 5}, orders.updates)
	assert.Equal(t, commission.TypeFixed, orders.kinds["o2"])
}
