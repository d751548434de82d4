package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/pkg/models"
)

type fakeLedger struct {
	payouts      []models.Payout
	driverPays   []models.DriverPayout
	transactions []models.WalletTransaction
}

func (f *fakeLedger) RestaurantPayouts(_ context.Context, vendorID string) ([]models.Payout, error) {
	if vendorID == "" {
		return f.payouts, nil
	}
	var out []models.Payout
	for _, p := range f.payouts {
		if models.Str(p.VendorID) == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLedger) DriverPayouts(context.Context, string) ([]models.DriverPayout, error) {
	return f.driverPays, nil
}

func (f *fakeLedger) WalletTransactions(context.Context, string) ([]models.WalletTransaction, error) {
	return f.transactions, nil
}

type fakeDirectory struct{ users []models.AppUser }

func (f fakeDirectory) FindByID(_ context.Context, id, role string) (*models.AppUser, error) {
	for i := range f.users {
		u := f.users[i]
		if u.ID == id && (role == "" || models.Str(u.Role) == role) {
			return &u, nil
		}
	}
	return nil, nil
}

func (f fakeDirectory) Names(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				out[id] = u.FullName()
			}
		}
	}
	return out, nil
}

func payout(id, vendorID string, amount float64, paid, note string) models.Payout {
	return models.Payout{ID: id, VendorID: strPtr(vendorID), Amount: &amount, PaidDate: strPtr(paid), Note: strPtr(note)}
}

func ledgerFixture() *LedgerService {
	ledger := &fakeLedger{
		payouts: []models.Payout{
			payout("p1", "v1", 500, "2024-01-02 10:00:00", "weekly"),
			payout("p2", "v1", 1500, "2024-01-05 10:00:00", "bonus"),
			payout("p3", "ghost", 50, "2023-12-30 10:00:00", "weekly"),
		},
		transactions: []models.WalletTransaction{
			{ID: "t1", UserID: strPtr("u1"), Amount: floatPtr(20), Date: strPtr("bad date")},
			{ID: "t2", UserID: strPtr("d1"), Amount: floatPtr(10), TransactionUser: strPtr("driver")},
		},
	}
	driver := appUser("d1", "Dev", "Driver", "d@example.com")
	driver.Role = strPtr("driver")
	users := fakeDirectory{users: []models.AppUser{appUser("u1", "Uma", "User", "u@example.com"), driver}}
	vendors := &fakeVendors{vendors: []models.Vendor{newVendor("v1", 17.0, 78.0)}}
	return NewLedgerService(ledger, vendors, users)
}

func payoutIDs(rows []RestaurantPayoutRow) []string {
	return mapSlice(rows, func(r RestaurantPayoutRow) string { return r.ID })
}

func TestRestaurantPayoutsDefaultSortIsNewestFirst(t *testing.T) {
	page, err := ledgerFixture().RestaurantPayouts(context.Background(), TableQuery{Draw: 3, Length: 10, OrderColumn: 99})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Draw)
	assert.Equal(t, 3, page.RecordsTotal)
	assert.Equal(t, []string{"p2", "p1", "p3"}, payoutIDs(page.Data))
	assert.Equal(t, "Vendor v1", page.Data[0].RestaurantName)
	assert.Equal(t, "Unknown", page.Data[2].RestaurantName)
	assert.Equal(t, "Fri Jan 05 2024 10:00:00 AM", page.Data[0].FormattedDate)
}

func TestRestaurantPayoutsSearchSortAndPage(t *testing.T) {
	svc := ledgerFixture()
	ctx := context.Background()

	page, err := svc.RestaurantPayouts(ctx, TableQuery{Search: "WEEK", OrderColumn: 2, OrderDir: "asc", Length: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p1"}, payoutIDs(page.Data))
	assert.Equal(t, 2, page.RecordsFiltered)

	page, err = svc.RestaurantPayouts(ctx, TableQuery{OrderColumn: 2, OrderDir: "desc", Start: 1, Length: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, payoutIDs(page.Data))

	page, err = svc.RestaurantPayouts(ctx, TableQuery{OrderColumn: 0, Length: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, payoutIDs(page.Data))
}

func TestRestaurantPayoutsHugeLengthReturnsRemainder(t *testing.T) {
	page, err := ledgerFixture().RestaurantPayouts(context.Background(), TableQuery{OrderColumn: 0, Start: 1, Length: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3"}, payoutIDs(page.Data))
	assert.Equal(t, 3, page.RecordsTotal)
}

func TestRestaurantPayoutsOfOneVendorUseShortColumns(t *testing.T) {
	page, err := ledgerFixture().RestaurantPayouts(context.Background(), TableQuery{Owner: "v1", OrderColumn: 1, OrderDir: "asc", Length: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2"}, payoutIDs(page.Data))
}

func TestWalletTransactions(t *testing.T) {
	page, err := ledgerFixture().WalletTransactions(context.Background(), TableQuery{OrderColumn: 1, OrderDir: "asc", Length: 10})
	require.NoError(t, err)

	require.Len(t, page.Data, 2)
	assert.Equal(t, "Dev Driver", page.Data[0].UserName)
	assert.Equal(t, "driver", page.Data[0].UserType)
	assert.Equal(t, "user", page.Data[1].UserType)
	assert.Equal(t, "bad date", page.Data[1].FormattedDate)
}

func TestLedgerSummaries(t *testing.T) {
	svc := ledgerFixture()
	ctx := context.Background()

	v, err := svc.Vendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, false, v.DineInActive)

	d, err := svc.Driver(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Dev Driver", d.FullName)
	assert.Nil(t, d.Role)

	_, err = svc.Driver(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := svc.User(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "driver", *u.Role)

	_, err = svc.Vendor(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
