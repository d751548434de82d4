package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jippymart/internal/hours"
)

func strPtr(s string) *string { return &s }

func TestIsValid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, hours.Kolkata)
	plan := &Plan{ID: "gold"}

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"no plan", Status{}, true},
		{"no plan ignores limits", Status{TotalOrders: 0, ExpiryDate: strPtr("2000-01-01 00:00:00")}, true},
		{"unlimited int", Status{Plan: plan, TotalOrders: int64(-1), ExpiryDate: strPtr("2000-01-01 00:00:00")}, true},
		{"unlimited string", Status{Plan: plan, TotalOrders: "-1"}, true},
		{"no orders left", Status{Plan: plan, TotalOrders: 0}, false},
		{"no orders left string", Status{Plan: plan, TotalOrders: "0"}, false},
		{"missing limit", Status{Plan: plan}, false},
		{"orders left no expiry", Status{Plan: plan, TotalOrders: 5}, true},
		{"orders left expired", Status{Plan: plan, TotalOrders: 5, ExpiryDate: strPtr("2025-05-31 23:59:59")}, false},
		{"orders left not expired", Status{Plan: plan, TotalOrders: "5", ExpiryDate: strPtr("2025-06-30 00:00:00")}, true},
		{"expires this instant", Status{Plan: plan, TotalOrders: 1, ExpiryDate: strPtr("2025-06-01 12:00:00")}, true},
		{"unparseable expiry fails open", Status{Plan: plan, TotalOrders: 3, ExpiryDate: strPtr("someday")}, true},
		{"non numeric limit", Status{Plan: plan, TotalOrders: "lots"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.status, now))
		})
	}
}

func TestOrderLimit(t *testing.T) {
	assert.Equal(t, int64(-1), OrderLimit("-1"))
	assert.Equal(t, int64(12), OrderLimit(float64(12)))
	assert.Equal(t, int64(7), OrderLimit(" 7 "))
	assert.Equal(t, int64(3), OrderLimit("3.9"))
	assert.Equal(t, int64(0), OrderLimit(nil))
	assert.Equal(t, int64(0), OrderLimit(true))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2025-01-02 03:04:05", "2025-01-02T03:04:05Z", "2025-01-02", `"2025-01-02T03:04:05.000000+05:30"`} {
		_, ok := ParseDate(in)
		assert.True(t, ok, in)
	}
	_, ok := ParseDate("02/01/2025")
	assert.False(t, ok)
}

func TestExpiryReadInKolkataRegardlessOfHostZone(t *testing.T) {
	status := Status{Plan: &Plan{ID: "gold"}, TotalOrders: 5, ExpiryDate: strPtr("2025-06-01 12:00:00")}

	// 06:00 UTC is 11:30 in Kolkata, 07:00 UTC is 12:30.
	assert.True(t, IsValid(status, time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)))
	assert.False(t, IsValid(status, time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)))

	expiry, ok := ParseDate("2025-06-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 31, 18, 30, 0, 0, time.UTC), expiry.UTC())
}
