package subscription

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"jippymart/internal/hours"
)

// Unlimited is the order limit of plans without a cap.
const Unlimited = -1

// Plan is the subset of a subscription plan the marketplace exposes.
type Plan struct {
	ID         string `json:"id"`
	ExpiryDay  any    `json:"expiryDay"`
	ExpiryDate any    `json:"expiryDate"`
}

// Status is the subscription state attached to a vendor.
type Status struct {
	Plan *Plan
	// TotalOrders is the raw order limit (number or numeric string).
	TotalOrders any
	ExpiryDate  *string
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses the date formats found in subscription rows. Values
// without an offset are read in the working hours zone.
func ParseDate(value string) (time.Time, bool) {
	value = strings.Trim(strings.TrimSpace(value), `"`)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, hours.Kolkata); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OrderLimit converts the stored order limit into an integer. Values that
// carry no number count as zero.
func OrderLimit(raw any) int64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		return OrderLimit(string(v))
	case []byte:
		return OrderLimit(string(v))
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// IsValid reports whether the vendor may be shown to customers. Vendors
// without a plan run on the commission model and are always valid; unlimited
// plans never run out; otherwise orders must remain and the plan must not be
// expired. An unreadable expiry date is treated as not expired.
func IsValid(s Status, now time.Time) bool {
	if s.Plan == nil {
		return true
	}

	limit := OrderLimit(s.TotalOrders)
	if limit == Unlimited {
		return true
	}
	if limit <= 0 {
		return false
	}

	if s.ExpiryDate == nil || strings.TrimSpace(*s.ExpiryDate) == "" {
		return true
	}
	expiry, ok := ParseDate(*s.ExpiryDate)
	if !ok {
		log.Debug().Str("expiry_date", *s.ExpiryDate).Msg("Unparseable subscription expiry date, treating as active")
		return true
	}
	return !expiry.Before(now)
}
