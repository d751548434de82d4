package commission

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Order is the canonical view of a restaurant order used for commission math.
type Order struct {
	ID       string
	VendorID string
	Status   string
	// Amount is the payable total, zero when none of the legacy fields carry it.
	Amount float64
	// Stored is the commission previously written on the order, zero when unset.
	Stored float64
}

var (
	amountColumns = []string{"ToPay", "toPayAmount", "grandTotal", "total", "amount", "totalAmount"}
	chargeKeys    = []string{"total", "grandTotal", "toPayAmount", "amount", "totalAmount", "ToPay"}
)

// FromRow normalizes a raw restaurant_orders row. Legacy rows keep the payable
// amount in one of several columns or inside JSON blobs; the first usable
// value wins.
func FromRow(row map[string]any) Order {
	return Order{
		ID:       text(row["id"]),
		VendorID: text(row["vendorID"]),
		Status:   text(row["status"]),
		Amount:   amountOf(row),
		Stored:   storedCommission(row["adminCommission"]),
	}
}

func amountOf(row map[string]any) float64 {
	for _, column := range amountColumns {
		value, ok := row[column]
		if !ok || value == nil {
			continue
		}
		s := text(value)
		if s == "" || s == "null" {
			continue
		}
		if n, ok := numeric(value); ok {
			return n
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			if n, ok := numeric(decoded); ok {
				return n
			}
		}
	}

	if charges := decodeObject(row["calculatedCharges"]); charges != nil {
		for _, key := range chargeKeys {
			if n, ok := numeric(charges[key]); ok {
				return n
			}
		}
	}

	if products := decodeObject(row["products"]); products != nil {
		if n, ok := numeric(products["total"]); ok {
			return n
		}
	}
	return 0
}

func storedCommission(raw any) float64 {
	s := strings.TrimSpace(text(raw))
	if s == "" || s == "null" || s == "0" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

func decodeObject(raw any) map[string]any {
	s := text(raw)
	if s == "" {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	return obj
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		if t {
			return "1"
		}
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// numeric mirrors a lenient "is numeric" check: numbers and numeric strings.
func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string, []byte:
		s := strings.TrimSpace(text(t))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
