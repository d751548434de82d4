package commission

import (
	"encoding/json"
	"math"
	"strings"
)

const (
	TypePercent = "Percent"
	TypeFixed   = "Fixed"
)

// Settings is an admin commission configuration, either vendor specific or
// the global AdminCommission document.
type Settings struct {
	Enabled bool
	Type    string
	Value   float64
}

// CommissionType returns the configured type, Percent when unset.
func (s *Settings) CommissionType() string {
	if s == nil || s.Type == "" {
		return TypePercent
	}
	return s.Type
}

// ParseVendorSettings decodes a vendor's adminCommission column. It only
// returns settings when the object carries an isEnabled key; in that case the
// vendor's choice wins over the global document whether enabled or not.
func ParseVendorSettings(raw string) (*Settings, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, false
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}
	if _, ok := doc["isEnabled"]; !ok {
		return nil, false
	}
	return FromFields(doc), true
}

// FromFields builds settings from a decoded JSON document.
func FromFields(doc map[string]any) *Settings {
	if doc == nil {
		return nil
	}
	s := &Settings{
		Enabled: truthy(doc["isEnabled"]),
		Type:    strings.TrimSpace(text(doc["commissionType"])),
	}
	if n, ok := numeric(doc["fix_commission"]); ok {
		s.Value = n
	}
	return s
}

// truthy treats false, 0, "0", "false", "" and null as disabled.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "0" && s != "false"
	default:
		if n, ok := numeric(t); ok {
			return n != 0
		}
		return true
	}
}

// Pick returns the vendor settings when present, otherwise the global ones.
func Pick(vendor, global *Settings) *Settings {
	if vendor != nil {
		return vendor
	}
	return global
}

// Calculate computes the commission of an amount from settings. Disabled or
// missing settings yield zero.
func Calculate(amount float64, s *Settings) float64 {
	if amount <= 0 || s == nil || !s.Enabled {
		return 0
	}
	if s.Type == TypeFixed {
		return s.Value
	}
	return amount * s.Value / 100
}

// Resolve returns the commission of an order. A stored whole number between
// 10 and 30 is read as a rate; a stored value between 1% and 50% of the order
// amount is trusted as already computed; anything else is recomputed from the
// settings.
func Resolve(o Order, s *Settings) float64 {
	stored := o.Stored
	if o.Amount <= 0 {
		return stored
	}

	if stored >= 10 && stored <= 30 && stored == math.Floor(stored) {
		return o.Amount * stored / 100
	}

	if stored > 0 {
		share := stored / o.Amount * 100
		if share >= 1 && share <= 50 {
			return stored
		}
	}

	return Calculate(o.Amount, s)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
