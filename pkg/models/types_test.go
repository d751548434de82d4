package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func ptr(s string) *string { return &s }

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   any
		want *bool
	}{
		{nil, nil},
		{true, boolPtr(true)},
		{int64(0), boolPtr(false)},
		{float64(2), boolPtr(true)},
		{" Yes ", boolPtr(true)},
		{"no", boolPtr(false)},
		{"1.0", boolPtr(true)},
		{"", nil},
		{"maybe", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceBool(tt.in), "%#v", tt.in)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestFlagScanAndMarshal(t *testing.T) {
	var f Flag
	require.NoError(t, f.Scan([]byte("1")))
	assert.True(t, f.Bool(false))

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"1"`, string(b))

	require.NoError(t, f.Scan(nil))
	assert.True(t, f.IsNull())
	assert.True(t, f.Bool(true))

	assert.Error(t, f.Scan(struct{}{}))
}

func TestFlagUnmarshalKeepsRawValue(t *testing.T) {
	var holder struct {
		Open Flag `json:"open"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"open":false}`), &holder))

	assert.Equal(t, false, holder.Open.Raw())
	assert.False(t, holder.Open.Bool(true))
}

func TestDecodeJSON(t *testing.T) {
	assert.Nil(t, DecodeJSON(nil))
	assert.Equal(t, []any{"a"}, DecodeJSON(datatypes.JSON(`["a"]`)))
	assert.Equal(t, "plain text", DecodeJSON(datatypes.JSON(`plain text`)))
	assert.Equal(t, []any{}, DecodeJSONOr(datatypes.JSON(` `), []any{}))
	assert.Equal(t, map[string]any{"k": "v"}, DecodeJSONString(ptr(`{"k":"v"}`)))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   *string
		want float64
		ok   bool
	}{
		{ptr("₹ 120.50"), 120.5, true},
		{ptr("-3"), -3, true},
		{ptr("free"), 0, false},
		{ptr("1.2.3"), 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "120.00", *NumericString(ptr("INR 120.00")))
}

func TestLegacyTime(t *testing.T) {
	for _, raw := range []string{
		`"2024-03-01T10:20:30.123456Z"`,
		"2024-03-01T10:20:30+05:30",
		"2024-03-01 10:20:30",
		"2024-03-01",
	} {
		got, ok := LegacyTime(ptr(raw))
		require.True(t, ok, raw)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, 1, got.Day())
	}

	_, ok := LegacyTime(ptr("yesterday"))
	assert.False(t, ok)
	_, ok = LegacyTime(nil)
	assert.False(t, ok)
}
