package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"jippymart/internal/commission"
	"jippymart/pkg/models"
)

type memoryStore struct {
	rows     []models.Setting
	currency *models.Currency
	err      error
	upserts  map[string]string
}

func (m *memoryStore) ListSettings(context.Context) ([]models.Setting, error) {
	return m.rows, m.err
}

func (m *memoryStore) UpsertSetting(_ context.Context, name string, fields []byte) error {
	if m.upserts == nil {
		m.upserts = map[string]string{}
	}
	m.upserts[name] = string(fields)
	return nil
}

func (m *memoryStore) ActiveCurrency(context.Context) (*models.Currency, error) {
	return m.currency, nil
}

func doc(name, fields string) models.Setting {
	return models.Setting{DocumentName: name, Fields: datatypes.JSON(fields)}
}

func loaded(t *testing.T, store *memoryStore) *Service {
	t.Helper()
	s := NewService(store)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadDecodesDocuments(t *testing.T) {
	s := loaded(t, &memoryStore{rows: []models.Setting{
		doc(DocGlobal, `{"applicationName":"Jippy"}`),
		doc(DocLanguages, `{"list":[{"slug":"te"}]}`),
		doc("broken", `{not json`),
		doc("scalar", `42`),
		doc("empty", ``),
	}})

	assert.Equal(t, "Jippy", s.Field(DocGlobal, "applicationName", nil))
	assert.Equal(t, []any{map[string]any{"slug": "te"}}, s.Languages())
	assert.Equal(t, map[string]any{}, s.Object("broken"))
	assert.Equal(t, map[string]any{}, s.Object("scalar"))
	_, ok := s.Document("empty")
	assert.False(t, ok)
	assert.False(t, s.LoadedAt().IsZero())
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	store := &memoryStore{rows: []models.Setting{doc(DocVersion, `{"app_version":"3.0"}`)}}
	s := loaded(t, store)

	store.err = errors.New("db gone")
	assert.Error(t, s.Load(context.Background()))
	assert.Equal(t, "3.0", s.Field(DocVersion, "app_version", nil))
}

func TestDefaults(t *testing.T) {
	s := loaded(t, &memoryStore{})

	assert.Equal(t, "Jippy Mart", s.Global().(map[string]any)["applicationName"])
	assert.Equal(t, "15", s.Distance().(map[string]any)["radios"])
	assert.Equal(t, map[string]any{}, s.Map())
	assert.Equal(t, map[string]any{}, s.DeliveryCharge())
	assert.Nil(t, s.AdminCommission())

	cur, err := s.Currency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultCurrency, cur)
}

func TestAdminCommissionSettings(t *testing.T) {
	s := loaded(t, &memoryStore{rows: []models.Setting{
		doc(DocAdminCommission, `{"isEnabled":"true","commissionType":"Fixed","fix_commission":"12.5"}`),
	}})

	assert.Equal(t, &commission.Settings{Enabled: true, Type: commission.TypeFixed, Value: 12.5}, s.AdminCommission())
}

func TestSetFieldPatchesSnapshot(t *testing.T) {
	store := &memoryStore{rows: []models.Setting{doc(DocGlobal, `{"applicationName":"Jippy"}`)}}
	s := loaded(t, store)

	require.NoError(t, s.SetField(context.Background(), DocGlobal, "web_panel_color", "#000"))

	assert.Equal(t, "#000", s.Field(DocGlobal, "web_panel_color", nil))
	assert.Equal(t, "Jippy", s.Field(DocGlobal, "applicationName", nil))
	assert.JSONEq(t, `{"applicationName":"Jippy","web_panel_color":"#000"}`, store.upserts[DocGlobal])
}

func TestCurrencyFromRow(t *testing.T) {
	digits := int64(0)
	s := loaded(t, &memoryStore{currency: &models.Currency{
		Code:          strPtr("USD"),
		Symbol:        strPtr("$"),
		SymbolAtRight: models.NewFlag("1"),
		DecimalDigits: &digits,
	}})

	cur, err := s.Currency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Currency{Symbol: "$", Code: "USD", Name: "Indian Rupee", SymbolAtRight: true}, cur)
}

func TestMobileDerivedValues(t *testing.T) {
	s := loaded(t, &memoryStore{rows: []models.Setting{
		doc("restaurant", `{"subscription_model":true,"auto_approve_restaurant":"0"}`),
		doc(DocRestaurantNearBy, `{"radios":"20","distanceType":"km"}`),
		doc("placeHolderImage", `{"image":"ph.png"}`),
		doc("WalletSetting", `{"isEnabled":true}`),
	}})

	body, err := s.Mobile(context.Background())
	require.NoError(t, err)

	derived := body["derived"].(map[string]any)
	assert.Equal(t, true, derived["isSubscriptionModelApplied"])
	assert.Equal(t, false, derived["autoApproveRestaurant"])
	assert.Equal(t, "20", derived["radius"])
	assert.Equal(t, "ph.png", derived["placeHolderImage"])
	assert.Equal(t, true, derived["walletEnabled"])
	assert.Equal(t, "0", derived["referralAmount"])

	docs := body["documents"].(map[string]any)
	assert.Len(t, docs, len(MobileDocuments))
	assert.Equal(t, map[string]any{}, docs["story"])
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{"", false},
		{"0", false},
		{"false", true},
		{float64(0), false},
		{float64(2), true},
		{[]any{}, false},
		{map[string]any{"a": 1}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.in), "%#v", tt.in)
	}
}

func strPtr(s string) *string { return &s }
