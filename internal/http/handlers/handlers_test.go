package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/internal/cache"
	"jippymart/internal/repo"
	"jippymart/internal/services"
	"jippymart/internal/settings"
	"jippymart/pkg/models"
)

func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func strp(s string) *string { return &s }

func TestNullableBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{"true", boolp(true)},
		{"1", boolp(true)},
		{" Yes ", boolp(true)},
		{"on", boolp(true)},
		{"false", boolp(false)},
		{"0", boolp(false)},
		{"off", boolp(false)},
		{"", nil},
		{"maybe", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nullableBool(tt.input), "input %q", tt.input)
	}
}

func boolp(b bool) *bool { return &b }

func TestParamsStrictBool(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/?a=1&b=false&c=yes", nil)
	p := newParams(c)

	assert.Equal(t, boolp(true), p.strictBool("a"))
	assert.Equal(t, boolp(false), p.strictBool("b"))
	assert.Nil(t, p.strictBool("c"))
	assert.Nil(t, p.strictBool("missing"))
	assert.Equal(t, fieldErrors{"c": {"The c field must be true or false."}}, p.errs)
}

func TestNearestValidation(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/restaurants/nearest?latitude=abc&longitude=200&is_dining=maybe", nil)
	h := NewRestaurantHandler(nil, Errors{})

	require.NoError(t, h.Nearest(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"The zone id field is required."}, errs["zone_id"])
	assert.Equal(t, []any{"The latitude field must be a number."}, errs["latitude"])
	assert.Equal(t, []any{"The longitude field must not be greater than 180."}, errs["longitude"])
	assert.Equal(t, []any{"The is dining field must be true or false."}, errs["is_dining"])
}

type fakeProducts struct {
	err error
}

func (f *fakeProducts) AvailableByVendor(context.Context, string) ([]models.Product, error) {
	return nil, f.err
}

func (f *fakeProducts) PageAvailable(context.Context, int, int) ([]models.Product, int64, error) {
	return nil, 0, f.err
}

func (f *fakeProducts) Feed(context.Context, string, repo.FeedFilter) ([]models.Product, error) {
	return nil, f.err
}

func (f *fakeProducts) FindByID(context.Context, string) (*models.Product, error) {
	return nil, f.err
}

func TestInternalErrorDetail(t *testing.T) {
	products := services.NewProductService(&fakeProducts{err: errors.New("connection refused")}, nil, nil, nil, nil)

	for _, debug := range []bool{false, true} {
		c, rec := newContext(http.MethodGet, "/api/vendor-products/p1", nil)
		c.SetParamNames("id")
		c.SetParamValues("p1")

		require.NoError(t, NewProductHandler(products, Errors{Debug: debug}).Raw(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "Failed to fetch product", body["message"])
		if debug {
			assert.Contains(t, body["error"], "connection refused")
		} else {
			assert.NotContains(t, body, "error")
		}
	}
}

func TestProductNotFound(t *testing.T) {
	products := services.NewProductService(&fakeProducts{}, nil, nil, nil, nil)
	c, rec := newContext(http.MethodGet, "/api/vendor-products/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, NewProductHandler(products, Errors{}).Raw(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Product not found"}, decode(t, rec))
}

type fakeSettingsStore struct {
	rows    []models.Setting
	written map[string]string
}

func (f *fakeSettingsStore) ListSettings(context.Context) ([]models.Setting, error) {
	return f.rows, nil
}

func (f *fakeSettingsStore) UpsertSetting(_ context.Context, name string, fields []byte) error {
	if f.written == nil {
		f.written = map[string]string{}
	}
	f.written[name] = string(fields)
	return nil
}

func (f *fakeSettingsStore) ActiveCurrency(context.Context) (*models.Currency, error) {
	return nil, nil
}

func newSettingsHandler(t *testing.T, store *fakeSettingsStore) (*SettingsHandler, *cache.Cache) {
	t.Helper()
	svc := settings.NewService(store)
	require.NoError(t, svc.Load(context.Background()))
	c := cache.New(cache.NewMemoryStore(), "test_")
	return NewSettingsHandler(svc, c, nil, Errors{}), c
}

func TestSettingsDocument(t *testing.T) {
	store := &fakeSettingsStore{rows: []models.Setting{
		{DocumentName: settings.DocGlobal, Fields: []byte(`{"appLogo":"logo.png","meta_title":"Jippy"}`)},
	}}
	h, _ := newSettingsHandler(t, store)

	c, rec := newContext(http.MethodGet, "/api/settings/global", nil)
	require.NoError(t, h.Document((*settings.Service).Global)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"appLogo": "logo.png", "meta_title": "Jippy"}, decode(t, rec))

	c, rec = newContext(http.MethodGet, "/api/settings/version", nil)
	require.NoError(t, h.Document((*settings.Service).Version)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec))
}

func TestSettingsUpdateClearsDerivedEntries(t *testing.T) {
	store := &fakeSettingsStore{}
	h, c := newSettingsHandler(t, store)
	ctx := context.Background()
	for _, key := range cache.SettingsKeys {
		c.Put(ctx, key, []byte(`{}`), time.Hour)
	}

	ec, rec := newContext(http.MethodPut, "/api/settings/documents/driverSettings", strings.NewReader(`{"minimumDepositToRideAccept":"10"}`))
	ec.SetParamNames("name")
	ec.SetParamValues("driverSettings")

	require.NoError(t, h.Update(ec))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"minimumDepositToRideAccept":"10"}`, store.written["driverSettings"])

	body := decode(t, rec)
	assert.Equal(t, "Settings updated successfully", body["message"])
	assert.Equal(t, map[string]any{"minimumDepositToRideAccept": "10"}, body["data"])

	for _, key := range cache.SettingsKeys {
		_, ok := c.Get(ctx, key)
		assert.False(t, ok, key)
	}

	ec, rec = newContext(http.MethodGet, "/api/settings/documents/driverSettings/fields/minimumDepositToRideAccept", nil)
	ec.SetParamNames("name", "field")
	ec.SetParamValues("driverSettings", "minimumDepositToRideAccept")
	require.NoError(t, h.Field(ec))
	assert.Equal(t, "10", decode(t, rec)["data"])
}

func TestSettingsShowMissingDocument(t *testing.T) {
	h, _ := newSettingsHandler(t, &fakeSettingsStore{})

	c, rec := newContext(http.MethodGet, "/api/settings/documents/nope", nil)
	c.SetParamNames("name")
	c.SetParamValues("nope")

	require.NoError(t, h.Show(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Settings document not found", decode(t, rec)["message"])
}

func TestFlushAll(t *testing.T) {
	ctx := context.Background()
	c := cache.New(cache.NewMemoryStore(), "test_")
	c.Put(ctx, "nearest_restaurants_v1_abc", []byte(`[]`), time.Hour)
	svc := settings.NewService(&fakeSettingsStore{})
	h := NewCacheHandler(services.NewCacheAdminService(c, svc))

	ec, rec := newContext(http.MethodPost, "/api/cache/flush/all", nil)
	require.NoError(t, h.FlushAll(ec))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "All cache cleared successfully", body["message"])

	_, ok := c.Get(ctx, "nearest_restaurants_v1_abc")
	assert.False(t, ok)
	assert.False(t, svc.LoadedAt().IsZero())
}

func TestFlushMenuItemsRejectsUnknownPosition(t *testing.T) {
	c := cache.New(cache.NewMemoryStore(), "test_")
	h := NewCacheHandler(services.NewCacheAdminService(c, nil))

	ec, rec := newContext(http.MethodPost, "/api/cache/flush/menu-items?position=side", nil)
	require.NoError(t, h.FlushMenuItems(ec))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errs := decode(t, rec)["errors"].(map[string]any)
	assert.Equal(t, []any{"The selected position is invalid."}, errs["position"])
}

type fakeUsers struct {
	users      []models.AppUser
	emailTaken bool
}

func (f *fakeUsers) List(_ context.Context, _ repo.UserFilter, _, _ int) ([]models.AppUser, int64, error) {
	return f.users, int64(len(f.users)), nil
}

func (f *fakeUsers) All(context.Context, repo.UserFilter) ([]models.AppUser, error) {
	return f.users, nil
}

func (f *fakeUsers) EmailExists(context.Context, string) (bool, error) { return f.emailTaken, nil }
func (f *fakeUsers) FirebaseIDExists(context.Context, string) (bool, error) { return false, nil }
func (f *fakeUsers) GeneratedFirebaseIDs(context.Context) ([]string, error) { return nil, nil }
func (f *fakeUsers) Create(context.Context, *models.AppUser) error { return nil }
func (f *fakeUsers) FindByAnyID(context.Context, string) (*models.AppUser, error) {
	return nil, nil
}
func (f *fakeUsers) Delete(context.Context, *models.AppUser) error { return nil }
func (f *fakeUsers) SetActive(context.Context, *models.AppUser, bool) error { return nil }

type fakeZones struct{}

func (fakeZones) Zones(context.Context) ([]models.Zone, error) {
	return []models.Zone{{ID: "z1", Name: strp("North")}}, nil
}

func TestExportUsersCSV(t *testing.T) {
	users := services.NewUserService(&fakeUsers{users: []models.AppUser{{
		ID:          "user_1",
		FirstName:   strp("Asha"),
		LastName:    strp("Rao"),
		Email:       strp("asha@example.com"),
		PhoneNumber: strp("9000000000"),
		Active:      models.NewFlag("1"),
	}}}, fakeZones{})
	h := NewUserHandler(users, Errors{})

	c, rec := newContext(http.MethodGet, "/api/admin/users/export?format=csv", nil)
	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "users.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Email,Phone,Zone,Active,Created At", lines[0])
	assert.Equal(t, "Asha Rao,asha@example.com,9000000000,Not Assigned,Active,", lines[1])
}

func TestExportUsersUnsupportedFormat(t *testing.T) {
	h := NewUserHandler(services.NewUserService(&fakeUsers{}, fakeZones{}), Errors{})

	c, rec := newContext(http.MethodGet, "/api/admin/users/export?format=pdf", nil)
	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"status": false, "message": "Export format not supported"}, decode(t, rec))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := NewUserHandler(services.NewUserService(&fakeUsers{emailTaken: true}, fakeZones{}), Errors{})

	body := `{"firstName":"Asha","lastName":"Rao","email":"asha@example.com","password":"secret1"}`
	c, rec := newContext(http.MethodPost, "/api/admin/users", strings.NewReader(body))
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Validation failed", got["message"])
	assert.Equal(t, map[string]any{"email": []any{"The email has already been taken."}}, got["errors"])
}

type fakeVendors struct{}

func (fakeVendors) FindByID(context.Context, string) (*models.Vendor, error) { return nil, nil }
func (fakeVendors) Titles(context.Context, []string) (map[string]string, error) {
	return map[string]string{}, nil
}

type failingLedger struct{}

func (failingLedger) RestaurantPayouts(context.Context, string) ([]models.Payout, error) {
	return nil, errors.New("timeout")
}
func (failingLedger) DriverPayouts(context.Context, string) ([]models.DriverPayout, error) {
	return nil, errors.New("timeout")
}
func (failingLedger) WalletTransactions(context.Context, string) ([]models.WalletTransaction, error) {
	return nil, errors.New("timeout")
}

func TestVendorSummaryNotFound(t *testing.T) {
	h := NewLedgerHandler(services.NewLedgerService(nil, fakeVendors{}, nil), Errors{})

	c, rec := newContext(http.MethodGet, "/api/admin/vendors/v9/summary", nil)
	c.SetParamNames("id")
	c.SetParamValues("v9")

	require.NoError(t, h.VendorSummary(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vendor not found", decode(t, rec)["message"])
}

func TestPayoutsFailureKeepsTableShape(t *testing.T) {
	h := NewLedgerHandler(services.NewLedgerService(failingLedger{}, fakeVendors{}, nil), Errors{})

	c, rec := newContext(http.MethodGet, "/api/admin/payouts/restaurants?draw=4", nil)
	require.NoError(t, h.RestaurantPayouts(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(4), body["draw"])
	assert.Equal(t, float64(0), body["recordsTotal"])
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, "Error fetching payouts data", body["error"])
}

func TestTableQuery(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/?draw=2&start=20&length=-1&search%5Bvalue%5D=pizza&order%5B0%5D%5Bcolumn%5D=3&order%5B0%5D%5Bdir%5D=asc&vendor_id=v1", nil)

	assert.Equal(t, services.TableQuery{
		Draw:        2,
		Start:       20,
		Length:      -1,
		Search:      "pizza",
		OrderColumn: 3,
		OrderDir:    "asc",
		Owner:       "v1",
	}, tableQuery(c, "vendor_id"))
}
