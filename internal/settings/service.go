package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"jippymart/internal/commission"
	"jippymart/internal/metrics"
	"jippymart/pkg/models"
)

// Document names read by the API.
const (
	DocGlobal           = "globalSettings"
	DocRestaurantNearBy = "RestaurantNearBy"
	DocDriverNearBy     = "DriverNearBy"
	DocLanguages        = "languages"
	DocVersion          = "Version"
	DocGoogleMapKey     = "googleMapKey"
	DocNotification     = "notification_setting"
	DocAdminCommission  = "AdminCommission"
	DocDeliveryCharge   = "DeliveryCharge"
)

// Store is the persistence the settings service needs.
type Store interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, name string, fields []byte) error
	// ActiveCurrency returns nil when no currency is active.
	ActiveCurrency(ctx context.Context) (*models.Currency, error)
}

// Service keeps a decoded snapshot of every settings document. Reads never
// touch the database; the snapshot is replaced on Load and patched on writes.
type Service struct {
	store Store

	mu       sync.RWMutex
	docs     map[string]any
	loadedAt time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, docs: map[string]any{}}
}

// Load replaces the snapshot with the current table contents.
func (s *Service) Load(ctx context.Context) error {
	rows, err := s.store.ListSettings(ctx)
	if err != nil {
		metrics.SettingsRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	docs := make(map[string]any, len(rows))
	for _, row := range rows {
		if value, ok := decodeDocument(row.Fields); ok {
			docs[row.DocumentName] = value
		}
	}

	s.mu.Lock()
	s.docs = docs
	s.loadedAt = time.Now()
	s.mu.Unlock()

	metrics.SettingsRefreshes.WithLabelValues("ok").Inc()
	log.Debug().Int("documents", len(docs)).Msg("Settings snapshot loaded")
	return nil
}

// StartRefresher reloads the snapshot every interval until ctx is done.
func (s *Service) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Load(ctx); err != nil {
					log.Warn().Err(err).Msg("Settings refresh failed, keeping previous snapshot")
				}
			}
		}
	}()
}

// LoadedAt is the time of the last successful load.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// decodeDocument reports false for empty columns. Columns that hold
// something other than a JSON object or list decode to an empty object.
func decodeDocument(raw []byte) (any, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON in settings document, using empty document")
		return map[string]any{}, true
	}
	switch v.(type) {
	case map[string]any, []any:
		return v, true
	default:
		return map[string]any{}, true
	}
}

// Document returns the decoded document, false when it does not exist.
func (s *Service) Document(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.docs[name]
	return v, ok
}

// Object returns the document when it is a JSON object, nil otherwise.
func (s *Service) Object(name string) map[string]any {
	v, _ := s.Document(name)
	obj, _ := v.(map[string]any)
	return obj
}

// Field returns one field of a document or def when either is missing.
func (s *Service) Field(name, field string, def any) any {
	if v, ok := s.Object(name)[field]; ok && v != nil {
		return v
	}
	return def
}

// UpdateDocument creates or replaces a document.
func (s *Service) UpdateDocument(ctx context.Context, name string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode settings document %s: %w", name, err)
	}
	if err := s.store.UpsertSetting(ctx, name, body); err != nil {
		return fmt.Errorf("failed to save settings document %s: %w", name, err)
	}

	s.mu.Lock()
	s.docs[name] = fields
	s.mu.Unlock()
	return nil
}

// SetField sets one field, creating the document when needed.
func (s *Service) SetField(ctx context.Context, name, field string, value any) error {
	current := s.Object(name)
	fields := make(map[string]any, len(current)+1)
	for k, v := range current {
		fields[k] = v
	}
	fields[field] = value
	return s.UpdateDocument(ctx, name, fields)
}

func (s *Service) documentOr(name string, def func() any) any {
	if v, ok := s.Document(name); ok {
		return v
	}
	return def()
}

func (s *Service) Global() any {
	return s.documentOr(DocGlobal, func() any {
		return map[string]any{
			"appLogo":            "",
			"meta_title":         "Jippy Mart",
			"applicationName":    "Jippy Mart",
			"web_panel_color":    "#FF683A",
			"order_ringtone_url": "",
		}
	})
}

func (s *Service) Distance() any {
	return s.documentOr(DocRestaurantNearBy, func() any {
		return map[string]any{"distanceType": "km", "radios": "15"}
	})
}

// Restaurant is the RestaurantNearBy document as exposed to the admin panel.
func (s *Service) Restaurant() any {
	return s.documentOr(DocRestaurantNearBy, func() any {
		return map[string]any{"distanceType": "km", "radios": "15", "driverRadios": "5"}
	})
}

func (s *Service) Languages() any {
	if list, ok := s.Object(DocLanguages)["list"]; ok {
		return list
	}
	return []any{map[string]any{"title": "English", "slug": "en", "isActive": true, "is_rtl": false}}
}

func (s *Service) Version() any {
	return s.documentOr(DocVersion, func() any {
		return map[string]any{"web_version": "2.5.0", "app_version": "2.5.0"}
	})
}

func (s *Service) Map() map[string]any {
	out := map[string]any{}
	if _, ok := s.Document(DocDriverNearBy); ok {
		out["selectedMapType"] = s.Field(DocDriverNearBy, "selectedMapType", "google")
	}
	if _, ok := s.Document(DocGoogleMapKey); ok {
		out["googleMapKey"] = s.Field(DocGoogleMapKey, "key", "")
	}
	return out
}

func (s *Service) Notification() any {
	return s.documentOr(DocNotification, func() any { return map[string]any{} })
}

func (s *Service) AdminCommissionDocument() any {
	return s.documentOr(DocAdminCommission, func() any {
		return map[string]any{"isEnabled": false, "commissionType": commission.TypePercent, "fix_commission": 0}
	})
}

// AdminCommission is the global commission configuration, nil when unset.
func (s *Service) AdminCommission() *commission.Settings {
	return commission.FromFields(s.Object(DocAdminCommission))
}

func (s *Service) Driver() any {
	return s.documentOr(DocDriverNearBy, func() any {
		return map[string]any{"driverRadios": "5", "mapType": "inappmap", "selectedMapType": "google"}
	})
}

// DeliveryCharge returns the DeliveryCharge object, empty when missing or
// not an object.
func (s *Service) DeliveryCharge() map[string]any {
	obj := s.Object(DocDeliveryCharge)
	if obj == nil {
		log.Info().Msg("No DeliveryCharge settings found, using empty object")
		return map[string]any{}
	}
	return obj
}

// Currency is the active currency as sent to clients.
type Currency struct {
	Symbol        string `json:"symbol"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	SymbolAtRight bool   `json:"symbolAtRight"`
	DecimalDigits int    `json:"decimal_digits"`
}

var defaultCurrency = Currency{Symbol: "₹", Code: "INR", Name: "Indian Rupee", DecimalDigits: 2}

// Currency reads the active currency, falling back to Indian Rupee.
func (s *Service) Currency(ctx context.Context) (Currency, error) {
	row, err := s.store.ActiveCurrency(ctx)
	if err != nil {
		return defaultCurrency, err
	}
	if row == nil {
		return defaultCurrency, nil
	}
	cur := Currency{
		Symbol:        models.StrOr(row.Symbol, defaultCurrency.Symbol),
		Code:          models.StrOr(row.Code, defaultCurrency.Code),
		Name:          models.StrOr(row.Name, defaultCurrency.Name),
		SymbolAtRight: row.SymbolAtRight.Bool(false),
		DecimalDigits: defaultCurrency.DecimalDigits,
	}
	if row.DecimalDigits != nil {
		cur.DecimalDigits = int(*row.DecimalDigits)
	}
	return cur, nil
}

// All is the layout payload of the admin panel.
func (s *Service) All(ctx context.Context) (map[string]any, error) {
	cur, err := s.Currency(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"globalSettings":       s.Global(),
		"distanceSettings":     s.Distance(),
		"languages":            s.Languages(),
		"version":              s.Version(),
		"mapSettings":          s.Map(),
		"notificationSettings": s.Notification(),
		"currency":             cur,
	}, nil
}
