package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"jippymart/internal/hours"
	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

// ErrEmailTaken is returned when creating a user with a known email.
var ErrEmailTaken = errors.New("email already taken")

type UserStore interface {
	List(ctx context.Context, f repo.UserFilter, offset, limit int) ([]models.AppUser, int64, error)
	All(ctx context.Context, f repo.UserFilter) ([]models.AppUser, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FirebaseIDExists(ctx context.Context, id string) (bool, error)
	GeneratedFirebaseIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, user *models.AppUser) error
	FindByAnyID(ctx context.Context, id string) (*models.AppUser, error)
	Delete(ctx context.Context, user *models.AppUser) error
	SetActive(ctx context.Context, user *models.AppUser, active bool) error
}

type ZoneLister interface {
	Zones(ctx context.Context) ([]models.Zone, error)
}

// Date range presets of the user listing.
const (
	RangeLast24Hours = "last_24_hours"
	RangeLastWeek    = "last_week"
	RangeLastMonth   = "last_month"
	RangeAllOrders   = "all_orders"
	RangeAllUsers    = "all_users"
)

const (
	userDateLayout    = "Jan 02, 2006 03:04 PM"
	userCreatedLayout = "2006-01-02T15:04:05.000000-07:00"
)

type UserService struct {
	users UserStore
	zones ZoneLister
	now   func() time.Time
}

func NewUserService(users UserStore, zones ZoneLister) *UserService {
	return &UserService{users: users, zones: zones, now: time.Now}
}

func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

type CreateUserInput struct {
	FirstName   string  `json:"firstName" validate:"required,max=255"`
	LastName    string  `json:"lastName" validate:"required,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=6"`
	CountryCode *string `json:"countryCode" validate:"omitempty,max=10"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=30"`
	Active      any     `json:"active"`
	Role        *string `json:"role" validate:"omitempty,max=50"`
	ZoneID      *string `json:"zoneId" validate:"omitempty,max=255"`
}

type CreatedUser struct {
	ID         string `json:"id"`
	FirebaseID string `json:"firebase_id"`
	Email      string `json:"email"`
	IsActive   int    `json:"isActive"`
}

// Create stores a customer account with a generated user_N id.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*CreatedUser, error) {
	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	firebaseID, err := s.nextFirebaseID(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	if isActiveInput(in.Active) {
		active = 1
	}
	role := "customer"
	if in.Role != nil && *in.Role != "" {
		role = *in.Role
	}
	created := `"` + s.now().In(hours.Kolkata).Format(userCreatedLayout) + `"`
	password := string(hash)
	provider, app := "email", "web"
	wallet := 0.0

	user := &models.AppUser{
		ID:            firebaseID,
		FirebaseID:    &firebaseID,
		LegacyID:      &firebaseID,
		FirstName:     &in.FirstName,
		LastName:      &in.LastName,
		Email:         &in.Email,
		Password:      &password,
		CountryCode:   in.CountryCode,
		PhoneNumber:   in.PhoneNumber,
		Provider:      &provider,
		Role:          &role,
		Active:        models.NewFlag(int64(active)),
		IsActive:      models.NewFlag(int64(active)),
		ZoneID:        in.ZoneID,
		AppIdentifier: &app,
		CreatedAt:     &created,
		WalletAmount:  &wallet,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("firebase_id", firebaseID).Str("role", role).Msg("User created")
	return &CreatedUser{ID: firebaseID, FirebaseID: firebaseID, Email: in.Email, IsActive: active}, nil
}

// isActiveInput accepts true, "true" and 1 only.
func isActiveInput(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	case float64:
		return t == 1
	case json.Number:
		return t.String() == "1"
	case int:
		return t == 1
	}
	return false
}

var generatedID = regexp.MustCompile(`^user_(\d+)`)

func (s *UserService) nextFirebaseID(ctx context.Context) (string, error) {
	ids, err := s.users.GeneratedFirebaseIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load firebase ids: %w", err)
	}

	next := 1
	for _, id := range ids {
		m := generatedID.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n+1 > next {
			next = n + 1
		}
	}

	for {
		candidate := "user_" + strconv.Itoa(next)
		exists, err := s.users.FirebaseIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check firebase id: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		next++
	}
}

// UserQuery holds the listing filters as received.
type UserQuery struct {
	Role      string
	Active    string
	ZoneID    string
	Search    string
	DateRange string
	From      string
	To        string
}

func (s *UserService) filter(q UserQuery) (repo.UserFilter, error) {
	f := repo.UserFilter{
		Role:   q.Role,
		ZoneID: q.ZoneID,
		Search: strings.TrimSpace(q.Search),
	}
	if q.Active != "" {
		n, _ := strconv.Atoi(strings.TrimSpace(q.Active))
		f.Active = &n
	}
	created, err := s.createdRange(q.DateRange, q.From, q.To)
	if err != nil {
		return f, err
	}
	f.Created = created
	return f, nil
}

// createdRange resolves the date presets against the current time in
// Kolkata. Without a preset or bounds only today's users match.
func (s *UserService) createdRange(preset, from, to string) (*repo.DateRange, error) {
	now := s.now().In(hours.Kolkata)
	const day = "2006-01-02"

	switch preset {
	case RangeLast24Hours:
		const stamp = "2006-01-02T15:04:05"
		return &repo.DateRange{Len: len(stamp), From: now.Add(-24 * time.Hour).Format(stamp), To: now.Format(stamp)}, nil
	case RangeLastWeek:
		return &repo.DateRange{Len: len(day), From: now.AddDate(0, 0, -7).Format(day), To: now.Format(day)}, nil
	case RangeLastMonth:
		return &repo.DateRange{Len: len(day), From: now.AddDate(0, -1, 0).Format(day), To: now.Format(day)}, nil
	case RangeAllOrders, RangeAllUsers:
		return nil, nil
	}

	if from != "" || to != "" {
		r := &repo.DateRange{Len: len(day)}
		for _, bound := range []struct {
			raw string
			dst *string
		}{{from, &r.From}, {to, &r.To}} {
			if bound.raw == "" {
				continue
			}
			t, ok := models.LegacyTime(&bound.raw)
			if !ok {
				return nil, fmt.Errorf("date %q: %w", bound.raw, ErrInvalidInput)
			}
			*bound.dst = t.Format(day)
		}
		return r, nil
	}

	today := now.Format(day)
	return &repo.DateRange{Len: len(day), From: today, To: today}, nil
}

type UserItem struct {
	ID                string  `json:"id"`
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	PhoneNumber       string  `json:"phoneNumber"`
	ZoneID            string  `json:"zoneId"`
	CreatedAt         string  `json:"createdAt"`
	Active            int     `json:"active"`
	ProfilePictureURL *string `json:"profilePictureURL"`
}

type UserListMeta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

type UserList struct {
	Status bool         `json:"status"`
	Data   []UserItem   `json:"data"`
	Meta   UserListMeta `json:"meta"`
}

func (s *UserService) List(ctx context.Context, q UserQuery, page, limit int) (*UserList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.users.List(ctx, f, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]UserItem, len(rows))
	for i := range rows {
		u := &rows[i]
		created := ""
		if u.CreatedAt != nil && *u.CreatedAt != "" {
			created = formatUserDate(u.CreatedAt, *u.CreatedAt)
		}
		id := models.Str(u.FirebaseID)
		if id == "" {
			id = u.ID
		}
		items[i] = UserItem{
			ID:                id,
			FirstName:         u.FirstName,
			LastName:          u.LastName,
			FullName:          strings.TrimSpace(u.FullName()),
			Email:             models.Str(u.Email),
			PhoneNumber:       models.Str(u.PhoneNumber),
			ZoneID:            ZoneFromShippingAddress(u.ShippingAddress),
			CreatedAt:         created,
			Active:            activeInt(u),
			ProfilePictureURL: u.ProfilePictureURL,
		}
	}

	return &UserList{
		Status: true,
		Data:   items,
		Meta: UserListMeta{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasMore: int64(page*limit) < total,
		},
	}, nil
}

func formatUserDate(raw *string, fallback string) string {
	t, ok := models.LegacyTime(raw)
	if !ok {
		return fallback
	}
	return t.In(hours.Kolkata).Format(userDateLayout)
}

func activeInt(u *models.AppUser) int {
	if u.Active.Bool(false) || u.IsActive.Bool(false) {
		return 1
	}
	return 0
}

// ZoneFromShippingAddress reads the zone of a user's addresses: the default
// address with a zone, else the first address with one.
func ZoneFromShippingAddress(raw *string) string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return ""
	}

	type address struct {
		ZoneID    any `json:"zoneId"`
		IsDefault any `json:"isDefault"`
	}
	zoneOf := func(a address) string {
		if a.ZoneID == nil {
			return ""
		}
		return fmt.Sprint(a.ZoneID)
	}

	var list []address
	if err := json.Unmarshal([]byte(*raw), &list); err == nil {
		for _, a := range list {
			if def := models.CoerceBool(a.IsDefault); def != nil && *def && zoneOf(a) != "" {
				return zoneOf(a)
			}
		}
		for _, a := range list {
			if z := zoneOf(a); z != "" {
				return z
			}
		}
		return ""
	}

	var single address
	if err := json.Unmarshal([]byte(*raw), &single); err == nil {
		return zoneOf(single)
	}
	return ""
}

func (s *UserService) find(ctx context.Context, id string) (*models.AppUser, error) {
	user, err := s.users.FindByAnyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	log.Info().Str("user_id", user.ID).Msg("User deleted")
	return nil
}

func (s *UserService) SetActive(ctx context.Context, id string, active bool) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.SetActive(ctx, user, active); err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return nil
}

var exportHeader = []string{"Name", "Email", "Phone", "Zone", "Active", "Created At"}

// ExportCSV writes every matching user with its zone name.
func (s *UserService) ExportCSV(ctx context.Context, w io.Writer, q UserQuery) error {
	f, err := s.filter(q)
	if err != nil {
		return err
	}
	users, err := s.users.All(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	names := map[string]string{}
	zones, err := s.zones.Zones(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load zone names for export")
	}
	for _, z := range zones {
		names[z.ID] = models.Str(z.Name)
	}

	out := csv.NewWriter(w)
	if err := out.Write(exportHeader); err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		zone := "Not Assigned"
		if id := ZoneFromShippingAddress(u.ShippingAddress); id != "" {
			if name, ok := names[id]; ok {
				zone = name
			}
		}
		status := "Inactive"
		if activeInt(u) == 1 {
			status = "Active"
		}
		row := []string{
			strings.TrimSpace(u.FullName()),
			models.Str(u.Email),
			models.Str(u.PhoneNumber),
			zone,
			status,
			formatUserDate(u.CreatedAt, ""),
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
