package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"jippymart/pkg/models"
)

type LedgerStore interface {
	RestaurantPayouts(ctx context.Context, vendorID string) ([]models.Payout, error)
	DriverPayouts(ctx context.Context, driverID string) ([]models.DriverPayout, error)
	WalletTransactions(ctx context.Context, userID string) ([]models.WalletTransaction, error)
}

type VendorDirectory interface {
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
	Titles(ctx context.Context, ids []string) (map[string]string, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id, role string) (*models.AppUser, error)
	Names(ctx context.Context, ids []string) (map[string]string, error)
}

// TableQuery is a server side table request: paging, a global search term
// and one sort column by index.
type TableQuery struct {
	Draw        int
	Start       int
	Length      int
	Search      string
	OrderColumn int
	OrderDir    string
	// Owner narrows the listing to one vendor, driver or user.
	Owner string
}

type TablePage[T any] struct {
	Draw            int    `json:"draw"`
	RecordsTotal    int    `json:"recordsTotal"`
	RecordsFiltered int    `json:"recordsFiltered"`
	Data            []T    `json:"data"`
	Error           string `json:"error,omitempty"`
}

// EmptyTable is the body sent when a listing fails.
func EmptyTable(draw int, err string) TablePage[struct{}] {
	return TablePage[struct{}]{Draw: draw, Data: []struct{}{}, Error: err}
}

const (
	ledgerDateLayout = "Mon Jan 02 2006"
	ledgerTimeLayout = "3:04:05 PM"
)

type RestaurantPayoutRow struct {
	models.Payout
	RestaurantName string `json:"restaurantName"`
	FormattedDate  string `json:"formattedDate"`
}

type DriverPayoutRow struct {
	models.DriverPayout
	DriverName    string `json:"driverName"`
	FormattedDate string `json:"formattedDate"`
}

type WalletRow struct {
	models.WalletTransaction
	UserName      string `json:"userName"`
	UserType      string `json:"userType"`
	FormattedDate string `json:"formattedDate"`
}

// sortKey is the comparable value of a row for one column.
type sortKey struct {
	numeric bool
	num     float64
	text    string
}

type tableRow interface {
	key(field string) sortKey
	haystack() []string
}

func amountKey(v *float64) sortKey { return sortKey{numeric: true, num: models.Float(v)} }

func dateKey(raw *string) sortKey {
	t, ok := models.LegacyTime(raw)
	if !ok {
		return sortKey{numeric: true}
	}
	return sortKey{numeric: true, num: float64(t.Unix())}
}

func textKey(s string) sortKey { return sortKey{text: strings.ToLower(s)} }

func amountText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (r RestaurantPayoutRow) key(field string) sortKey {
	switch field {
	case "amount":
		return amountKey(r.Amount)
	case "paidDate":
		return dateKey(r.PaidDate)
	case "vendorID":
		return textKey(models.Str(r.VendorID))
	case "note":
		return textKey(models.Str(r.Note))
	case "adminNote":
		return textKey(models.Str(r.AdminNote))
	}
	return sortKey{}
}

func (r RestaurantPayoutRow) haystack() []string {
	return []string{r.RestaurantName, amountText(r.Amount), r.FormattedDate, models.Str(r.Note), models.Str(r.AdminNote)}
}

func (r DriverPayoutRow) key(field string) sortKey {
	switch field {
	case "amount":
		return amountKey(r.Amount)
	case "paidDate":
		return dateKey(r.PaidDate)
	case "driverName":
		return textKey(r.DriverName)
	case "note":
		return textKey(models.Str(r.Note))
	case "adminNote":
		return textKey(models.Str(r.AdminNote))
	}
	return sortKey{}
}

func (r DriverPayoutRow) haystack() []string {
	return []string{r.DriverName, amountText(r.Amount), r.FormattedDate, models.Str(r.Note), models.Str(r.AdminNote)}
}

func (r WalletRow) key(field string) sortKey {
	switch field {
	case "amount":
		return amountKey(r.Amount)
	case "date":
		return dateKey(r.Date)
	case "userName":
		return textKey(r.UserName)
	case "note":
		return textKey(models.Str(r.Note))
	}
	return sortKey{}
}

func (r WalletRow) haystack() []string {
	return []string{r.UserName, amountText(r.Amount), r.FormattedDate, models.Str(r.Note)}
}

func keyLess(a, b sortKey) bool {
	if a.numeric || b.numeric {
		return a.num < b.num
	}
	return a.text < b.text
}

// tablePage searches, sorts and slices rows. The sort column is picked from
// columns by index; the first column is not sortable and keeps store order,
// an out of range index sorts by fallback.
func tablePage[T tableRow](rows []T, q TableQuery, columns []string, fallback string) TablePage[T] {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		if search == "" || matches(row.haystack(), search) {
			filtered = append(filtered, row)
		}
	}

	field := fallback
	if q.OrderColumn >= 0 && q.OrderColumn < len(columns) {
		field = columns[q.OrderColumn]
	}
	if field != "" {
		asc := strings.EqualFold(q.OrderDir, "asc")
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i].key(field), filtered[j].key(field)
			if asc {
				return keyLess(a, b)
			}
			return keyLess(b, a)
		})
	}

	total := len(filtered)
	start := q.Start
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if q.Length >= 0 && q.Length < total-start {
		end = start + q.Length
	}

	return TablePage[T]{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: total,
		Data:            filtered[start:end],
	}
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// ledgerDate formats a stored timestamp for display, the raw value when it
// cannot be parsed.
func ledgerDate(raw *string) string {
	if raw == nil || *raw == "" {
		return ""
	}
	t, ok := models.LegacyTime(raw)
	if !ok {
		return *raw
	}
	return t.Format(ledgerDateLayout) + " " + t.Format(ledgerTimeLayout)
}

func nameOr(names map[string]string, id *string) string {
	if name, ok := names[models.Str(id)]; ok {
		return name
	}
	return "Unknown"
}

func idsOf[T any](rows []T, id func(T) *string) []string {
	return nonEmpty(mapSlice(rows, func(r T) string { return models.Str(id(r)) })...)
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

type LedgerService struct {
	ledger  LedgerStore
	vendors VendorDirectory
	users   UserDirectory
}

func NewLedgerService(ledger LedgerStore, vendors VendorDirectory, users UserDirectory) *LedgerService {
	return &LedgerService{ledger: ledger, vendors: vendors, users: users}
}

func (s *LedgerService) RestaurantPayouts(ctx context.Context, q TableQuery) (TablePage[RestaurantPayoutRow], error) {
	payouts, err := s.ledger.RestaurantPayouts(ctx, q.Owner)
	if err != nil {
		return TablePage[RestaurantPayoutRow]{}, fmt.Errorf("failed to load payouts: %w", err)
	}
	titles, err := s.vendors.Titles(ctx, idsOf(payouts, func(p models.Payout) *string { return p.VendorID }))
	if err != nil {
		return TablePage[RestaurantPayoutRow]{}, fmt.Errorf("failed to load vendor titles: %w", err)
	}

	rows := mapSlice(payouts, func(p models.Payout) RestaurantPayoutRow {
		return RestaurantPayoutRow{Payout: p, RestaurantName: nameOr(titles, p.VendorID), FormattedDate: ledgerDate(p.PaidDate)}
	})
	columns := []string{"", "vendorID", "amount", "paidDate", "note", "adminNote"}
	if q.Owner != "" {
		columns = []string{"", "amount", "paidDate", "note", "adminNote"}
	}
	return tablePage(rows, q, columns, "paidDate"), nil
}

func (s *LedgerService) DriverPayouts(ctx context.Context, q TableQuery) (TablePage[DriverPayoutRow], error) {
	payouts, err := s.ledger.DriverPayouts(ctx, q.Owner)
	if err != nil {
		return TablePage[DriverPayoutRow]{}, fmt.Errorf("failed to load driver payouts: %w", err)
	}
	names, err := s.users.Names(ctx, idsOf(payouts, func(p models.DriverPayout) *string { return p.DriverID }))
	if err != nil {
		return TablePage[DriverPayoutRow]{}, fmt.Errorf("failed to load driver names: %w", err)
	}

	rows := mapSlice(payouts, func(p models.DriverPayout) DriverPayoutRow {
		return DriverPayoutRow{DriverPayout: p, DriverName: nameOr(names, p.DriverID), FormattedDate: ledgerDate(p.PaidDate)}
	})
	columns := []string{"", "driverName", "amount", "paidDate", "note", "adminNote"}
	if q.Owner != "" {
		columns = []string{"", "amount", "paidDate", "note", "adminNote"}
	}
	return tablePage(rows, q, columns, "paidDate"), nil
}

func (s *LedgerService) WalletTransactions(ctx context.Context, q TableQuery) (TablePage[WalletRow], error) {
	txs, err := s.ledger.WalletTransactions(ctx, q.Owner)
	if err != nil {
		return TablePage[WalletRow]{}, fmt.Errorf("failed to load wallet transactions: %w", err)
	}
	names, err := s.users.Names(ctx, idsOf(txs, func(t models.WalletTransaction) *string { return t.UserID }))
	if err != nil {
		return TablePage[WalletRow]{}, fmt.Errorf("failed to load user names: %w", err)
	}

	rows := mapSlice(txs, func(t models.WalletTransaction) WalletRow {
		return WalletRow{
			WalletTransaction: t,
			UserName:          nameOr(names, t.UserID),
			UserType:          models.StrOr(t.TransactionUser, "user"),
			FormattedDate:     ledgerDate(t.Date),
		}
	})
	columns := []string{"", "userName", "amount", "date", "note"}
	if q.Owner != "" {
		columns = []string{"", "amount", "date", "note"}
	}
	return tablePage(rows, q, columns, "date"), nil
}

type VendorSummary struct {
	ID           string  `json:"id"`
	Title        *string `json:"title"`
	Author       *string `json:"author"`
	DineInActive any     `json:"dine_in_active"`
}

func (s *LedgerService) Vendor(ctx context.Context, id string) (*VendorSummary, error) {
	v, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", id, err)
	}
	if v == nil {
		return nil, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}
	dineIn := v.DineInActive.Raw()
	if dineIn == nil {
		dineIn = false
	}
	return &VendorSummary{ID: v.ID, Title: v.Title, Author: v.Author, DineInActive: dineIn}, nil
}

type UserSummary struct {
	ID        string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	FullName  string  `json:"fullName"`
	Role      *string `json:"role,omitempty"`
}

// Driver summarizes a user with the driver role.
func (s *LedgerService) Driver(ctx context.Context, id string) (*UserSummary, error) {
	summary, err := s.user(ctx, id, "driver")
	if summary != nil {
		summary.Role = nil
	}
	return summary, err
}

func (s *LedgerService) User(ctx context.Context, id string) (*UserSummary, error) {
	return s.user(ctx, id, "")
}

func (s *LedgerService) user(ctx context.Context, id, role string) (*UserSummary, error) {
	u, err := s.users.FindByID(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, FullName: u.FullName(), Role: u.Role}, nil
}
