package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"jippymart/internal/commission"
	"jippymart/pkg/models"
)

type OrderStore interface {
	FindByID(ctx context.Context, id string) (*commission.Order, error)
	EachCompleted(ctx context.Context, limit int, fn func(commission.Order) error) error
	UpdateCommission(ctx context.Context, id string, amount float64, kind string) error
}

type vendorFinder interface {
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
}

// GlobalCommission exposes the AdminCommission settings document.
type GlobalCommission interface {
	AdminCommission() *commission.Settings
}

// OrderCommission describes the commission of one order.
type OrderCommission struct {
	OrderID        string  `json:"order_id"`
	VendorID       string  `json:"vendor_id"`
	OrderAmount    float64 `json:"order_amount"`
	Stored         float64 `json:"stored_commission"`
	Commission     float64 `json:"commission"`
	Calculated     float64 `json:"calculated_commission"`
	CommissionType string  `json:"commission_type"`
}

type CommissionService struct {
	orders  OrderStore
	vendors vendorFinder
	global  GlobalCommission
}

func NewCommissionService(orders OrderStore, vendors vendorFinder, global GlobalCommission) *CommissionService {
	return &CommissionService{orders: orders, vendors: vendors, global: global}
}

// settingsResolver memoizes vendor commission settings over one operation.
type settingsResolver struct {
	s      *CommissionService
	global *commission.Settings
	seen   map[string]*commission.Settings
}

func (s *CommissionService) resolver() *settingsResolver {
	return &settingsResolver{s: s, global: s.global.AdminCommission(), seen: map[string]*commission.Settings{}}
}

func (r *settingsResolver) forVendor(ctx context.Context, vendorID string) *commission.Settings {
	if vendorID == "" || vendorID == "null" {
		return r.global
	}
	if cached, ok := r.seen[vendorID]; ok {
		return cached
	}

	var vendorSettings *commission.Settings
	vendor, err := r.s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		log.Warn().Err(err).Str("vendor_id", vendorID).Msg("Failed to load vendor commission settings")
	} else if vendor != nil {
		if parsed, ok := commission.ParseVendorSettings(string(vendor.AdminCommission)); ok {
			vendorSettings = parsed
		}
	}

	picked := commission.Pick(vendorSettings, r.global)
	r.seen[vendorID] = picked
	return picked
}

// Total sums the commission of every completed order, rounded to cents.
// Errors are logged and reported as zero.
func (s *CommissionService) Total(ctx context.Context) float64 {
	r := s.resolver()
	var total float64
	err := s.orders.EachCompleted(ctx, 0, func(o commission.Order) error {
		total += commission.Resolve(o, r.forVendor(ctx, o.VendorID))
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Error calculating admin commission")
		return 0
	}
	return commission.Round2(total)
}

func (s *CommissionService) ForOrder(ctx context.Context, id string) (*OrderCommission, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	settings := s.resolver().forVendor(ctx, order.VendorID)
	return &OrderCommission{
		OrderID:        order.ID,
		VendorID:       order.VendorID,
		OrderAmount:    order.Amount,
		Stored:         order.Stored,
		Commission:     commission.Resolve(*order, settings),
		Calculated:     commission.Calculate(order.Amount, settings),
		CommissionType: settings.CommissionType(),
	}, nil
}

// Recalculate recomputes and stores the commission of one order.
func (s *CommissionService) Recalculate(ctx context.Context, id string) (float64, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	if order == nil {
		return 0, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return s.store(ctx, s.resolver(), *order)
}

func (s *CommissionService) store(ctx context.Context, r *settingsResolver, o commission.Order) (float64, error) {
	settings := r.forVendor(ctx, o.VendorID)
	amount := commission.Calculate(o.Amount, settings)
	if err := s.orders.UpdateCommission(ctx, o.ID, amount, settings.CommissionType()); err != nil {
		return 0, fmt.Errorf("failed to update commission of order %s: %w", o.ID, err)
	}
	return amount, nil
}

// RecalculateAll recomputes up to limit completed orders (all when limit is
// not positive) and returns how many were updated.
func (s *CommissionService) RecalculateAll(ctx context.Context, limit int) (int, error) {
	var orders []commission.Order
	err := s.orders.EachCompleted(ctx, limit, func(o commission.Order) error {
		orders = append(orders, o)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load completed orders: %w", err)
	}

	r := s.resolver()
	updated := 0
	for _, o := range orders {
		if _, err := s.store(ctx, r, o); err != nil {
			return updated, err
		}
		updated++
	}
	log.Info().Int("updated", updated).Int("limit", limit).Msg("Order commissions recalculated")
	return updated, nil
}
