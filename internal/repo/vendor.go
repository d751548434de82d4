package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/internal/geo"
	"jippymart/pkg/models"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// NearbyFilter narrows the restaurant candidates of a zone.
type NearbyFilter struct {
	ZoneID string
	// Box, when set, limits rows to the bounding box of the search radius.
	Box *geo.Box
	// Dining keeps only vendors with dine-in enabled.
	Dining bool
}

// restaurantsOnly excludes marts and keeps untyped vendors.
func restaurantsOnly() clause.Expression {
	return clause.Or(isNull("vType"), in("vType", "restaurant", "food"))
}

// Nearby returns published restaurants of a zone that have coordinates.
func (r *VendorRepository) Nearby(ctx context.Context, f NearbyFilter) ([]models.Vendor, error) {
	q := r.db.WithContext(ctx).
		Where(eq("zoneId", f.ZoneID)).
		Where(truthyOrNull(r.db, "publish")).
		Where(clause.Expr{SQL: "? IS NOT NULL AND ? IS NOT NULL", Vars: []any{col("latitude"), col("longitude")}}).
		Where(restaurantsOnly())

	if f.Dining {
		q = q.Where(truthy(r.db, "enabledDiveInFuture"))
	}
	if f.Box != nil {
		q = q.Where(clause.Expr{
			SQL:  "? BETWEEN ? AND ? AND ? BETWEEN ? AND ?",
			Vars: []any{col("latitude"), f.Box.MinLat, f.Box.MaxLat, col("longitude"), f.Box.MinLon, f.Box.MaxLon},
		})
	}

	var vendors []models.Vendor
	err := q.Find(&vendors).Error
	return vendors, err
}

// FindByID returns nil without an error for missing rows.
func (r *VendorRepository) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Where(eq("id", id)).Limit(1).Find(&vendors).Error; err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, nil
	}
	return &vendors[0], nil
}

func (r *VendorRepository) ByZone(ctx context.Context, zoneID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(eq("zoneId", zoneID)).
		Where(truthyOrNull(r.db, "publish")).
		Order(orderBy("title", false)).
		Find(&vendors).Error
	return vendors, err
}

// Search matches restaurants by title, description or location.
func (r *VendorRepository) Search(ctx context.Context, term string, zoneID string) ([]models.Vendor, error) {
	q := r.db.WithContext(ctx).
		Where(truthyOrNull(r.db, "publish")).
		Where(likeAny(r.db, term, "title", "description", "location"))
	if zoneID != "" {
		q = q.Where(eq("zoneId", zoneID))
	}

	var vendors []models.Vendor
	err := q.Order(orderBy("title", false)).Find(&vendors).Error
	return vendors, err
}

var unifiedSearchColumns = []string{
	"title", "description", "location", "vType", "cuisineTitle",
	"categoryTitle", "restaurant_slug", "zone_slug",
}

// SearchZone matches every searchable vendor column within a zone.
func (r *VendorRepository) SearchZone(ctx context.Context, term, zoneID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(truthyOrNull(r.db, "publish")).
		Where(eq("zoneId", zoneID)).
		Where(likeAny(r.db, term, unifiedSearchColumns...)).
		Order(orderBy("title", false)).
		Find(&vendors).Error
	return vendors, err
}

// InCategory returns open, published vendors inside box whose categoryID
// list holds categoryID.
func (r *VendorRepository) InCategory(ctx context.Context, categoryID string, box geo.Box) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "publish")).
		Where(truthy(r.db, "isOpen")).
		Where(jsonArrayContains(r.db, "categoryID", categoryID)).
		Where(clause.Expr{
			SQL:  "? BETWEEN ? AND ? AND ? BETWEEN ? AND ?",
			Vars: []any{col("latitude"), box.MinLat, box.MaxLat, col("longitude"), box.MinLon, box.MaxLon},
		}).
		Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) martType() clause.Expression {
	return like(r.db, "vType", "%mart%")
}

// FindMart returns the first mart vendor whose id is one of ids, nil when
// none matches.
func (r *VendorRepository) FindMart(ctx context.Context, ids []string) (*models.Vendor, error) {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(r.martType()).
		Where(in("id", values...)).
		Limit(1).
		Find(&vendors).Error
	if err != nil || len(vendors) == 0 {
		return nil, err
	}
	return &vendors[0], nil
}

// DefaultMart returns the most recently created open mart, nil when none.
func (r *VendorRepository) DefaultMart(ctx context.Context) (*models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(r.martType()).
		Where(truthy(r.db, "isOpen")).
		Where(truthy(r.db, "publish")).
		Order(orderBy("createdAt", true)).
		Limit(1).
		Find(&vendors).Error
	if err != nil || len(vendors) == 0 {
		return nil, err
	}
	return &vendors[0], nil
}

// MartsInZone lists the marts of a zone, open ones first.
func (r *VendorRepository) MartsInZone(ctx context.Context, zoneID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where(clause.Expr{SQL: "LOWER(?) = ?", Vars: []any{col("vType"), "mart"}}).
		Where(eq("zoneId", zoneID)).
		Order(orderBy("isOpen", true)).
		Order(orderBy("title", false)).
		Find(&vendors).Error
	return vendors, err
}

// Titles maps vendor ids to titles.
func (r *VendorRepository) Titles(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			values = append(values, id)
		}
	}
	if len(values) == 0 {
		return out, nil
	}

	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Select("id", "title").
		Where(in("id", values...)).
		Find(&vendors).Error
	for _, v := range vendors {
		out[v.ID] = v.VendorTitle()
	}
	return out, err
}

// zoneVendorIDs is a subquery of published vendor ids in a zone.
func zoneVendorIDs(db *gorm.DB, zoneID string) *gorm.DB {
	return db.Model(&models.Vendor{}).
		Select("id").
		Where(eq("zoneId", zoneID)).
		Where(truthyOrNull(db, "publish"))
}
