package repo

import (
	"context"

	"gorm.io/gorm"

	"jippymart/pkg/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var basicProductColumns = []string{
	"id", "name", "description", "categoryID", "categoryTitle", "vendorID",
	"vendorTitle", "price", "disPrice", "quantity", "publish", "isAvailable",
	"veg", "nonveg", "takeawayOption", "photo", "photos", "createdAt",
}

func (r *ProductRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where(truthy(r.db, "publish")).
		Where(truthy(r.db, "isAvailable"))
}

// AvailableByVendor lists the published, available products of a vendor.
func (r *ProductRepository) AvailableByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	var products []models.Product
	err := r.published(ctx).
		Select(basicProductColumns).
		Where(eq("vendorID", vendorID)).
		Order(orderBy("name", false)).
		Find(&products).Error
	return products, err
}

// PageAvailable returns one page of published, available products.
func (r *ProductRepository) PageAvailable(ctx context.Context, page, perPage int) ([]models.Product, int64, error) {
	var total int64
	if err := r.published(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.published(ctx).
		Select(basicProductColumns).
		Order(orderBy("name", false)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error
	return products, total, err
}

// FeedFilter narrows a vendor's product feed. Nil flags are not applied.
type FeedFilter struct {
	Search   *string
	IsVeg    *bool
	IsNonVeg *bool
}

// Feed lists the available products of a vendor for the customer menu.
// Products without a publish value are shown.
func (r *ProductRepository) Feed(ctx context.Context, vendorID string, f FeedFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).
		Where(eq("vendorID", vendorID)).
		Where(truthy(r.db, "isAvailable")).
		Where(truthyOrNull(r.db, "publish"))

	if f.Search != nil {
		q = q.Where(likeAny(r.db, *f.Search, "name", "description"))
	}

	isTrue := func(b *bool) bool { return b != nil && *b }
	switch {
	case isTrue(f.IsVeg) && !isTrue(f.IsNonVeg):
		q = q.Where(truthy(r.db, "veg"))
	case isTrue(f.IsNonVeg) && !isTrue(f.IsVeg):
		q = q.Where(truthy(r.db, "nonveg"))
	}
	if f.IsVeg != nil && !*f.IsVeg {
		q = q.Where(falsy(r.db, "veg"))
	}
	if f.IsNonVeg != nil && !*f.IsNonVeg {
		q = q.Where(falsy(r.db, "nonveg"))
	}

	var products []models.Product
	err := q.Order(orderBy("name", false)).Find(&products).Error
	return products, err
}

// FindByID returns nil when the product does not exist.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Where(eq("id", id)).Limit(1).Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// SearchZone matches published products of published vendors in a zone.
func (r *ProductRepository) SearchZone(ctx context.Context, term, zoneID string, offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "publish")).
		Where(likeAny(r.db, term, "name", "description", "categoryID")).
		Where("? IN (?)", col("vendorID"), zoneVendorIDs(r.db.WithContext(ctx), zoneID)).
		Order(orderBy("name", false)).
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, err
}
