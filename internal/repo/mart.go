package repo

import (
	"context"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type MartRepository struct {
	db *gorm.DB

	keywordsOnce sync.Once
	hasKeywords  bool
}

func NewMartRepository(db *gorm.DB) *MartRepository {
	return &MartRepository{db: db}
}

// searchColumns are the text columns matched by item search. Some
// deployments add a keywords column to mart_items.
func (r *MartRepository) searchColumns() []string {
	r.keywordsOnce.Do(func() {
		r.hasKeywords = r.db.Migrator().HasColumn("mart_items", "keywords")
	})
	if r.hasKeywords {
		return []string{"name", "description", "keywords"}
	}
	return []string{"name", "description"}
}

// SearchCategories pages mart categories matching term by title or
// description, ordered by category_order.
func (r *MartRepository) SearchCategories(ctx context.Context, term string, offset, limit int) ([]models.MartCategory, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.MartCategory{})
	if term != "" {
		q = q.Where(likeAny(r.db, term, "title", "description"))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.MartCategory
	err := q.Order(orderBy("category_order", false)).Offset(offset).Limit(limit).Find(&categories).Error
	return categories, total, err
}

// ItemFilter narrows a mart item search. Nil fields are not applied.
type ItemFilter struct {
	Search      *string
	Category    *string
	Subcategory *string
	Vendor      *string
	MinPrice    *float64
	MaxPrice    *float64
	Veg         *bool
	IsAvailable *bool
	BestSeller  *bool
	Feature     *bool
}

func (r *MartRepository) flag(q *gorm.DB, column string, v *bool) *gorm.DB {
	if v == nil {
		return q
	}
	if *v {
		return q.Where(truthy(r.db, column))
	}
	return q.Where(falsy(r.db, column))
}

// SearchItems pages published mart items. With a search term the results
// are ranked by how closely the name matches.
func (r *MartRepository) SearchItems(ctx context.Context, f ItemFilter, offset, limit int) ([]models.MartItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.MartItem{}).Where(truthy(r.db, "publish"))

	var term string
	var words []string
	if f.Search != nil {
		term = strings.TrimSpace(*f.Search)
		words = strings.Fields(term)
	}

	if term != "" {
		columns := r.searchColumns()
		conds := []clause.Expression{likeAny(r.db, term, columns...)}
		for _, w := range words {
			if len(w) >= 2 {
				conds = append(conds, likeAny(r.db, w, columns...))
			}
		}
		q = q.Where(clause.Or(conds...))
	}
	if f.Category != nil {
		q = q.Where(likeAny(r.db, *f.Category, "categoryTitle"))
	}
	if f.Subcategory != nil {
		q = q.Where(likeAny(r.db, *f.Subcategory, "subcategoryTitle"))
	}
	if f.Vendor != nil {
		q = q.Where(likeAny(r.db, *f.Vendor, "vendorTitle"))
	}
	if f.MinPrice != nil {
		q = q.Where(clause.Gte{Column: col("price"), Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q = q.Where(clause.Lte{Column: col("price"), Value: *f.MaxPrice})
	}
	q = r.flag(q, "veg", f.Veg)
	q = r.flag(q, "isAvailable", f.IsAvailable)
	q = r.flag(q, "isBestSeller", f.BestSeller)
	q = r.flag(q, "isFeature", f.Feature)
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if term != "" {
		q = q.Order(relevance(term, words))
	}
	q = q.Order(orderBy("isBestSeller", true)).
		Order(orderBy("isFeature", true)).
		Order(orderBy("isAvailable", true)).
		Order(orderBy("name", false))

	var items []models.MartItem
	err := q.Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

// relevance scores exact name matches highest, then prefix, substring,
// all-words, single-word and description matches.
func relevance(term string, words []string) clause.OrderBy {
	name, desc := col("name"), col("description")
	pattern := func(s string) string { return "%" + escapeLike(s) + "%" }

	var sql strings.Builder
	var vars []any
	when := func(cond string, score string, v ...any) {
		sql.WriteString(" WHEN " + cond + " THEN " + score)
		vars = append(vars, v...)
	}

	sql.WriteString("CASE")
	when("? = ?", "10", name, term)
	when("? LIKE ?", "9", name, escapeLike(term)+"%")
	when("? LIKE ?", "8", name, pattern(term))
	if len(words) > 1 {
		conds := make([]string, len(words))
		var v []any
		for i, w := range words {
			conds[i] = "? LIKE ?"
			v = append(v, name, pattern(w))
		}
		when(strings.Join(conds, " AND "), "7", v...)
	}
	for _, w := range words {
		if len(w) >= 2 {
			when("? LIKE ?", "5", name, pattern(w))
		}
	}
	when("? LIKE ?", "3", desc, pattern(term))
	sql.WriteString(" ELSE 1 END DESC")

	return clause.OrderBy{Expression: clause.Expr{SQL: sql.String(), Vars: vars, WithoutParentheses: true}}
}

// FeaturedTypes maps the featured list names to their flag columns.
var FeaturedTypes = map[string]string{
	"best_seller": "isBestSeller",
	"trending":    "isTrending",
	"featured":    "isFeature",
	"new":         "isNew",
	"spotlight":   "isSpotlight",
}

// Featured lists available items carrying the flag of the given type.
func (r *MartRepository) Featured(ctx context.Context, kind string, limit int) ([]models.MartItem, error) {
	q := r.db.WithContext(ctx).Where(truthy(r.db, "isAvailable"))
	if column, ok := FeaturedTypes[kind]; ok {
		q = q.Where(truthy(r.db, column))
	}
	var items []models.MartItem
	err := q.Limit(limit).Find(&items).Error
	return items, err
}

// Ping checks the database connection.
func (r *MartRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
