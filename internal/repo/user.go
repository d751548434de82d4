package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// DateRange bounds the createdAt text column. Values are compared against
// the first Len characters of the unquoted column; empty bounds are open.
type DateRange struct {
	Len      int
	From, To string
}

// UserFilter narrows the admin user list. Zero values are not applied.
type UserFilter struct {
	Role    string
	Active  *int
	ZoneID  string
	Search  string
	Created *DateRange
}

func (r *UserRepository) filtered(ctx context.Context, f UserFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.AppUser{})
	if f.Role != "" {
		q = q.Where(eq("role", f.Role))
	}
	if f.Active != nil {
		q = q.Where(eq("active", *f.Active))
	}
	if f.ZoneID != "" {
		q = q.Where(like(r.db, "shippingAddress", `%"zoneId":"`+escapeLike(f.ZoneID)+`"%`))
	}
	if f.Search != "" {
		q = q.Where(likeAny(r.db, f.Search, "firstName", "lastName", "email", "phoneNumber"))
	}
	if d := f.Created; d != nil && d.Len > 0 {
		created := clause.Expr{
			SQL:  "SUBSTRING(REPLACE(?, '\"', ''), 1, ?)",
			Vars: []any{col("createdAt"), d.Len},
		}
		if d.From != "" && d.From == d.To {
			q = q.Where(clause.Expr{SQL: "? = ?", Vars: []any{created, d.From}})
		} else {
			if d.From != "" {
				q = q.Where(clause.Expr{SQL: "? >= ?", Vars: []any{created, d.From}})
			}
			if d.To != "" {
				q = q.Where(clause.Expr{SQL: "? <= ?", Vars: []any{created, d.To}})
			}
		}
	}
	return q
}

// List returns one page of users, newest id first, and the filtered total.
func (r *UserRepository) List(ctx context.Context, f UserFilter, offset, limit int) ([]models.AppUser, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.AppUser
	err := r.filtered(ctx, f).
		Order(orderBy("id", true)).
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

// All returns every user matching the filter, newest id first.
func (r *UserRepository) All(ctx context.Context, f UserFilter) ([]models.AppUser, error) {
	var users []models.AppUser
	err := r.filtered(ctx, f).Order(orderBy("id", true)).Find(&users).Error
	return users, err
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AppUser{}).Where(eq("email", email)).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) FirebaseIDExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AppUser{}).Where(eq("firebase_id", id)).Count(&count).Error
	return count > 0, err
}

// GeneratedFirebaseIDs lists the firebase ids of the user_N form.
func (r *UserRepository) GeneratedFirebaseIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.AppUser{}).
		Where(clause.Like{Column: col("firebase_id"), Value: `user\_%`}).
		Pluck("firebase_id", &ids).Error
	return ids, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.AppUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByAnyID looks a user up by firebase id or primary key, nil when absent.
func (r *UserRepository) FindByAnyID(ctx context.Context, id string) (*models.AppUser, error) {
	var users []models.AppUser
	err := r.db.WithContext(ctx).
		Where(clause.Or(eq("firebase_id", id), eq("id", id))).
		Limit(1).
		Find(&users).Error
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

// FindByID returns nil when the user does not exist. A non-empty role must
// match as well.
func (r *UserRepository) FindByID(ctx context.Context, id, role string) (*models.AppUser, error) {
	q := r.db.WithContext(ctx).Where(eq("id", id))
	if role != "" {
		q = q.Where(eq("role", role))
	}
	var users []models.AppUser
	if err := q.Limit(1).Find(&users).Error; err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

// Names maps user ids to their full names.
func (r *UserRepository) Names(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.AppUser
	err := r.db.WithContext(ctx).
		Select("id", "firstName", "lastName").
		Where(in("id", anys(ids)...)).
		Find(&users).Error
	for i := range users {
		out[users[i].ID] = users[i].FullName()
	}
	return out, err
}

func (r *UserRepository) Delete(ctx context.Context, user *models.AppUser) error {
	return r.db.WithContext(ctx).Where(eq("id", user.ID)).Delete(&models.AppUser{}).Error
}

// SetActive writes both activity columns.
func (r *UserRepository) SetActive(ctx context.Context, user *models.AppUser, active bool) error {
	v := 0
	if active {
		v = 1
	}
	return r.db.WithContext(ctx).
		Model(&models.AppUser{}).
		Where(eq("id", user.ID)).
		Updates(map[string]any{"active": v, "isActive": v}).Error
}
