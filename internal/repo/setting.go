package repo

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jippymart/pkg/models"
)

// SettingRepository reads the settings documents and the currency table.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) ListSettings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

// UpsertSetting creates the document or replaces its fields.
func (r *SettingRepository) UpsertSetting(ctx context.Context, name string, fields []byte) error {
	setting := models.Setting{DocumentName: name, Fields: datatypes.JSON(fields)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{col("document_name")},
			DoUpdates: clause.AssignmentColumns([]string{"fields"}),
		}).
		Create(&setting).Error
}

// ActiveCurrency returns nil when no currency is flagged active.
func (r *SettingRepository) ActiveCurrency(ctx context.Context) (*models.Currency, error) {
	var currencies []models.Currency
	err := r.db.WithContext(ctx).
		Where(truthy(r.db, "isActive")).
		Limit(1).
		Find(&currencies).Error
	if err != nil || len(currencies) == 0 {
		return nil, err
	}
	return &currencies[0], nil
}

func (r *SettingRepository) VendorAttributes(ctx context.Context) ([]models.VendorAttribute, error) {
	var attributes []models.VendorAttribute
	err := r.db.WithContext(ctx).Find(&attributes).Error
	return attributes, err
}

func (r *SettingRepository) Zones(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	err := r.db.WithContext(ctx).Find(&zones).Error
	return zones, err
}
