package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jippymart/internal/config"
	"jippymart/pkg/models"
)

// NewDatabase opens the configured MySQL or PostgreSQL database and applies
// the pool limits.
func NewDatabase(cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN())
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	level := logger.Error
	if debug {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
		// The legacy schema has no foreign keys and must not gain any.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates the tables of every model. Production databases are
// managed elsewhere; this is for empty development databases.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running GORM AutoMigrate...")
	start := time.Now()

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	createCustomIndexes(db)

	log.Info().Dur("took", time.Since(start)).Msg("GORM AutoMigrate completed successfully")
	return nil
}

type customIndex struct {
	table   string
	name    string
	columns []string
}

// Composite indexes for the hot read paths.
var customIndexes = []customIndex{
	{"vendors", "idx_vendors_zone_coordinates", []string{"zoneId", "latitude", "longitude"}},
	{"vendor_products", "idx_vendor_products_vendor_available", []string{"vendorID", "isAvailable", "publish"}},
	{"promotions", "idx_promotions_product_available", []string{"product_id", "isAvailable"}},
	{"menu_items", "idx_menu_items_position_publish", []string{"position", "is_publish"}},
	{"payouts", "idx_payouts_status_paid", []string{"paymentStatus", "paidDate"}},
	{"users", "idx_users_role_active", []string{"role", "active"}},
}

// createCustomIndexes adds indexes the model tags cannot express. Failures
// are logged and skipped.
func createCustomIndexes(db *gorm.DB) {
	quote := func(name string) string {
		var b strings.Builder
		db.Dialector.QuoteTo(&b, name)
		return b.String()
	}

	for _, idx := range customIndexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}
		cols := make([]string, len(idx.columns))
		for i, col := range idx.columns {
			cols[i] = quote(col)
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", quote(idx.name), quote(idx.table), strings.Join(cols, ", "))
		if err := db.Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Str("index", idx.name).Msg("Failed to create index")
		}
	}
}
