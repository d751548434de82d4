package app

import (
	"gorm.io/gorm"

	"jippymart/internal/cache"
	"jippymart/internal/hours"
	"jippymart/internal/repo"
	"jippymart/internal/services"
	"jippymart/internal/settings"
)

// Services holds everything the HTTP layer needs.
type Services struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	Settings *settings.Service

	SettingRepo *repo.SettingRepository

	Restaurants *services.RestaurantService
	Products    *services.ProductService
	Categories  *services.CategoryService
	Banners     *services.MenuItemService
	Offers      *services.OfferService
	Search      *services.SearchService
	Mart        *services.MartService
	Commission  *services.CommissionService
	Users       *services.UserService
	Ledger      *services.LedgerService
	CacheAdmin  *services.CacheAdminService
}

// NewServices builds the repositories and services over db and the response
// cache. The settings snapshot is created empty; callers Load it.
func NewServices(db *gorm.DB, c *cache.Cache) *Services {
	vendorRepo := repo.NewVendorRepository(db)
	productRepo := repo.NewProductRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	settingRepo := repo.NewSettingRepository(db)
	userRepo := repo.NewUserRepository(db)

	evaluator := hours.NewEvaluator()
	settingsService := settings.NewService(settingRepo)

	return &Services{
		DB:          db,
		Cache:       c,
		Settings:    settingsService,
		SettingRepo: settingRepo,

		Restaurants: services.NewRestaurantService(vendorRepo, repo.NewSubscriptionRepository(db), c, evaluator),
		Products:    services.NewProductService(productRepo, repo.NewPromotionRepository(db), categoryRepo, vendorRepo, c),
		Categories:  services.NewCategoryService(categoryRepo, c),
		Banners:     services.NewMenuItemService(repo.NewMenuItemRepository(db), c),
		Offers:      services.NewOfferService(repo.NewCouponRepository(db)),
		Search:      services.NewSearchService(vendorRepo, productRepo, categoryRepo, evaluator),
		Mart:        services.NewMartService(repo.NewMartRepository(db), vendorRepo),
		Commission:  services.NewCommissionService(repo.NewOrderRepository(db), vendorRepo, settingsService),
		Users:       services.NewUserService(userRepo, settingRepo),
		Ledger:      services.NewLedgerService(repo.NewLedgerRepository(db), vendorRepo, userRepo),
		CacheAdmin:  services.NewCacheAdminService(c, settingsService),
	}
}
