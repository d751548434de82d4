package handlers

import (
	"github.com/labstack/echo/v4"

	"jippymart/internal/app"
	"jippymart/internal/services"
	"jippymart/internal/settings"
)

// SetupRoutes registers every API route on api.
func SetupRoutes(api *echo.Group, s *app.Services, errs Errors) {
	restaurantHandler := NewRestaurantHandler(s.Restaurants, errs)
	restaurants := api.Group("/restaurants")
	restaurants.GET("/nearest", restaurantHandler.Nearest)
	restaurants.GET("/search", restaurantHandler.Search)
	restaurants.GET("/by-zone/:zone_id", restaurantHandler.ByZone)
	restaurants.GET("/:id", restaurantHandler.Show)

	productHandler := NewProductHandler(s.Products, errs)
	restaurants.GET("/:vendorId/products/feed", productHandler.Feed)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Show)
	api.GET("/vendor-products/:id", productHandler.Raw)

	vendorHandler := NewVendorHandler(s.Restaurants, s.Offers, s.Mart, errs)
	vendors := api.Group("/vendors")
	vendors.GET("/:vendorId/products", productHandler.ByVendor)
	vendors.GET("/:vendorId/offers", vendorHandler.Offers)
	vendors.GET("/category/:categoryId/nearest", vendorHandler.NearestInCategory)

	mart := api.Group("/mart/vendors")
	mart.GET("/default", vendorHandler.DefaultMart)
	mart.GET("/zone/:zoneId", vendorHandler.MartsInZone)
	mart.GET("/:vendorId", vendorHandler.MartVendor)

	categoryHandler := NewCategoryHandler(s.Categories, errs)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/home", categoryHandler.Home)
	api.GET("/vendor-categories/:id", categoryHandler.Show)

	bannerHandler := NewBannerHandler(s.Banners, errs)
	banners := api.Group("/menu-items/banners")
	banners.GET("", bannerHandler.List)
	for _, position := range services.BannerPositions {
		banners.GET("/"+position, bannerHandler.ByPosition(position))
	}
	banners.GET("/:id", bannerHandler.Show)

	searchHandler := NewSearchHandler(s.Search, s.Mart, errs)
	search := api.Group("/search")
	search.GET("", searchHandler.Unified)
	search.GET("/categories", searchHandler.MartCategories)
	search.GET("/items", searchHandler.MartItems)
	search.GET("/items/featured", searchHandler.Featured)
	search.GET("/health", searchHandler.Health)

	settingsHandler := NewSettingsHandler(s.Settings, s.Cache, s.SettingRepo, errs)
	cfg := api.Group("/settings")
	cfg.GET("", settingsHandler.All)
	cfg.GET("/global", settingsHandler.Document((*settings.Service).Global))
	cfg.GET("/distance", settingsHandler.Document((*settings.Service).Distance))
	cfg.GET("/languages", settingsHandler.Document((*settings.Service).Languages))
	cfg.GET("/version", settingsHandler.Document((*settings.Service).Version))
	cfg.GET("/map", settingsHandler.Document(func(s *settings.Service) any { return s.Map() }))
	cfg.GET("/notification", settingsHandler.Document((*settings.Service).Notification))
	cfg.GET("/restaurant", settingsHandler.Document((*settings.Service).Restaurant))
	cfg.GET("/admin-commission", settingsHandler.Document((*settings.Service).AdminCommissionDocument))
	cfg.GET("/driver", settingsHandler.Document((*settings.Service).Driver))
	cfg.GET("/currency", settingsHandler.Currency)
	cfg.GET("/mobile", settingsHandler.Mobile)
	cfg.GET("/delivery-charge", settingsHandler.DeliveryCharge)
	cfg.GET("/documents/:name", settingsHandler.Show)
	cfg.PUT("/documents/:name", settingsHandler.Update)
	cfg.GET("/documents/:name/fields/:field", settingsHandler.Field)
	cfg.PUT("/documents/:name/fields/:field", settingsHandler.SetField)
	api.GET("/vendor-attributes", settingsHandler.VendorAttributes)

	cacheHandler := NewCacheHandler(s.CacheAdmin)
	flush := api.Group("/cache/flush")
	flush.POST("/products", cacheHandler.FlushProducts)
	flush.POST("/restaurants", cacheHandler.FlushRestaurants)
	flush.POST("/all", cacheHandler.FlushAll)
	flush.POST("/settings", cacheHandler.FlushSettings)
	flush.POST("/categories", cacheHandler.FlushCategories)
	flush.POST("/menu-items", cacheHandler.FlushMenuItems)
	api.GET("/cache/stats", cacheHandler.Stats)

	commissionHandler := NewCommissionHandler(s.Commission, errs)
	commission := api.Group("/commission")
	commission.GET("/total", commissionHandler.Total)
	commission.GET("/orders/:id", commissionHandler.Order)
	commission.POST("/orders/:id/recalculate", commissionHandler.Recalculate)
	commission.POST("/recalculate", commissionHandler.RecalculateAll)

	admin := api.Group("/admin")

	userHandler := NewUserHandler(s.Users, errs)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/export", userHandler.Export)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PATCH("/users/:id/active", userHandler.SetActive)

	ledgerHandler := NewLedgerHandler(s.Ledger, errs)
	admin.GET("/payouts/restaurants", ledgerHandler.RestaurantPayouts)
	admin.GET("/payouts/drivers", ledgerHandler.DriverPayouts)
	admin.GET("/transactions", ledgerHandler.Transactions)
	admin.GET("/vendors/:id/summary", ledgerHandler.VendorSummary)
	admin.GET("/drivers/:id/summary", ledgerHandler.DriverSummary)
	admin.GET("/users/:id/summary", ledgerHandler.UserSummary)
}
