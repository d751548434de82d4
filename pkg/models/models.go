package models

// GetAllModels returns every table the API owns, for AutoMigrate on empty
// development databases. restaurant_orders is read as raw rows and has no model.
func GetAllModels() []interface{} {
	return []interface{}{
		// Catalog
		&Vendor{},
		&VendorCategory{},
		&VendorAttribute{},
		&Product{},
		&Promotion{},
		&Coupon{},
		&MenuItemBanner{},
		&MartItem{},
		&MartCategory{},
		&SubscriptionHistory{},

		// Configuration
		&Setting{},
		&Currency{},
		&Zone{},

		// Accounts and money
		&AppUser{},
		&Payout{},
		&DriverPayout{},
		&WalletTransaction{},
	}
}
