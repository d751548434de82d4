package models

// Product is a row of vendor_products. Prices are stored as text.
type Product struct {
	ID                   string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Name                 *string `gorm:"column:name" json:"name"`
	Description          *string `gorm:"column:description" json:"description"`
	VendorID             *string `gorm:"column:vendorID;index" json:"vendorID"`
	VendorTitle          *string `gorm:"column:vendorTitle" json:"vendorTitle"`
	CategoryID           *string `gorm:"column:categoryID" json:"categoryID"`
	CategoryTitle        *string `gorm:"column:categoryTitle" json:"categoryTitle"`
	Price                *string `gorm:"column:price" json:"price"`
	DisPrice             *string `gorm:"column:disPrice" json:"disPrice"`
	Quantity             *int64  `gorm:"column:quantity" json:"quantity"`
	Publish              Flag    `gorm:"column:publish" json:"publish"`
	IsAvailable          Flag    `gorm:"column:isAvailable" json:"isAvailable"`
	Veg                  Flag    `gorm:"column:veg" json:"veg"`
	Nonveg               Flag    `gorm:"column:nonveg" json:"nonveg"`
	TakeawayOption       Flag    `gorm:"column:takeawayOption" json:"takeawayOption"`
	Photo                *string `gorm:"column:photo" json:"photo"`
	Photos               *string `gorm:"column:photos" json:"photos"`
	AddOnsTitle          *string `gorm:"column:addOnsTitle" json:"addOnsTitle"`
	AddOnsPrice          *string `gorm:"column:addOnsPrice" json:"addOnsPrice"`
	ItemAttribute        *string `gorm:"column:item_attribute" json:"item_attribute"`
	ProductSpecification *string `gorm:"column:product_specification" json:"product_specification"`
	ReviewsCount         *float64 `gorm:"column:reviewsCount" json:"reviewsCount"`
	ReviewsSum           *float64 `gorm:"column:reviewsSum" json:"reviewsSum"`
	CreatedAt            *string `gorm:"column:createdAt" json:"createdAt"`
}

func (Product) TableName() string { return "vendor_products" }

// Promotion is a time boxed special price on a product.
type Promotion struct {
	ID           string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	RestaurantID *string `gorm:"column:restaurant_id;index" json:"restaurant_id"`
	ProductID    *string `gorm:"column:product_id;index" json:"product_id"`
	SpecialPrice *string `gorm:"column:special_price" json:"special_price"`
	ItemLimit    *int64  `gorm:"column:item_limit" json:"item_limit"`
	StartTime    *string `gorm:"column:start_time" json:"start_time"`
	EndTime      *string `gorm:"column:end_time" json:"end_time"`
	IsAvailable  Flag    `gorm:"column:isAvailable" json:"isAvailable"`
}

func (Promotion) TableName() string { return "promotions" }

// MenuItemBanner is a home screen banner.
type MenuItemBanner struct {
	ID           string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Title        *string `gorm:"column:title" json:"title"`
	Photo        *string `gorm:"column:photo" json:"photo"`
	Position     *string `gorm:"column:position;index" json:"position"`
	IsPublish    Flag    `gorm:"column:is_publish" json:"is_publish"`
	SetOrder     *int64  `gorm:"column:set_order" json:"set_order"`
	ZoneID       *string `gorm:"column:zoneId" json:"zoneId"`
	ZoneTitle    *string `gorm:"column:zoneTitle" json:"zoneTitle"`
	RedirectType *string `gorm:"column:redirect_type" json:"redirect_type"`
	RedirectID   *string `gorm:"column:redirect_id" json:"redirect_id"`
}

func (MenuItemBanner) TableName() string { return "menu_items" }

// MartItem is a row of mart_items.
type MartItem struct {
	ID               string   `gorm:"column:id;primaryKey;size:191" json:"id"`
	Name             *string  `gorm:"column:name" json:"name"`
	Description      *string  `gorm:"column:description" json:"description"`
	Price            *float64 `gorm:"column:price" json:"price"`
	DisPrice         *float64 `gorm:"column:disPrice" json:"disPrice"`
	VendorID         *string  `gorm:"column:vendorID" json:"vendorID"`
	VendorTitle      *string  `gorm:"column:vendorTitle" json:"vendorTitle"`
	CategoryID       *string  `gorm:"column:categoryID" json:"categoryID"`
	CategoryTitle    *string  `gorm:"column:categoryTitle" json:"categoryTitle"`
	SubcategoryID    *string  `gorm:"column:subcategoryID" json:"subcategoryID"`
	SubcategoryTitle *string  `gorm:"column:subcategoryTitle" json:"subcategoryTitle"`
	BrandID          *string  `gorm:"column:brandID" json:"brandID"`
	BrandTitle       *string  `gorm:"column:brandTitle" json:"brandTitle"`
	Photo            *string  `gorm:"column:photo" json:"photo"`
	Section          *string  `gorm:"column:section" json:"section"`
	Quantity         *int64   `gorm:"column:quantity" json:"quantity"`
	Publish          Flag     `gorm:"column:publish" json:"publish"`
	IsAvailable      Flag     `gorm:"column:isAvailable" json:"isAvailable"`
	Veg              Flag     `gorm:"column:veg" json:"veg"`
	Nonveg           Flag     `gorm:"column:nonveg" json:"nonveg"`
	IsBestSeller     Flag     `gorm:"column:isBestSeller" json:"isBestSeller"`
	IsTrending       Flag     `gorm:"column:isTrending" json:"isTrending"`
	IsFeature        Flag     `gorm:"column:isFeature" json:"isFeature"`
	IsNew            Flag     `gorm:"column:isNew" json:"isNew"`
	IsSpotlight      Flag     `gorm:"column:isSpotlight" json:"isSpotlight"`
	IsSeasonal       Flag     `gorm:"column:isSeasonal" json:"isSeasonal"`
	IsStealOfMoment  Flag     `gorm:"column:isStealOfMoment" json:"isStealOfMoment"`
	Rating           *float64 `gorm:"column:rating" json:"rating"`
	ReviewCount      *string  `gorm:"column:reviewCount" json:"reviewCount"`
	ReviewSum        *string  `gorm:"column:reviewSum" json:"reviewSum"`
	Options          *string  `gorm:"column:options" json:"options"`
	CreatedAt        *string  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        *string  `gorm:"column:updated_at" json:"updated_at"`
}

func (MartItem) TableName() string { return "mart_items" }

type MartCategory struct {
	ID                 string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Title              *string `gorm:"column:title" json:"title"`
	Description        *string `gorm:"column:description" json:"description"`
	Photo              *string `gorm:"column:photo" json:"photo"`
	Section            *string `gorm:"column:section" json:"section"`
	CategoryOrder      *int64  `gorm:"column:category_order" json:"category_order"`
	SectionOrder       *int64  `gorm:"column:section_order" json:"section_order"`
	MartID             *string `gorm:"column:mart_id" json:"mart_id"`
	HasSubcategories   Flag    `gorm:"column:has_subcategories" json:"has_subcategories"`
	SubcategoriesCount *int64  `gorm:"column:subcategories_count" json:"subcategories_count"`
	ShowInHomepage     Flag    `gorm:"column:show_in_homepage" json:"show_in_homepage"`
	Publish            Flag    `gorm:"column:publish" json:"publish"`
}

func (MartCategory) TableName() string { return "mart_categories" }
