package models

import (
	"gorm.io/datatypes"
)

// Vendor is a restaurant or mart. Column names follow the legacy schema.
type Vendor struct {
	ID          string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Title       *string `gorm:"column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	Location    *string `gorm:"column:location" json:"location"`
	Phonenumber *string `gorm:"column:phonenumber" json:"phonenumber"`
	Email       *string `gorm:"column:email" json:"email"`
	Photo       *string `gorm:"column:photo" json:"photo"`
	Author      *string `gorm:"column:author" json:"author"`
	ZoneID      *string `gorm:"column:zoneId;index" json:"zoneId"`
	VType       *string `gorm:"column:vType" json:"vType"`

	Latitude  *float64 `gorm:"column:latitude" json:"latitude"`
	Longitude *float64 `gorm:"column:longitude" json:"longitude"`

	Publish               Flag `gorm:"column:publish" json:"publish"`
	IsOpen                Flag `gorm:"column:isOpen" json:"isOpen"`
	EnabledDiveInFuture   Flag `gorm:"column:enabledDiveInFuture" json:"enabledDiveInFuture"`
	SpecialDiscountEnable Flag `gorm:"column:specialDiscountEnable" json:"specialDiscountEnable"`
	DineInActive          Flag `gorm:"column:dine_in_active" json:"dine_in_active"`

	ReviewsCount *float64 `gorm:"column:reviewsCount" json:"reviewsCount"`
	ReviewsSum   *float64 `gorm:"column:reviewsSum" json:"reviewsSum"`

	RestaurantCost *string `gorm:"column:restaurantCost" json:"restaurantCost"`
	DeliveryCharge *string `gorm:"column:DeliveryCharge" json:"DeliveryCharge"`
	CuisineTitle   *string `gorm:"column:cuisineTitle" json:"cuisineTitle"`
	RestaurantSlug *string `gorm:"column:restaurant_slug" json:"restaurant_slug"`
	ZoneSlug       *string `gorm:"column:zone_slug" json:"zone_slug"`
	CreatedAt      *string `gorm:"column:createdAt" json:"createdAt"`

	WorkingHours           datatypes.JSON `gorm:"column:workingHours" json:"workingHours"`
	AdminCommission        datatypes.JSON `gorm:"column:adminCommission" json:"adminCommission"`
	Photos                 datatypes.JSON `gorm:"column:photos" json:"photos"`
	RestaurantMenuPhotos   datatypes.JSON `gorm:"column:restaurantMenuPhotos" json:"restaurantMenuPhotos"`
	Filters                datatypes.JSON `gorm:"column:filters" json:"filters"`
	Coordinates            datatypes.JSON `gorm:"column:coordinates" json:"coordinates"`
	LastAutoScheduleUpdate datatypes.JSON `gorm:"column:lastAutoScheduleUpdate" json:"lastAutoScheduleUpdate"`
	CategoryID             datatypes.JSON `gorm:"column:categoryID" json:"categoryID"`
	CategoryTitle          datatypes.JSON `gorm:"column:categoryTitle" json:"categoryTitle"`
	SpecialDiscount        datatypes.JSON `gorm:"column:specialDiscount" json:"specialDiscount"`
	G                      datatypes.JSON `gorm:"column:g" json:"g"`
}

func (Vendor) TableName() string { return "vendors" }

// VendorTitle returns the title or "" for NULL.
func (v *Vendor) VendorTitle() string { return Str(v.Title) }

// SubscriptionHistory records plan purchases; user_id holds the vendor id.
type SubscriptionHistory struct {
	ID               string         `gorm:"column:id;primaryKey;size:191" json:"id"`
	UserID           string         `gorm:"column:user_id;index" json:"user_id"`
	SubscriptionPlan datatypes.JSON `gorm:"column:subscription_plan" json:"subscription_plan"`
	ExpiryDate       *string        `gorm:"column:expiry_date" json:"expiry_date"`
	CreatedAt        *string        `gorm:"column:createdAt" json:"createdAt"`
}

func (SubscriptionHistory) TableName() string { return "subscription_history" }

// VendorCategory is a catalog category. restaurant_id holds either the
// vendor id or the vendor title.
type VendorCategory struct {
	ID             string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Title          *string `gorm:"column:title" json:"title"`
	Description    *string `gorm:"column:description" json:"description"`
	Photo          *string `gorm:"column:photo" json:"photo"`
	Publish        Flag    `gorm:"column:publish" json:"publish"`
	ShowInHomepage Flag    `gorm:"column:show_in_homepage" json:"show_in_homepage"`
	VType          *string `gorm:"column:vType" json:"vType"`
	RestaurantID   *string `gorm:"column:restaurant_id" json:"restaurant_id"`
}

func (VendorCategory) TableName() string { return "vendor_categories" }

// Coupon is a vendor offer. The column name typo is part of the schema.
type Coupon struct {
	ID           string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Code         *string `gorm:"column:code" json:"code"`
	Description  *string `gorm:"column:description" json:"description"`
	Discount     *string `gorm:"column:discount" json:"discount"`
	DiscountType *string `gorm:"column:discountType" json:"discountType"`
	Image        *string `gorm:"column:image" json:"image"`
	RestaurantID *string `gorm:"column:resturant_id;index" json:"resturant_id"`
	IsEnabled    Flag    `gorm:"column:isEnabled" json:"isEnabled"`
	IsPublic     Flag    `gorm:"column:isPublic" json:"isPublic"`
	ExpiresAt    *string `gorm:"column:expiresAt" json:"expiresAt"`
}

func (Coupon) TableName() string { return "coupons" }

type VendorAttribute struct {
	ID    string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Title *string `gorm:"column:title" json:"title"`
}

func (VendorAttribute) TableName() string { return "vendor_attributes" }
