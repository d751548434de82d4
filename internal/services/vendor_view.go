package services

import (
	"strings"

	"gorm.io/datatypes"

	"jippymart/internal/hours"
	"jippymart/pkg/models"
)

// VendorDocument renders every vendor column with the JSON text columns
// decoded. Columns holding invalid JSON are passed through as text.
func VendorDocument(v *models.Vendor) map[string]any {
	return map[string]any{
		"id":                     v.ID,
		"title":                  v.Title,
		"description":            v.Description,
		"location":               decodeText(v.Location),
		"phonenumber":            v.Phonenumber,
		"email":                  v.Email,
		"photo":                  v.Photo,
		"author":                 v.Author,
		"zoneId":                 v.ZoneID,
		"vType":                  v.VType,
		"latitude":               v.Latitude,
		"longitude":              v.Longitude,
		"publish":                v.Publish.Raw(),
		"isOpen":                 v.IsOpen.Raw(),
		"enabledDiveInFuture":    v.EnabledDiveInFuture.Raw(),
		"specialDiscountEnable":  v.SpecialDiscountEnable.Raw(),
		"dine_in_active":         v.DineInActive.Raw(),
		"reviewsCount":           v.ReviewsCount,
		"reviewsSum":             v.ReviewsSum,
		"restaurantCost":         v.RestaurantCost,
		"DeliveryCharge":         v.DeliveryCharge,
		"cuisineTitle":           v.CuisineTitle,
		"restaurant_slug":        v.RestaurantSlug,
		"zone_slug":              v.ZoneSlug,
		"createdAt":              decodeText(v.CreatedAt),
		"workingHours":           decodeColumn(v.WorkingHours),
		"adminCommission":        decodeColumn(v.AdminCommission),
		"photos":                 decodeColumn(v.Photos),
		"restaurantMenuPhotos":   decodeColumn(v.RestaurantMenuPhotos),
		"filters":                decodeColumn(v.Filters),
		"coordinates":            decodeColumn(v.Coordinates),
		"lastAutoScheduleUpdate": decodeColumn(v.LastAutoScheduleUpdate),
		"categoryID":             decodeColumn(v.CategoryID),
		"categoryTitle":          decodeColumn(v.CategoryTitle),
		"specialDiscount":        decodeColumn(v.SpecialDiscount),
		"g":                      decodeColumn(v.G),
	}
}

func decodeColumn(j datatypes.JSON) any {
	if j == nil {
		return nil
	}
	if strings.TrimSpace(string(j)) == "" {
		return string(j)
	}
	return models.DecodeJSON(j)
}

func decodeText(s *string) any {
	if s == nil {
		return nil
	}
	return decodeColumn(datatypes.JSON(*s))
}

// vendorIsOpen applies the manual override and the schedule of v.
func vendorIsOpen(e *hours.Evaluator, v *models.Vendor) bool {
	return e.IsOpen(hours.ManualOverride(v.IsOpen.Raw()), hours.ParseWorkingHours(v.WorkingHours))
}
