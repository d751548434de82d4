package settings

import (
	"context"
)

// MobileDocuments are the documents shipped to the customer app in one call.
var MobileDocuments = []string{
	"restaurant",
	DocRestaurantNearBy,
	DocDriverNearBy,
	DocGlobal,
	DocGoogleMapKey,
	DocNotification,
	"privacyPolicy",
	"termsAndConditions",
	"walletSettings",
	"WalletSetting",
	DocVersion,
	"story",
	"referral_amount",
	"placeHolderImage",
	"emailSetting",
	"specialDiscountOffer",
	"DineinForRestaurant",
	DocAdminCommission,
	DocDeliveryCharge,
	"martDeliveryCharge",
	"PriceSettings",
	"payment",
	DocLanguages,
	"digitalProduct",
	"driver_total_charges",
	"CODSettings",
}

// Mobile returns the raw documents the app needs plus the values it derives
// from them. Missing or non-object documents are sent as empty objects.
func (s *Service) Mobile(ctx context.Context) (map[string]any, error) {
	docs := make(map[string]any, len(MobileDocuments))
	for _, name := range MobileDocuments {
		if obj := s.Object(name); obj != nil {
			docs[name] = obj
		} else {
			docs[name] = map[string]any{}
		}
	}

	cur, err := s.Currency(ctx)
	if err != nil {
		return nil, err
	}

	obj := func(name string) map[string]any {
		m, _ := docs[name].(map[string]any)
		return m
	}
	restaurant := obj("restaurant")
	nearBy := obj(DocRestaurantNearBy)
	driver := obj(DocDriverNearBy)
	global := obj(DocGlobal)
	mapKey := obj(DocGoogleMapKey)
	notification := obj(DocNotification)
	version := obj(DocVersion)
	placeHolder := obj("placeHolderImage")
	discount := obj("specialDiscountOffer")
	dineIn := obj("DineinForRestaurant")

	derived := map[string]any{
		"isSubscriptionModelApplied": Truthy(restaurant["subscription_model"]),
		"autoApproveRestaurant":      Truthy(restaurant["auto_approve_restaurant"]),
		"radius":                     coalesce(nearBy["radios"]),
		"driverRadios":               coalesce(driver["driverRadios"]),
		"distanceType":               coalesce(nearBy["distanceType"]),
		"isEnableAdsFeature":         Truthy(global["isEnableAdsFeature"]),
		"isSelfDeliveryFeature":      Truthy(global["isSelfDelivery"]),
		"themeColors": map[string]any{
			"app_customer_color":   coalesce(global["app_customer_color"]),
			"app_driver_color":     coalesce(global["app_driver_color"]),
			"app_restaurant_color": coalesce(global["app_restaurant_color"]),
		},
		"mapAPIKey":               coalesce(mapKey["key"]),
		"placeHolderImage":        coalesce(mapKey["placeHolderImage"], placeHolder["image"], ""),
		"senderId":                coalesce(notification["projectId"]),
		"jsonNotificationFileURL": coalesce(notification["serviceJson"]),
		"selectedMapType":         coalesce(driver["selectedMapType"]),
		"mapType":                 coalesce(driver["mapType"]),
		"privacyPolicy":           coalesce(obj("privacyPolicy")["privacy_policy"]),
		"termsAndConditions":      coalesce(obj("termsAndConditions")["termsAndConditions"]),
		"walletEnabled":           Truthy(coalesce(obj("walletSettings")["isEnabled"], obj("WalletSetting")["isEnabled"])),
		"googlePlayLink":          coalesce(version["googlePlayLink"]),
		"appStoreLink":            coalesce(version["appStoreLink"]),
		"appVersion":              coalesce(version["app_version"]),
		"websiteUrl":              coalesce(version["websiteUrl"]),
		"storyEnable":             Truthy(obj("story")["isEnabled"]),
		"referralAmount":          coalesce(obj("referral_amount")["referralAmount"], "0"),
		"placeholderImage":        coalesce(placeHolder["image"]),
		"specialDiscountOffer":    Truthy(discount["isEnable"]),
		"isEnabledForCustomer":    Truthy(dineIn["isEnabledForCustomer"]),
		"adminCommission":         docs[DocAdminCommission],
		"mailSettings":            docs["emailSetting"],
		"currency":                cur,
	}

	return map[string]any{"documents": docs, "derived": derived}, nil
}

func coalesce(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Truthy reads a decoded JSON value the way the admin panel reads its own
// flags: empty strings, "0", zero, empty lists and null are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case string:
		return x != "" && x != "0"
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
