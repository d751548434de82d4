package models

import (
	"gorm.io/datatypes"
)

// Setting is one configuration document. Consumers decode Fields themselves.
type Setting struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DocumentName string         `gorm:"column:document_name;uniqueIndex;size:191" json:"document_name"`
	Fields       datatypes.JSON `gorm:"column:fields" json:"fields"`
}

func (Setting) TableName() string { return "settings" }

// Currency rows; exactly one is expected to be active. The decimal column
// keeps its historical misspelling.
type Currency struct {
	ID            string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Code          *string `gorm:"column:code" json:"code"`
	Name          *string `gorm:"column:name" json:"name"`
	Symbol        *string `gorm:"column:symbol" json:"symbol"`
	SymbolAtRight Flag    `gorm:"column:symbolAtRight" json:"symbolAtRight"`
	DecimalDigits *int64  `gorm:"column:decimal_degits" json:"decimal_degits"`
	IsActive      Flag    `gorm:"column:isActive" json:"isActive"`
}

func (Currency) TableName() string { return "currencies" }

type Zone struct {
	ID   string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	Name *string `gorm:"column:name" json:"name"`
}

func (Zone) TableName() string { return "zone" }

// AppUser is a customer, driver or vendor owner account.
type AppUser struct {
	ID                string  `gorm:"column:id;primaryKey;size:191" json:"id"`
	FirebaseID        *string `gorm:"column:firebase_id;index;size:191" json:"firebase_id"`
	LegacyID          *string `gorm:"column:_id" json:"-"`
	FirstName         *string `gorm:"column:firstName" json:"firstName"`
	LastName          *string `gorm:"column:lastName" json:"lastName"`
	Email             *string `gorm:"column:email;size:191" json:"email"`
	Password          *string `gorm:"column:password" json:"-"`
	CountryCode       *string `gorm:"column:countryCode" json:"countryCode"`
	PhoneNumber       *string `gorm:"column:phoneNumber" json:"phoneNumber"`
	ProfilePictureURL *string `gorm:"column:profilePictureURL" json:"profilePictureURL"`
	Provider          *string `gorm:"column:provider" json:"provider"`
	Role              *string `gorm:"column:role;index;size:50" json:"role"`
	Active            Flag    `gorm:"column:active" json:"active"`
	IsActive          Flag    `gorm:"column:isActive" json:"isActive"`
	ZoneID            *string `gorm:"column:zoneId" json:"zoneId"`
	AppIdentifier     *string `gorm:"column:appIdentifier" json:"appIdentifier"`
	ShippingAddress   *string `gorm:"column:shippingAddress" json:"shippingAddress"`
	WalletAmount      *float64 `gorm:"column:wallet_amount" json:"wallet_amount"`
	CreatedAt         *string `gorm:"column:createdAt" json:"createdAt"`
}

func (AppUser) TableName() string { return "users" }

// FullName joins first and last name.
func (u *AppUser) FullName() string {
	return Str(u.FirstName) + " " + Str(u.LastName)
}

// Payout is a settled restaurant payout.
type Payout struct {
	ID             string   `gorm:"column:id;primaryKey;size:191" json:"id"`
	VendorID       *string  `gorm:"column:vendorID;index" json:"vendorID"`
	Amount         *float64 `gorm:"column:amount" json:"amount"`
	Note           *string  `gorm:"column:note" json:"note"`
	AdminNote      *string  `gorm:"column:adminNote" json:"adminNote"`
	PaidDate       *string  `gorm:"column:paidDate" json:"paidDate"`
	PaymentStatus  *string  `gorm:"column:paymentStatus" json:"paymentStatus"`
	WithdrawMethod *string  `gorm:"column:withdrawMethod" json:"withdrawMethod"`
}

func (Payout) TableName() string { return "payouts" }

type DriverPayout struct {
	ID             string   `gorm:"column:id;primaryKey;size:191" json:"id"`
	DriverID       *string  `gorm:"column:driverID;index" json:"driverID"`
	VendorID       *string  `gorm:"column:vendorID" json:"vendorID"`
	Amount         *float64 `gorm:"column:amount" json:"amount"`
	Note           *string  `gorm:"column:note" json:"note"`
	AdminNote      *string  `gorm:"column:adminNote" json:"adminNote"`
	PaidDate       *string  `gorm:"column:paidDate" json:"paidDate"`
	PaymentStatus  *string  `gorm:"column:paymentStatus" json:"paymentStatus"`
	WithdrawMethod *string  `gorm:"column:withdrawMethod" json:"withdrawMethod"`
}

func (DriverPayout) TableName() string { return "driver_payouts" }

// WalletTransaction is a row of the wallet ledger.
type WalletTransaction struct {
	ID              string   `gorm:"column:id;primaryKey;size:191" json:"id"`
	UserID          *string  `gorm:"column:user_id;index" json:"user_id"`
	Amount          *float64 `gorm:"column:amount" json:"amount"`
	Date            *string  `gorm:"column:date" json:"date"`
	Note            *string  `gorm:"column:note" json:"note"`
	PaymentMethod   *string  `gorm:"column:payment_method" json:"payment_method"`
	PaymentStatus   *string  `gorm:"column:payment_status" json:"payment_status"`
	OrderID         *string  `gorm:"column:order_id" json:"order_id"`
	IsTopUp         Flag     `gorm:"column:isTopUp" json:"isTopUp"`
	TransactionUser *string  `gorm:"column:transactionUser" json:"transactionUser"`
}

func (WalletTransaction) TableName() string { return "wallet" }
