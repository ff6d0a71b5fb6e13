// Package domain contains persistence models for members, products, offers
// and billing state. Event models live in events.go; they are append-only.
package domain

import (
	"time"
)

// MemberStatus distinguishes free signups from paying and complimentary
// members.
type MemberStatus string

const (
	MemberStatusFree   MemberStatus = "free"
	MemberStatusPaid   MemberStatus = "paid"
	MemberStatusComped MemberStatus = "comped"
)

// Member is an audience member. Email is the authoritative identity.
type Member struct {
	ID               string       `gorm:"primaryKey;size:24"`
	UUID             *string      `gorm:"column:uuid;size:36;uniqueIndex"`
	Email            string       `gorm:"size:191;not null;uniqueIndex"`
	Status           MemberStatus `gorm:"size:50;not null;default:'free'"`
	Name             *string      `gorm:"size:191"`
	Note             *string      `gorm:"size:2000"`
	Geolocation      *string      `gorm:"size:2000"`
	Subscribed       bool         `gorm:"default:1"`
	EmailCount       int          `gorm:"not null;default:0"`
	EmailOpenedCount int          `gorm:"not null;default:0"`
	EmailOpenRate    *int         `gorm:"index"`
	CreatedAt        time.Time    `gorm:"not null"`
	CreatedBy        string       `gorm:"size:24;not null"`
	UpdatedAt        *time.Time   `gorm:""`
	UpdatedBy        *string      `gorm:"size:24"`
}

// TableName sets the database table name.
func (Member) TableName() string { return "members" }

// Label groups members for targeting and reporting.
type Label struct {
	ID        string     `gorm:"primaryKey;size:24"`
	Name      string     `gorm:"size:191;not null;uniqueIndex"`
	Slug      string     `gorm:"size:191;not null;uniqueIndex"`
	CreatedAt time.Time  `gorm:"not null"`
	CreatedBy string     `gorm:"size:24;not null"`
	UpdatedAt *time.Time `gorm:""`
	UpdatedBy *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Label) TableName() string { return "labels" }

// MembersLabel attaches a label to a member; rows are owned by both sides
// and cascade away with either.
type MembersLabel struct {
	ID        string `gorm:"primaryKey;size:24"`
	MemberID  string `gorm:"column:member_id;size:24;not null;index"`
	LabelID   string `gorm:"column:label_id;size:24;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (MembersLabel) TableName() string { return "members_labels" }

// Product is a membership tier.
type Product struct {
	ID             string     `gorm:"primaryKey;size:24"`
	Name           string     `gorm:"size:191;not null"`
	Slug           string     `gorm:"size:191;not null;uniqueIndex"`
	MonthlyPriceID *string    `gorm:"column:monthly_price_id;size:24"`
	YearlyPriceID  *string    `gorm:"column:yearly_price_id;size:24"`
	Description    *string    `gorm:"size:191"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      *time.Time `gorm:""`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// Benefit is a selling point attached to products.
type Benefit struct {
	ID        string     `gorm:"primaryKey;size:24"`
	Name      string     `gorm:"size:191;not null"`
	Slug      string     `gorm:"size:191;not null;uniqueIndex"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:""`
}

// TableName sets the database table name.
func (Benefit) TableName() string { return "benefits" }

type ProductsBenefit struct {
	ID        string `gorm:"primaryKey;size:24"`
	ProductID string `gorm:"column:product_id;size:24;not null;index"`
	BenefitID string `gorm:"column:benefit_id;size:24;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (ProductsBenefit) TableName() string { return "products_benefits" }

type MembersProduct struct {
	ID        string `gorm:"primaryKey;size:24"`
	MemberID  string `gorm:"column:member_id;size:24;not null;index"`
	ProductID string `gorm:"column:product_id;size:24;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (MembersProduct) TableName() string { return "members_products" }

// Offer is a discount tied to exactly one product. Name, code and the
// external coupon id are each unique.
type Offer struct {
	ID                string     `gorm:"primaryKey;size:24"`
	Active            bool       `gorm:"not null;default:1"`
	Name              string     `gorm:"size:191;not null;uniqueIndex"`
	Code              string     `gorm:"size:191;not null;uniqueIndex"`
	ProductID         string     `gorm:"column:product_id;size:24;not null;index"`
	StripeCouponID    *string    `gorm:"column:stripe_coupon_id;size:255;uniqueIndex"`
	Interval          string     `gorm:"size:50;not null"`
	Currency          *string    `gorm:"size:50"`
	DiscountType      string     `gorm:"size:50;not null"`
	DiscountAmount    int        `gorm:"not null"`
	Duration          string     `gorm:"size:50;not null"`
	DurationInMonths  *int       `gorm:""`
	PortalTitle       *string    `gorm:"size:191"`
	PortalDescription *string    `gorm:"size:2000"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         *time.Time `gorm:""`
}

// TableName sets the database table name.
func (Offer) TableName() string { return "offers" }

// OfferRedemption ties an offer to the member and subscription that used
// it. It cascades away with any of the three parents.
type OfferRedemption struct {
	ID             string    `gorm:"primaryKey;size:24"`
	OfferID        string    `gorm:"column:offer_id;size:24;not null;index"`
	MemberID       string    `gorm:"column:member_id;size:24;not null;index"`
	SubscriptionID string    `gorm:"column:subscription_id;size:24;not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (OfferRedemption) TableName() string { return "offer_redemptions" }

// StripeProduct maps a product to its external billing-provider product.
type StripeProduct struct {
	ID              string     `gorm:"primaryKey;size:24"`
	ProductID       string     `gorm:"column:product_id;size:24;not null;index"`
	StripeProductID string     `gorm:"column:stripe_product_id;size:255;not null;uniqueIndex"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       *time.Time `gorm:""`
}

// TableName sets the database table name.
func (StripeProduct) TableName() string { return "stripe_products" }

// StripePrice mirrors an external price object.
type StripePrice struct {
	ID              string     `gorm:"primaryKey;size:24"`
	StripePriceID   string     `gorm:"column:stripe_price_id;size:255;not null;uniqueIndex"`
	StripeProductID string     `gorm:"column:stripe_product_id;size:255;not null;index"`
	Active          bool       `gorm:"not null"`
	Nickname        *string    `gorm:"size:50"`
	Currency        string     `gorm:"size:191;not null"`
	Amount          int        `gorm:"not null"`
	Type            string     `gorm:"size:50;not null;default:'recurring'"`
	Interval        *string    `gorm:"size:50"`
	Description     *string    `gorm:"size:191"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       *time.Time `gorm:""`
}

// TableName sets the database table name.
func (StripePrice) TableName() string { return "stripe_prices" }

// MembersStripeCustomer links a member to one of its external billing
// customer records. A member may hold several; customer_id is unique.
type MembersStripeCustomer struct {
	ID         string     `gorm:"primaryKey;size:24"`
	MemberID   string     `gorm:"column:member_id;size:24;not null;index"`
	CustomerID string     `gorm:"column:customer_id;size:255;not null;uniqueIndex"`
	Name       *string    `gorm:"size:191"`
	Email      *string    `gorm:"size:191"`
	CreatedAt  time.Time  `gorm:"not null"`
	CreatedBy  string     `gorm:"size:24;not null"`
	UpdatedAt  *time.Time `gorm:""`
	UpdatedBy  *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (MembersStripeCustomer) TableName() string { return "members_stripe_customers" }

// MembersStripeCustomersSubscription snapshots the plan at subscription
// time (plan_* columns) so later plan edits do not rewrite history.
type MembersStripeCustomersSubscription struct {
	ID                      string     `gorm:"primaryKey;size:24"`
	CustomerID              string     `gorm:"column:customer_id;size:255;not null;index"`
	SubscriptionID          string     `gorm:"column:subscription_id;size:255;not null;uniqueIndex"`
	StripePriceID           string     `gorm:"column:stripe_price_id;size:255;not null;index;default:''"`
	Status                  string     `gorm:"size:50;not null"`
	CancelAtPeriodEnd       bool       `gorm:"not null;default:0"`
	CancellationReason      *string    `gorm:"size:500"`
	CurrentPeriodEnd        time.Time  `gorm:"not null"`
	StartDate               time.Time  `gorm:"not null"`
	DefaultPaymentCardLast4 *string    `gorm:"column:default_payment_card_last4;size:4"`
	CreatedAt               time.Time  `gorm:"not null"`
	CreatedBy               string     `gorm:"size:24;not null"`
	UpdatedAt               *time.Time `gorm:""`
	UpdatedBy               *string    `gorm:"size:24"`
	PlanID                  string     `gorm:"column:plan_id;size:255;not null"`
	PlanNickname            string     `gorm:"size:50;not null"`
	PlanInterval            string     `gorm:"size:50;not null"`
	PlanAmount              int        `gorm:"not null"`
	PlanCurrency            string     `gorm:"size:191;not null"`
}

// TableName sets the database table name.
func (MembersStripeCustomersSubscription) TableName() string {
	return "members_stripe_customers_subscriptions"
}
