package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertMember(ctx context.Context, conn *gorm.DB, member *Member) error
	FindMemberByEmail(ctx context.Context, conn *gorm.DB, email string) (*Member, error)
	UpdateMember(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error
	// DeleteMember removes the member row; owned children (labels, events,
	// customer records and their subscriptions, redemptions) go with it via
	// ON DELETE CASCADE. Denormalized references elsewhere are untouched.
	DeleteMember(ctx context.Context, conn *gorm.DB, id string) error

	InsertLabel(ctx context.Context, conn *gorm.DB, label *Label) error
	AttachLabel(ctx context.Context, conn *gorm.DB, link *MembersLabel) error
	LabelsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]Label, error)

	InsertProduct(ctx context.Context, conn *gorm.DB, product *Product) error
	FindProductBySlug(ctx context.Context, conn *gorm.DB, slug string) (*Product, error)
	AttachProduct(ctx context.Context, conn *gorm.DB, link *MembersProduct) error

	InsertOffer(ctx context.Context, conn *gorm.DB, offer *Offer) error
	FindOfferByCode(ctx context.Context, conn *gorm.DB, code string) (*Offer, error)
	RedeemOffer(ctx context.Context, conn *gorm.DB, redemption *OfferRedemption) error

	InsertStripeCustomer(ctx context.Context, conn *gorm.DB, customer *MembersStripeCustomer) error
	InsertSubscription(ctx context.Context, conn *gorm.DB, sub *MembersStripeCustomersSubscription) error
	UpdateSubscription(ctx context.Context, conn *gorm.DB, subscriptionID string, fields map[string]any) error
	SubscriptionsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]MembersStripeCustomersSubscription, error)
}

// EventRepository records member state transitions. Events are append-only:
// there is deliberately no update or delete surface here.
type EventRepository interface {
	AddStatusEvent(ctx context.Context, conn *gorm.DB, event *MembersStatusEvent) error
	AddLoginEvent(ctx context.Context, conn *gorm.DB, event *MembersLoginEvent) error
	AddSubscribeEvent(ctx context.Context, conn *gorm.DB, event *MembersSubscribeEvent) error
	AddEmailChangeEvent(ctx context.Context, conn *gorm.DB, event *MembersEmailChangeEvent) error
	AddPaymentEvent(ctx context.Context, conn *gorm.DB, event *MembersPaymentEvent) error
	AddPaidSubscriptionEvent(ctx context.Context, conn *gorm.DB, event *MembersPaidSubscriptionEvent) error
	AddProductEvent(ctx context.Context, conn *gorm.DB, event *MembersProductEvent) error

	StatusEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]MembersStatusEvent, error)
	LoginEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]MembersLoginEvent, error)
	PaymentEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]MembersPaymentEvent, error)
}
