package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/inkpress/internal/member/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertMember(ctx context.Context, conn *gorm.DB, member *domain.Member) error {
	return conn.WithContext(ctx).Create(member).Error
}

func (r *repo) FindMemberByEmail(ctx context.Context, conn *gorm.DB, email string) (*domain.Member, error) {
	var member domain.Member
	err := conn.WithContext(ctx).Where("email = ?", email).Take(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *repo) UpdateMember(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error {
	return conn.WithContext(ctx).
		Model(&domain.Member{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) DeleteMember(ctx context.Context, conn *gorm.DB, id string) error {
	return conn.WithContext(ctx).Where("id = ?", id).Delete(&domain.Member{}).Error
}

func (r *repo) InsertLabel(ctx context.Context, conn *gorm.DB, label *domain.Label) error {
	return conn.WithContext(ctx).Create(label).Error
}

func (r *repo) AttachLabel(ctx context.Context, conn *gorm.DB, link *domain.MembersLabel) error {
	return conn.WithContext(ctx).Create(link).Error
}

func (r *repo) LabelsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]domain.Label, error) {
	var labels []domain.Label
	err := conn.WithContext(ctx).
		Joins("JOIN members_labels ON members_labels.label_id = labels.id").
		Where("members_labels.member_id = ?", memberID).
		Order("members_labels.sort_order").
		Find(&labels).Error
	return labels, err
}

func (r *repo) InsertProduct(ctx context.Context, conn *gorm.DB, product *domain.Product) error {
	return conn.WithContext(ctx).Create(product).Error
}

func (r *repo) FindProductBySlug(ctx context.Context, conn *gorm.DB, slug string) (*domain.Product, error) {
	var product domain.Product
	err := conn.WithContext(ctx).Where("slug = ?", slug).Take(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *repo) AttachProduct(ctx context.Context, conn *gorm.DB, link *domain.MembersProduct) error {
	return conn.WithContext(ctx).Create(link).Error
}

func (r *repo) InsertOffer(ctx context.Context, conn *gorm.DB, offer *domain.Offer) error {
	return conn.WithContext(ctx).Create(offer).Error
}

func (r *repo) FindOfferByCode(ctx context.Context, conn *gorm.DB, code string) (*domain.Offer, error) {
	var offer domain.Offer
	err := conn.WithContext(ctx).Where("code = ?", code).Take(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *repo) RedeemOffer(ctx context.Context, conn *gorm.DB, redemption *domain.OfferRedemption) error {
	return conn.WithContext(ctx).Create(redemption).Error
}

func (r *repo) InsertStripeCustomer(ctx context.Context, conn *gorm.DB, customer *domain.MembersStripeCustomer) error {
	return conn.WithContext(ctx).Create(customer).Error
}

func (r *repo) InsertSubscription(ctx context.Context, conn *gorm.DB, sub *domain.MembersStripeCustomersSubscription) error {
	return conn.WithContext(ctx).Create(sub).Error
}

func (r *repo) UpdateSubscription(ctx context.Context, conn *gorm.DB, subscriptionID string, fields map[string]any) error {
	return conn.WithContext(ctx).
		Model(&domain.MembersStripeCustomersSubscription{}).
		Where("subscription_id = ?", subscriptionID).
		Updates(fields).Error
}

func (r *repo) SubscriptionsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]domain.MembersStripeCustomersSubscription, error) {
	var subs []domain.MembersStripeCustomersSubscription
	err := conn.WithContext(ctx).
		Joins("JOIN members_stripe_customers ON members_stripe_customers.customer_id = members_stripe_customers_subscriptions.customer_id").
		Where("members_stripe_customers.member_id = ?", memberID).
		Find(&subs).Error
	return subs, err
}
