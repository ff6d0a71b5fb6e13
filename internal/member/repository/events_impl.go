package repository

import (
	"context"

	"github.com/smallbiznis/inkpress/internal/member/domain"
	"gorm.io/gorm"
)

type eventRepo struct{}

func ProvideEvents() domain.EventRepository {
	return &eventRepo{}
}

func (r *eventRepo) AddStatusEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersStatusEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddLoginEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersLoginEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddSubscribeEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersSubscribeEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddEmailChangeEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersEmailChangeEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddPaymentEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersPaymentEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddPaidSubscriptionEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersPaidSubscriptionEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) AddProductEvent(ctx context.Context, conn *gorm.DB, event *domain.MembersProductEvent) error {
	return conn.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) StatusEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]domain.MembersStatusEvent, error) {
	var events []domain.MembersStatusEvent
	err := conn.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) LoginEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]domain.MembersLoginEvent, error) {
	var events []domain.MembersLoginEvent
	err := conn.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) PaymentEventsForMember(ctx context.Context, conn *gorm.DB, memberID string) ([]domain.MembersPaymentEvent, error) {
	var events []domain.MembersPaymentEvent
	err := conn.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at").
		Find(&events).Error
	return events, err
}
