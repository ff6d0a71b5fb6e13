package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/inkpress/internal/email/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertEmail(ctx context.Context, conn *gorm.DB, email *domain.Email) error {
	return conn.WithContext(ctx).Create(email).Error
}

func (r *repo) FindEmailByPost(ctx context.Context, conn *gorm.DB, postID string) (*domain.Email, error) {
	var email domain.Email
	err := conn.WithContext(ctx).Where("post_id = ?", postID).Take(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *repo) UpdateEmailStatus(ctx context.Context, conn *gorm.DB, id string, status domain.EmailStatus) error {
	return conn.WithContext(ctx).
		Model(&domain.Email{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// IncrementCounters applies additive updates so concurrent batch reporters
// cannot lose each other's progress and counts never decrease.
func (r *repo) IncrementCounters(ctx context.Context, conn *gorm.DB, id string, delta domain.CounterDelta) error {
	fields := map[string]any{}
	if delta.Sent > 0 {
		fields["email_count"] = gorm.Expr("email_count + ?", delta.Sent)
	}
	if delta.Delivered > 0 {
		fields["delivered_count"] = gorm.Expr("delivered_count + ?", delta.Delivered)
	}
	if delta.Opened > 0 {
		fields["opened_count"] = gorm.Expr("opened_count + ?", delta.Opened)
	}
	if delta.Failed > 0 {
		fields["failed_count"] = gorm.Expr("failed_count + ?", delta.Failed)
	}
	if len(fields) == 0 {
		return nil
	}

	return conn.WithContext(ctx).
		Model(&domain.Email{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) InsertBatch(ctx context.Context, conn *gorm.DB, batch *domain.EmailBatch) error {
	return conn.WithContext(ctx).Create(batch).Error
}

func (r *repo) UpdateBatchStatus(ctx context.Context, conn *gorm.DB, id, status string, providerID *string) error {
	fields := map[string]any{"status": status}
	if providerID != nil {
		fields["provider_id"] = *providerID
	}
	return conn.WithContext(ctx).
		Model(&domain.EmailBatch{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) BatchesForEmail(ctx context.Context, conn *gorm.DB, emailID string) ([]domain.EmailBatch, error) {
	var batches []domain.EmailBatch
	err := conn.WithContext(ctx).
		Where("email_id = ?", emailID).
		Order("created_at").
		Find(&batches).Error
	return batches, err
}

func (r *repo) InsertRecipients(ctx context.Context, conn *gorm.DB, recipients []domain.EmailRecipient) error {
	if len(recipients) == 0 {
		return nil
	}
	return conn.WithContext(ctx).CreateInBatches(&recipients, 500).Error
}

func (r *repo) RecipientsForEmail(ctx context.Context, conn *gorm.DB, emailID string) ([]domain.EmailRecipient, error) {
	var recipients []domain.EmailRecipient
	err := conn.WithContext(ctx).
		Where("email_id = ?", emailID).
		Find(&recipients).Error
	return recipients, err
}

func (r *repo) InsertIntegration(ctx context.Context, conn *gorm.DB, integration *domain.Integration) error {
	return conn.WithContext(ctx).Create(integration).Error
}

func (r *repo) DeleteIntegration(ctx context.Context, conn *gorm.DB, id string) error {
	return conn.WithContext(ctx).Where("id = ?", id).Delete(&domain.Integration{}).Error
}

func (r *repo) InsertWebhook(ctx context.Context, conn *gorm.DB, webhook *domain.Webhook) error {
	return conn.WithContext(ctx).Create(webhook).Error
}

func (r *repo) WebhooksForIntegration(ctx context.Context, conn *gorm.DB, integrationID string) ([]domain.Webhook, error) {
	var webhooks []domain.Webhook
	err := conn.WithContext(ctx).
		Where("integration_id = ?", integrationID).
		Find(&webhooks).Error
	return webhooks, err
}

func (r *repo) UpdateWebhook(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error {
	return conn.WithContext(ctx).
		Model(&domain.Webhook{}).
		Where("id = ?", id).
		Updates(fields).Error
}
