package domain

import (
	"context"

	"gorm.io/gorm"
)

// CounterDelta carries additive increments for an email's aggregate
// counters. Values are added, never assigned, so the counters cannot move
// backwards.
type CounterDelta struct {
	Sent      int
	Delivered int
	Opened    int
	Failed    int
}

type Repository interface {
	InsertEmail(ctx context.Context, conn *gorm.DB, email *Email) error
	FindEmailByPost(ctx context.Context, conn *gorm.DB, postID string) (*Email, error)
	UpdateEmailStatus(ctx context.Context, conn *gorm.DB, id string, status EmailStatus) error
	IncrementCounters(ctx context.Context, conn *gorm.DB, id string, delta CounterDelta) error

	InsertBatch(ctx context.Context, conn *gorm.DB, batch *EmailBatch) error
	UpdateBatchStatus(ctx context.Context, conn *gorm.DB, id, status string, providerID *string) error
	BatchesForEmail(ctx context.Context, conn *gorm.DB, emailID string) ([]EmailBatch, error)

	InsertRecipients(ctx context.Context, conn *gorm.DB, recipients []EmailRecipient) error
	RecipientsForEmail(ctx context.Context, conn *gorm.DB, emailID string) ([]EmailRecipient, error)

	InsertIntegration(ctx context.Context, conn *gorm.DB, integration *Integration) error
	DeleteIntegration(ctx context.Context, conn *gorm.DB, id string) error

	InsertWebhook(ctx context.Context, conn *gorm.DB, webhook *Webhook) error
	WebhooksForIntegration(ctx context.Context, conn *gorm.DB, integrationID string) ([]Webhook, error)
	UpdateWebhook(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error
}
