// Package domain contains persistence models for outbound email and the
// integrations/webhooks that react to platform events.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// EmailStatus tracks the send pipeline for a post's email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusSubmitting EmailStatus = "submitting"
	EmailStatusSubmitted  EmailStatus = "submitted"
	EmailStatusFailed     EmailStatus = "failed"
)

// Email is the one email campaign for a post (post_id is unique). The
// aggregate counters only ever grow; per-recipient truth lives in
// EmailRecipient rows.
type Email struct {
	ID              string         `gorm:"primaryKey;size:24"`
	PostID          string         `gorm:"column:post_id;size:24;not null;uniqueIndex"`
	UUID            string         `gorm:"column:uuid;size:36;not null"`
	Status          EmailStatus    `gorm:"size:50;not null;default:'pending'"`
	RecipientFilter string         `gorm:"size:50;not null;default:'status:-free'"`
	Error           *string        `gorm:"size:2000"`
	ErrorData       datatypes.JSON `gorm:"column:error_data"`
	EmailCount      int            `gorm:"not null;default:0"`
	DeliveredCount  int            `gorm:"not null;default:0"`
	OpenedCount     int            `gorm:"not null;default:0"`
	FailedCount     int            `gorm:"not null;default:0"`
	Subject         *string        `gorm:"size:300"`
	From            *string        `gorm:"column:from;size:2000"`
	ReplyTo         *string        `gorm:"column:reply_to;size:2000"`
	HTML            *string        `gorm:"column:html;type:longtext"`
	Plaintext       *string        `gorm:"type:longtext"`
	TrackOpens      bool           `gorm:"not null;default:0"`
	SubmittedAt     time.Time      `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"not null"`
	CreatedBy       string         `gorm:"size:24;not null"`
	UpdatedAt       *time.Time     `gorm:""`
	UpdatedBy       *string        `gorm:"size:24"`
}

// TableName sets the database table name.
func (Email) TableName() string { return "emails" }

// EmailBatch is one provider submission for an email; the provider assigns
// its own id once accepted.
type EmailBatch struct {
	ID            string    `gorm:"primaryKey;size:24"`
	EmailID       string    `gorm:"column:email_id;size:24;not null;index"`
	ProviderID    *string   `gorm:"column:provider_id;size:255"`
	Status        string    `gorm:"size:50;not null;default:'pending'"`
	MemberSegment *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (EmailBatch) TableName() string { return "email_batches" }

// EmailRecipient snapshots member identity at send time. member_id is a
// plain column, not a foreign key: deleting the member later must not
// rewrite the history of what was sent to whom.
type EmailRecipient struct {
	ID          string     `gorm:"primaryKey;size:24"`
	EmailID     string     `gorm:"column:email_id;size:24;not null;index:email_recipients_email_id_member_email_index,priority:1"`
	MemberID    string     `gorm:"column:member_id;size:24;not null;index"`
	BatchID     string     `gorm:"column:batch_id;size:24;not null;index"`
	ProcessedAt *time.Time `gorm:""`
	DeliveredAt *time.Time `gorm:"index"`
	OpenedAt    *time.Time `gorm:"index"`
	FailedAt    *time.Time `gorm:"index"`
	MemberUUID  string     `gorm:"column:member_uuid;size:36;not null"`
	MemberEmail string     `gorm:"column:member_email;size:191;not null;index:email_recipients_email_id_member_email_index,priority:2"`
	MemberName  *string    `gorm:"column:member_name;size:191"`
}

// TableName sets the database table name.
func (EmailRecipient) TableName() string { return "email_recipients" }

// Integration is an external application with API access.
type Integration struct {
	ID          string     `gorm:"primaryKey;size:24"`
	Type        string     `gorm:"size:50;not null;default:'custom'"`
	Name        string     `gorm:"size:191;not null"`
	Slug        string     `gorm:"size:191;not null;uniqueIndex"`
	IconImage   *string    `gorm:"size:2000"`
	Description *string    `gorm:"size:2000"`
	CreatedAt   time.Time  `gorm:"not null"`
	CreatedBy   string     `gorm:"size:24;not null"`
	UpdatedAt   *time.Time `gorm:""`
	UpdatedBy   *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Integration) TableName() string { return "integrations" }

// Webhook belongs to exactly one integration and cascades away with it.
type Webhook struct {
	ID                  string     `gorm:"primaryKey;size:24"`
	Event               string     `gorm:"size:50;not null"`
	TargetURL           string     `gorm:"column:target_url;size:2000;not null"`
	Name                *string    `gorm:"size:191"`
	Secret              *string    `gorm:"size:191"`
	APIVersion          string     `gorm:"column:api_version;size:50;not null;default:'v2'"`
	IntegrationID       string     `gorm:"column:integration_id;size:24;not null;index"`
	Status              string     `gorm:"size:50;not null;default:'available'"`
	LastTriggeredAt     *time.Time `gorm:""`
	LastTriggeredStatus *string    `gorm:"size:50"`
	LastTriggeredError  *string    `gorm:"size:50"`
	CreatedAt           time.Time  `gorm:"not null"`
	CreatedBy           string     `gorm:"size:24;not null"`
	UpdatedAt           *time.Time `gorm:""`
	UpdatedBy           *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Webhook) TableName() string { return "webhooks" }
