package domain

import (
	"time"
)

// Event models capture state transitions (from_X → to_X) rather than
// current state. They are immutable once written: the repository exposes no
// update or delete for them, and rows only disappear through the owning
// member's cascade.

type MembersPaymentEvent struct {
	ID        string    `gorm:"primaryKey;size:24"`
	MemberID  string    `gorm:"column:member_id;size:24;not null;index"`
	Amount    int       `gorm:"not null"`
	Currency  string    `gorm:"size:191;not null"`
	Source    string    `gorm:"size:50;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersPaymentEvent) TableName() string { return "members_payment_events" }

type MembersPaidSubscriptionEvent struct {
	ID        string    `gorm:"primaryKey;size:24"`
	MemberID  string    `gorm:"column:member_id;size:24;not null;index"`
	FromPlan  *string   `gorm:"column:from_plan;size:255"`
	ToPlan    *string   `gorm:"column:to_plan;size:255"`
	Currency  string    `gorm:"size:191;not null"`
	Source    string    `gorm:"size:50;not null"`
	MrrDelta  int       `gorm:"column:mrr_delta;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersPaidSubscriptionEvent) TableName() string { return "members_paid_subscription_events" }

type MembersProductEvent struct {
	ID        string    `gorm:"primaryKey;size:24"`
	MemberID  string    `gorm:"column:member_id;size:24;not null;index"`
	ProductID string    `gorm:"column:product_id;size:24;not null;index"`
	Action    *string   `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersProductEvent) TableName() string { return "members_product_events" }

type MembersStatusEvent struct {
	ID         string    `gorm:"primaryKey;size:24"`
	MemberID   string    `gorm:"column:member_id;size:24;not null;index"`
	FromStatus *string   `gorm:"column:from_status;size:50"`
	ToStatus   *string   `gorm:"column:to_status;size:50"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersStatusEvent) TableName() string { return "members_status_events" }

type MembersSubscribeEvent struct {
	ID         string    `gorm:"primaryKey;size:24"`
	MemberID   string    `gorm:"column:member_id;size:24;not null;index"`
	Subscribed bool      `gorm:"not null;default:1"`
	CreatedAt  time.Time `gorm:"not null"`
	Source     *string   `gorm:"size:50"`
}

// TableName sets the database table name.
func (MembersSubscribeEvent) TableName() string { return "members_subscribe_events" }

type MembersLoginEvent struct {
	ID        string    `gorm:"primaryKey;size:24"`
	MemberID  string    `gorm:"column:member_id;size:24;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersLoginEvent) TableName() string { return "members_login_events" }

type MembersEmailChangeEvent struct {
	ID        string    `gorm:"primaryKey;size:24"`
	MemberID  string    `gorm:"column:member_id;size:24;not null;index"`
	ToEmail   string    `gorm:"column:to_email;size:191;not null"`
	FromEmail string    `gorm:"column:from_email;size:191;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MembersEmailChangeEvent) TableName() string { return "members_email_change_events" }

// TempMemberAnalyticEvent is scratch analytics capture; unlike the other
// event tables it carries no foreign key so rows survive member deletion.
type TempMemberAnalyticEvent struct {
	ID           string    `gorm:"primaryKey;size:24"`
	EventName    string    `gorm:"size:50;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	MemberID     string    `gorm:"column:member_id;size:24;not null"`
	MemberStatus string    `gorm:"size:50;not null"`
	EntryID      *string   `gorm:"column:entry_id;size:24"`
	SourceURL    *string   `gorm:"column:source_url;size:2000"`
	Metadata     *string   `gorm:"column:metadata;size:191"`
}

// TableName sets the database table name.
func (TempMemberAnalyticEvent) TableName() string { return "temp_member_analytic_events" }
