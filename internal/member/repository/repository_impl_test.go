package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/inkpress/internal/member/domain"
	"github.com/smallbiznis/inkpress/pkg/db"
	"github.com/smallbiznis/inkpress/pkg/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(`PRAGMA foreign_keys = ON`).Error)

	statements := []string{
		`CREATE TABLE members (
			id TEXT PRIMARY KEY,
			uuid TEXT UNIQUE,
			email TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'free',
			name TEXT,
			note TEXT,
			geolocation TEXT,
			subscribed INTEGER DEFAULT 1,
			email_count INTEGER NOT NULL DEFAULT 0,
			email_opened_count INTEGER NOT NULL DEFAULT 0,
			email_open_rate INTEGER,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE labels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE members_labels (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			label_id TEXT NOT NULL REFERENCES labels (id) ON DELETE CASCADE,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			monthly_price_id TEXT,
			yearly_price_id TEXT,
			description TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE members_products (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			product_id TEXT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE offers (
			id TEXT PRIMARY KEY,
			active INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL UNIQUE,
			code TEXT NOT NULL UNIQUE,
			product_id TEXT NOT NULL REFERENCES products (id),
			stripe_coupon_id TEXT UNIQUE,
			interval TEXT NOT NULL,
			currency TEXT,
			discount_type TEXT NOT NULL,
			discount_amount INTEGER NOT NULL,
			duration TEXT NOT NULL,
			duration_in_months INTEGER,
			portal_title TEXT,
			portal_description TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE members_stripe_customers (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			customer_id TEXT NOT NULL UNIQUE,
			name TEXT,
			email TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE members_stripe_customers_subscriptions (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL REFERENCES members_stripe_customers (customer_id) ON DELETE CASCADE,
			subscription_id TEXT NOT NULL UNIQUE,
			stripe_price_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			cancel_at_period_end INTEGER NOT NULL DEFAULT 0,
			cancellation_reason TEXT,
			current_period_end TIMESTAMP NOT NULL,
			start_date TIMESTAMP NOT NULL,
			default_payment_card_last4 TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT,
			plan_id TEXT NOT NULL,
			plan_nickname TEXT NOT NULL,
			plan_interval TEXT NOT NULL,
			plan_amount INTEGER NOT NULL,
			plan_currency TEXT NOT NULL
		)`,
		`CREATE TABLE offer_redemptions (
			id TEXT PRIMARY KEY,
			offer_id TEXT NOT NULL REFERENCES offers (id) ON DELETE CASCADE,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			subscription_id TEXT NOT NULL REFERENCES members_stripe_customers_subscriptions (id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE members_status_events (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			from_status TEXT,
			to_status TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE members_login_events (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE members_payment_events (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			amount INTEGER NOT NULL,
			currency TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE members_subscribe_events (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			subscribed INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL,
			source TEXT
		)`,
		`CREATE TABLE members_email_change_events (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL REFERENCES members (id) ON DELETE CASCADE,
			to_email TEXT NOT NULL,
			from_email TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE email_recipients (
			id TEXT PRIMARY KEY,
			email_id TEXT NOT NULL,
			member_id TEXT NOT NULL,
			batch_id TEXT NOT NULL,
			member_uuid TEXT NOT NULL,
			member_email TEXT NOT NULL,
			member_name TEXT
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newMember(email string) *domain.Member {
	id := identifier.New()
	uuid := identifier.UUID()
	return &domain.Member{
		ID:         id,
		UUID:       &uuid,
		Email:      email,
		Status:     domain.MemberStatusFree,
		Subscribed: true,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  id,
	}
}

func TestMemberLifecycle(t *testing.T) {
	conn := setupMemberDB(t)
	repo := Provide()
	ctx := context.Background()

	member := newMember("reader@example.com")
	require.NoError(t, repo.InsertMember(ctx, conn, member))

	t.Run("email is unique", func(t *testing.T) {
		err := repo.InsertMember(ctx, conn, newMember("reader@example.com"))
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	t.Run("status transition", func(t *testing.T) {
		now := time.Now().UTC()
		err := repo.UpdateMember(ctx, conn, member.ID, map[string]any{
			"status":     domain.MemberStatusPaid,
			"updated_at": now,
		})
		require.NoError(t, err)

		found, err := repo.FindMemberByEmail(ctx, conn, "reader@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.MemberStatusPaid, found.Status)
	})

	t.Run("missing member is nil, not an error", func(t *testing.T) {
		found, err := repo.FindMemberByEmail(ctx, conn, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestDeleteMemberCascades(t *testing.T) {
	conn := setupMemberDB(t)
	repo := Provide()
	events := ProvideEvents()
	ctx := context.Background()

	member := newMember("leaving@example.com")
	require.NoError(t, repo.InsertMember(ctx, conn, member))

	label := &domain.Label{
		ID:        identifier.New(),
		Name:      "VIP",
		Slug:      "vip",
		CreatedAt: time.Now().UTC(),
		CreatedBy: member.ID,
	}
	require.NoError(t, repo.InsertLabel(ctx, conn, label))
	require.NoError(t, repo.AttachLabel(ctx, conn, &domain.MembersLabel{
		ID:       identifier.New(),
		MemberID: member.ID,
		LabelID:  label.ID,
	}))

	require.NoError(t, events.AddLoginEvent(ctx, conn, &domain.MembersLoginEvent{
		ID:        identifier.New(),
		MemberID:  member.ID,
		CreatedAt: time.Now().UTC(),
	}))

	// Denormalized delivery row: carries the member id as a plain column.
	require.NoError(t, conn.Exec(`INSERT INTO email_recipients
		(id, email_id, member_id, batch_id, member_uuid, member_email)
		VALUES (?, ?, ?, ?, ?, ?)`,
		identifier.New(), identifier.New(), member.ID, identifier.New(),
		*member.UUID, member.Email).Error)

	require.NoError(t, repo.DeleteMember(ctx, conn, member.ID))

	var labelLinks, logins, recipients int64
	require.NoError(t, conn.Table("members_labels").Where("member_id = ?", member.ID).Count(&labelLinks).Error)
	require.NoError(t, conn.Table("members_login_events").Where("member_id = ?", member.ID).Count(&logins).Error)
	require.NoError(t, conn.Table("email_recipients").Where("member_id = ?", member.ID).Count(&recipients).Error)

	assert.Zero(t, labelLinks, "owned label links should cascade")
	assert.Zero(t, logins, "owned events should cascade")
	assert.EqualValues(t, 1, recipients, "delivery history is denormalized and must survive")

	// The label itself belongs to the site, not the member.
	found, err := conn.Table("labels").Where("id = ?", label.ID).Rows()
	require.NoError(t, err)
	assert.True(t, found.Next())
	require.NoError(t, found.Close())
}

func TestOfferRedemptionFlow(t *testing.T) {
	conn := setupMemberDB(t)
	repo := Provide()
	ctx := context.Background()

	member := newMember("deal-hunter@example.com")
	require.NoError(t, repo.InsertMember(ctx, conn, member))

	product := &domain.Product{
		ID:        identifier.New(),
		Name:      "Gold",
		Slug:      identifier.Slug("Gold"),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.InsertProduct(ctx, conn, product))

	offer := &domain.Offer{
		ID:             identifier.New(),
		Active:         true,
		Name:           "Spring Sale",
		Code:           "save10",
		ProductID:      product.ID,
		Interval:       "month",
		DiscountType:   "percent",
		DiscountAmount: 10,
		Duration:       "once",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.InsertOffer(ctx, conn, offer))

	t.Run("offer code is unique", func(t *testing.T) {
		dup := *offer
		dup.ID = identifier.New()
		dup.Name = "Spring Sale Again"
		err := repo.InsertOffer(ctx, conn, &dup)
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	customer := &domain.MembersStripeCustomer{
		ID:         identifier.New(),
		MemberID:   member.ID,
		CustomerID: "cus_123",
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  member.ID,
	}
	require.NoError(t, repo.InsertStripeCustomer(ctx, conn, customer))

	sub := &domain.MembersStripeCustomersSubscription{
		ID:               identifier.New(),
		CustomerID:       "cus_123",
		SubscriptionID:   "sub_123",
		Status:           "active",
		CurrentPeriodEnd: time.Now().UTC().AddDate(0, 1, 0),
		StartDate:        time.Now().UTC(),
		CreatedAt:        time.Now().UTC(),
		CreatedBy:        member.ID,
		PlanID:           "price_gold_month",
		PlanNickname:     "Gold Monthly",
		PlanInterval:     "month",
		PlanAmount:       500,
		PlanCurrency:     "usd",
	}
	require.NoError(t, repo.InsertSubscription(ctx, conn, sub))

	found, err := repo.FindOfferByCode(ctx, conn, "save10")
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, repo.RedeemOffer(ctx, conn, &domain.OfferRedemption{
		ID:             identifier.New(),
		OfferID:        found.ID,
		MemberID:       member.ID,
		SubscriptionID: sub.ID,
		CreatedAt:      time.Now().UTC(),
	}))

	subs, err := repo.SubscriptionsForMember(ctx, conn, member.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub_123", subs[0].SubscriptionID)
	assert.Equal(t, "Gold Monthly", subs[0].PlanNickname)

	t.Run("subscription update", func(t *testing.T) {
		err := repo.UpdateSubscription(ctx, conn, "sub_123", map[string]any{
			"status":               "canceled",
			"cancel_at_period_end": true,
		})
		require.NoError(t, err)

		subs, err := repo.SubscriptionsForMember(ctx, conn, member.ID)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "canceled", subs[0].Status)
		assert.True(t, subs[0].CancelAtPeriodEnd)
	})
}

func TestStatusEventsRecordTransitions(t *testing.T) {
	conn := setupMemberDB(t)
	repo := Provide()
	events := ProvideEvents()
	ctx := context.Background()

	member := newMember("upgrader@example.com")
	require.NoError(t, repo.InsertMember(ctx, conn, member))

	free := string(domain.MemberStatusFree)
	paid := string(domain.MemberStatusPaid)
	require.NoError(t, events.AddStatusEvent(ctx, conn, &domain.MembersStatusEvent{
		ID:         identifier.New(),
		MemberID:   member.ID,
		FromStatus: nil,
		ToStatus:   &free,
		CreatedAt:  time.Now().UTC(),
	}))
	require.NoError(t, events.AddStatusEvent(ctx, conn, &domain.MembersStatusEvent{
		ID:         identifier.New(),
		MemberID:   member.ID,
		FromStatus: &free,
		ToStatus:   &paid,
		CreatedAt:  time.Now().UTC().Add(time.Second),
	}))

	recorded, err := events.StatusEventsForMember(ctx, conn, member.ID)
	require.NoError(t, err)
	require.Len(t, recorded, 2)
	assert.Nil(t, recorded[0].FromStatus)
	require.NotNil(t, recorded[1].FromStatus)
	assert.Equal(t, free, *recorded[1].FromStatus)
	require.NotNil(t, recorded[1].ToStatus)
	assert.Equal(t, paid, *recorded[1].ToStatus)
}
