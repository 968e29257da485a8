//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"partner-portal/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	testHashOnce sync.Once
	testHash     string
)

// testPasswordHash hashes TestPassword once per process; bcrypt is too
// slow to run per fixture.
func testPasswordHash(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testHash = h
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

// CreateTestPartner creates a partner profile with bank details on file.
func CreateTestPartner(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO partners (id, user_id, company_name, bank_name, bank_account_name, bank_account_number)
		VALUES ($1, $2, 'Test Events Inc.', 'Test Bank', 'Test Events Inc.', '1234567')
		ON CONFLICT (user_id) DO NOTHING`,
		partnerID, userID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM partners WHERE user_id = $1", userID).Scan(&partnerID)
	}

	return partnerID
}

// CreateTestPartnerWithoutBank creates a partner profile that cannot
// receive payouts yet.
func CreateTestPartnerWithoutBank(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO partners (id, user_id, company_name) VALUES ($1, $2, 'Test Events Inc.')",
		partnerID, userID)
	require.NoError(t, err)

	return partnerID
}

func CreateTestEvent(t *testing.T, db DBLike, partnerID uuid.UUID, title, status string) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO events (id, partner_id, title, status) VALUES ($1, $2, $3, $4)",
		eventID, partnerID, title, status)
	require.NoError(t, err)

	return eventID
}

func CreateTestBooking(t *testing.T, db DBLike, eventID uuid.UUID, amount decimal.Decimal, status string, paidAt time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO bookings (id, event_id, total_amount, status, paid_at) VALUES ($1, $2, $3, $4, $5)",
		bookingID, eventID, amount, status, paidAt)
	require.NoError(t, err)

	return bookingID
}

func CreateTestPayout(t *testing.T, db DBLike, partnerID, eventID uuid.UUID, amount decimal.Decimal, status string) uuid.UUID {
	t.Helper()

	payoutID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO payout_requests (id, partner_id, event_id, amount, status, requested_at) VALUES ($1, $2, $3, $4, $5, NOW())",
		payoutID, partnerID, eventID, amount, status)
	require.NoError(t, err)

	return payoutID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
