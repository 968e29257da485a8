//go:build unit

package payout_test

import (
	"testing"
	"time"

	"partner-portal/internal/domain/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	partnerID := uuid.New()
	eventID := uuid.New()
	now := time.Now()

	t.Run("creates a pending request", func(t *testing.T) {
		req, err := payout.NewRequest(partnerID, eventID, decimal.NewFromInt(100), now)
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, partnerID, req.PartnerID())
		assert.Equal(t, eventID, req.EventID())
		assert.Equal(t, payout.StatusPending, req.Status())
		assert.True(t, req.IsPending())
		assert.Nil(t, req.ProcessedAt())
	})

	t.Run("amount validation", func(t *testing.T) {
		cases := []struct {
			name   string
			amount decimal.Decimal
			errIs  error
		}{
			{name: "positive amount", amount: decimal.NewFromFloat(0.01)},
			{name: "zero amount", amount: decimal.Zero, errIs: payout.ErrInvalidAmount},
			{name: "negative amount", amount: decimal.NewFromInt(-5), errIs: payout.ErrInvalidAmount},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				req, err := payout.NewRequest(partnerID, eventID, c.amount, now)
				if c.errIs != nil {
					require.Nil(t, req)
					require.ErrorIs(t, err, c.errIs)
				} else {
					require.NoError(t, err)
					require.NotNil(t, req)
				}
			})
		}
	})

	t.Run("IDs are unique per request", func(t *testing.T) {
		req1, err1 := payout.NewRequest(partnerID, eventID, decimal.NewFromInt(10), now)
		req2, err2 := payout.NewRequest(partnerID, eventID, decimal.NewFromInt(10), now)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, req1.ID(), req2.ID())
	})
}

func TestStatus(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, valid := range []string{"pending", "paid", "rejected"} {
			st, err := payout.NewStatus(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, st.String())
		}

		_, err := payout.NewStatus("cancelled")
		require.ErrorIs(t, err, payout.ErrInvalidStatus)
	})

	t.Run("only rejection releases funds", func(t *testing.T) {
		assert.True(t, payout.StatusPending.Locked())
		assert.True(t, payout.StatusPaid.Locked())
		assert.False(t, payout.StatusRejected.Locked())
	})
}

func TestReconstructRequest(t *testing.T) {
	id := uuid.New()
	processedAt := time.Now()

	req := payout.ReconstructRequest(id, uuid.New(), uuid.New(),
		decimal.NewFromInt(250), payout.StatusPaid, processedAt.Add(-time.Hour), &processedAt)

	assert.Equal(t, id, req.ID())
	assert.Equal(t, payout.StatusPaid, req.Status())
	assert.False(t, req.IsPending())
	require.NotNil(t, req.ProcessedAt())
	assert.Equal(t, processedAt, *req.ProcessedAt())
}
