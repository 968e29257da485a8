package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"partner-portal/internal/domain/verification"
	"partner-portal/internal/infra"
	"partner-portal/internal/usecase/commands"
)

// ChallengeRepository keeps OTP challenges in Redis so the key TTL is
// the expiry: an expired challenge is simply gone, no sweeper needed.
type ChallengeRepository struct {
	client *redis.Client
}

func NewChallengeRepository(client *redis.Client) commands.ChallengeRepository {
	return &ChallengeRepository{client: client}
}

func challengeKey(purpose verification.Purpose, userID uuid.UUID) string {
	return fmt.Sprintf("verification:%s:%s", purpose, userID)
}

func (r *ChallengeRepository) Put(ctx context.Context, ch *verification.Challenge) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal challenge", err)
	}

	ttl := time.Until(ch.ExpiresAt)
	if ttl <= 0 {
		return infra.WrapRepoErr("challenge already expired", nil)
	}

	// SET overwrites any previous challenge for this (purpose, user).
	if err := r.client.Set(ctx, challengeKey(ch.Purpose, ch.UserID), payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store challenge", err, infra.KindUnavailable)
	}
	return nil
}

func (r *ChallengeRepository) Get(ctx context.Context, userID uuid.UUID, purpose verification.Purpose) (*verification.Challenge, error) {
	payload, err := r.client.Get(ctx, challengeKey(purpose, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("challenge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load challenge", err, infra.KindUnavailable)
	}

	var ch verification.Challenge
	if err := json.Unmarshal(payload, &ch); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal challenge", err)
	}
	return &ch, nil
}

func (r *ChallengeRepository) Delete(ctx context.Context, userID uuid.UUID, purpose verification.Purpose) error {
	if err := r.client.Del(ctx, challengeKey(purpose, userID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete challenge", err, infra.KindUnavailable)
	}
	return nil
}
