package otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"boxarena/internal/infra"
	"boxarena/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Channel is where a verification code was delivered.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// RedisStore keeps verification codes in Redis with a TTL instead of an
// in-process map, so expiry survives restarts and holds across instances.
// A code is deleted on successful verification (single use) and after too
// many failed attempts.
type RedisStore struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

func NewRedisStore(client *redis.Client, ttl time.Duration, maxAttempts int) *RedisStore {
	return &RedisStore{
		client:      client,
		ttl:         ttl,
		maxAttempts: maxAttempts,
	}
}

func codeKey(channel Channel, contact string) string {
	return fmt.Sprintf("otp:%s:%s", channel, contact)
}

func attemptsKey(channel Channel, contact string) string {
	return fmt.Sprintf("otp:%s:%s:attempts", channel, contact)
}

// Save stores a fresh code, replacing any outstanding one and resetting the
// attempt counter.
func (s *RedisStore) Save(ctx context.Context, channel Channel, contact, code string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(channel, contact), code, s.ttl)
	pipe.Del(ctx, attemptsKey(channel, contact))
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to store otp", err)
	}
	return nil
}

// Verify checks the submitted code. Expiry is enforced by the key TTL; a
// match consumes the code, a mismatch burns one attempt.
func (s *RedisStore) Verify(ctx context.Context, channel Channel, contact, code string) error {
	stored, err := s.client.Get(ctx, codeKey(channel, contact)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errs.ErrOTPNotFound
		}
		return infra.WrapRepoErr("failed to read otp", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		attempts, incErr := s.client.Incr(ctx, attemptsKey(channel, contact)).Result()
		if incErr != nil {
			return infra.WrapRepoErr("failed to count otp attempt", incErr)
		}
		s.client.Expire(ctx, attemptsKey(channel, contact), s.ttl)
		if attempts >= int64(s.maxAttempts) {
			s.client.Del(ctx, codeKey(channel, contact), attemptsKey(channel, contact))
			return errs.ErrOTPTooManyAttempts
		}
		return errs.ErrOTPMismatch
	}

	if err := s.client.Del(ctx, codeKey(channel, contact), attemptsKey(channel, contact)).Err(); err != nil {
		return infra.WrapRepoErr("failed to consume otp", err)
	}
	return nil
}

// MarkVerified remembers a successful verification briefly so registration
// can require it without re-sending a code.
func (s *RedisStore) MarkVerified(ctx context.Context, channel Channel, contact string) error {
	key := fmt.Sprintf("otp-verified:%s:%s", channel, contact)
	if err := s.client.Set(ctx, key, "1", s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to mark contact verified", err)
	}
	return nil
}

// ConsumeVerified checks and clears the verified flag in one step.
func (s *RedisStore) ConsumeVerified(ctx context.Context, channel Channel, contact string) (bool, error) {
	key := fmt.Sprintf("otp-verified:%s:%s", channel, contact)
	_, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to consume verified flag", err)
	}
	return true, nil
}
