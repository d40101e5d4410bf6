// Package otp issues and verifies the one-time passwords used for phone
// login. Codes live in Redis under a TTL, hashed with bcrypt at rest, and are
// single-use with a bounded number of verify attempts.
package otp

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const (
	codeLength  = 6
	maxAttempts = 5
	keyPrefix   = "otp:"
)

var (
	ErrNotFound        = errors.New("otp expired or never requested")
	ErrMismatch        = errors.New("incorrect otp code")
	ErrTooManyAttempts = errors.New("too many incorrect attempts, request a new otp")
)

type record struct {
	Hash     string `json:"hash"`
	Attempts int    `json:"attempts"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// Initialize connects to Redis and verifies the connection.
func Initialize(redisURL string, ttl time.Duration) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{rdb: rdb, ttl: ttl}, nil
}

// NewStore wraps an existing client; used by tests.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Issue generates a fresh code for the phone number, replacing any previous
// one, and returns the plaintext code for delivery to the user.
func (s *Store) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	hash, err := hashCode(code)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(record{Hash: hash})
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, keyPrefix+phone, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	return code, nil
}

// Verify checks the code for the phone number. A correct code consumes the
// entry; an incorrect one burns an attempt, and the entry is destroyed once
// the attempt budget is spent.
func (s *Store) Verify(ctx context.Context, phone, code string) error {
	key := keyPrefix + phone

	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get otp: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return fmt.Errorf("failed to unmarshal otp record: %w", err)
	}

	if rec.Attempts >= maxAttempts {
		_ = s.rdb.Del(ctx, key).Err()
		return ErrTooManyAttempts
	}

	if !checkCode(code, rec.Hash) {
		rec.Attempts++
		if payload, err := json.Marshal(rec); err == nil {
			// Keep the original expiry window while counting the attempt.
			_ = s.rdb.Set(ctx, key, payload, redis.KeepTTL).Err()
		}
		return ErrMismatch
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}

	return nil
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", codeLength, n), nil
}

func hashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
