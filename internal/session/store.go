// Package session keeps authenticated identities in redis, keyed by an
// opaque bearer token. There is no process-wide current-user slot: each
// request resolves its token and the identity is passed explicitly into
// every core call.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booklend/internal/domain/account"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

type entry struct {
	Identity  account.Identity `json:"identity"`
	CreatedAt time.Time        `json:"created_at"`
}

type Store struct {
	rdb *redis.Client
	// ttl of 0 means sessions never expire, matching the reference
	// behavior of never timing a login out.
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores the identity under a fresh opaque token and returns the token.
func (s *Store) Create(ctx context.Context, ident account.Identity) (string, error) {
	token := uuid.NewString()
	raw, err := json.Marshal(entry{Identity: ident, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, raw, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (account.Identity, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return account.Identity{}, ErrNotFound
	}
	if err != nil {
		return account.Identity{}, err
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return account.Identity{}, err
	}
	return e.Identity, nil
}

// Delete removes the session; deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
