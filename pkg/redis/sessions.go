package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session revocation: when an account is soft-deleted, every token issued
// before the revocation instant becomes invalid. The instant is stored per
// user and checked against the token's iat claim by the auth middleware.
//
// Redis is the primary store so revocation survives restarts and is shared
// across instances; a process-local map is the fallback when Redis is not
// configured.

const revokedKeyPrefix = "session:revoked:"

// Keep revocation records around longer than any token lifetime
const revokedTTL = 30 * 24 * time.Hour

// SessionRevoker records and reports per-user token revocation instants
type SessionRevoker struct {
	fallback sync.Map // userID -> time.Time
}

func NewSessionRevoker() *SessionRevoker {
	return &SessionRevoker{}
}

func revokedKey(userID int64) string {
	return revokedKeyPrefix + strconv.FormatInt(userID, 10)
}

// RevokeAll invalidates every token issued to userID before now
func (s *SessionRevoker) RevokeAll(ctx context.Context, userID int64) error {
	now := time.Now()
	if c := Client(); c != nil {
		err := c.Set(ctx, revokedKey(userID), now.Unix(), revokedTTL).Err()
		if err == nil {
			return nil
		}
		// Fall through to the local map so the revocation still takes
		// effect on this instance.
		s.fallback.Store(userID, now)
		return fmt.Errorf("session revocation not persisted: %w", err)
	}
	s.fallback.Store(userID, now)
	return nil
}

// RevokedAt returns the revocation instant for userID, or the zero time if
// no revocation is recorded.
func (s *SessionRevoker) RevokedAt(ctx context.Context, userID int64) (time.Time, error) {
	if c := Client(); c != nil {
		val, err := c.Get(ctx, revokedKey(userID)).Result()
		if err == redis.Nil {
			return time.Time{}, nil
		}
		if err == nil {
			unix, perr := strconv.ParseInt(val, 10, 64)
			if perr != nil {
				return time.Time{}, perr
			}
			return time.Unix(unix, 0), nil
		}
		// Redis error: fall back to the local map rather than failing the
		// request path.
	}
	if v, ok := s.fallback.Load(userID); ok {
		return v.(time.Time), nil
	}
	return time.Time{}, nil
}
