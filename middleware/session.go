package middleware

import "context"

// SessionReader is the slice of the session store the auth guard needs:
// whether a session is still live, and the display name cached on it.
type SessionReader interface {
	IsAlive(ctx context.Context, sid string) bool
	GetName(ctx context.Context, sid string) (string, error)
}
