package auth

import (
	"context"
	"fmt"
)

// State is the caller's authentication snapshot. It is read fresh on every
// cart operation rather than cached, so the guest/authenticated decision can
// never go stale across a login or logout.
type State struct {
	IsAuthenticated bool
	IsGuest         bool
	UserID          uint
	DeviceID        string
}

// Guest returns the state for an unauthenticated session tied to a device.
func Guest(deviceID string) State {
	return State{IsGuest: true, DeviceID: deviceID}
}

// Authenticated returns the state for a logged-in user.
func Authenticated(userID uint) State {
	return State{IsAuthenticated: true, UserID: userID}
}

// OwnerKey identifies the cart owner for persistence and lock scoping.
func (s State) OwnerKey() string {
	if s.IsAuthenticated {
		return fmt.Sprintf("user:%d", s.UserID)
	}
	return "guest:" + s.DeviceID
}

type ctxKey string

const (
	stateKey ctxKey = "auth_state"
	tokenKey ctxKey = "access_token"
)

// WithAccessToken stores the raw bearer token so outbound API calls can
// re-attach it.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func AccessTokenFrom(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey).(string); ok {
		return t
	}
	return ""
}

func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

// StateFrom returns the auth state carried by ctx. A context without one is
// treated as an anonymous guest with no device identity.
func StateFrom(ctx context.Context) State {
	if s, ok := ctx.Value(stateKey).(State); ok {
		return s
	}
	return State{IsGuest: true}
}
