// Package identity supplies the authenticated owner id. Credentials are
// managed elsewhere; this package only verifies what arrives and answers
// "who is acting" per call.
package identity

import (
	"context"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// ErrNotAuthenticated is returned when no owner identity is available.
var ErrNotAuthenticated = dErrors.New(dErrors.CodeNotAuthenticated, "no authenticated owner")

// Provider answers the current owner id. It is re-evaluated on every call;
// there is no session cached inside the core.
type Provider interface {
	CurrentOwner(ctx context.Context) (string, error)
}

type ctxKey struct{}

var ownerKey = ctxKey{}

// WithOwner stores a resolved owner id in the context. The HTTP middleware
// calls this after validating the bearer token.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

// ContextProvider reads the owner id placed in the context by middleware.
type ContextProvider struct{}

func (ContextProvider) CurrentOwner(ctx context.Context) (string, error) {
	if id, ok := ctx.Value(ownerKey).(string); ok && id != "" {
		return id, nil
	}
	return "", ErrNotAuthenticated
}

// Static always answers with a fixed owner, or NotAuthenticated when empty.
// Test double.
type Static struct {
	OwnerID string
}

func (s Static) CurrentOwner(context.Context) (string, error) {
	if s.OwnerID == "" {
		return "", ErrNotAuthenticated
	}
	return s.OwnerID, nil
}
