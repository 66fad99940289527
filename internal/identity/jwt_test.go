package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-key", "webkert-insurance")

	token, err := svc.GenerateToken("owner-1", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerID)
}

func TestJWTRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-key", "webkert-insurance")

	token, err := svc.GenerateToken("owner-1", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthenticated))
}

func TestJWTRejectsWrongKey(t *testing.T) {
	token, err := NewJWTService("key-a", "webkert-insurance").GenerateToken("owner-1", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTService("key-b", "webkert-insurance").ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthenticated))
}

func TestContextProvider(t *testing.T) {
	provider := ContextProvider{}

	_, err := provider.CurrentOwner(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	owner, err := provider.CurrentOwner(WithOwner(context.Background(), "owner-1"))
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)
}

func TestStaticProvider(t *testing.T) {
	_, err := Static{}.CurrentOwner(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	owner, err := Static{OwnerID: "owner-9"}.CurrentOwner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "owner-9", owner)
}
