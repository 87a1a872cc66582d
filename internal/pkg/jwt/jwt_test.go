package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hr-portal-go/internal/domain/user"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	u := user.User{
		ID:       "user-1",
		Email:    "hr@example.com",
		FullName: "HR Person",
		Role:     user.RoleHR,
	}

	tokenString, expiresAt, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestActorFromClaims(t *testing.T) {
	actor, err := ActorFromClaims(map[string]interface{}{
		"user_id":   "user-1",
		"full_name": "HR Person",
		"role":      "hr",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, actor.Role)
	assert.Equal(t, "HR Person", actor.FullName)

	_, err = ActorFromClaims(map[string]interface{}{"user_id": "user-1"})
	assert.Error(t, err, "missing role must fail closed")

	_, err = ActorFromClaims(map[string]interface{}{
		"user_id": "user-1",
		"role":    "superuser",
	})
	assert.Error(t, err, "unknown role must fail closed")
}
