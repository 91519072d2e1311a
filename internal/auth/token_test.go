package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/config"
	"storefront-backend/internal/model"
)

func TestSignParseRoundTrip(t *testing.T) {
	cfg := &config.JWT{Secret: "test-secret", TTLHours: 1}
	user := &model.User{ID: "user-1", Role: model.RoleProCustomer, Tier: "PLATINUM"}

	token, err := Sign(cfg, user)
	require.NoError(t, err)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, model.RoleProCustomer, claims.Role)
	assert.Equal(t, "PLATINUM", claims.Tier)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := &config.JWT{Secret: "test-secret", TTLHours: 1}
	token, err := Sign(cfg, &model.User{ID: "user-1", Role: model.RoleCustomer})
	require.NoError(t, err)

	_, err = Parse(&config.JWT{Secret: "other-secret"}, token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(&config.JWT{Secret: "test-secret"}, "not.a.token")
	assert.Error(t, err)
}
