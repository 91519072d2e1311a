package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/config"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

func newUserService(t *testing.T) UserService {
	t.Helper()

	db := newTestDB(t)
	jwtCfg := &config.JWT{Secret: "test-secret", TTLHours: 1}
	return NewUserService(repository.NewUserRepository(db), jwtCfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "jane@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.Equal(t, "BRONZE", user.Tier)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	token, logged, err := svc.Login(ctx, "jane@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := auth.Parse(&config.JWT{Secret: "test-secret"}, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "jane@example.com", "another password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane@example.com", "correct horse battery")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "jane@example.com", "wrong password!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDashboardByRole(t *testing.T) {
	svc := newUserService(t)

	assert.Equal(t, "/admin", svc.Dashboard(model.RoleAdmin))
	assert.Equal(t, "/editor", svc.Dashboard(model.RoleEditor))
	assert.Equal(t, "/manager", svc.Dashboard(model.RoleManager))
	assert.Equal(t, "/account", svc.Dashboard(model.RoleCustomer))
	assert.Equal(t, "/account/pro", svc.Dashboard(model.RoleProCustomer))
	assert.Equal(t, "/account", svc.Dashboard(model.Role("UNKNOWN")))
}
