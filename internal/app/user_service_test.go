package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogit/internal/repository"
)

func TestUserProfile_FalsySkipUpdate(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo, "test-secret", testTokenTTL)
	users := NewUserService(userRepo)

	created, err := auth.Register(registerInput())
	require.NoError(t, err)

	updated, err := users.UpdateProfile(UpdateProfileInput{
		UserID:   created.ID,
		LastName: "Byron",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName, "omitted field must stay unchanged")
	assert.Equal(t, "Byron", updated.LastName)
	assert.Equal(t, "ada", updated.Username)

	// All-empty input is a no-op, not an error.
	unchanged, err := users.UpdateProfile(UpdateProfileInput{UserID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Byron", unchanged.LastName)
}

func TestUserProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepository(db))

	_, err := users.Profile(999)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteAccount_SoftFlag(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo, "test-secret", testTokenTTL)
	users := NewUserService(userRepo)

	created, err := auth.Register(registerInput())
	require.NoError(t, err)

	require.NoError(t, users.DeleteAccount(created.ID))

	_, err = users.Profile(created.ID)
	require.ErrorIs(t, err, ErrProfileNotFound)

	require.ErrorIs(t, users.DeleteAccount(created.ID), ErrProfileNotFound)
}
