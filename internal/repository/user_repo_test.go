package repository

import (
	"context"
	"testing"

	"storefront/internal/database"
	"storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *UserRepository {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewUserRepository(db)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u := &domain.User{
		Name:         "A",
		Email:        "A@X.com",
		PasswordHash: "hash",
		Role:         domain.RoleCustomer,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	// email is normalized on write
	assert.Equal(t, "a@x.com", u.Email)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Equal(t, domain.RoleCustomer, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "  A@x.COM ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &domain.User{
		Name:  "A",
		Email: "a@x.com",
		Role:  domain.RoleCustomer,
	}))

	exists, err = repo.ExistsByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.True(t, exists)
}
