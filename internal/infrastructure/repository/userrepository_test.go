package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/domain/user"
)

func TestUserRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("round trip preserves fields", func(t *testing.T) {
		u, err := user.NewUser("b7e6a0f4-1111-2222-3333-444455556666", "jamie@example.com", "Jamie Rivera")
		require.NoError(t, err)

		err = repo.Save(ctx, u)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
		assert.Equal(t, "jamie@example.com", found.Email())
		assert.Equal(t, "Jamie Rivera", found.FullName())
	})

	t.Run("unknown id returns sentinel", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing-user")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate email should fail", func(t *testing.T) {
		first, err := user.NewUser("user-a", "dup@example.com", "First")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := user.NewUser("user-b", "dup@example.com", "Second")
		require.NoError(t, err)
		err = repo.Save(ctx, second)
		assert.Error(t, err)
	})
}
