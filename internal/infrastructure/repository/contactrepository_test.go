package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/domain/contact"
	"parksexplorer/internal/infrastructure/persistence/models"
)

func TestContactRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()
	seedUser(t, db, "user-1")

	t.Run("assigns id and persists the submission", func(t *testing.T) {
		c, err := contact.NewContact("user-1", "Jamie Rivera", "jamie@example.com", "Loved the itinerary planner")
		require.NoError(t, err)

		err = repo.Save(ctx, c)
		require.NoError(t, err)
		assert.NotZero(t, c.ID())

		var model models.ContactModel
		err = db.First(&model, c.ID()).Error
		require.NoError(t, err)
		assert.Equal(t, "user-1", model.UserID)
		assert.Equal(t, "Jamie Rivera", model.Name)
		assert.Equal(t, "jamie@example.com", model.Email)
		assert.Equal(t, "Loved the itinerary planner", model.Message)
	})
}
