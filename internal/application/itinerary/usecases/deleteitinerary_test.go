package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
)

func TestDeleteItinerary_Success(t *testing.T) {
	deleted := false
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "user-1"), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(7), id)
			deleted = true
			return nil
		},
	}

	uc := NewDeleteItineraryUseCase(repo, testLogger())
	require.NoError(t, uc.Execute(context.Background(), "user-1", 7))
	assert.True(t, deleted)
}

func TestDeleteItinerary_NotFound(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return nil, repository.ErrItineraryNotFound
		},
	}

	uc := NewDeleteItineraryUseCase(repo, testLogger())
	err := uc.Execute(context.Background(), "user-1", 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteItinerary_ForeignItineraryLooksMissing(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "someone-else"), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			t.Fatal("delete must not run for a foreign itinerary")
			return nil
		},
	}

	uc := NewDeleteItineraryUseCase(repo, testLogger())
	err := uc.Execute(context.Background(), "user-1", 7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
