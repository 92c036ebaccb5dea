package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func storedItinerary(t *testing.T, ownerID string) *itinerary.Itinerary {
	t.Helper()
	start, _ := time.Parse(itinerary.DateLayout, "2026-06-01")
	end, _ := time.Parse(itinerary.DateLayout, "2026-06-03")
	return itinerary.Reconstruct(7, ownerID, "Yosemite Itinerary", "plan",
		start, end, nil, time.Now(), time.Now())
}

func TestUpdateItinerary_Success(t *testing.T) {
	var updated *itinerary.Itinerary
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			assert.Equal(t, uint(7), id)
			return storedItinerary(t, "user-1"), nil
		},
		UpdateFunc: func(ctx context.Context, it *itinerary.Itinerary) error {
			updated = it
			return nil
		},
	}

	uc := NewUpdateItineraryUseCase(repo, testLogger())
	resp, err := uc.Execute(context.Background(), "user-1", 7, dto.UpdateItineraryRequest{
		Title:   strPtr("Renamed Trip"),
		EndDate: strPtr("2026-06-05"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Renamed Trip", resp.Title)
	assert.Equal(t, "2026-06-01", resp.StartDate)
	assert.Equal(t, "2026-06-05", resp.EndDate)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed Trip", updated.Title())
}

func TestUpdateItinerary_NotFound(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return nil, repository.ErrItineraryNotFound
		},
	}

	uc := NewUpdateItineraryUseCase(repo, testLogger())
	resp, err := uc.Execute(context.Background(), "user-1", 99, dto.UpdateItineraryRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateItinerary_ForeignItineraryLooksMissing(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "someone-else"), nil
		},
		UpdateFunc: func(ctx context.Context, it *itinerary.Itinerary) error {
			t.Fatal("update must not run for a foreign itinerary")
			return nil
		},
	}

	uc := NewUpdateItineraryUseCase(repo, testLogger())
	resp, err := uc.Execute(context.Background(), "user-1", 7, dto.UpdateItineraryRequest{
		Title: strPtr("hijacked"),
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFoundError(err), "ownership failures must be indistinguishable from missing rows")
}

func TestUpdateItinerary_MalformedDate(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "user-1"), nil
		},
	}

	uc := NewUpdateItineraryUseCase(repo, testLogger())
	resp, err := uc.Execute(context.Background(), "user-1", 7, dto.UpdateItineraryRequest{
		StartDate: strPtr("06/01/2026"),
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "invalid start_date")
}

func TestUpdateItinerary_MergedDateOrderingViolation(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "user-1"), nil
		},
	}

	uc := NewUpdateItineraryUseCase(repo, testLogger())
	// Start date moved past the stored end date.
	resp, err := uc.Execute(context.Background(), "user-1", 7, dto.UpdateItineraryRequest{
		StartDate: strPtr("2026-06-10"),
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsValidationError(err))
}
