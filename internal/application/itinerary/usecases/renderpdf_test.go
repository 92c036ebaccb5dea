package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
)

func TestRenderPDF_Success(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "user-1"), nil
		},
	}
	renderer := &mockRenderer{
		RenderItineraryFunc: func(it *itinerary.Itinerary) ([]byte, error) {
			return []byte("%PDF-1.3 stub"), nil
		},
	}

	uc := NewRenderPDFUseCase(repo, renderer, testLogger())
	data, filename, err := uc.Execute(context.Background(), "user-1", 7)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3 stub"), data)
	assert.Equal(t, "itinerary_7.pdf", filename)
}

func TestRenderPDF_NotFound(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return nil, repository.ErrItineraryNotFound
		},
	}

	uc := NewRenderPDFUseCase(repo, &mockRenderer{}, testLogger())
	data, _, err := uc.Execute(context.Background(), "user-1", 99)

	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRenderPDF_ForeignItineraryLooksMissing(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "someone-else"), nil
		},
	}
	renderer := &mockRenderer{
		RenderItineraryFunc: func(it *itinerary.Itinerary) ([]byte, error) {
			t.Fatal("renderer must not run for a foreign itinerary")
			return nil, nil
		},
	}

	uc := NewRenderPDFUseCase(repo, renderer, testLogger())
	_, _, err := uc.Execute(context.Background(), "user-1", 7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRenderPDF_RendererFailure(t *testing.T) {
	repo := &mockItineraryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
			return storedItinerary(t, "user-1"), nil
		},
	}
	renderer := &mockRenderer{
		RenderItineraryFunc: func(it *itinerary.Itinerary) ([]byte, error) {
			return nil, fmt.Errorf("font descriptor missing")
		},
	}

	uc := NewRenderPDFUseCase(repo, renderer, testLogger())
	data, _, err := uc.Execute(context.Background(), "user-1", 7)

	require.Error(t, err)
	assert.Nil(t, data)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
