package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/domain/park"
)

func seedPark(t *testing.T, repo *ParkRepository, code, name, description string) *park.Park {
	t.Helper()

	p, err := park.NewPark(code, name, description)
	require.NoError(t, err)
	err = repo.Save(context.Background(), p)
	require.NoError(t, err)
	return p
}

func TestParkRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewParkRepository(db)
	ctx := context.Background()

	t.Run("round trip preserves fields", func(t *testing.T) {
		p, err := park.NewPark("YOSE", "Yosemite", "Granite cliffs and waterfalls")
		require.NoError(t, err)
		p.SetCoordinates(37.8651, -119.5383)
		p.SetOfficialWebsite("https://www.nps.gov/yose")
		p.SetLocation(map[string]interface{}{"state": "CA"})

		err = repo.Save(ctx, p)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "yose", found.ParkCode())
		assert.Equal(t, "Yosemite", found.Name())
		assert.Equal(t, "Granite cliffs and waterfalls", found.Description())
		require.True(t, found.HasCoordinates())
		assert.InDelta(t, 37.8651, *found.Latitude(), 0.0001)
		assert.InDelta(t, -119.5383, *found.Longitude(), 0.0001)
		assert.Equal(t, "https://www.nps.gov/yose", found.OfficialWebsite())
		assert.Equal(t, "CA", found.Location()["state"])
	})

	t.Run("unknown id returns sentinel", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrParkNotFound)
	})

	t.Run("duplicate park code should fail", func(t *testing.T) {
		seedPark(t, repo, "grca", "Grand Canyon", "A big canyon")

		dup, err := park.NewPark("GRCA", "Grand Canyon Copy", "Same code")
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		assert.Error(t, err)
	})
}

func TestParkRepository_FindByParkCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewParkRepository(db)
	ctx := context.Background()

	seedPark(t, repo, "zion", "Zion", "Sandstone canyons")

	t.Run("lookup is case insensitive", func(t *testing.T) {
		found, err := repo.FindByParkCode(ctx, "ZION")
		require.NoError(t, err)
		assert.Equal(t, "zion", found.ParkCode())
	})

	t.Run("unknown code returns sentinel", func(t *testing.T) {
		_, err := repo.FindByParkCode(ctx, "nope")
		assert.ErrorIs(t, err, ErrParkNotFound)
	})
}

func TestParkRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewParkRepository(db)
	ctx := context.Background()

	seedPark(t, repo, "arch", "Arches", "Sandstone arches")
	seedPark(t, repo, "yose", "Yosemite", "Granite cliffs")
	seedPark(t, repo, "grca", "Grand Canyon", "A big canyon")

	t.Run("orders by name and reports total", func(t *testing.T) {
		parks, total, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, parks, 3)
		assert.Equal(t, "Arches", parks[0].Name())
		assert.Equal(t, "Grand Canyon", parks[1].Name())
		assert.Equal(t, "Yosemite", parks[2].Name())
	})

	t.Run("offset and limit apply", func(t *testing.T) {
		parks, total, err := repo.List(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, parks, 1)
		assert.Equal(t, "Grand Canyon", parks[0].Name())
	})
}

func TestParkRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewParkRepository(db)
	ctx := context.Background()

	seedPark(t, repo, "yose", "Yosemite", "Granite cliffs and waterfalls")
	seedPark(t, repo, "grca", "Grand Canyon", "Carved by the Colorado River")
	seedPark(t, repo, "ever", "Everglades", "Subtropical wetlands")

	t.Run("matches name case-insensitively", func(t *testing.T) {
		parks, err := repo.Search(ctx, "YOSE")
		require.NoError(t, err)
		require.Len(t, parks, 1)
		assert.Equal(t, "Yosemite", parks[0].Name())
	})

	t.Run("matches description", func(t *testing.T) {
		parks, err := repo.Search(ctx, "colorado")
		require.NoError(t, err)
		require.Len(t, parks, 1)
		assert.Equal(t, "Grand Canyon", parks[0].Name())
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		parks, err := repo.Search(ctx, "volcano")
		require.NoError(t, err)
		assert.Empty(t, parks)
	})
}
