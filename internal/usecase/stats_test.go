package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/usecase"
)

// TestComputeTripStats_NoRatedLocations checks that a trip whose
// locations are all unrated has no rating at all, not a zero one.
func TestComputeTripStats_NoRatedLocations(t *testing.T) {
	locations := []domain.Location{
		{ID: "a", TripID: "1", Rating: 0, Photos: []domain.Photo{{ID: "p1"}}},
		{ID: "b", TripID: "1", Rating: 0},
	}

	stats := usecase.ComputeTripStats("1", locations)

	assert.Nil(t, stats.Rating)
	assert.Equal(t, 1, stats.PhotoCount)
}

// TestComputeTripStats_PhotoCountIncludesUnrated checks that photos of
// unrated locations still count.
func TestComputeTripStats_PhotoCountIncludesUnrated(t *testing.T) {
	locations := []domain.Location{
		{ID: "a", TripID: "1", Rating: 5, Photos: []domain.Photo{{ID: "p1"}, {ID: "p2"}}},
		{ID: "b", TripID: "1", Rating: 0, Photos: []domain.Photo{{ID: "p3"}}},
	}

	stats := usecase.ComputeTripStats("1", locations)

	require.NotNil(t, stats.Rating)
	assert.Equal(t, 5.0, *stats.Rating)
	assert.Equal(t, 3, stats.PhotoCount)
}

// TestComputeTripStats_TripIsolation checks that locations of other
// trips never leak into the aggregate.
func TestComputeTripStats_TripIsolation(t *testing.T) {
	locations := []domain.Location{
		{ID: "a", TripID: "1", Rating: 4, Photos: []domain.Photo{{ID: "p1"}}},
		{ID: "b", TripID: "2", Rating: 1, Photos: []domain.Photo{{ID: "p2"}, {ID: "p3"}}},
	}

	stats := usecase.ComputeTripStats("1", locations)

	require.NotNil(t, stats.Rating)
	assert.Equal(t, 4.0, *stats.Rating)
	assert.Equal(t, 1, stats.PhotoCount)
}

// TestComputeTripStats_AverageAfterEdit covers the rating edit case:
// ratings 4 and 2, then the 4 edited down so 5 and 3 remain ⇒ 8/2... the
// direct check is that 5 and 3 average to exactly 4, and 5, 3, 2 to 10/3.
func TestComputeTripStats_AverageAfterEdit(t *testing.T) {
	locations := []domain.Location{
		{ID: "a", TripID: "1", Rating: 5},
		{ID: "b", TripID: "1", Rating: 3},
		{ID: "c", TripID: "1", Rating: 2},
	}

	stats := usecase.ComputeTripStats("1", locations)
	require.NotNil(t, stats.Rating)
	assert.InDelta(t, 10.0/3.0, *stats.Rating, 1e-9)

	// edit the third location's rating away
	locations[2].Rating = 0
	stats = usecase.ComputeTripStats("1", locations)
	require.NotNil(t, stats.Rating)
	assert.Equal(t, 4.0, *stats.Rating)
}

// TestRecomputeTripStats_OnlyAffectedTrip checks that recomputation
// rewrites the named trip's derived fields and passes others through.
func TestRecomputeTripStats_OnlyAffectedTrip(t *testing.T) {
	staleRating := 1.0
	staleCount := 99
	trips := []domain.Trip{
		{ID: "1", Title: "Tokyo", Rating: &staleRating, PhotoCount: &staleCount},
		{ID: "2", Title: "Detroit", Rating: &staleRating, PhotoCount: &staleCount},
	}
	locations := []domain.Location{
		{ID: "a", TripID: "1", Rating: 4, Photos: []domain.Photo{{ID: "p1"}, {ID: "p2"}}},
	}

	out := usecase.RecomputeTripStats(trips, locations, "1")

	require.Len(t, out, 2)
	require.NotNil(t, out[0].Rating)
	assert.Equal(t, 4.0, *out[0].Rating)
	require.NotNil(t, out[0].PhotoCount)
	assert.Equal(t, 2, *out[0].PhotoCount)

	// trip 2 untouched
	assert.Equal(t, &staleRating, out[1].Rating)
	assert.Equal(t, &staleCount, out[1].PhotoCount)
}

// TestRecomputeTripStats_ClearsRating checks that removing the last
// rated location clears the trip rating instead of zeroing it.
func TestRecomputeTripStats_ClearsRating(t *testing.T) {
	oldRating := 4.0
	trips := []domain.Trip{{ID: "1", Rating: &oldRating}}
	locations := []domain.Location{{ID: "a", TripID: "1", Rating: 0}}

	out := usecase.RecomputeTripStats(trips, locations, "1")

	require.Len(t, out, 1)
	assert.Nil(t, out[0].Rating)
}
