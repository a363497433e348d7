package usecase

import "github.com/travel-journal-service/internal/domain"

// ComputeTripStats derives the aggregates for a single trip from the
// given location set: rating is the arithmetic mean over locations with
// rating > 0 and stays nil when none are rated (an unrated trip is
// distinguishable from a zero-rated one, which cannot exist), while the
// photo count sums over every location of the trip, rated or not.
func ComputeTripStats(tripID string, locations []domain.Location) domain.TripStats {
	stats := domain.TripStats{TripID: tripID}

	sum := 0
	rated := 0
	for _, l := range locations {
		if l.TripID != tripID {
			continue
		}
		stats.PhotoCount += len(l.Photos)
		if l.Rated() {
			sum += l.Rating
			rated++
		}
	}

	if rated > 0 {
		avg := float64(sum) / float64(rated)
		stats.Rating = &avg
	}
	return stats
}

// RecomputeTripStats recomputes the derived fields of the affected trip
// and passes every other trip through unchanged.
func RecomputeTripStats(trips []domain.Trip, locations []domain.Location, tripID string) []domain.Trip {
	stats := ComputeTripStats(tripID, locations)

	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		if t.ID != tripID {
			out[i] = t
			continue
		}
		t.Rating = stats.Rating
		count := stats.PhotoCount
		t.PhotoCount = &count
		out[i] = t
	}
	return out
}
