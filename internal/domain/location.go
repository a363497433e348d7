package domain

import "time"

// CostLevel describes roughly how expensive a location is.
type CostLevel string

const (
	CostFree         CostLevel = "Free"
	CostCheap        CostLevel = "$"
	CostModerate     CostLevel = "$$"
	CostExpensive    CostLevel = "$$$"
	CostCheapMid     CostLevel = "$-$$"
	CostMidExpensive CostLevel = "$$-$$$"
)

// CostLevels lists every valid cost level.
var CostLevels = []CostLevel{
	CostFree, CostCheap, CostModerate, CostExpensive, CostCheapMid, CostMidExpensive,
}

// TagOptions are the suggested tags offered when annotating a location.
// Free-form tags are also accepted.
var TagOptions = []string{
	"Cultural",
	"Local eats",
	"Tourist spot",
	"Splurge-worthy",
	"Nature",
	"Shopping",
	"Nightlife",
	"Hidden gem",
	"Family-friendly",
	"Adventure",
}

const (
	MinRating = 0
	MaxRating = 5
)

// Location is a point of interest visited during a trip.
// X is longitude, Y is latitude (the order the map layer expects).
type Location struct {
	ID              string    `json:"id" db:"id"`
	TripID          string    `json:"trip_id" db:"trip_id"`
	X               float64   `json:"x" db:"x"`
	Y               float64   `json:"y" db:"y"`
	Name            string    `json:"name" db:"name"`
	Address         string    `json:"address" db:"address"`
	Rating          int       `json:"rating" db:"rating"`
	Notes           string    `json:"notes,omitempty" db:"notes"`
	Tags            []string  `json:"tags" db:"tags"`
	CostLevel       CostLevel `json:"cost_level" db:"cost_level"`
	TimeNeeded      int       `json:"time_needed,omitempty" db:"time_needed"`
	BestTimeToVisit string    `json:"best_time_to_visit,omitempty" db:"best_time_to_visit"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// Photos is attached at read time, it is not a stored relation.
	Photos []Photo `json:"photos,omitempty" db:"-"`
}

// Rated reports whether the location carries a rating.
func (l *Location) Rated() bool {
	return l.Rating > 0
}

// ValidCostLevel reports whether s is one of the known cost levels.
func ValidCostLevel(s string) bool {
	for _, c := range CostLevels {
		if string(c) == s {
			return true
		}
	}
	return false
}

// NormalizeLocation applies construction-time defaulting so downstream
// code can assume fully populated records: rating clamped into
// [MinRating, MaxRating], cost level defaulted to Free, duplicate tags
// dropped keeping the first occurrence. It is applied exactly once, when
// a location record is created or accepted from a request.
func NormalizeLocation(l *Location) {
	if l.Rating < MinRating {
		l.Rating = MinRating
	}
	if l.Rating > MaxRating {
		l.Rating = MaxRating
	}
	if l.CostLevel == "" || !ValidCostLevel(string(l.CostLevel)) {
		l.CostLevel = CostFree
	}
	l.Tags = dedupeTags(l.Tags)
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
