package usecase

import "github.com/travel-journal-service/internal/domain"

// Reconciliation merges freshly fetched or created entities into a
// locally held collection by identity. The rule, identical for trips
// and locations, is a right-biased shallow merge: both sequences are
// folded into an id-keyed table in order, and for a duplicate id every
// field the later record carries overrides the earlier record's value
// per key, while absent fields keep the earlier value. "Absent" is
// spelled out field by field in the overlay functions below rather than
// left to any implicit spread behavior. An incoming entity with an
// unknown id is simply appended. The result keeps first-appearance
// order; merging a collection with itself yields the same collection.

// MergeTrips reconciles incoming trips into an existing collection.
func MergeTrips(existing, incoming []domain.Trip) []domain.Trip {
	byID := make(map[string]domain.Trip, len(existing)+len(incoming))
	order := make([]string, 0, len(existing)+len(incoming))

	fold := func(trips []domain.Trip) {
		for _, t := range trips {
			if prev, ok := byID[t.ID]; ok {
				byID[t.ID] = overlayTrip(prev, t)
				continue
			}
			byID[t.ID] = t
			order = append(order, t.ID)
		}
	}
	fold(existing)
	fold(incoming)

	out := make([]domain.Trip, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// MergeLocations reconciles incoming locations into an existing
// collection under the same override rule as MergeTrips.
func MergeLocations(existing, incoming []domain.Location) []domain.Location {
	byID := make(map[string]domain.Location, len(existing)+len(incoming))
	order := make([]string, 0, len(existing)+len(incoming))

	fold := func(locations []domain.Location) {
		for _, l := range locations {
			if prev, ok := byID[l.ID]; ok {
				byID[l.ID] = overlayLocation(prev, l)
				continue
			}
			byID[l.ID] = l
			order = append(order, l.ID)
		}
	}
	fold(existing)
	fold(incoming)

	out := make([]domain.Location, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// overlayTrip applies the present fields of in over base. Strings are
// present when non-empty, pointers when non-nil, timestamps when
// non-zero.
func overlayTrip(base, in domain.Trip) domain.Trip {
	out := base
	if in.UserID != "" {
		out.UserID = in.UserID
	}
	if in.Title != "" {
		out.Title = in.Title
	}
	if in.City != "" {
		out.City = in.City
	}
	if in.Country != "" {
		out.Country = in.Country
	}
	if in.StartDate != "" {
		out.StartDate = in.StartDate
	}
	if in.EndDate != "" {
		out.EndDate = in.EndDate
	}
	if !in.CreatedAt.IsZero() {
		out.CreatedAt = in.CreatedAt
	}
	if in.Rating != nil {
		out.Rating = in.Rating
	}
	if in.PhotoCount != nil {
		out.PhotoCount = in.PhotoCount
	}
	if in.CoverPhoto != nil {
		out.CoverPhoto = in.CoverPhoto
	}
	return out
}

// overlayLocation applies the present fields of in over base. Slices
// are present when non-nil (an empty non-nil slice overrides),
// coordinates when either axis is non-zero, the rating when rated.
func overlayLocation(base, in domain.Location) domain.Location {
	out := base
	if in.TripID != "" {
		out.TripID = in.TripID
	}
	if in.X != 0 || in.Y != 0 {
		out.X = in.X
		out.Y = in.Y
	}
	if in.Name != "" {
		out.Name = in.Name
	}
	if in.Address != "" {
		out.Address = in.Address
	}
	if in.Rating > 0 {
		out.Rating = in.Rating
	}
	if in.Notes != "" {
		out.Notes = in.Notes
	}
	if in.Tags != nil {
		out.Tags = in.Tags
	}
	if in.CostLevel != "" {
		out.CostLevel = in.CostLevel
	}
	if in.TimeNeeded != 0 {
		out.TimeNeeded = in.TimeNeeded
	}
	if in.BestTimeToVisit != "" {
		out.BestTimeToVisit = in.BestTimeToVisit
	}
	if !in.CreatedAt.IsZero() {
		out.CreatedAt = in.CreatedAt
	}
	if in.Photos != nil {
		out.Photos = in.Photos
	}
	return out
}
