package memory

import (
	"time"

	"github.com/travel-journal-service/internal/domain"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

// seed loads the sample journal used for development and as the static
// fallback when a looked-up entity is unknown: two trips in Tokyo and
// Detroit, three Tokyo locations, six photos.
func (s *Store) seed() {
	seedTrips := []domain.Trip{
		{
			ID:         "1",
			UserID:     "1",
			Title:      "🌸 tokyo ~ 🌸",
			City:       "Tokyo",
			Country:    "Japan",
			StartDate:  "2024-05-03",
			EndDate:    "2024-05-14",
			CreatedAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Rating:     ptrFloat64(4.7),
			PhotoCount: ptrInt(6),
		},
		{
			ID:         "2",
			UserID:     "1",
			Title:      "detroit 🏙️",
			City:       "Detroit",
			Country:    "USA",
			StartDate:  "2024-04-05",
			EndDate:    "2024-04-08",
			CreatedAt:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Rating:     ptrFloat64(2.8),
			PhotoCount: ptrInt(0),
		},
	}

	seedLocations := []domain.Location{
		{
			ID:              "1",
			TripID:          "1",
			X:               139.7683,
			Y:               35.7148,
			Name:            "Sensō-ji / Asakusa",
			Address:         "2 Chome-3-1 Asakusa, Taito City, Tokyo 111-0032, Japan",
			Rating:          5,
			Notes:           "Go at 7am - way fewer crowds. Best tuna ever at the sushi stand, cash only!",
			Tags:            []string{"Cultural", "Local eats", "Splurge-worthy", "Tourist spot"},
			CostLevel:       domain.CostCheapMid,
			TimeNeeded:      120,
			BestTimeToVisit: "7:00 am - 9:00 am",
			CreatedAt:       time.Date(2024, 5, 3, 7, 0, 0, 0, time.UTC),
		},
		{
			ID:              "2",
			TripID:          "1",
			X:               139.7017,
			Y:               35.6586,
			Name:            "Shibuya Crossing",
			Address:         "Shibuya, Tokyo, Japan",
			Rating:          4,
			Notes:           "Iconic crossing! Best viewed from Starbucks 2nd floor.",
			Tags:            []string{"Tourist spot", "Cultural"},
			CostLevel:       domain.CostFree,
			TimeNeeded:      30,
			BestTimeToVisit: "6:00 pm - 8:00 pm",
			CreatedAt:       time.Date(2024, 5, 4, 18, 0, 0, 0, time.UTC),
		},
		{
			ID:              "3",
			TripID:          "1",
			X:               139.7037,
			Y:               35.6698,
			Name:            "Meiji Shrine",
			Address:         "1-1 Yoyogikamizonocho, Shibuya City, Tokyo 151-8557, Japan",
			Rating:          5,
			Notes:           "Peaceful shrine in the heart of Tokyo. Write a wish on an ema!",
			Tags:            []string{"Cultural", "Nature", "Hidden gem"},
			CostLevel:       domain.CostFree,
			TimeNeeded:      60,
			BestTimeToVisit: "8:00 am - 10:00 am",
			CreatedAt:       time.Date(2024, 5, 5, 8, 30, 0, 0, time.UTC),
		},
	}

	seedPhotos := []domain.Photo{
		{ID: "1", LocationID: "1", UserID: "1", X: 139.7683, Y: 35.7148, FileURL: "/uploads/pic-1.png", OriginalFilename: "IMG_2045.jpg", TakenAt: ptrTime(time.Date(2024, 5, 3, 7, 15, 0, 0, time.UTC)), IsCoverPhoto: true},
		{ID: "2", LocationID: "1", UserID: "1", X: 139.7683, Y: 35.7148, FileURL: "/uploads/pic-2.png", OriginalFilename: "IMG_2046.jpg", TakenAt: ptrTime(time.Date(2024, 5, 3, 7, 40, 0, 0, time.UTC))},
		{ID: "3", LocationID: "1", UserID: "1", X: 139.7683, Y: 35.7148, FileURL: "/uploads/pic-3.png", OriginalFilename: "IMG_2051.jpg", TakenAt: ptrTime(time.Date(2024, 5, 3, 8, 5, 0, 0, time.UTC))},
		{ID: "4", LocationID: "2", UserID: "1", X: 139.7017, Y: 35.6586, FileURL: "/uploads/pic-4.png", OriginalFilename: "IMG_2102.jpg", TakenAt: ptrTime(time.Date(2024, 5, 4, 18, 20, 0, 0, time.UTC)), IsCoverPhoto: true},
		{ID: "5", LocationID: "3", UserID: "1", X: 139.7037, Y: 35.6698, FileURL: "/uploads/pic-5.png", OriginalFilename: "IMG_2130.jpg", TakenAt: ptrTime(time.Date(2024, 5, 5, 8, 45, 0, 0, time.UTC)), IsCoverPhoto: true},
		{ID: "6", LocationID: "3", UserID: "1", X: 139.7037, Y: 35.6698, FileURL: "/uploads/pic-6.png", OriginalFilename: "IMG_2133.jpg", TakenAt: ptrTime(time.Date(2024, 5, 5, 9, 10, 0, 0, time.UTC))},
	}

	for _, t := range seedTrips {
		s.trips[t.ID] = t
	}
	for _, l := range seedLocations {
		s.locations[l.ID] = l
	}
	for _, p := range seedPhotos {
		s.photos[p.ID] = p
	}
}
