package utils

// ValidateCoordinates checks a longitude/latitude pair in map order
// (x = lon, y = lat).
func ValidateCoordinates(x, y float64) bool {
	return x >= -180 && x <= 180 && y >= -90 && y <= 90
}
