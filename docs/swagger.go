// Package docs Travel Journal Service API.
//
// Backend for a personal travel journal: trips, locations and photos
// with derived trip statistics and a staged photo-upload flow.
//
// Main capabilities:
// - Trip, location and photo CRUD with derived rating and photo count per trip
// - Batch photo upload with per-file acceptance and EXIF coordinate extraction
// - Pluggable storage: in-memory seeded store or PostgreSQL
// - Optional Redis stats cache and upload event stream
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
