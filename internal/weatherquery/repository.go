package weatherquery

import (
	"context"
	"encoding/json"
)

// Repository defines the weather query repository API
type Repository interface {
	// GetAll retrieves all stored weather query records, ordered by their ID (ascending)
	GetAll(ctx context.Context) ([]*WeatherQuery, error)

	// GetByID retrieves a weather query record by its ID.
	// The record is nil if no record with the given ID exists.
	GetByID(ctx context.Context, id int64) (*WeatherQuery, error)

	// Create creates a new weather query record and assigns it the next free ID
	Create(ctx context.Context, create *Create) (*WeatherQuery, error)

	// Update updates an existing weather query record.
	// All requested field changes are committed atomically; fields left unset retain their stored values.
	// The returned record is nil if no record with the given ID exists.
	Update(ctx context.Context, id int64, update *Update) (*WeatherQuery, error)

	// Delete deletes a weather query record by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new weather query record
type Create struct {
	Location  string
	StartDate Date
	EndDate   Date
	Result    json.RawMessage
}

// Update is used to update an existing weather query record.
// A location change always carries the snapshot captured for the new location,
// so the stored location-result pairing never goes stale.
type Update struct {
	Location  *string
	Result    json.RawMessage
	StartDate *Date
	EndDate   *Date
}
