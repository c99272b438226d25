package storage

import (
	"context"

	"github.com/weatherdesk/server/internal/weatherquery"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Queries provides a weather query repository implementation
	Queries() weatherquery.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
