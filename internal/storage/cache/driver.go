package cache

import (
	"context"
	"time"

	"github.com/weatherdesk/server/internal/hashmap"
	"github.com/weatherdesk/server/internal/storage"
	"github.com/weatherdesk/server/internal/weatherquery"
)

// Driver represents a storage driver implementation that wraps another one in order to implement
// in-memory caching of weather query records.
// Provider responses are never cached on their own; only whole records pass through this layer.
type Driver struct {
	underlying storage.Driver
	queries    *QueryRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver
func New(underlying storage.Driver) *Driver {
	return &Driver{
		underlying: underlying,
	}
}

// Initialize initializes the caching repositories
func (driver *Driver) Initialize(_ context.Context) error {
	queryCache := hashmap.NewExpiring[int64, *weatherquery.WeatherQuery](5 * time.Minute)
	queryCache.StartCleanup(10 * time.Second)
	driver.queries = &QueryRepository{
		repo:  driver.underlying.Queries(),
		cache: queryCache,
	}
	return nil
}

// Queries provides the caching weather query repository implementation
func (driver *Driver) Queries() weatherquery.Repository {
	return driver.queries
}

// Close closes the caching repositories and the underlying storage driver
func (driver *Driver) Close() {
	driver.queries.cache.StopCleanup()
	driver.queries = nil

	driver.underlying.Close()
}
