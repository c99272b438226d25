package memory

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/weatherdesk/server/internal/storage"
	"github.com/weatherdesk/server/internal/weatherquery"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"weather_queries": {
			Name: "weather_queries",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.IntFieldIndex{Field: "ID"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb.
// It is used for development setups without a PostgreSQL instance; all data is lost on shutdown.
type Driver struct {
	db      *memdb.MemDB
	queries *QueryRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver.
// Use Initialize to create the underlying database and the repository implementations.
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.queries = &QueryRepository{db: db}
	return nil
}

// Queries provides the in-memory weather query repository implementation
func (driver *Driver) Queries() weatherquery.Repository {
	return driver.queries
}

// Close discards the repository implementations and the in-memory database
func (driver *Driver) Close() {
	driver.queries = nil
	driver.db = nil
}
