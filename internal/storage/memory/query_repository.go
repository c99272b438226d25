package memory

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/weatherdesk/server/internal/weatherquery"
)

// QueryRepository implements the weatherquery.Repository interface using hashicorp/go-memdb
type QueryRepository struct {
	db     *memdb.MemDB
	lastID int64
}

var _ weatherquery.Repository = (*QueryRepository)(nil)

// GetAll retrieves all stored weather query records, ordered by their ID (ascending)
func (repo *QueryRepository) GetAll(_ context.Context) ([]*weatherquery.WeatherQuery, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get("weather_queries", "id")
	if err != nil {
		return nil, err
	}

	objs := []*weatherquery.WeatherQuery{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		objs = append(objs, obj.(*weatherquery.WeatherQuery))
	}
	return objs, nil
}

// GetByID retrieves a weather query record by its ID.
// The record is nil if no record with the given ID exists.
func (repo *QueryRepository) GetByID(_ context.Context, id int64) (*weatherquery.WeatherQuery, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First("weather_queries", "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*weatherquery.WeatherQuery), nil
}

// Create creates a new weather query record and assigns it the next free ID
func (repo *QueryRepository) Create(_ context.Context, create *weatherquery.Create) (*weatherquery.WeatherQuery, error) {
	obj := &weatherquery.WeatherQuery{
		ID:        atomic.AddInt64(&repo.lastID, 1),
		Location:  create.Location,
		StartDate: create.StartDate,
		EndDate:   create.EndDate,
		Result:    create.Result,
		CreatedAt: time.Now().UTC(),
	}

	txn := repo.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("weather_queries", obj); err != nil {
		return nil, err
	}
	txn.Commit()

	return obj, nil
}

// Update updates an existing weather query record.
// Objects stored in the memdb instance are treated as immutable, so the update replaces the stored
// object with a modified copy in a single write transaction.
// The returned record is nil if no record with the given ID exists.
func (repo *QueryRepository) Update(_ context.Context, id int64, update *weatherquery.Update) (*weatherquery.WeatherQuery, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("weather_queries", "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	obj := *(raw.(*weatherquery.WeatherQuery))
	if update.Location != nil {
		obj.Location = *update.Location
		obj.Result = update.Result
	}
	if update.StartDate != nil {
		obj.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		obj.EndDate = *update.EndDate
	}

	if err := txn.Insert("weather_queries", &obj); err != nil {
		return nil, err
	}
	txn.Commit()

	return &obj, nil
}

// Delete deletes a weather query record by its ID
func (repo *QueryRepository) Delete(_ context.Context, id int64) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("weather_queries", "id", id)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	if err := txn.Delete("weather_queries", raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
