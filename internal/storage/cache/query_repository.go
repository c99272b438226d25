package cache

import (
	"context"

	"github.com/weatherdesk/server/internal/hashmap"
	"github.com/weatherdesk/server/internal/weatherquery"
)

// QueryRepository wraps the weatherquery.Repository interface in order to implement caching
type QueryRepository struct {
	repo  weatherquery.Repository
	cache *hashmap.ExpiringMap[int64, *weatherquery.WeatherQuery]
}

var _ weatherquery.Repository = (*QueryRepository)(nil)

// GetAll retrieves all stored weather query records, ordered by their ID (ascending)
func (repo *QueryRepository) GetAll(ctx context.Context) ([]*weatherquery.WeatherQuery, error) {
	objs, err := repo.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, obj := range objs {
		repo.cache.Set(obj.ID, obj)
	}
	return objs, nil
}

// GetByID retrieves a weather query record by its ID.
// The record is nil if no record with the given ID exists.
func (repo *QueryRepository) GetByID(ctx context.Context, id int64) (*weatherquery.WeatherQuery, error) {
	cached, ok := repo.cache.Lookup(id)
	if ok {
		return cached, nil
	}
	obj, err := repo.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.cache.Set(obj.ID, obj)
	}
	return obj, nil
}

// Create creates a new weather query record and assigns it the next free ID
func (repo *QueryRepository) Create(ctx context.Context, create *weatherquery.Create) (*weatherquery.WeatherQuery, error) {
	obj, err := repo.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(obj.ID, obj)
	return obj, nil
}

// Update updates an existing weather query record.
// The returned record is nil if no record with the given ID exists.
func (repo *QueryRepository) Update(ctx context.Context, id int64, update *weatherquery.Update) (*weatherquery.WeatherQuery, error) {
	obj, err := repo.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		repo.cache.Unset(id)
		return nil, nil
	}
	repo.cache.Set(obj.ID, obj)
	return obj, nil
}

// Delete deletes a weather query record by its ID
func (repo *QueryRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.repo.Delete(ctx, id); err != nil {
		return err
	}
	repo.cache.Unset(id)
	return nil
}
