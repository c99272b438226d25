package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/weatherdesk/server/internal/weatherquery"
)

const queryColumns = "query_id, location, start_date, end_date, result, created_at"

// QueryRepository implements the weatherquery.Repository interface using PostgreSQL
type QueryRepository struct {
	db *pgxpool.Pool
}

var _ weatherquery.Repository = (*QueryRepository)(nil)

// GetAll retrieves all stored weather query records, ordered by their ID (ascending)
func (repo *QueryRepository) GetAll(ctx context.Context) ([]*weatherquery.WeatherQuery, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+queryColumns+" FROM weather_queries ORDER BY query_id ASC")
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*weatherquery.WeatherQuery{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	objs := []*weatherquery.WeatherQuery{}
	for rows.Next() {
		obj, err := rowToQuery(rows)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, rows.Err()
}

// GetByID retrieves a weather query record by its ID.
// The record is nil if no record with the given ID exists.
func (repo *QueryRepository) GetByID(ctx context.Context, id int64) (*weatherquery.WeatherQuery, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+queryColumns+" FROM weather_queries WHERE query_id = $1", id)
	obj, err := rowToQuery(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create creates a new weather query record and assigns it the next free ID
func (repo *QueryRepository) Create(ctx context.Context, create *weatherquery.Create) (*weatherquery.WeatherQuery, error) {
	obj := &weatherquery.WeatherQuery{
		Location:  create.Location,
		StartDate: create.StartDate,
		EndDate:   create.EndDate,
		Result:    create.Result,
		CreatedAt: time.Now().UTC(),
	}

	row := repo.db.QueryRow(
		ctx,
		"INSERT INTO weather_queries (location, start_date, end_date, result, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING query_id",
		obj.Location,
		obj.StartDate.Time,
		obj.EndDate.Time,
		[]byte(obj.Result),
		obj.CreatedAt,
	)
	if err := row.Scan(&obj.ID); err != nil {
		return nil, err
	}
	return obj, nil
}

// Update updates an existing weather query record.
// All requested field changes are applied in a single UPDATE statement, so either the whole
// update is committed or none of it is.
// The returned record is nil if no record with the given ID exists.
func (repo *QueryRepository) Update(ctx context.Context, id int64, update *weatherquery.Update) (*weatherquery.WeatherQuery, error) {
	builder := squirrel.Update("weather_queries").
		Where(squirrel.Eq{"query_id": id}).
		Suffix("RETURNING " + queryColumns).
		PlaceholderFormat(squirrel.Dollar)

	changed := false
	if update.Location != nil {
		builder = builder.Set("location", *update.Location).Set("result", []byte(update.Result))
		changed = true
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", update.StartDate.Time)
		changed = true
	}
	if update.EndDate != nil {
		builder = builder.Set("end_date", update.EndDate.Time)
		changed = true
	}
	if !changed {
		return repo.GetByID(ctx, id)
	}

	sql, vals, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	obj, err := rowToQuery(repo.db.QueryRow(ctx, sql, vals...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Delete deletes a weather query record by its ID
func (repo *QueryRepository) Delete(ctx context.Context, id int64) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM weather_queries WHERE query_id = $1", id)
	return err
}

func rowToQuery(row pgx.Row) (*weatherquery.WeatherQuery, error) {
	var (
		obj       = new(weatherquery.WeatherQuery)
		startDate time.Time
		endDate   time.Time
		result    []byte
	)
	if err := row.Scan(&obj.ID, &obj.Location, &startDate, &endDate, &result, &obj.CreatedAt); err != nil {
		return nil, err
	}
	obj.StartDate = weatherquery.Date{Time: startDate}
	obj.EndDate = weatherquery.Date{Time: endDate}
	obj.Result = result
	return obj, nil
}
