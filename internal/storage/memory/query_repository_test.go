package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/weatherdesk/server/internal/weatherquery"
)

func newTestRepository(t *testing.T) weatherquery.Repository {
	t.Helper()
	driver := New()
	if err := driver.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return driver.Queries()
}

func mustDate(t *testing.T, raw string) weatherquery.Date {
	t.Helper()
	date, err := weatherquery.ParseDate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return date
}

func createTestQuery(t *testing.T, repo weatherquery.Repository, location string) *weatherquery.WeatherQuery {
	t.Helper()
	obj, err := repo.Create(context.Background(), &weatherquery.Create{
		Location:  location,
		StartDate: mustDate(t, "2024-01-01"),
		EndDate:   mustDate(t, "2024-01-05"),
		Result:    json.RawMessage(`{"name":"` + location + `"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return obj
}

func TestQueryRepositoryCreate(t *testing.T) {
	repo := newTestRepository(t)

	first := createTestQuery(t, repo, "London")
	second := createTestQuery(t, repo, "Paris")

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected sequential IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected created_at to be set on creation")
	}

	fetched, err := repo.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched == nil || fetched.Location != "London" {
		t.Fatalf("expected the created record to be retrievable, got %+v", fetched)
	}
}

func TestQueryRepositoryGetAllOrder(t *testing.T) {
	repo := newTestRepository(t)

	createTestQuery(t, repo, "London")
	createTestQuery(t, repo, "Paris")
	createTestQuery(t, repo, "Berlin")

	objs, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(objs))
	}
	for i, obj := range objs {
		if obj.ID != int64(i+1) {
			t.Errorf("expected ascending ID order, got %d at index %d", obj.ID, i)
		}
	}
}

func TestQueryRepositoryGetByIDAbsent(t *testing.T) {
	repo := newTestRepository(t)

	obj, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj != nil {
		t.Fatalf("expected nil for an absent record, got %+v", obj)
	}
}

func TestQueryRepositoryPartialUpdate(t *testing.T) {
	repo := newTestRepository(t)
	created := createTestQuery(t, repo, "London")

	newEnd := mustDate(t, "2024-01-10")
	updated, err := repo.Update(context.Background(), created.ID, &weatherquery.Update{
		EndDate: &newEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated record, got nil")
	}
	if updated.EndDate.String() != "2024-01-10" {
		t.Errorf("expected end date to be updated, got %s", updated.EndDate)
	}
	if updated.Location != created.Location || string(updated.Result) != string(created.Result) {
		t.Error("expected unspecified fields to retain their stored values")
	}
	if updated.StartDate.String() != created.StartDate.String() {
		t.Error("expected the start date to retain its stored value")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at to never be modified")
	}
}

func TestQueryRepositoryUpdateLocationRewritesSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	created := createTestQuery(t, repo, "London")

	location := "Paris"
	updated, err := repo.Update(context.Background(), created.ID, &weatherquery.Update{
		Location: &location,
		Result:   json.RawMessage(`{"name":"Paris"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Location != "Paris" || string(updated.Result) != `{"name":"Paris"}` {
		t.Errorf("expected location and result to change together, got %s / %s", updated.Location, updated.Result)
	}
}

func TestQueryRepositoryUpdateAbsent(t *testing.T) {
	repo := newTestRepository(t)

	location := "Paris"
	updated, err := repo.Update(context.Background(), 999, &weatherquery.Update{
		Location: &location,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for an absent record, got %+v", updated)
	}
}

func TestQueryRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	created := createTestQuery(t, repo, "London")

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj != nil {
		t.Fatalf("expected the record to be gone, got %+v", obj)
	}

	// Deleting an absent record is a repository-level no-op
	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
