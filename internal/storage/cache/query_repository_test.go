package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/weatherdesk/server/internal/storage/memory"
	"github.com/weatherdesk/server/internal/weatherquery"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	underlying := memory.New()
	if err := underlying.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	driver := New(underlying)
	if err := driver.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(driver.Close)
	return driver
}

func TestCachingQueryRepositoryReadThrough(t *testing.T) {
	driver := newTestDriver(t)
	repo := driver.Queries().(*QueryRepository)

	start, _ := weatherquery.ParseDate("2024-01-01")
	end, _ := weatherquery.ParseDate("2024-01-05")
	created, err := repo.Create(context.Background(), &weatherquery.Create{
		Location:  "London",
		StartDate: start,
		EndDate:   end,
		Result:    json.RawMessage(`{"name":"London"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The create has to prime the cache
	if _, ok := repo.cache.Lookup(created.ID); !ok {
		t.Error("expected the created record to be cached")
	}

	obj, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj == nil || obj.Location != "London" {
		t.Fatalf("expected the cached record, got %+v", obj)
	}
}

func TestCachingQueryRepositoryInvalidatesOnDelete(t *testing.T) {
	driver := newTestDriver(t)
	repo := driver.Queries().(*QueryRepository)

	start, _ := weatherquery.ParseDate("2024-01-01")
	end, _ := weatherquery.ParseDate("2024-01-05")
	created, err := repo.Create(context.Background(), &weatherquery.Create{
		Location:  "London",
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.cache.Lookup(created.ID); ok {
		t.Error("expected the cache entry to be invalidated on delete")
	}
	obj, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj != nil {
		t.Fatalf("expected the record to be gone, got %+v", obj)
	}
}
