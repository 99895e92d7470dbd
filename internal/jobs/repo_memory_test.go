package jobs

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoUpsertAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, JobRecord{ID: "a", Title: "First"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, JobRecord{ID: "b", Title: "Second"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, JobRecord{ID: "a", Title: "First v2"}); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "First v2" {
		t.Fatalf("Title = %q, want replacement", got.Title)
	}

	if _, err := repo.GetByID(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Fatalf("Count = %d, %v", count, err)
	}
}

func TestMemoryRepoListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		if err := repo.Upsert(ctx, JobRecord{ID: id, Title: id}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	all, err := repo.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" || all[2].ID != "b" {
		t.Fatalf("List = %+v", all)
	}

	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 1 || page[0].ID != "a" {
		t.Fatalf("page = %+v", page)
	}

	empty, err := repo.List(ctx, 10, 99)
	if err != nil || len(empty) != 0 {
		t.Fatalf("offset past end = %+v, %v", empty, err)
	}
}

func TestMemoryRepoHonorsCancelledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Upsert(ctx, JobRecord{ID: "a"}); err == nil {
		t.Fatal("Upsert should fail on cancelled context")
	}
	if _, err := repo.List(ctx, 0, 0); err == nil {
		t.Fatal("List should fail on cancelled context")
	}
}
