package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"kundali-api/internal/domain/charts"
)

func savedChart(id, userID, name string, createdAt time.Time) charts.SavedChart {
	return charts.SavedChart{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestChartsRepo_CRUD(t *testing.T) {
	repo := NewChartsRepo()
	ctx := context.Background()
	now := time.Now()

	c1 := savedChart("id-1", "user-1", "carta 1", now)
	if err := repo.Create(ctx, c1); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mismo (user, name) => conflicto.
	if err := repo.Create(ctx, savedChart("id-2", "user-1", "carta 1", now)); !errors.Is(err, charts.ErrDuplicateName) {
		t.Fatalf("duplicate err = %v, want ErrDuplicateName", err)
	}
	// Mismo nombre, otro usuario => ok.
	if err := repo.Create(ctx, savedChart("id-3", "user-2", "carta 1", now)); err != nil {
		t.Fatalf("other user: %v", err)
	}

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil || got.Name != "carta 1" {
		t.Fatalf("get = %+v, err %v", got, err)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("missing err = %v, want ErrNotFound", err)
	}

	// Update con rename que choca con otro chart del mismo usuario.
	c4 := savedChart("id-4", "user-1", "carta 2", now.Add(time.Minute))
	if err := repo.Create(ctx, c4); err != nil {
		t.Fatalf("create: %v", err)
	}
	c4.Name = "carta 1"
	if err := repo.Update(ctx, c4); !errors.Is(err, charts.ErrDuplicateName) {
		t.Fatalf("rename collision err = %v, want ErrDuplicateName", err)
	}

	// List ordenado por created_at.
	items, err := repo.ListByUser(ctx, "user-1")
	if err != nil || len(items) != 2 {
		t.Fatalf("list = %d items, err %v; want 2", len(items), err)
	}
	if items[0].ID != "id-1" || items[1].ID != "id-4" {
		t.Errorf("list order = %s, %s; want id-1, id-4", items[0].ID, items[1].ID)
	}

	// Delete.
	if err := repo.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "id-1"); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("double delete err = %v, want ErrNotFound", err)
	}
}
