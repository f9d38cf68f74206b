package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CodePen-Alt/ColorPicker/internal/database"
)

func openTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewKVRepo(db)
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	if _, ok, err := repo.Get(ctx, "theme"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v, want absent", ok, err)
	}

	if err := repo.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := repo.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("get = (%q,%v,%v), want dark", v, ok, err)
	}

	// Overwrite.
	if err := repo.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = repo.Get(ctx, "theme")
	if v != "light" {
		t.Fatalf("after overwrite = %q, want light", v)
	}

	// Keys are independent.
	if err := repo.Set(ctx, "palettes", "[]"); err != nil {
		t.Fatalf("set palettes: %v", err)
	}
	v, _, _ = repo.Get(ctx, "theme")
	if v != "light" {
		t.Fatalf("theme clobbered: %q", v)
	}
}

func TestKVDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	if err := repo.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "k"); ok {
		t.Fatal("key survived delete")
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
}
