package testutil

import (
	"context"
	"testing"

	"github.com/GustavoCaso/billtrace/internal/storage"
	"github.com/GustavoCaso/billtrace/internal/storage/memory"
	"github.com/GustavoCaso/billtrace/internal/storage/sqlite"
)

// Backends returns constructors for every storage backend, keyed by name.
// Each call yields an empty bill book that is closed when the test ends.
func Backends() map[string]func(t *testing.T) storage.Storage {
	return map[string]func(t *testing.T) storage.Storage{
		"memory": SetupMemoryStorage,
		"sqlite": SetupSQLiteStorage,
	}
}

func SetupMemoryStorage(t *testing.T) storage.Storage {
	t.Helper()

	s := memory.New()
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close memory storage: %v", err)
		}
	})

	return s
}

func SetupSQLiteStorage(t *testing.T) storage.Storage {
	t.Helper()

	s, err := sqlite.New()
	if err != nil {
		t.Fatalf("Failed to open sqlite storage: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close sqlite storage: %v", err)
		}
	})

	if err = s.ApplyMigrations(context.Background(), TestLogger(t)); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return s
}
