package database_test

import (
	"path/filepath"
	"testing"

	"github.com/ndewijer/fii-screener/internal/database"
)

func TestOpenAndMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reference.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Expected no error opening database, got %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Expected no error migrating, got %v", err)
	}

	t.Run("seeds the full reference dataset", func(t *testing.T) {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM fund_reference").Scan(&count); err != nil {
			t.Fatalf("Expected no error counting rows, got %v", err)
		}
		if count != 10 {
			t.Errorf("Expected 10 seeded funds, got %d", count)
		}
	})

	t.Run("seeded values match the reference snapshot", func(t *testing.T) {
		var category string
		var priceToBook float64
		err := db.QueryRow(
			"SELECT category, price_to_book FROM fund_reference WHERE ticker = ?",
			"GGRC11",
		).Scan(&category, &priceToBook)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if category != "Logística" {
			t.Errorf("Expected category Logística, got %s", category)
		}
		if priceToBook != 0.95 {
			t.Errorf("Expected price-to-book 0.95, got %v", priceToBook)
		}
	})

	t.Run("migrating again is a no-op", func(t *testing.T) {
		if err := database.Migrate(db); err != nil {
			t.Fatalf("Expected re-migration to succeed, got %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM fund_reference").Scan(&count); err != nil {
			t.Fatalf("Expected no error counting rows, got %v", err)
		}
		if count != 10 {
			t.Errorf("Expected 10 funds after re-migration, got %d", count)
		}
	})

	t.Run("health check passes on an open connection", func(t *testing.T) {
		if err := database.HealthCheck(db); err != nil {
			t.Errorf("Expected healthy database, got %v", err)
		}
	})
}
