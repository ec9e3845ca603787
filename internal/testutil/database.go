package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates the database tables for testing.
// Schema is synchronized with the goose migrations; seed data is not
// applied so tests control their own fixtures.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE fund_reference (
			ticker VARCHAR(6) NOT NULL PRIMARY KEY,
			category VARCHAR(50),
			prime_regions BOOLEAN,
			mean_property_age_years REAL,
			price_to_book REAL,
			dividend_history_years REAL,
			top_tenant_concentration_pct REAL,
			dividend_yield_pct REAL,
			uses_derivatives BOOLEAN,
			debt_to_equity_pct REAL,
			years_to_repay_debt REAL,
			vacancy_pct REAL,
			other_fund_quotas_pct REAL,
			cap_rate_pct REAL,
			share_appreciated_3y BOOLEAN,
			state_count REAL,
			management_fee_pct REAL,
			issuances_last_24m REAL,
			daily_liquidity_thousands REAL,
			investment_grade_tenants_pct REAL,
			mean_contract_term_years REAL,
			reserve_one_month BOOLEAN
		);
	`

	_, err := db.Exec(schema)
	return err
}
