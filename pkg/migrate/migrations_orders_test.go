package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/driesvermeulen/loadline-backend/pkg/migrate"
)

func TestOrdersMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_orders.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no orders migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS orders",
		"FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE",
		"FOREIGN KEY (address_id) REFERENCES addresses(id) ON DELETE RESTRICT",
		"CHECK (status IN ('pending', 'accepted', 'completed', 'rejected'))",
		"CHECK (weight_kg IS NULL OR weight_kg >= 0)",
		"DROP TABLE IF EXISTS orders",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestTaskTypesMigrationGuardsRate(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_task_types.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no task types migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	if !strings.Contains(string(data), "CHECK (time_per_1000kg > 0)") {
		t.Error("rate check constraint missing")
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}
