package db

import (
	"database/sql"
	"fmt"
)

// ArtifactTables maps each built-in artifact kind to its backing table.
// Kinds are kept as strings to avoid an import cycle with the domain layer.
var ArtifactTables = map[string]string{
	"document":     "documents",
	"persona":      "personas",
	"template":     "templates",
	"deck":         "decks",
	"landing_page": "landing_pages",
}

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	stmts := append([]string{}, migrations...)
	for _, table := range artifactTableOrder {
		stmts = append(stmts, artifactTableDDL(table))
	}
	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var artifactTableOrder = []string{"documents", "personas", "templates", "decks", "landing_pages"}

// Artifact tables share one shape; references point at them without a
// foreign key since the target table depends on reference_type.
func artifactTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id         TEXT PRIMARY KEY,
		tenant_id  TEXT NOT NULL,
		title      TEXT NOT NULL,
		published  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`, table)
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_packages (
		id                   TEXT PRIMARY KEY,
		tenant_id            TEXT NOT NULL,
		name                 TEXT NOT NULL,
		effective_start_date TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_packages_tenant ON work_packages(tenant_id)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id              TEXT PRIMARY KEY,
		work_package_id TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		estimated_hours REAL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		UNIQUE(work_package_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_work_package ON phases(work_package_id)`,

	`CREATE TABLE IF NOT EXISTS items (
		id                   TEXT PRIMARY KEY,
		work_package_id      TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		phase_id             TEXT REFERENCES phases(id) ON DELETE SET NULL,
		title                TEXT NOT NULL,
		quantity             INTEGER NOT NULL DEFAULT 1,
		estimated_hours_each REAL NOT NULL DEFAULT 0,
		status               TEXT NOT NULL DEFAULT 'todo'
		                     CHECK(status IN ('todo','in_progress','completed')),
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_work_package ON items(work_package_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_phase ON items(phase_id)`,

	`CREATE TABLE IF NOT EXISTS artifact_references (
		id             TEXT PRIMARY KEY,
		item_id        TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		reference_type TEXT NOT NULL,
		referenced_id  TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		UNIQUE(item_id, reference_type, referenced_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_artifact_references_item ON artifact_references(item_id)`,
}
