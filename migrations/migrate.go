// Package migrations embeds the job board schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embeddedSchema embed.FS

// Migrate brings the users and jobs tables up to the latest schema version.
// It is run on startup before the repositories touch the database.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embeddedSchema)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
