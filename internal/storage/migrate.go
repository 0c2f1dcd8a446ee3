package storage

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemas embed.FS

// Migrate creates the records table and its indexes for the driver of db. Running it against an
// existing schema changes nothing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	name := "schema/" + db.DriverName() + ".sql"
	file, err := schemas.Open(name)
	if err != nil {
		return fmt.Errorf("no schema for driver %s: %w", db.DriverName(), err)
	}
	defer file.Close()
	return ExecScript(ctx, db, file)
}

// ExecScript executes the statements of an SQL script one after another. A statement ends with
// the line that contains its semicolon.
func ExecScript(ctx context.Context, db *sqlx.DB, script io.Reader) error {
	scanner := bufio.NewScanner(script)
	scanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for scanner.Scan() {
		line := scanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			if _, err := db.ExecContext(ctx, builder.String()); err != nil {
				return fmt.Errorf("execute %q: %w", strings.TrimSpace(builder.String()), err)
			}
			builder = strings.Builder{}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if rest := strings.TrimSpace(builder.String()); rest != "" {
		return fmt.Errorf("unterminated statement at end of script: %q", rest)
	}
	return nil
}
