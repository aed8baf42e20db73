package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplySQLDir executes every *.sql file under dir against the warehouse in
// filename-sorted order and returns the number of statements executed. An
// empty or missing directory is an error: schema application with nothing
// to apply means the caller pointed at the wrong place.
func ApplySQLDir(ctx context.Context, log *slog.Logger, db *sql.DB, dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no SQL files found in %s", dir)
	}
	sort.Strings(files)

	executed := 0
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return executed, err
		}
		stmts := SplitStatements(string(raw))
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return executed, fmt.Errorf("apply %s: %w", filepath.Base(file), err)
			}
			executed++
		}
		log.Info("applied sql file", "file", filepath.Base(file), "statements", len(stmts))
	}
	return executed, nil
}

// SplitStatements splits SQL text on semicolons after dropping blank lines
// and comment-only lines, keeping non-empty statements in order.
func SplitStatements(text string) []string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		kept = append(kept, line)
	}
	var stmts []string
	for _, part := range strings.Split(strings.Join(kept, "\n"), ";") {
		if part = strings.TrimSpace(part); part != "" {
			stmts = append(stmts, part)
		}
	}
	return stmts
}
