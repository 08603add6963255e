package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database"
)

//go:embed sqlite/*.sql postgres/*.sql
var schemaFS embed.FS

// Files lists the up migrations for driver in apply order.
func Files(driver database.Driver) ([]string, error) {
	if !driver.IsValid() {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	entries, err := fs.ReadDir(schemaFS, driver.String())
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run applies every up migration for driver. Migrations are idempotent
// (CREATE ... IF NOT EXISTS), so Run is safe on every start.
func Run(ctx context.Context, exec database.Executor, driver database.Driver) error {
	files, err := Files(driver)
	if err != nil {
		return err
	}

	for _, file := range files {
		script, err := schemaFS.ReadFile(path.Join(driver.String(), file))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := exec.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}
