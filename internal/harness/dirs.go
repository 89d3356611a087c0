package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Directories is the output layout every test session needs, relative to the
// session root.
var Directories = []string{
	"tests/screenshots",
	"tests/screenshots/baseline",
	"tests/screenshots/current",
	"tests/screenshots/diffs",
	"tests/reports",
	"tests/accessibility-reports",
	"tests/coverage",
}

// EnsureDirectories creates every directory of the layout under root, one at a
// time. Existing directories are left alone. It returns the absolute paths.
func EnsureDirectories(ctx context.Context, root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	paths := make([]string, 0, len(Directories))
	for _, dir := range Directories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(abs, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
