package walker

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Walk returns every file under root whose base name matches pattern,
// in lexical traversal order. Traversal is read-only; an unreadable
// directory aborts the walk with an error.
func Walk(ctx context.Context, root string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid file pattern %q", pattern)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		matched, err := doublestar.Match(pattern, filepath.Base(path))
		if err != nil {
			return errors.Errorf("matching %s: %w", path, err)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Str("pattern", pattern).
		Int("count", len(files)).
		Msg("discovered files")

	return files, nil
}
