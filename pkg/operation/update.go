package operation

import (
	"bytes"
	"context"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/walteh/darkrc/pkg/status"
	"github.com/walteh/darkrc/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Update walks the tree and rewrites every matching file whose content
// changes under the rule table, reporting each rewritten file
func (op *operator) Update(ctx context.Context) error {
	files, err := walker.Walk(ctx, op.config.Root, op.config.Include)
	if err != nil {
		return errors.Errorf("walking %s: %w", op.config.Root, err)
	}

	var updated atomic.Int64
	runner := NewRunner(op.config.Workers)
	err = runner.Run(ctx, files, func(ctx context.Context, path string) error {
		changed, err := op.processFile(ctx, path)
		if err != nil {
			op.logger.LogFileChange(status.FileChange{
				Type:  status.FileError,
				Path:  path,
				Error: err,
			})
			return errors.Errorf("processing file %s: %w", path, err)
		}
		if changed {
			updated.Add(1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	op.logger.LogSummary(int(updated.Load()), len(files))
	return nil
}

// 📄 processFile rewrites a single file in place if its content changes
func (op *operator) processFile(ctx context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Errorf("opening file: %w", err)
	}

	result, rerr := op.rewriter.Rewrite(ctx, f)
	cerr := f.Close()
	if rerr != nil {
		return false, errors.Errorf("rewriting content: %w", rerr)
	}
	if cerr != nil {
		return false, errors.Errorf("closing file: %w", cerr)
	}

	if !result.WasModified || bytes.Equal(result.OriginalContent, result.ModifiedContent) {
		op.logger.LogFileChange(status.FileChange{
			Type: status.FileUnchanged,
			Path: path,
		})
		return false, nil
	}

	if !op.config.DryRun {
		// Keep the file's own permissions on rewrite
		info, err := os.Stat(path)
		if err != nil {
			return false, errors.Errorf("stating file: %w", err)
		}
		if err := os.WriteFile(path, result.ModifiedContent, info.Mode().Perm()); err != nil {
			return false, errors.Errorf("writing file: %w", err)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("replacements", result.ReplacementCount).
		Msg("rewrote file")

	op.logger.LogFileChange(status.FileChange{
		Type:         status.FileUpdated,
		Path:         path,
		Replacements: result.ReplacementCount,
		DryRun:       op.config.DryRun,
	})
	return true, nil
}
