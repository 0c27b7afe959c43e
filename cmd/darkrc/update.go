package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/darkrc/pkg/config"
	"github.com/walteh/darkrc/pkg/operation"
	"github.com/walteh/darkrc/pkg/status"
	"github.com/walteh/darkrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// newUpdateCmd creates the update command
func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rewrite matching files under the configured root",
		Long: `Update walks the configured root, applies the fixed dark-mode rule table
to every matching file, and overwrites the files whose content changed.
Unchanged files are left byte-identical and produce no output.`,
		RunE: runUpdate,
	}
}

// runUpdate is the shared entry point for `darkrc` and `darkrc update`
func runUpdate(cmd *cobra.Command, args []string) error {
	setupLogging()
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Flags override the config file
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if dryRun {
		cfg.DryRun = true
	}

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Rewriter: text.NewDarkModeRewriter(),
		Logger:   status.NewUserLogger(*zerolog.Ctx(ctx)),
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	if err := op.Update(ctx); err != nil {
		return errors.Errorf("updating files: %w", err)
	}
	return nil
}
