package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Flags
	configFile string
	rootDir    string
	workers    int
	dryRun     bool
	debug      bool
)

// NewRootCmd creates the darkrc root command. Running it with no
// subcommand performs the update, so a bare `darkrc` rewrites the tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "darkrc",
		Short: "Inject Tailwind dark: variants next to light utility classes",
		Long: `darkrc walks a source tree of component files and appends the dark-mode
counterpart after every known light-mode utility class, writing back only
the files that actually change. The rule table is fixed; run
"darkrc rules" to see it.`,
		SilenceUsage: true,
		RunE:         runUpdate,
	}

	addRootFlags(cmd)
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newRulesCmd())
	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default probes .darkrc.yaml, .darkrc.hcl, .darkrc)")
	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "override the directory to scan")
	cmd.PersistentFlags().IntVar(&workers, "workers", 0, "override the number of parallel file workers")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report files without rewriting them")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
