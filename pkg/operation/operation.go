package operation

import (
	"context"

	"github.com/walteh/darkrc/pkg/config"
	"github.com/walteh/darkrc/pkg/status"
	"github.com/walteh/darkrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎮 Operator runs the dark-mode update over a source tree
type Operator interface {
	// Update rewrites matching files under the configured root and
	// reports every file that changed
	Update(ctx context.Context) error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Rewriter applies the rule table to file content
	Rewriter text.Rewriter
	// Logger reports per-file outcomes to the user
	Logger *status.UserLogger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &operator{
		config:   opts.Config,
		rewriter: opts.Rewriter,
		logger:   opts.Logger,
	}, nil
}

// operator implements the Operator interface
type operator struct {
	config   *config.Config
	rewriter text.Rewriter
	logger   *status.UserLogger
}

// Update method is implemented in update.go
