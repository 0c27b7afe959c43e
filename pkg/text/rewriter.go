package text

import (
	"context"
	"io"
)

// Result contains the outcome of rewriting one file's content
type Result struct {
	// WasModified indicates if any rule changed the content
	WasModified bool

	// ReplacementCount is the total number of substitutions made
	ReplacementCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Rewriter applies an ordered rule list to file content
type Rewriter interface {
	// Rewrite reads content and applies every rule in order, each rule
	// seeing the output of the previous one. Returns the rewritten
	// content and metadata about what changed.
	Rewrite(ctx context.Context, content io.Reader) (*Result, error)
}
