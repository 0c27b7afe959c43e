package text

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/walteh/darkrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// DarkModeRewriter implements Rewriter using the fixed dark-mode rule table
type DarkModeRewriter struct {
	table []rules.Rule
	post  rules.Rule
}

// NewDarkModeRewriter creates a rewriter over the fixed dark-mode table
func NewDarkModeRewriter() *DarkModeRewriter {
	return &DarkModeRewriter{
		table: rules.DarkMode(),
		post:  rules.PostPass(),
	}
}

// Rewrite implements Rewriter.Rewrite
func (r *DarkModeRewriter) Rewrite(ctx context.Context, content io.Reader) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if !utf8.Valid(originalContent) {
		return nil, errors.New("content is not valid UTF-8")
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule over the current state of the text, so rule N sees
	// the output of rule N-1.
	currentContent := string(originalContent)
	for _, rule := range r.table {
		newContent, count := rule.Apply(currentContent)
		if count > 0 && newContent != currentContent {
			result.ReplacementCount += count
		}
		currentContent = newContent
	}

	// The gray-700 rename can leave a black/gray-800 adjacency behind,
	// collapse it last.
	currentContent, count := r.post.Apply(currentContent)
	result.ReplacementCount += count

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = string(originalContent) != currentContent
	return result, nil
}
