package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/darkrc/pkg/text"
)

func ExampleDarkModeRewriter_Rewrite() {
	rewriter := text.NewDarkModeRewriter()

	content := strings.NewReader(`<div class="bg-white text-gray-900">`)

	result, err := rewriter.Rewrite(context.Background(), content)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: <div class="bg-white text-gray-900">
	// Modified: <div class="bg-white dark:bg-black text-gray-900 dark:text-white">
	// Was Modified: true
}
