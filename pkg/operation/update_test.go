package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/darkrc/pkg/config"
	"github.com/walteh/darkrc/pkg/status"
	"github.com/walteh/darkrc/pkg/text"
)

func newTestOperator(t *testing.T, cfg *config.Config) Operator {
	t.Helper()
	op, err := New(Options{
		Config:   cfg,
		Rewriter: text.NewDarkModeRewriter(),
		Logger:   status.NewUserLogger(zerolog.Nop()),
	})
	require.NoError(t, err)
	return op
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestUpdate_RewritesTree(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"App.tsx":                    `<div class="bg-white text-gray-900">`,
		"components/Header.tsx":      `<nav class="bg-gray-50 border-gray-200">`,
		"components/Plain.tsx":       `<div class="p-4 flex">`,
		"components/ignored/note.ts": `const c = "bg-white";`,
	})

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 1})
	require.NoError(t, op.Update(context.Background()))

	assert.Equal(t,
		`<div class="bg-white dark:bg-black text-gray-900 dark:text-white">`,
		readFile(t, filepath.Join(dir, "App.tsx")))
	assert.Equal(t,
		`<nav class="bg-gray-50 dark:bg-gray-900 border-gray-200 dark:border-gray-700">`,
		readFile(t, filepath.Join(dir, "components", "Header.tsx")))

	// untouched: no matching tokens
	assert.Equal(t, `<div class="p-4 flex">`,
		readFile(t, filepath.Join(dir, "components", "Plain.tsx")))

	// untouched: wrong extension
	assert.Equal(t, `const c = "bg-white";`,
		readFile(t, filepath.Join(dir, "components", "ignored", "note.ts")))
}

func TestUpdate_SecondRunIsNoop(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"App.tsx": `<div class="bg-white text-gray-700 dark:bg-gray-700">`,
	})

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 1})
	require.NoError(t, op.Update(context.Background()))

	first := readFile(t, filepath.Join(dir, "App.tsx"))
	info1, err := os.Stat(filepath.Join(dir, "App.tsx"))
	require.NoError(t, err)

	require.NoError(t, op.Update(context.Background()))

	second := readFile(t, filepath.Join(dir, "App.tsx"))
	info2, err := os.Stat(filepath.Join(dir, "App.tsx"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, info1.ModTime(), info2.ModTime(), "unchanged file must not be rewritten")
}

func TestUpdate_DryRunLeavesTreeUntouched(t *testing.T) {
	dir := t.TempDir()
	original := `<div class="bg-white">`
	writeTree(t, dir, map[string]string{"App.tsx": original})

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 1, DryRun: true})
	require.NoError(t, op.Update(context.Background()))

	assert.Equal(t, original, readFile(t, filepath.Join(dir, "App.tsx")))
}

func TestUpdate_Parallel(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{}
	for i := 0; i < 32; i++ {
		files[filepath.Join("components", string(rune('a'+i%26))+".tsx")] =
			`<div class="bg-gray-100 text-gray-600">` + string(rune('a'+i%26))
	}
	writeTree(t, dir, files)

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 4})
	require.NoError(t, op.Update(context.Background()))

	for name := range files {
		content := readFile(t, filepath.Join(dir, name))
		assert.Contains(t, content, "bg-gray-100 dark:bg-gray-800")
		assert.Contains(t, content, "text-gray-600 dark:text-gray-300")
	}
}

func TestUpdate_PreservesFileMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Script.tsx")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="bg-white">`), 0755))

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 1})
	require.NoError(t, op.Update(context.Background()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate_MissingRoot(t *testing.T) {
	op := newTestOperator(t, &config.Config{
		Root:    filepath.Join(t.TempDir(), "missing"),
		Include: "*.tsx",
		Workers: 1,
	})
	require.Error(t, op.Update(context.Background()))
}

func TestUpdate_InvalidUTF8Fails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Bad.tsx"), []byte{0xff, 0xfe}, 0644))

	op := newTestOperator(t, &config.Config{Root: dir, Include: "*.tsx", Workers: 1})
	err := op.Update(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad.tsx")
}

func TestNew_RequiredOptions(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)

	_, err = New(Options{Config: config.Default()})
	require.Error(t, err)

	_, err = New(Options{Config: config.Default(), Rewriter: text.NewDarkModeRewriter()})
	require.Error(t, err)
}
