package status

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about rewritten files
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileChangeType represents what happened to a file
type FileChangeType int

const (
	FileUpdated FileChangeType = iota
	FileUnchanged
	FileError
)

// 🖼️ FileChange represents the outcome for one file
type FileChange struct {
	Type         FileChangeType
	Path         string
	Replacements int
	DryRun       bool
	Error        error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(log zerolog.Logger) *UserLogger {
	return &UserLogger{log: log}
}

// 📝 LogFileChange reports the outcome for one file. Updated files get one
// console line; unchanged files are debug-logged only and stay silent.
func (u *UserLogger) LogFileChange(change FileChange) {
	switch change.Type {
	case FileUpdated:
		msg := fmt.Sprintf("Updated %s", change.Path)
		if change.DryRun {
			msg += " (dry-run)"
		}
		pterm.Success.WithPrefix(pterm.Prefix{Text: "🌙"}).Println(msg)
		u.log.Info().
			Str("path", change.Path).
			Int("replacements", change.Replacements).
			Bool("dry_run", change.DryRun).
			Msg("updated file")
	case FileUnchanged:
		u.log.Debug().Str("path", change.Path).Msg("unchanged file")
	case FileError:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Printf("Failed %s\n", change.Path)
		if change.Error != nil {
			pterm.Error.Println(change.Error)
		}
		u.log.Error().Err(change.Error).Str("path", change.Path).Msg("failed file")
	}
}

// 📊 LogSummary reports the overall run outcome
func (u *UserLogger) LogSummary(updated, total int) {
	msg := fmt.Sprintf("Updated %d of %d files", updated, total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	u.log.Info().Int("updated", updated).Int("total", total).Msg(msg)
}
