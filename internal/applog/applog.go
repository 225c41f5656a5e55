// Package applog assembles the structured logger shared by the
// crabculator CLI and its storage collaborator. The core
// evaluation engine never logs: it runs on every keystroke, and logging on
// that hot path would defeat the point of the package.
package applog

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Level is the shared, mutable log level. Config.LogLevel sets it once at
// startup; it exists as a LevelVar rather than a plain Level so a future
// `-v` flag could adjust it without rebuilding the logger.
var Level = new(slog.LevelVar)

// New builds a logger that fans out to a human-readable stderr handler when
// not running under systemd, plus a journal handler whenever one can be
// created. Under systemd only the journal is used, unless the journal
// handler fails, in which case stderr is used instead. Fan-out is done with
// samber/slog-multi so each handler sees every record independently;
// attribute-key translation for the journal uses the same uppercase/
// underscore convention systemd itself expects.
func New() *slog.Logger {
	var handlers []slog.Handler

	var terminalHandler slog.Handler
	if !runningUnderSystemd() {
		terminalHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: Level})
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: journalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = journalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminalHandler == nil {
			terminalHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: Level})
		}
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		_ = terminalHandler.Handle(context.Background(), record)
		if len(handlers) == 0 {
			handlers = append(handlers, terminalHandler)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

func journalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func runningUnderSystemd() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(string(content), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
