// Command crabculator is the thinnest possible driver over the
// crabculator core: a readline REPL, not the TUI (which remains an
// out-of-scope collaborator). It exercises the full core, storage,
// config, and logging stack end to end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/mitchellh/go-wordwrap"

	"github.com/marconae/crabculator"
	"github.com/marconae/crabculator/config"
	"github.com/marconae/crabculator/internal/applog"
	"github.com/marconae/crabculator/storage"
)

const wrapWidth = 72

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "crabculator: loading config: %v\n", err)
		cfg = config.Default()
	}
	applog.Level.Set(cfg.SlogLevel())
	logger := applog.New()
	slog.SetDefault(logger)

	statePath, err := storage.Path(cfg.StatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crabculator: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	buffer, session, err := storage.LoadState(statePath)
	if err != nil {
		logger.Warn("failed to load persisted state, starting with an empty buffer", "error", err)
		buffer = nil
	}
	if len(buffer) == 0 {
		buffer = []string{""}
	}

	ctx := crabculator.NewContext()
	driver := crabculator.NewDriver()
	driver.Run(buffer, ctx) // rebuild the context from the restored buffer, per spec.md §6

	historyFile := ""
	if dir, err := storage.Dir(); err == nil {
		historyFile = dir + "/.crabculator_history"
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "crab> ",
		HistoryFile:  historyFile,
		HistoryLimit: cfg.HistorySize,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crabculator: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		buffer = append(buffer, line)
		outcomes := driver.Run(buffer, ctx)
		printOutcome(outcomes[len(outcomes)-1])
	}

	session, err = storage.SaveState(statePath, buffer, session, logger)
	if err != nil {
		logger.Error("failed to save state", "error", err)
	} else {
		logger.Info("state saved", "session", session, "lines", len(buffer))
	}
}

func printOutcome(o crabculator.LineOutcome) {
	switch o.Kind {
	case crabculator.OutcomeEmpty:
		// nothing to render
	case crabculator.OutcomeValue:
		fmt.Println(crabculator.FormatOutcome(o))
	case crabculator.OutcomeAssigned:
		fmt.Println(crabculator.FormatOutcome(o))
	case crabculator.OutcomeError:
		msg := wordwrap.WrapString(o.Err.Error(), wrapWidth)
		fmt.Fprintln(os.Stderr, msg)
	}
}
