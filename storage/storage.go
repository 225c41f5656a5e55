// Package storage is the persistence collaborator from spec.md §6: it
// serializes and restores the plain-text line buffer at
// ~/.crabculator/state.txt. Variables are never persisted — on warm start
// the caller re-runs the driver over the restored buffer to rebuild the
// context.
package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const stateFileName = "state.txt"

// sessionFileName holds the uuid stamped by the most recent successful
// save, used only to detect a second writer clobbering this one's state
// between a load and the following save.
const sessionFileName = "state.session"

// Dir returns ~/.crabculator (or the Windows equivalent user-profile
// directory, via os.UserHomeDir).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".crabculator"), nil
}

// Path returns the fixed state file location, unless override is non-empty
// (a config.toml state_path override), in which case override is used
// verbatim.
func Path(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// SerializeBuffer renders lines as plain text, one buffer line per file
// line, UTF-8, LF-separated, per spec.md §6.
func SerializeBuffer(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

// DeserializeBuffer is SerializeBuffer's inverse. Invalid UTF-8 yields an
// empty buffer per spec.md §6; this package is the collaborator
// responsible for surfacing that, via the returned ok value.
func DeserializeBuffer(data []byte) (lines []string, ok bool) {
	if !utf8.Valid(data) {
		return nil, false
	}
	text := string(data)
	if text == "" {
		return nil, true
	}
	return strings.Split(text, "\n"), true
}

// LoadState reads the buffer at path and the session id stamped by the
// last successful SaveState, if any. A missing state file is not an
// error: it yields an empty buffer, as on a fresh install.
func LoadState(path string) (lines []string, session uuid.UUID, err error) {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, uuid.Nil, nil
	case err != nil:
		return nil, uuid.Nil, err
	}
	lines, ok := DeserializeBuffer(data)
	if !ok {
		return nil, uuid.Nil, nil
	}
	session, _ = readSession(sessionPath(path))
	return lines, session, nil
}

// SaveState writes lines to path, creating its parent directory if
// necessary, and stamps a fresh session id. If the session id on disk no
// longer matches lastKnown, another process has written to the state file
// since this one last loaded or saved it; SaveState logs that and proceeds
// to overwrite it regardless, since the buffer is the caller's source of
// truth for its own in-memory session.
func SaveState(path string, lines []string, lastKnown uuid.UUID, logger *slog.Logger) (uuid.UUID, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return uuid.Nil, err
	}

	if onDisk, err := readSession(sessionPath(path)); err == nil && lastKnown != uuid.Nil && onDisk != lastKnown {
		if logger != nil {
			logger.Warn("state file was written by another session since last load",
				"expected_session", lastKnown, "found_session", onDisk)
		}
	}

	if err := os.WriteFile(path, SerializeBuffer(lines), 0o644); err != nil {
		return uuid.Nil, err
	}

	next := uuid.New()
	if err := os.WriteFile(sessionPath(path), []byte(next.String()), 0o644); err != nil {
		return uuid.Nil, err
	}
	return next, nil
}

func sessionPath(statePath string) string {
	return filepath.Join(filepath.Dir(statePath), sessionFileName)
}

func readSession(path string) (uuid.UUID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(strings.TrimSpace(string(data)))
}
