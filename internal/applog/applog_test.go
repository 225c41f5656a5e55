package applog

import "testing"

func TestNewProducesAUsableLogger(t *testing.T) {
	logger := New()
	logger.Info("test", "hello", "world")
}

func TestJournalKey(t *testing.T) {
	cases := map[string]string{
		"error":      "ERROR",
		"session-id": "SESSION_ID",
		"a.b.c":      "A_B_C",
	}
	for in, want := range cases {
		if got := journalKey(in); got != want {
			t.Errorf("journalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
