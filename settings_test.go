package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/lox/interp"
	"github.com/pontaoski/lox/parser"
)

func TestMissingSettingsFile(t *testing.T) {
	s, found, err := loadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil || found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if s != defaultSettings() {
		t.Errorf("got %s", repr.String(s))
	}
	if s.MaxDepth != parser.DefaultMaxDepth || s.MaxEvalDepth != interp.DefaultMaxDepth {
		t.Errorf("limits = %d, %d", s.MaxDepth, s.MaxEvalDepth)
	}
}

func TestPartialSettingsKeepDefaults(t *testing.T) {
	path := writeScript(t, t.TempDir(), "lox.yaml", "prompt: \"lox> \"\nshow_tokens: true\n")

	s, found, err := loadSettings(path)
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}

	want := defaultSettings()
	want.Prompt = "lox> "
	want.ShowTokens = true
	if s != want {
		t.Errorf("got %s\nwant %s", repr.String(s), repr.String(want))
	}
}

func TestUnknownSettingIsRejected(t *testing.T) {
	path := writeScript(t, t.TempDir(), "lox.yaml", "max_depht: 3\n")

	if _, found, err := loadSettings(path); err == nil || !found {
		t.Errorf("found=%v err=%v", found, err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lox.yaml")
	s := defaultSettings()
	s.MaxDepth = 64
	s.Color = false
	s.History = ""

	if err := s.save(path); err != nil {
		t.Fatal(err)
	}
	got, _, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("got %s", repr.String(got))
	}
}

func TestHistoryPath(t *testing.T) {
	s := defaultSettings()

	s.History = "/tmp/lox_history"
	if got := s.historyPath(); got != "/tmp/lox_history" {
		t.Errorf("absolute path changed to %q", got)
	}

	s.History = ""
	if got := s.historyPath(); got != "" {
		t.Errorf("empty history gave %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s.History = "~/.lox_history"
	if got := s.historyPath(); got != filepath.Join(home, ".lox_history") {
		t.Errorf("got %q", got)
	}
}
