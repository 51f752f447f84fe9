package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pontaoski/lox/interp"
	"github.com/pontaoski/lox/parser"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const defaultSettingsFile = "lox.yaml"

type loxSettings struct {
	MaxDepth     int    `yaml:"max_depth"`
	MaxEvalDepth int    `yaml:"max_eval_depth"`
	Color        bool   `yaml:"color"`
	History      string `yaml:"history"`
	Prompt       string `yaml:"prompt"`
	ShowTokens   bool   `yaml:"show_tokens"`
}

func defaultSettings() loxSettings {
	return loxSettings{
		MaxDepth:     parser.DefaultMaxDepth,
		MaxEvalDepth: interp.DefaultMaxDepth,
		Color:        true,
		History:      "~/.lox_history",
		Prompt:       "> ",
	}
}

// loadSettings reads path over the defaults. A missing file is not an
// error; found reports whether one was read.
func loadSettings(path string) (s loxSettings, found bool, err error) {
	s = defaultSettings()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return s, false, nil
	}
	if err != nil {
		return s, false, tracerr.Wrap(err)
	}

	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return s, true, tracerr.Errorf("reading %s: %w", path, err)
	}
	return s, true, nil
}

func (s loxSettings) save(path string) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}

// historyPath expands a leading "~/" to the user's home directory.
func (s loxSettings) historyPath() string {
	if !strings.HasPrefix(s.History, "~/") {
		return s.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, strings.TrimPrefix(s.History, "~/"))
}
