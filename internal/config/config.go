package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunControl is the optional pipefix.yaml run-control file. A missing file
// yields defaults; a malformed file is an error.
type RunControl struct {
	Prompt  string        `yaml:"prompt"`
	History HistoryConfig `yaml:"history"`
}

type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

const DefaultPrompt = ">> "

// RunControlFileName is looked up in the working directory.
const RunControlFileName = "pipefix.yaml"

func DefaultRunControl() *RunControl {
	return &RunControl{Prompt: DefaultPrompt}
}

// Load reads a run-control file. Load("") looks for RunControlFileName in
// the working directory and falls back to defaults when it is absent.
func Load(path string) (*RunControl, error) {
	explicit := path != ""
	if path == "" {
		path = RunControlFileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultRunControl(), nil
		}
		return nil, fmt.Errorf("read run-control file: %w", err)
	}

	rc := DefaultRunControl()
	if err := yaml.Unmarshal(data, rc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if rc.Prompt == "" {
		rc.Prompt = DefaultPrompt
	}
	return rc, nil
}

// HistoryEnabled defaults to true unless the file says otherwise.
func (rc *RunControl) HistoryEnabled() bool {
	if rc.History.Enabled == nil {
		return true
	}
	return *rc.History.Enabled
}

// HistoryPath resolves the history database location.
func (rc *RunControl) HistoryPath() string {
	if rc.History.Path != "" {
		return rc.History.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pipefix_history.db"
	}
	return filepath.Join(home, ".pipefix_history.db")
}
