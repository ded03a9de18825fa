package config

import (
	"path/filepath"
	"strings"
)

// DefaultHistoryFile is the history file name used when none is configured.
// Relative to the working directory.
const DefaultHistoryFile = "regex_history.json"

// HistoryPath resolves the configured history path.
// An explicit override (the --history flag) wins as given. A relative
// history.path from a project-local config (.regexlab/config.yaml) resolves
// against the project directory; otherwise relative paths stay relative to
// the working directory.
func HistoryPath(cfg Config, configPath, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}

	path := cfg.History.Path
	if path == "" {
		path = DefaultHistoryFile
	}
	if filepath.IsAbs(path) || configPath == "" {
		return path
	}

	clean := filepath.Clean(configPath)
	if strings.HasSuffix(clean, ProjectConfigPath) {
		project := filepath.Dir(filepath.Dir(clean))
		return filepath.Join(project, path)
	}
	return path
}
