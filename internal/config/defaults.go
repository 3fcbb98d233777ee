package config

import (
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultFormat = "auto" // Auto-detect: TTY=styled text, non-TTY=plain
	EnvPrefix     = "TREELINT_"
)

// DefaultConfigNames are the config file names searched for in the
// project root, in priority order.
var DefaultConfigNames = []string{
	".treelintrc.yaml",
	".treelintrc.yml",
	".treelintrc.json",
}

// FindConfigFile returns the config file to use for a project root, or
// "" when none exists. An explicit path always wins.
func FindConfigFile(root, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultConfigNames {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
