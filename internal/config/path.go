// Package config resolves user-supplied filesystem paths. The statements
// directory arrives from config files, flags or MCP tool arguments and may
// reference the home directory or environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR references in a path.
// Expansion failures leave the affected part untouched rather than
// erroring; the caller's file access reports the real problem.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
