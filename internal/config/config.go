package config

import "os"

const DefaultRootDir = "~/.config/OrcaSlicer"

// RootDir returns the profile store root from ORCASCOPE_ROOT env var,
// falling back to DefaultRootDir.
func RootDir() string {
	if env := os.Getenv("ORCASCOPE_ROOT"); env != "" {
		return env
	}
	return DefaultRootDir
}
