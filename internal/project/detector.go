// Package project locates the records directory a command runs against.
package project

import (
	"os"
	"path/filepath"

	"github.com/dotcommander/physioscore/internal/config"
)

// FindRoot climbs from startPath to the nearest directory holding a
// .physioscorerc file. ok is false when no ancestor has one.
func FindRoot(startPath string) (root string, ok bool, err error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", false, err
	}

	dir := absPath
	for {
		if ConfigFile(dir) != "" {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return absPath, false, nil
		}
		dir = parent
	}
}

// ConfigFile returns the path of the first rc file present in dir, or "".
func ConfigFile(dir string) string {
	for _, name := range config.ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
