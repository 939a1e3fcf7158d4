// Package git lists assessment documents that changed in a git working tree,
// so a clinic keeping records under version control can score only new visits.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dotcommander/physioscore/internal/discovery"
)

// StagedDocuments returns absolute paths of staged answer and measurement
// documents. It returns an empty slice outside a git repository.
func StagedDocuments(rootPath string) ([]string, error) {
	if !IsRepo(rootPath) {
		return []string{}, nil
	}
	out, err := run(rootPath, "diff", "--name-only", "--relative", "--staged")
	if err != nil {
		return nil, err
	}
	return documents(out, rootPath), nil
}

// ChangedDocuments returns absolute paths of documents with uncommitted
// changes, staged or not, plus untracked ones. Before the first commit every
// tracked document counts as changed.
func ChangedDocuments(rootPath string) ([]string, error) {
	if !IsRepo(rootPath) {
		return []string{}, nil
	}

	var out string
	if _, err := run(rootPath, "rev-parse", "HEAD"); err != nil {
		if out, err = run(rootPath, "ls-files"); err != nil {
			return nil, err
		}
	} else if out, err = run(rootPath, "diff", "--name-only", "--relative", "HEAD"); err != nil {
		return nil, err
	}

	untracked, err := run(rootPath, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return documents(out+"\n"+untracked, rootPath), nil
}

// IsRepo reports whether dir is inside a git working tree.
func IsRepo(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// documents keeps the existing answer and measurement documents of a git
// path listing, deduplicated, as absolute paths.
func documents(listing, rootPath string) []string {
	files := []string{}
	seen := make(map[string]bool)
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true

		if ft, err := discovery.DetectFileType(line); err != nil || ft == discovery.FileTypeUnknown {
			continue
		}
		absPath := filepath.Join(rootPath, line)
		// git also lists deletions
		if _, err := os.Stat(absPath); err != nil {
			continue
		}
		files = append(files, absPath)
	}
	return files
}
