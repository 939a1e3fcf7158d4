package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileType categorizes discovered input documents
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeAnswers
	FileTypeBiomech
)

// String returns the human-readable name of the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypeAnswers:
		return "answers"
	case FileTypeBiomech:
		return "biomech"
	default:
		return "unknown"
	}
}

// ParseFileType converts a string to a FileType.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "answers", "answer":
		return FileTypeAnswers, nil
	case "biomech", "biomechanics":
		return FileTypeBiomech, nil
	default:
		return FileTypeUnknown, fmt.Errorf("invalid type %q: valid types are answers, biomech", s)
	}
}

// FileTypeEntry defines the discovery patterns for a file type.
type FileTypeEntry struct {
	Type     FileType
	Patterns []string
}

// DefaultFileTypes is the registry of document types and their patterns,
// relative to the discovery root.
var DefaultFileTypes = []FileTypeEntry{
	{Type: FileTypeAnswers, Patterns: []string{"**/*.answers.{yaml,yml,json}"}},
	{Type: FileTypeBiomech, Patterns: []string{"**/*.biomech.{yaml,yml,json}"}},
}

// DetectFileType determines the document type from the file name.
func DetectFileType(path string) (FileType, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, entry := range DefaultFileTypes {
		for _, pattern := range entry.Patterns {
			if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "**/"), base); ok {
				return entry.Type, nil
			}
		}
	}
	return FileTypeUnknown, fmt.Errorf(
		"cannot determine type of %s: expected *.answers.{yaml,yml,json} or *.biomech.{yaml,yml,json}. "+
			"Use --type to specify (answers, biomech)", filepath.Base(path))
}

// MaxDocumentSize bounds a single document. Assessment documents are a few
// kilobytes; anything larger is not a hand-written record.
const MaxDocumentSize = 1 << 20

// ValidateFilePath checks that path names a readable, non-empty text file
// no larger than MaxDocumentSize and returns its absolute path.
func ValidateFilePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	abs, info, err := resolve(abs, true)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("file not found: %s", abs)
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("permission denied: %s", abs)
	case err != nil:
		return "", err
	case info.IsDir():
		return "", fmt.Errorf("%s is a directory, not a document", abs)
	case info.Size() == 0:
		return "", fmt.Errorf("file is empty: %s", abs)
	case info.Size() > MaxDocumentSize:
		return "", fmt.Errorf("%s is %d bytes, documents are limited to %d", abs, info.Size(), MaxDocumentSize)
	}

	head, err := readHead(abs, 512)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", abs, err)
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return "", fmt.Errorf("%s looks binary, expected a YAML or JSON document", abs)
	}
	return abs, nil
}

// resolve stats path, following a symlink when follow is set. A symlink
// that is not followed is reported as errSymlink.
func resolve(path string, follow bool) (string, fs.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return path, nil, err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return path, info, nil
	}
	if !follow {
		return path, nil, errSymlink
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, nil, fmt.Errorf("cannot resolve symlink %s: %w", path, err)
	}
	info, err = os.Stat(target)
	return target, info, err
}

var errSymlink = errors.New("symlink not followed")

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:read], nil
}

// File represents a discovered document with its contents
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Type     FileType
	Contents []byte
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath       string
	followSymlinks bool
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string, followSymlinks bool) *FileDiscovery {
	return &FileDiscovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
	}
}

// DiscoverFiles finds every answers and biomech document under the root.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	return fd.DiscoverFilesWithRegistry(DefaultFileTypes)
}

// DiscoverFilesWithRegistry finds files using a custom registry. Results
// are sorted by relative path.
func (fd *FileDiscovery) DiscoverFilesWithRegistry(registry []FileTypeEntry) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	for _, entry := range registry {
		for _, pattern := range entry.Patterns {
			matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
			if err != nil {
				return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
			}
			for _, match := range matches {
				if seen[match] {
					continue
				}
				f, ok := fd.processMatch(match)
				if !ok {
					continue
				}
				seen[match] = true
				f.Type = entry.Type
				files = append(files, f)
			}
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// processMatch reads a glob match. Directories, unfollowed symlinks,
// unreadable and oversized files are skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath, info, err := resolve(filepath.Join(fd.rootPath, match), fd.followSymlinks)
	if err != nil || info.IsDir() || info.Size() > MaxDocumentSize {
		return File{}, false
	}
	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return File{}, false
	}
	return File{
		Path:     fullPath,
		RelPath:  filepath.ToSlash(match),
		Size:     info.Size(),
		Contents: contents,
	}, true
}

// Resolve turns command-line arguments into files. Each argument may be a
// file, a directory (searched with the default registry) or a doublestar
// glob. A file whose type cannot be detected gets forced when non-zero.
func (fd *FileDiscovery) Resolve(args []string, forced FileType) ([]File, error) {
	var files []File
	for _, arg := range args {
		switch info, err := os.Stat(arg); {
		case err == nil && info.IsDir():
			sub := NewFileDiscovery(arg, fd.followSymlinks)
			found, err := sub.DiscoverFiles()
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case err == nil:
			f, err := readFile(arg, forced)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		default:
			matches, gerr := doublestar.FilepathGlob(arg)
			if gerr != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", arg, gerr)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %s", arg)
			}
			for _, m := range matches {
				f, err := readFile(m, forced)
				if err != nil {
					return nil, err
				}
				files = append(files, f)
			}
		}
	}
	return files, nil
}

func readFile(path string, forced FileType) (File, error) {
	abs, err := ValidateFilePath(path)
	if err != nil {
		return File{}, err
	}
	ft := forced
	if ft == FileTypeUnknown {
		if ft, err = DetectFileType(abs); err != nil {
			return File{}, err
		}
	}
	contents, err := os.ReadFile(abs)
	if err != nil {
		return File{}, fmt.Errorf("cannot read file: %s: %w", abs, err)
	}
	return File{
		Path:     abs,
		RelPath:  filepath.ToSlash(path),
		Size:     int64(len(contents)),
		Type:     ft,
		Contents: contents,
	}, nil
}
