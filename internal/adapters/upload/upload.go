// Package upload stores invite images on the local filesystem.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// URLPrefix is the path segment uploaded files are served under.
const URLPrefix = "uploads"

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedFile reports whether name has an allowed image extension (case-insensitive).
func AllowedFile(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}
	_, ok := allowedExtensions[extension(name)]
	return ok
}

// SanitizeFilename reduces a client-supplied filename to a safe ASCII name
// with no path components. It may return "".
func SanitizeFilename(name string) string {
	decomposed := norm.NFKD.String(name)
	var b strings.Builder
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	ascii := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// LocalStore writes images into a directory on local disk.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a LocalStore rooted at dir. The directory is created on first save.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: filepath.Clean(dir)}
}

// Dir returns the directory images are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes content as "<token>_<sanitized filename>" and returns its
// relative path ("uploads/<name>"). Missing or disallowed files are dropped:
// Save returns "" and no error. A name that loses its stem or extension to
// sanitizing is stored as "image.<ext>".
func (s *LocalStore) Save(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	if content == nil || strings.TrimSpace(filename) == "" || !AllowedFile(filename) {
		return "", nil
	}
	safe := SanitizeFilename(filename)
	if !AllowedFile(safe) {
		safe = "image." + extension(filename)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := token + "_" + safe
	dstPath := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		_ = dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path.Join(URLPrefix, name), nil
}

// Delete removes a file previously returned by Save. Missing files are ignored.
func (s *LocalStore) Delete(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir, name := path.Split(path.Clean(relPath))
	if path.Clean(dir) != URLPrefix || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("delete upload: unexpected path %q", relPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

func extension(name string) string {
	return strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}
