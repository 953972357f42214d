package photo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// PublicPath is where the router serves the local upload directory.
const PublicPath = "/uploads"

type LocalStore struct {
	dir  string
	once ensureOnce
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Ensure(_ context.Context) error {
	return s.once.Do(func() error {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("create upload dir %s: %w", s.dir, err)
		}
		return nil
	})
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte, _ string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) PublicURL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + PublicPath + "/" + url.PathEscape(name)
}

func (s *LocalStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid photo name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
