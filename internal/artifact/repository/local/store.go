package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"rag-intent-chat/internal/artifact"
)

type implStore struct {
	dir string
}

// New creates a filesystem Store rooted at dir, creating it if needed.
func New(dir string) (artifact.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("artifact/repository/local: create %s: %w", dir, err)
	}
	return &implStore{dir: dir}, nil
}

func (s *implStore) path(name string) (string, error) {
	if err := artifact.ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// Upload writes through a temp file and rename so readers never see partial data.
func (s *implStore) Upload(ctx context.Context, name, contentType string, data []byte) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("artifact/repository/local: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("artifact/repository/local: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("artifact/repository/local: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("artifact/repository/local: rename: %w", err)
	}
	return nil
}

func (s *implStore) Exists(ctx context.Context, name string) (bool, error) {
	target, err := s.path(name)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("artifact/repository/local: stat: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

func (s *implStore) Open(ctx context.Context, name string) (io.ReadCloser, artifact.ObjectInfo, error) {
	target, err := s.path(name)
	if err != nil {
		return nil, artifact.ObjectInfo{}, err
	}
	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, artifact.ObjectInfo{}, artifact.ErrObjectNotFound
	}
	if err != nil {
		return nil, artifact.ObjectInfo{}, fmt.Errorf("artifact/repository/local: open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, artifact.ObjectInfo{}, fmt.Errorf("artifact/repository/local: stat: %w", err)
	}
	return f, artifact.ObjectInfo{Name: name, ContentType: artifact.ContentType(name), Size: info.Size()}, nil
}
