package gcs

import (
	"context"
	"errors"
	"io"

	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/pkg/gcs"
)

type implStore struct {
	client *gcs.Client
}

// New creates a Cloud Storage backed Store.
func New(client *gcs.Client) artifact.Store {
	return &implStore{client: client}
}

func (s *implStore) Upload(ctx context.Context, name, contentType string, data []byte) error {
	if err := artifact.ValidateName(name); err != nil {
		return err
	}
	return s.client.Upload(ctx, name, contentType, data)
}

func (s *implStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := artifact.ValidateName(name); err != nil {
		return false, err
	}
	_, err := s.client.Stat(ctx, name)
	if errors.Is(err, gcs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *implStore) Open(ctx context.Context, name string) (io.ReadCloser, artifact.ObjectInfo, error) {
	if err := artifact.ValidateName(name); err != nil {
		return nil, artifact.ObjectInfo{}, err
	}
	obj, err := s.client.Stat(ctx, name)
	if errors.Is(err, gcs.ErrNotFound) {
		return nil, artifact.ObjectInfo{}, artifact.ErrObjectNotFound
	}
	if err != nil {
		return nil, artifact.ObjectInfo{}, err
	}

	body, err := s.client.Download(ctx, name)
	if errors.Is(err, gcs.ErrNotFound) {
		return nil, artifact.ObjectInfo{}, artifact.ErrObjectNotFound
	}
	if err != nil {
		return nil, artifact.ObjectInfo{}, err
	}

	info := artifact.ObjectInfo{Name: name, ContentType: obj.ContentType, Size: int64(obj.Size)}
	if info.ContentType == "" {
		info.ContentType = artifact.ContentType(name)
	}
	return body, info, nil
}
