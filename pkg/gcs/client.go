package gcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// ErrNotFound is returned when the object does not exist.
var ErrNotFound = errors.New("gcs: object not found")

// Client wraps the Cloud Storage JSON API for a single bucket.
type Client struct {
	service *storage.Service
	bucket  string
}

// NewClientFromCredentialsFile creates a client from a Service Account JSON
// file path. An empty path uses Application Default Credentials.
func NewClientFromCredentialsFile(ctx context.Context, bucket, credentialsPath string) (*Client, error) {
	if credentialsPath == "" {
		ts, err := google.DefaultTokenSource(ctx, storage.DevstorageReadWriteScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w", err)
		}
		return NewClient(ctx, bucket, option.WithTokenSource(ts))
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, bucket, data)
}

// NewClientFromCredentialsJSON creates a client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, bucket string, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return NewClient(ctx, bucket, option.WithTokenSource(config.TokenSource(ctx)))
}

// NewClient creates a client with explicit client options.
func NewClient(ctx context.Context, bucket string, opts ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs: bucket is required")
	}
	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return &Client{service: svc, bucket: bucket}, nil
}

// Bucket returns the bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Upload writes the object, replacing any existing object with the same name.
func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) error {
	obj := &storage.Object{Name: name, ContentType: contentType}
	_, err := c.service.Objects.Insert(c.bucket, obj).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", name, err)
	}
	return nil
}

// Stat returns object metadata.
func (c *Client) Stat(ctx context.Context, name string) (*storage.Object, error) {
	obj, err := c.service.Objects.Get(c.bucket, name).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	return obj, nil
}

// Download streams the object content. The caller closes the body.
func (c *Client) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := c.service.Objects.Get(c.bucket, name).Context(ctx).Download()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to download object %s: %w", name, err)
	}
	return resp.Body, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
