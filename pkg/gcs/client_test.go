package gcs_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"rag-intent-chat/pkg/gcs"
)

func TestClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/b/artifacts/o/missing.png"):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"No such object"}}`))
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/b/artifacts/o/chart.png"):
			if r.URL.Query().Get("alt") == "media" {
				w.Header().Set("Content-Type", "image/png")
				w.Write([]byte("PNGDATA"))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"chart.png","bucket":"artifacts","contentType":"image/png","size":"7"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gcs.NewClient(ctx, "artifacts",
		option.WithEndpoint(ts.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(ts.Client()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Stat", func(t *testing.T) {
		obj, err := client.Stat(ctx, "chart.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if obj.ContentType != "image/png" || obj.Size != 7 {
			t.Errorf("unexpected object: %+v", obj)
		}
	})

	t.Run("Stat missing", func(t *testing.T) {
		if _, err := client.Stat(ctx, "missing.png"); !errors.Is(err, gcs.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Download", func(t *testing.T) {
		body, err := client.Download(ctx, "chart.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer body.Close()
		data, _ := io.ReadAll(body)
		if string(data) != "PNGDATA" {
			t.Errorf("unexpected body %q", data)
		}
	})

	t.Run("Download missing", func(t *testing.T) {
		if _, err := client.Download(ctx, "missing.png"); !errors.Is(err, gcs.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestNewClient_RequiresBucket(t *testing.T) {
	if _, err := gcs.NewClient(context.Background(), "", option.WithoutAuthentication()); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}
