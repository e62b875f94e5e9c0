package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rag-intent-chat/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(path, "/exists"):
			w.Write([]byte(`{"result":{"exists":true},"status":"ok"}`))
		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0].Payload["cause_500"] == true {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"status":{"error":"boom"}}`))
				return
			}
			w.Write([]byte(`{"result":[
				{"id":"7f5c1e62-9d0c-4f43-8b0b-0c5b8f5a1c11","score":0.95,"payload":{"title":"Router","chunk":"Hold reset for 10s"}},
				{"id":42,"score":0.5,"payload":{"title":"Switch","chunk":"Power cycle"}}
			],"status":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL).WithAPIKey("secret")
	ctx := context.Background()

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
			Name:    "manuals",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: "Cosine"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("CollectionExists", func(t *testing.T) {
		ok, err := client.CollectionExists(ctx, "manuals")
		if err != nil || !ok {
			t.Fatalf("expected exists, got %v %v", ok, err)
		}
	})

	t.Run("UpsertPoints", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "manuals", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "7f5c1e62-9d0c-4f43-8b0b-0c5b8f5a1c11", Vector: []float32{0.1}, Payload: map[string]interface{}{"title": "Router"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = client.UpsertPoints(ctx, "manuals", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: 1, Payload: map[string]interface{}{"cause_500": true}}},
		})
		if err == nil {
			t.Fatal("expected error on 500")
		}
	})

	t.Run("SearchPoints", func(t *testing.T) {
		resp, err := client.SearchPoints(ctx, "manuals", qdrant.SearchRequest{Vector: []float32{0.1}, Limit: 3, WithPayload: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 2 || resp.Result[0].Payload["chunk"] != "Hold reset for 10s" {
			t.Errorf("unexpected result: %+v", resp.Result)
		}

		_, err = client.SearchPoints(ctx, "manuals", qdrant.SearchRequest{Limit: 999})
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected error body in message, got %v", err)
		}
	})

	t.Run("Forbidden without key", func(t *testing.T) {
		if _, err := qdrant.NewClient(ts.URL).CollectionExists(ctx, "manuals"); err == nil {
			t.Fatal("expected 403 error")
		}
	})
}
