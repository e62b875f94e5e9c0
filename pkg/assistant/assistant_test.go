package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rag-intent-chat/pkg/assistant"
)

func TestClient_RunLifecycle(t *testing.T) {
	var created map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		if r.Header.Get("OpenAI-Beta") != "assistants=v2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/assistants":
			json.NewDecoder(r.Body).Decode(&created)
			w.Write([]byte(`{"id":"asst_1","name":"artifact-x","model":"gpt-4o"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/assistants/asst_1":
			w.Write([]byte(`{"id":"asst_1","deleted":true}`))
		case r.Method == http.MethodPost && r.URL.Path == "/threads":
			w.Write([]byte(`{"id":"thread_1"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/threads/thread_1/messages":
			w.Write([]byte(`{"id":"msg_1","role":"user"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/threads/thread_1/runs":
			w.Write([]byte(`{"id":"run_1","status":"queued"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/threads/thread_1/runs/run_1":
			w.Write([]byte(`{"id":"run_1","status":"completed"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/threads/thread_1/runs/run_1/cancel":
			w.Write([]byte(`{"id":"run_1","status":"cancelling"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/threads/thread_1/messages":
			if r.URL.Query().Get("order") != "desc" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"data":[
				{"id":"msg_3","role":"assistant","content":[
					{"type":"image_file","image_file":{"file_id":"file_img"}},
					{"type":"text","text":{"value":"Done","annotations":[{"type":"file_path","text":"sandbox:/chart.pptx","file_path":{"file_id":"file_pptx"}}]}}
				],"attachments":[{"file_id":"file_pptx"}]},
				{"id":"msg_1","role":"user","content":[{"type":"text","text":{"value":"make chart","annotations":[]}}]}
			]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/files/file_pptx/content":
			w.Write([]byte("PPTX-BYTES"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"message":"no such route"}}`))
		}
	}))
	defer ts.Close()

	client, err := assistant.New(assistant.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	asst, err := client.CreateAssistant(ctx, assistant.CreateAssistantRequest{Name: "artifact-x", Instructions: "plot"})
	if err != nil || asst.ID != "asst_1" {
		t.Fatalf("CreateAssistant() = %+v, %v", asst, err)
	}
	tools := created["tools"].([]interface{})
	if tools[0].(map[string]interface{})["type"] != "code_interpreter" {
		t.Errorf("expected code_interpreter tool, got %v", tools)
	}
	if created["model"] != assistant.DefaultModel {
		t.Errorf("expected default model, got %v", created["model"])
	}

	thread, err := client.CreateThread(ctx)
	if err != nil || thread.ID != "thread_1" {
		t.Fatalf("CreateThread() = %+v, %v", thread, err)
	}
	if _, err := client.CreateMessage(ctx, thread.ID, "make chart"); err != nil {
		t.Fatalf("CreateMessage() error = %v", err)
	}

	run, err := client.CreateRun(ctx, thread.ID, asst.ID)
	if err != nil || !run.Status.Pending() {
		t.Fatalf("CreateRun() = %+v, %v", run, err)
	}
	run, err = client.GetRun(ctx, thread.ID, run.ID)
	if err != nil || run.Status != assistant.RunStatusCompleted || run.Status.Pending() {
		t.Fatalf("GetRun() = %+v, %v", run, err)
	}
	if err := client.CancelRun(ctx, thread.ID, run.ID); err != nil {
		t.Fatalf("CancelRun() error = %v", err)
	}

	msgs, err := client.ListMessages(ctx, thread.ID)
	if err != nil || len(msgs) != 2 {
		t.Fatalf("ListMessages() = %d, %v", len(msgs), err)
	}
	ids := msgs[0].FileIDs()
	if len(ids) != 2 || ids[0] != "file_pptx" || ids[1] != "file_img" {
		t.Errorf("FileIDs() = %v", ids)
	}
	if len(msgs[1].FileIDs()) != 0 {
		t.Errorf("user message should carry no files")
	}

	data, err := client.FileContent(ctx, "file_pptx")
	if err != nil || string(data) != "PPTX-BYTES" {
		t.Fatalf("FileContent() = %q, %v", data, err)
	}

	if err := client.DeleteAssistant(ctx, asst.ID); err != nil {
		t.Fatalf("DeleteAssistant() error = %v", err)
	}

	_, err = client.FileContent(ctx, "missing")
	var apiErr *assistant.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "no such route" {
		t.Errorf("expected APIError 404, got %v", err)
	}
}

func TestClient_AzureConventions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "azure-key" || r.URL.Query().Get("api-version") != "2024-05-01-preview" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/messages") && r.URL.Query().Get("order") != "desc" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id":"thread_az","data":[]}`))
	}))
	defer ts.Close()

	client, _ := assistant.New(assistant.Config{APIKey: "azure-key", BaseURL: ts.URL, APIVersion: "2024-05-01-preview"})

	if _, err := client.CreateThread(context.Background()); err != nil {
		t.Fatalf("CreateThread() error = %v", err)
	}
	if _, err := client.ListMessages(context.Background(), "thread_az"); err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if _, err := assistant.New(assistant.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
