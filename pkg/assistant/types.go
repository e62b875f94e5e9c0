package assistant

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Setting APIVersion switches to Azure
// OpenAI conventions: api-key header and api-version query parameter.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("assistant: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type assistantImpl struct {
	apiKey     string
	baseURL    string
	apiVersion string
	model      string
	httpClient *http.Client
}

// CreateAssistantRequest describes an ephemeral assistant.
type CreateAssistantRequest struct {
	Name         string
	Instructions string
	// Model overrides the configured model when set.
	Model string
}

// Assistant is the created agent identity.
type Assistant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}

// Thread is a conversation container.
type Thread struct {
	ID string `json:"id"`
}

// Run executes an assistant on a thread.
type Run struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	AssistantID string    `json:"assistant_id"`
	Status      RunStatus `json:"status"`
	LastError   *RunError `json:"last_error,omitempty"`
}

// RunError is populated when a run fails.
type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Message is a thread message.
type Message struct {
	ID          string           `json:"id"`
	Role        string           `json:"role"`
	CreatedAt   int64            `json:"created_at"`
	Content     []MessageContent `json:"content"`
	Attachments []Attachment     `json:"attachments"`
}

// MessageContent is one content block of a message.
type MessageContent struct {
	Type      string     `json:"type"` // "text" or "image_file"
	Text      *TextBlock `json:"text,omitempty"`
	ImageFile *FileRef   `json:"image_file,omitempty"`
}

// TextBlock holds text and its annotations.
type TextBlock struct {
	Value       string       `json:"value"`
	Annotations []Annotation `json:"annotations"`
}

// Annotation marks a file produced by the code interpreter.
type Annotation struct {
	Type     string   `json:"type"` // "file_path" or "file_citation"
	Text     string   `json:"text"`
	FilePath *FileRef `json:"file_path,omitempty"`
}

// FileRef references an uploaded or generated file.
type FileRef struct {
	FileID string `json:"file_id"`
}

// Attachment is a file attached to a message.
type Attachment struct {
	FileID string `json:"file_id"`
}

// FileIDs returns every file referenced by the message, attachments first,
// without duplicates.
func (m Message) FileIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, a := range m.Attachments {
		add(a.FileID)
	}
	for _, c := range m.Content {
		if c.ImageFile != nil {
			add(c.ImageFile.FileID)
		}
		if c.Text == nil {
			continue
		}
		for _, ann := range c.Text.Annotations {
			if ann.FilePath != nil {
				add(ann.FilePath.FileID)
			}
		}
	}
	return ids
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("assistant: API error %d: %s", e.StatusCode, e.Message)
}

type createAssistantBody struct {
	Model        string     `json:"model"`
	Name         string     `json:"name,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	Tools        []toolSpec `json:"tools"`
}

type toolSpec struct {
	Type string `json:"type"`
}

type createMessageBody struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type createRunBody struct {
	AssistantID string `json:"assistant_id"`
}

type listMessagesResponse struct {
	Data []Message `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
