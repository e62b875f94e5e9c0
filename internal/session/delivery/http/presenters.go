package http

import (
	"time"

	"rag-intent-chat/internal/session"
)

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() session.ListSessionsInput {
	return session.ListSessionsInput{Limit: r.Limit, Offset: r.Offset}
}

type sessionResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSessionResp(s session.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type listResp struct {
	Sessions []sessionResp `json:"sessions"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out session.ListSessionsOutput) listResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listResp{
		Sessions: sessions,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type messageResp struct {
	ID           string    `json:"id"`
	Prompt       string    `json:"prompt"`
	Completion   string    `json:"completion"`
	Label        string    `json:"label"`
	ArtifactURI  string    `json:"artifact_uri,omitempty"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	TotalTokens  int       `json:"total_tokens"`
	CreatedAt    time.Time `json:"created_at"`
}

type messagesResp struct {
	Session  sessionResp   `json:"session"`
	Messages []messageResp `json:"messages"`
}

func (h *handler) newMessagesResp(out session.ListMessagesOutput) messagesResp {
	messages := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = messageResp{
			ID:           m.ID,
			Prompt:       m.Prompt,
			Completion:   m.Completion,
			Label:        m.Label,
			ArtifactURI:  m.ArtifactURI,
			InputTokens:  m.InputTokens,
			OutputTokens: m.OutputTokens,
			TotalTokens:  m.TotalTokens,
			CreatedAt:    m.CreatedAt,
		}
	}
	return messagesResp{Session: newSessionResp(out.Session), Messages: messages}
}
