package http

import "rag-intent-chat/internal/chat"

type chatReq struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	TenantID  string `json:"tenantId"`
	Prompt    string `json:"prompt"`
}

func (r chatReq) toInput() chat.HandleInput {
	return chat.HandleInput{
		UserID:    r.UserID,
		SessionID: r.SessionID,
		TenantID:  r.TenantID,
		Prompt:    r.Prompt,
	}
}

type chatResp struct {
	AnswerText  string `json:"answerText"`
	ArtifactURI string `json:"artifactUri,omitempty"`
}

func (h *handler) newChatResp(out chat.HandleOutput) chatResp {
	return chatResp{
		AnswerText:  out.AnswerText,
		ArtifactURI: out.ArtifactURI,
	}
}
