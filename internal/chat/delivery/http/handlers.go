package http

import (
	"github.com/gin-gonic/gin"

	"rag-intent-chat/pkg/response"
)

// Chat godoc
// @Summary     Answer a chat prompt
// @Description Classifies the prompt, grounds it on the manuals or the database, answers it
// @Description and, when asked for, attaches a generated file.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body     chatReq true "Chat request"
// @Success     200     {object} chatResp
// @Failure     400     {object} response.Resp "Bad Request"
// @Failure     429     {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: bind: %v", err)
		response.Error(c, errInvalidBody, nil)
		return
	}

	out, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Handle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newChatResp(out))
}
