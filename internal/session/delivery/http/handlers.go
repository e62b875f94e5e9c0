package http

import (
	"github.com/gin-gonic/gin"

	"rag-intent-chat/internal/middleware"
	"rag-intent-chat/pkg/response"
)

// List godoc
// @Summary     List chat sessions
// @Description Returns the caller's sessions, most recently active first.
// @Tags        Sessions
// @Produce     json
// @Param       X-Tenant-ID header string true  "Tenant ID"
// @Param       X-User-ID   header string true  "User ID"
// @Param       limit       query  int    false "Page size (default: 20)"
// @Param       offset      query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListSessions(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Messages godoc
// @Summary     List session messages
// @Description Returns every turn of a session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       X-Tenant-ID header string true "Tenant ID"
// @Param       X-User-ID   header string true "User ID"
// @Param       id          path   string true "Session ID"
// @Success     200 {object} messagesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/messages [GET]
func (h *handler) Messages(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	out, err := h.uc.ListMessages(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ListMessages: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newMessagesResp(out))
}

// Delete godoc
// @Summary     Delete a session
// @Description Removes a session and all of its messages.
// @Tags        Sessions
// @Produce     json
// @Param       X-Tenant-ID header string true "Tenant ID"
// @Param       X-User-ID   header string true "User ID"
// @Param       id          path   string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}
