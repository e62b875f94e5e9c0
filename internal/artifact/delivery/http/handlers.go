package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rag-intent-chat/internal/artifact"
	pkgErrors "rag-intent-chat/pkg/errors"
	"rag-intent-chat/pkg/response"
)

var (
	errObjectNotFound = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 40402, "artifact not found")
	errInternal       = pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 50000, "internal server error")
)

// Download godoc
// @Summary     Download an artifact
// @Description Streams a generated file. The token comes from the artifactUri of a chat answer.
// @Tags        Artifacts
// @Produce     application/octet-stream
// @Param       name  path  string true "Object name"
// @Param       token query string true "Retrieval token"
// @Success     200
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/artifacts/{name} [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	subject, err := h.signer.Verify(c.Query("token"))
	if err != nil || subject != name {
		h.l.Warnf(ctx, "artifact.delivery.Download: rejected token for %s: %v", name, err)
		response.Forbidden(c)
		return
	}

	body, info, err := h.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, artifact.ErrObjectNotFound) || errors.Is(err, artifact.ErrInvalidName) {
			response.Error(c, errObjectNotFound, nil)
			return
		}
		h.l.Errorf(ctx, "artifact.delivery.Download: open %s: %v", name, err)
		response.Error(c, errInternal, nil)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, name),
		"Cache-Control":       "private, max-age=0",
	})
}
