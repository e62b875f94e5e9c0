package usecase

import (
	"context"
	"fmt"
	"net/url"

	"rag-intent-chat/internal/artifact"
)

// Publish uploads data as "<agentID>.<fileType>" and returns a time-limited
// retrieval handle. No handle is issued unless the store reports the object.
func (p *implPublisher) Publish(ctx context.Context, data []byte, agentID, fileType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %w", artifact.ErrPublishFailed, artifact.ErrEmptyData)
	}

	name, err := artifact.ObjectName(agentID, fileType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", artifact.ErrPublishFailed, err)
	}

	if err := p.store.Upload(ctx, name, artifact.ContentType(name), data); err != nil {
		return "", fmt.Errorf("%w: upload: %w", artifact.ErrPublishFailed, err)
	}

	exists, err := p.store.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%w: exists: %w", artifact.ErrPublishFailed, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %w", artifact.ErrPublishFailed, artifact.ErrObjectNotFound)
	}

	token, err := p.signer.Issue(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", artifact.ErrPublishFailed, err)
	}

	uri := p.publicBaseURL + artifact.DownloadPath + url.PathEscape(name) + "?token=" + url.QueryEscape(token)
	p.l.Infof(ctx, "artifact.usecase.Publish: stored %s (%d bytes)", name, len(data))
	return uri, nil
}
