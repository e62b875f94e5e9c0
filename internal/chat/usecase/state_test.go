package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-intent-chat/pkg/llmprovider"
	"rag-intent-chat/pkg/log"
)

func TestTracker_ForwardOnly(t *testing.T) {
	tr := newTracker(log.NewNop())
	ctx := context.Background()

	tr.enter(ctx, stateClassified)
	tr.enter(ctx, stateContextBuilt)
	tr.enter(ctx, stateAnswered)
	tr.enter(ctx, stateDone)
	assert.Equal(t, []state{stateStart, stateClassified, stateContextBuilt, stateAnswered, stateDone}, tr.path)
	assert.Equal(t, "done", tr.current.String())
	assert.Equal(t, "unknown", state(42).String())
}

func TestConversationState_OneSystemContext(t *testing.T) {
	var c conversationState
	require.NoError(t, c.appendContext(
		llmprovider.TextMessage("system", "schema"),
		llmprovider.TextMessage("user", "q"),
	))

	err := c.appendContext(llmprovider.TextMessage("system", "again"))
	assert.ErrorIs(t, err, errDuplicateSystemContext)
	assert.Len(t, c.messages, 2)

	var d conversationState
	err = d.appendContext(llmprovider.TextMessage("system", "a"), llmprovider.TextMessage("system", "b"))
	assert.ErrorIs(t, err, errDuplicateSystemContext)
	assert.Empty(t, d.messages)
}
