package usecase

import (
	"context"
	"errors"

	"rag-intent-chat/pkg/llmprovider"
	pkgLog "rag-intent-chat/pkg/log"
)

type state int

const (
	stateStart state = iota
	stateClassified
	stateContextBuilt
	stateAnswered
	stateArtifactPending
	stateArtifactAttached
	stateDone
)

var stateNames = [...]string{
	stateStart:            "start",
	stateClassified:       "classified",
	stateContextBuilt:     "context_built",
	stateAnswered:         "answered",
	stateArtifactPending:  "artifact_pending",
	stateArtifactAttached: "artifact_attached",
	stateDone:             "done",
}

func (s state) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// tracker records the states a request passes through. States only move forward.
type tracker struct {
	l       pkgLog.Logger
	current state
	path    []state
}

func newTracker(l pkgLog.Logger) *tracker {
	return &tracker{l: l, current: stateStart, path: []state{stateStart}}
}

func (t *tracker) enter(ctx context.Context, next state) {
	if next <= t.current {
		t.l.DPanicf(ctx, "chat.usecase.tracker: illegal transition %s -> %s", t.current, next)
		return
	}
	t.l.Debugf(ctx, "chat.usecase.Handle: %s -> %s", t.current, next)
	t.current = next
	t.path = append(t.path, next)
}

var errDuplicateSystemContext = errors.New("conversation already has a system context message")

// conversationState holds the messages of one request. It accepts at most one
// system-role context message.
type conversationState struct {
	messages         []llmprovider.Message
	hasSystemContext bool
}

func (c *conversationState) appendContext(msgs ...llmprovider.Message) error {
	systems := 0
	for _, m := range msgs {
		if m.Role == roleSystem {
			systems++
		}
	}
	if systems > 1 || (systems == 1 && c.hasSystemContext) {
		return errDuplicateSystemContext
	}
	if systems == 1 {
		c.hasSystemContext = true
	}
	c.messages = append(c.messages, msgs...)
	return nil
}
