package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-intent-chat/internal/model"
	"rag-intent-chat/internal/session"
	repo "rag-intent-chat/internal/session/repository"
	"rag-intent-chat/pkg/log"
)

type mockRepo struct {
	sessions map[string]session.Session
	messages map[string][]session.Message
	touched  []string
	deleted  []string
	listOpt  repo.ListSessionsOptions
	getErr   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]session.Session{}, messages: map[string][]session.Message{}}
}

func (m *mockRepo) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) error {
	if _, ok := m.sessions[opt.ID]; !ok {
		m.sessions[opt.ID] = session.Session{ID: opt.ID, TenantID: opt.TenantID, UserID: opt.UserID, Title: opt.Title}
	}
	return nil
}

func (m *mockRepo) GetOneSession(ctx context.Context, id string) (session.Session, error) {
	if m.getErr != nil {
		return session.Session{}, m.getErr
	}
	return m.sessions[id], nil
}

func (m *mockRepo) TouchSession(ctx context.Context, id string) error {
	m.touched = append(m.touched, id)
	return nil
}

func (m *mockRepo) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]session.Session, int, error) {
	m.listOpt = opt
	var out []session.Session
	for _, s := range m.sessions {
		if s.TenantID == opt.TenantID && s.UserID == opt.UserID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) DeleteSession(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.sessions, id)
	delete(m.messages, id)
	return nil
}

func (m *mockRepo) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) error {
	m.messages[opt.SessionID] = append(m.messages[opt.SessionID], session.Message{
		ID:          opt.ID,
		SessionID:   opt.SessionID,
		Prompt:      opt.Prompt,
		Completion:  opt.Completion,
		TotalTokens: opt.TotalTokens,
	})
	return nil
}

func (m *mockRepo) ListMessages(ctx context.Context, sessionID string) ([]session.Message, error) {
	return m.messages[sessionID], nil
}

var scope = model.Scope{TenantID: "t1", UserID: "u1", SessionID: "s1"}

func newTestUseCase(r *mockRepo) *implUseCase {
	uc := New(r, log.NewNop()).(*implUseCase)
	n := 0
	uc.newID = func() string {
		n++
		return "m" + strings.Repeat("x", n)
	}
	return uc
}

func TestRecordTurn(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(r)
	ctx := context.Background()

	require.NoError(t, uc.RecordTurn(ctx, scope, model.Turn{Prompt: "  where is   the manual? ", Completion: "here", TotalTokens: 12}))
	require.NoError(t, uc.RecordTurn(ctx, scope, model.Turn{Prompt: "thanks", Completion: "welcome"}))

	s := r.sessions["s1"]
	assert.Equal(t, "where is the manual?", s.Title)
	assert.Equal(t, []string{"s1"}, r.touched)
	require.Len(t, r.messages["s1"], 2)
	assert.Equal(t, 12, r.messages["s1"][0].TotalTokens)
	assert.NotEqual(t, r.messages["s1"][0].ID, r.messages["s1"][1].ID)
}

func TestRecordTurn_ForeignSession(t *testing.T) {
	r := newMockRepo()
	r.sessions["s1"] = session.Session{ID: "s1", TenantID: "t2", UserID: "u9"}
	uc := newTestUseCase(r)

	err := uc.RecordTurn(context.Background(), scope, model.Turn{Prompt: "hi"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Empty(t, r.messages["s1"])
}

func TestRecordTurn_MissingScope(t *testing.T) {
	uc := newTestUseCase(newMockRepo())
	err := uc.RecordTurn(context.Background(), model.Scope{TenantID: "t1"}, model.Turn{})
	assert.ErrorIs(t, err, session.ErrMissingScope)
}

func TestRecordTurn_RepoError(t *testing.T) {
	r := newMockRepo()
	r.getErr = errors.New("db down")
	uc := newTestUseCase(r)

	assert.Error(t, uc.RecordTurn(context.Background(), scope, model.Turn{Prompt: "hi"}))
}

func TestTitle_Truncates(t *testing.T) {
	long := strings.Repeat("é", session.TitleMaxRunes+10)
	got := title(long)
	assert.Equal(t, session.TitleMaxRunes, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestListSessions_ClampsPaging(t *testing.T) {
	r := newMockRepo()
	r.sessions["s1"] = session.Session{ID: "s1", TenantID: "t1", UserID: "u1"}
	r.sessions["s2"] = session.Session{ID: "s2", TenantID: "t1", UserID: "other"}
	uc := newTestUseCase(r)

	out, err := uc.ListSessions(context.Background(), scope, session.ListSessionsInput{Limit: 1000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultListLimit, out.Limit)
	assert.Equal(t, 0, out.Offset)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, session.DefaultListLimit, r.listOpt.Limit)
}

func TestListMessagesAndDelete(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(r)
	ctx := context.Background()
	require.NoError(t, uc.RecordTurn(ctx, scope, model.Turn{Prompt: "hi", Completion: "hello"}))

	out, err := uc.ListMessages(ctx, scope, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", out.Session.ID)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "hello", out.Messages[0].Completion)

	other := model.Scope{TenantID: "t1", UserID: "intruder"}
	_, err = uc.ListMessages(ctx, other, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, other, "s1"), session.ErrSessionNotFound)
	assert.Empty(t, r.deleted)

	require.NoError(t, uc.Delete(ctx, scope, "s1"))
	assert.Equal(t, []string{"s1"}, r.deleted)

	_, err = uc.ListMessages(ctx, scope, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
