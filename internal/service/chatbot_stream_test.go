package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"compliancebot-be/internal/constant"
	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/contract"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"
	"compliancebot-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// --- In-memory doubles for the stream path ---

type stubProvider struct {
	deltas []string
	reply  string
	err    error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *stubProvider) ChatStream(ctx context.Context, history []llm.Message, onDelta func(string), opts ...llm.Option) (string, error) {
	for _, d := range p.deltas {
		if onDelta != nil {
			onDelta(d)
		}
	}
	return p.reply, p.err
}

type memChatState struct {
	sessions map[uuid.UUID]*entity.ChatSession
	messages []*entity.ChatMessage
}

func newMemChatState() *memChatState {
	return &memChatState{sessions: make(map[uuid.UUID]*entity.ChatSession)}
}

type memSessionRepo struct{ state *memChatState }

func (r *memSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	cp := *s
	r.state.sessions[s.Id] = &cp
	return nil
}

func (r *memSessionRepo) Update(ctx context.Context, s *entity.ChatSession) error {
	cp := *s
	r.state.sessions[s.Id] = &cp
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.state.sessions, id)
	return nil
}

func (r *memSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.state.sessions {
		return s, nil
	}
	return nil, nil
}

func (r *memSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.state.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.sessions)), nil
}

type memMessageRepo struct{ state *memChatState }

func (r *memMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	cp := *m
	r.state.messages = append(r.state.messages, &cp)
	return nil
}

func (r *memMessageRepo) Update(ctx context.Context, m *entity.ChatMessage) error {
	for i, existing := range r.state.messages {
		if existing.Id == m.Id {
			cp := *m
			r.state.messages[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("message %s not found", m.Id)
}

func (r *memMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteUnscoped(ctx, id)
}

func (r *memMessageRepo) DeleteUnscoped(ctx context.Context, id uuid.UUID) error {
	kept := r.state.messages[:0]
	for _, m := range r.state.messages {
		if m.Id != id {
			kept = append(kept, m)
		}
	}
	r.state.messages = kept
	return nil
}

func (r *memMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.state.messages[:0]
	for _, m := range r.state.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.state.messages = kept
	return nil
}

func (r *memMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	if len(r.state.messages) == 0 {
		return nil, nil
	}
	return r.state.messages[0], nil
}

func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return append([]*entity.ChatMessage(nil), r.state.messages...), nil
}

func (r *memMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.messages)), nil
}

type memUow struct{ state *memChatState }

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) CompanyProfileRepository() contract.CompanyProfileRepository { return nil }
func (u *memUow) ComplianceItemRepository() contract.ComplianceItemRepository { return nil }
func (u *memUow) DeadlineRepository() contract.DeadlineRepository             { return nil }
func (u *memUow) SavedDocumentRepository() contract.SavedDocumentRepository   { return nil }
func (u *memUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &memSessionRepo{state: u.state}
}
func (u *memUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &memMessageRepo{state: u.state}
}

type memUowFactory struct{ state *memChatState }

func (f *memUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{state: f.state}
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newStreamTestService(state *memChatState, provider llm.LLMProvider) *chatbotService {
	return &chatbotService{
		uowFactory:  &memUowFactory{state: state},
		llmProvider: provider,
		// Unreachable address, the quota check degrades to allow.
		redisClient:   redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond}),
		log:           nopLogger{},
		dailyLimit:    50,
		historyWindow: 10,
	}
}

func seedSession(state *memChatState, userId uuid.UUID) *entity.ChatSession {
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.ChatDefaultSessionTitle,
		CreatedAt: time.Now(),
	}
	state.sessions[session.Id] = session
	return session
}

func messagesByRole(state *memChatState, role string) []*entity.ChatMessage {
	var out []*entity.ChatMessage
	for _, m := range state.messages {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// --- Tests ---

func TestStreamChatPersistsReply(t *testing.T) {
	state := newMemChatState()
	userId := uuid.New()
	session := seedSession(state, userId)

	s := newStreamTestService(state, &stubProvider{
		deltas: []string{"Bu", "nă"},
		reply:  "Bună",
	})

	var got []string
	reply, err := s.StreamChat(context.Background(), userId,
		&dto.SendChatRequest{ChatSessionId: session.Id, Message: "Ce este GDPR?"},
		func(d string) { got = append(got, d) },
	)
	if err != nil {
		t.Fatalf("StreamChat: %v", err)
	}
	if reply != "Bună" {
		t.Errorf("reply = %q, want %q", reply, "Bună")
	}
	if len(got) != 2 || got[0] != "Bu" || got[1] != "nă" {
		t.Errorf("deltas = %v, want [Bu nă]", got)
	}

	assistant := messagesByRole(state, constant.ChatMessageRoleAssistant)
	if len(assistant) != 1 {
		t.Fatalf("assistant messages = %d, want 1", len(assistant))
	}
	if assistant[0].Content != "Bună" {
		t.Errorf("assistant content = %q, want %q", assistant[0].Content, "Bună")
	}
	if assistant[0].UpdatedAt == nil {
		t.Error("assistant UpdatedAt not set")
	}

	if state.sessions[session.Id].Title != "Ce este GDPR?" {
		t.Errorf("session title = %q, want first message", state.sessions[session.Id].Title)
	}
}

func TestStreamChatRemovesPlaceholderOnEarlyFailure(t *testing.T) {
	state := newMemChatState()
	userId := uuid.New()
	session := seedSession(state, userId)

	s := newStreamTestService(state, &stubProvider{
		reply: "",
		err:   fmt.Errorf("%w: status 500", llm.ErrGateway),
	})

	_, err := s.StreamChat(context.Background(), userId,
		&dto.SendChatRequest{ChatSessionId: session.Id, Message: "salut"}, nil)
	if !errors.Is(err, llm.ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}

	// The empty assistant row must be gone, only the user message survives.
	if got := messagesByRole(state, constant.ChatMessageRoleAssistant); len(got) != 0 {
		t.Errorf("assistant messages = %d, want 0", len(got))
	}
	user := messagesByRole(state, constant.ChatMessageRoleUser)
	if len(user) != 1 || user[0].Content != "salut" {
		t.Errorf("user messages = %+v, want the one sent message", user)
	}
}

func TestStreamChatKeepsPartialReplyOnMidStreamFailure(t *testing.T) {
	state := newMemChatState()
	userId := uuid.New()
	session := seedSession(state, userId)

	s := newStreamTestService(state, &stubProvider{
		deltas: []string{"răspuns par"},
		reply:  "răspuns par",
		err:    fmt.Errorf("%w: read stream: unexpected EOF", llm.ErrGateway),
	})

	reply, err := s.StreamChat(context.Background(), userId,
		&dto.SendChatRequest{ChatSessionId: session.Id, Message: "salut"}, nil)
	if !errors.Is(err, llm.ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
	if reply != "răspuns par" {
		t.Errorf("reply = %q, want the partial text", reply)
	}

	assistant := messagesByRole(state, constant.ChatMessageRoleAssistant)
	if len(assistant) != 1 {
		t.Fatalf("assistant messages = %d, want 1", len(assistant))
	}
	if assistant[0].Content != "răspuns par" {
		t.Errorf("assistant content = %q, want the partial text", assistant[0].Content)
	}
}

func TestStreamChatUnknownSession(t *testing.T) {
	state := newMemChatState()

	s := newStreamTestService(state, &stubProvider{reply: "nefolosit"})

	_, err := s.StreamChat(context.Background(), uuid.New(),
		&dto.SendChatRequest{ChatSessionId: uuid.New(), Message: "salut"}, nil)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if len(state.messages) != 0 {
		t.Errorf("messages persisted = %d, want 0", len(state.messages))
	}
}
