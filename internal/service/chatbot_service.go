// FILE: internal/service/chatbot_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"compliancebot-be/internal/constant"
	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/pkg/logger"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"
	"compliancebot-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("chat session not found")

type IChatbotService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error
	GetChatHistory(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)

	// StreamChat persists the user message, relays the model stream through
	// onDelta and persists the assistant reply. The assistant row is removed
	// when the stream fails before producing any content.
	StreamChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest, onDelta func(delta string)) (string, error)
}

type chatbotService struct {
	uowFactory    unitofwork.RepositoryFactory
	llmProvider   llm.LLMProvider
	redisClient   *redis.Client
	log           logger.ILogger
	dailyLimit    int
	historyWindow int
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	redisClient *redis.Client,
	log logger.ILogger,
	dailyLimit int,
	historyWindow int,
) IChatbotService {
	return &chatbotService{
		uowFactory:    uowFactory,
		llmProvider:   llmProvider,
		redisClient:   redisClient,
		log:           log,
		dailyLimit:    dailyLimit,
		historyWindow: historyWindow,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.ChatDefaultSessionTitle,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *chatbotService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return result, nil
}

func (s *chatbotService) DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatbotService) GetChatHistory(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return result, nil
}

func (s *chatbotService) StreamChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest, onDelta func(string)) (string, error) {
	if err := s.checkDailyQuota(ctx, userId); err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return "", err
	}

	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       req.Message,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return "", err
	}

	// First message titles the session.
	if session.Title == constant.ChatDefaultSessionTitle && len(history) == 0 {
		session.Title = sessionTitleFrom(req.Message)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			s.log.Warn("chatbot", "failed to retitle session", map[string]interface{}{"error": err.Error()})
		}
	}

	llmHistory := s.buildHistory(history, req.Message)

	// Placeholder assistant row, removed if the stream dies before any delta.
	placeholder := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       "",
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &placeholder); err != nil {
		return "", err
	}

	reply, streamErr := s.llmProvider.ChatStream(ctx, llmHistory, onDelta)
	if streamErr != nil && reply == "" {
		if delErr := uow.ChatMessageRepository().DeleteUnscoped(context.WithoutCancel(ctx), placeholder.Id); delErr != nil {
			s.log.Error("chatbot", "failed to remove placeholder message", map[string]interface{}{"error": delErr.Error()})
		}
		s.log.Error("chatbot", "stream failed", map[string]interface{}{"error": streamErr.Error()})
		return "", streamErr
	}

	placeholder.Content = reply
	now := time.Now()
	placeholder.UpdatedAt = &now
	if err := uow.ChatMessageRepository().Update(context.WithoutCancel(ctx), &placeholder); err != nil {
		s.log.Error("chatbot", "failed to persist assistant reply", map[string]interface{}{"error": err.Error()})
	}

	return reply, streamErr
}

func (s *chatbotService) buildHistory(history []*entity.ChatMessage, newMessage string) []llm.Message {
	// Keep only the most recent window, the model does not need the full log.
	if len(history) > s.historyWindow {
		history = history[len(history)-s.historyWindow:]
	}

	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.ComplianceSystemPrompt,
	})
	for _, h := range history {
		msgs = append(msgs, llm.Message{Role: h.Role, Content: h.Content})
	}
	msgs = append(msgs, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: newMessage,
	})
	return msgs
}

func (s *chatbotService) checkDailyQuota(ctx context.Context, userId uuid.UUID) error {
	now := time.Now()
	key := fmt.Sprintf("chat:quota:%s:%s", userId, now.Format("2006-01-02"))

	used, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		// Redis being down should not take chat down with it.
		s.log.Warn("chatbot", "quota check unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if used == 1 {
		s.redisClient.ExpireAt(ctx, key, midnight)
	}

	if int(used) > s.dailyLimit {
		return &dto.LimitExceededError{
			Limit:      s.dailyLimit,
			Used:       int(used),
			ResetAfter: midnight,
		}
	}
	return nil
}

func sessionTitleFrom(message string) string {
	title := strings.Join(strings.Fields(message), " ")
	if len(title) > 60 {
		// Truncate on a rune boundary, titles are full of diacritics.
		cut := 60
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = strings.TrimSpace(title[:cut]) + "..."
	}
	if title == "" {
		return constant.ChatDefaultSessionTitle
	}
	return title
}
