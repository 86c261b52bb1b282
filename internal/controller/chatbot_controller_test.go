package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/service"
	"compliancebot-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubChatbotService struct {
	streamDeltas []string
	streamReply  string
	streamErr    error
}

func (s *stubChatbotService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	return nil, nil
}

func (s *stubChatbotService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	return nil, nil
}

func (s *stubChatbotService) DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error {
	return nil
}

func (s *stubChatbotService) GetChatHistory(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	return nil, nil
}

func (s *stubChatbotService) StreamChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest, onDelta func(string)) (string, error) {
	for _, d := range s.streamDeltas {
		onDelta(d)
	}
	return s.streamReply, s.streamErr
}

func newChatTestApp(svc service.IChatbotService) *fiber.App {
	ctrl := NewChatbotController(svc, nopLogger{})
	app := fiber.New()
	app.Post("/chat", func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		return ctrl.SendChat(c)
	})
	return app
}

func sendChatRequest(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()

	body := fmt.Sprintf(`{"chat_session_id":%q,"message":"salut"}`, uuid.New())
	req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func TestSendChatDailyLimitKeepsJSONStatus(t *testing.T) {
	app := newChatTestApp(&stubChatbotService{
		streamErr: &dto.LimitExceededError{Limit: 50, Used: 51, ResetAfter: time.Now().Add(time.Hour)},
	})

	status, body := sendChatRequest(t, app)
	if status != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", status)
	}
	if !strings.Contains(body, "daily_limit_exceeded") {
		t.Errorf("body missing error_type: %s", body)
	}
}

func TestSendChatGatewayFailureBeforeFirstDelta(t *testing.T) {
	app := newChatTestApp(&stubChatbotService{
		streamErr: fmt.Errorf("%w: status 500", llm.ErrGateway),
	})

	status, body := sendChatRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if strings.Contains(body, "data:") {
		t.Errorf("failure before first delta must not start a stream: %s", body)
	}
}

func TestWriteDeltaFrame(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := writeDeltaFrame(w, "Bună"); err != nil {
		t.Fatalf("writeDeltaFrame: %v", err)
	}

	want := "data: {\"choices\":[{\"delta\":{\"content\":\"Bună\"}}]}\n\n"
	if buf.String() != want {
		t.Errorf("frame = %q, want %q", buf.String(), want)
	}
}

func TestWriteErrorFrameCarriesNoDoneSentinel(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	writeErrorFrame(w, "Serviciul AI este momentan indisponibil.")

	got := buf.String()
	if !strings.Contains(got, `"error":{"message":"Serviciul AI este momentan indisponibil."}`) {
		t.Errorf("frame = %q, want an error payload", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("frame %q not newline-terminated", got)
	}
	if strings.Contains(got, "[DONE]") {
		t.Error("error frame must replace the [DONE] sentinel, not precede it")
	}
}
