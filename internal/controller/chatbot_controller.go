package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"compliancebot-be/internal/constant"
	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/logger"
	"compliancebot-be/internal/pkg/serverutils"
	"compliancebot-be/internal/service"
	"compliancebot-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	log     logger.ILogger
}

func NewChatbotController(service service.IChatbotService, log logger.ILogger) IChatbotController {
	return &chatbotController{service: service, log: log}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Use(serverutils.JwtMiddleware) // ✅ PROTECTED
	h.Post("/session", c.CreateSession)
	h.Get("/session", c.GetAllSessions)
	h.Delete("/session/:id", c.DeleteSession)
	h.Get("/session/:id/history", c.GetChatHistory)
	h.Post("/chat", c.SendChat)
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.CreateSession(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create chat session", res))
}

func (c *chatbotController) GetAllSessions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAllSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all chat sessions", res))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "chat session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat session", nil))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "chat session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

// SendChat relays the model stream to the client as server-sent events.
// Failures before the first token keep a regular JSON error response; once
// streaming has started a failure is signalled with an error frame and the
// [DONE] sentinel is withheld, so the client never mistakes a truncated
// reply for a complete one.
func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	deltas := make(chan string, 64)
	result := make(chan error, 1)

	// The stream outlives this handler (the fiber context dies when it
	// returns), so it runs on its own context that we cancel when the
	// client connection goes away.
	streamCtx, cancelStream := context.WithCancel(context.Background())
	go func() {
		_, err := c.service.StreamChat(streamCtx, userId, &req, func(delta string) {
			deltas <- delta
		})
		close(deltas)
		result <- err
	}()

	first, ok := <-deltas
	if !ok {
		// Nothing streamed, the failure gets a proper status code.
		if err := <-result; err != nil {
			cancelStream()
			return c.chatError(ctx, err)
		}
		first = ""
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancelStream()
		if ok {
			if err := writeDeltaFrame(w, first); err != nil {
				c.abortStream(cancelStream, deltas, result)
				return
			}
			for delta := range deltas {
				if err := writeDeltaFrame(w, delta); err != nil {
					c.abortStream(cancelStream, deltas, result)
					return
				}
			}
			if err := <-result; err != nil {
				c.log.Error("chatbot", "stream ended with error", map[string]interface{}{"error": err.Error()})
				writeErrorFrame(w, constant.ChatErrorGateway)
				return
			}
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		w.Flush()
	}))
	return nil
}

// abortStream handles a client that stopped reading mid-stream: cancel the
// upstream request, then drain the channels so the service goroutine can
// finish persisting whatever arrived.
func (c *chatbotController) abortStream(cancel context.CancelFunc, deltas <-chan string, result <-chan error) {
	cancel()
	for range deltas {
	}
	if err := <-result; err != nil {
		c.log.Warn("chatbot", "stream aborted by client", map[string]interface{}{"error": err.Error()})
	}
}

func (c *chatbotController) chatError(ctx *fiber.Ctx, err error) error {
	var limitErr *dto.LimitExceededError
	switch {
	case errors.As(err, &limitErr):
		return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.LimitExceededResponse{
			Success:   false,
			Code:      fiber.StatusTooManyRequests,
			Message:   constant.ChatErrorDailyLimit,
			ErrorType: "daily_limit_exceeded",
			Data: dto.LimitExceededData{
				Limit:      limitErr.Limit,
				Used:       limitErr.Used,
				ResetAfter: limitErr.ResetAfter,
			},
		})
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "chat session not found"))
	case errors.Is(err, llm.ErrRateLimited):
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(fiber.StatusTooManyRequests, constant.ChatErrorRateLimited))
	case errors.Is(err, llm.ErrQuotaExceeded):
		return ctx.Status(fiber.StatusPaymentRequired).JSON(serverutils.ErrorResponse(fiber.StatusPaymentRequired, constant.ChatErrorQuotaExceeded))
	case errors.Is(err, llm.ErrGateway):
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, constant.ChatErrorGateway))
	default:
		return err
	}
}

type deltaFramePayload struct {
	Content string `json:"content"`
}

type deltaFrameChoice struct {
	Delta deltaFramePayload `json:"delta"`
}

type deltaFrame struct {
	Choices []deltaFrameChoice `json:"choices"`
}

type errorFramePayload struct {
	Message string `json:"message"`
}

type errorFrame struct {
	Error errorFramePayload `json:"error"`
}

// writeDeltaFrame emits one SSE data frame in the same chunk shape the AI
// gateway uses, so clients parse relayed and native streams identically.
// A flush error means the client stopped reading.
func writeDeltaFrame(w *bufio.Writer, delta string) error {
	frame := deltaFrame{Choices: []deltaFrameChoice{{Delta: deltaFramePayload{Content: delta}}}}
	payload, _ := json.Marshal(frame)
	fmt.Fprintf(w, "data: %s\n\n", payload)
	return w.Flush()
}

// writeErrorFrame terminates a started stream with an error frame in place
// of the [DONE] sentinel.
func writeErrorFrame(w *bufio.Writer, message string) {
	payload, _ := json.Marshal(errorFrame{Error: errorFramePayload{Message: message}})
	fmt.Fprintf(w, "data: %s\n\n", payload)
	w.Flush()
}
