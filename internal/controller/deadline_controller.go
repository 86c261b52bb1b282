package controller

import (
	"errors"
	"time"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/serverutils"
	"compliancebot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDeadlineController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByMonth(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type deadlineController struct {
	service service.IDeadlineService
}

func NewDeadlineController(service service.IDeadlineService) IDeadlineController {
	return &deadlineController{service: service}
}

func (c *deadlineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deadline/v1")
	h.Use(serverutils.JwtMiddleware) // ✅ PROTECTED
	h.Get("", c.GetAll)
	h.Get("/month/:ym", c.GetByMonth)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *deadlineController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all deadlines", res))
}

func (c *deadlineController) GetByMonth(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	month, err := time.Parse("2006-01", ctx.Params("ym"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "month must be formatted as yyyy-mm"))
	}

	res, err := c.service.GetByMonth(ctx.Context(), userId, month.Year(), month.Month())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get deadlines by month", res))
}

func (c *deadlineController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateDeadlineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create deadline", res))
}

func (c *deadlineController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	deadlineId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDeadlineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, deadlineId, &req)
	if err != nil {
		if errors.Is(err, service.ErrDeadlineNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "deadline not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update deadline", res))
}

func (c *deadlineController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	deadlineId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, deadlineId); err != nil {
		if errors.Is(err, service.ErrDeadlineNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "deadline not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete deadline", nil))
}
