package controller

import (
	"errors"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/serverutils"
	"compliancebot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplianceController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type complianceController struct {
	service service.IComplianceService
}

func NewComplianceController(service service.IComplianceService) IComplianceController {
	return &complianceController{service: service}
}

func (c *complianceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/compliance/v1")
	h.Use(serverutils.JwtMiddleware) // ✅ PROTECTED
	h.Get("/item", c.GetAll)
	h.Post("/item", c.Create)
	h.Put("/item/:id", c.Update)
	h.Delete("/item/:id", c.Delete)
	h.Get("/stats", c.GetStats)
}

func (c *complianceController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all compliance items", res))
}

func (c *complianceController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateComplianceItemRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create compliance item", res))
}

func (c *complianceController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	itemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateComplianceItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, itemId, &req)
	if err != nil {
		if errors.Is(err, service.ErrComplianceItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "compliance item not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update compliance item", res))
}

func (c *complianceController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	itemId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, itemId); err != nil {
		if errors.Is(err, service.ErrComplianceItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "compliance item not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete compliance item", nil))
}

func (c *complianceController) GetStats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get compliance stats", res))
}
