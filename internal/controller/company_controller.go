package controller

import (
	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/serverutils"
	"compliancebot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
}

type companyController struct {
	service service.ICompanyService
}

func NewCompanyController(service service.ICompanyService) ICompanyController {
	return &companyController{service: service}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/company/v1")
	h.Use(serverutils.JwtMiddleware) // ✅ PROTECTED
	h.Get("", c.Get)
	h.Put("", c.Upsert)
	h.Post("", c.Upsert)
}

func (c *companyController) Get(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get company profile", res))
}

func (c *companyController) Upsert(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertCompanyProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save company profile", res))
}
