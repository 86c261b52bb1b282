package controller

import (
	"errors"
	"fmt"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/serverutils"
	"compliancebot-be/internal/service"
	"compliancebot-be/pkg/docgen"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	GetTemplates(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	ListSaved(ctx *fiber.Ctx) error
	DownloadSaved(ctx *fiber.Ctx) error
	DeleteSaved(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware) // ✅ PROTECTED
	h.Get("/templates", c.GetTemplates)
	h.Post("/generate", c.Generate)
	h.Post("/preview", c.Preview)
	h.Post("/save", c.Save)
	h.Get("/saved", c.ListSaved)
	h.Get("/saved/:id/download", c.DownloadSaved)
	h.Delete("/saved/:id", c.DeleteSaved)
}

func (c *documentController) GetTemplates(ctx *fiber.Ctx) error {
	res := c.service.GetTemplates(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get document templates", res))
}

func (c *documentController) Generate(ctx *fiber.Ctx) error {
	return c.generatePDF(ctx, "attachment")
}

func (c *documentController) Preview(ctx *fiber.Ctx) error {
	return c.generatePDF(ctx, "inline")
}

func (c *documentController) generatePDF(ctx *fiber.Ctx, disposition string) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	doc, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, docgen.ErrUnknownType) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "unknown document type"))
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, doc.FileName))
	return ctx.Send(doc.Data)
}

func (c *documentController) Save(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, docgen.ErrUnknownType) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "unknown document type"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save document", res))
}

func (c *documentController) ListSaved(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListSaved(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get saved documents", res))
}

func (c *documentController) DownloadSaved(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	docId, _ := uuid.Parse(ctx.Params("id"))

	doc, err := c.service.DownloadSaved(ctx.Context(), userId, docId)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "document not found"))
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return ctx.Send(doc.Data)
}

func (c *documentController) DeleteSaved(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	docId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.DeleteSaved(ctx.Context(), userId, docId); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "document not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
