package controller

import (
	"strconv"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboardStats(ctx *fiber.Ctx) error
	PreviewSlug(ctx *fiber.Ctx) error
	PreviewDocument(ctx *fiber.Ctx) error
	ImportHTML(ctx *fiber.Ctx) error
	GetApprovedEmails(ctx *fiber.Ctx) error
	ApproveEmail(ctx *fiber.Ctx) error
	RevokeEmail(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	dashboardService     service.IDashboardService
	documentService      service.IDocumentService
	approvedEmailService service.IApprovedEmailService
	uploadService        service.IUploadService
	logService           service.ILogService
}

func NewAdminController(
	dashboardService service.IDashboardService,
	documentService service.IDocumentService,
	approvedEmailService service.IApprovedEmailService,
	uploadService service.IUploadService,
	logService service.ILogService,
) IAdminController {
	return &adminController{
		dashboardService:     dashboardService,
		documentService:      documentService,
		approvedEmailService: approvedEmailService,
		uploadService:        uploadService,
		logService:           logService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.GetDashboardStats)
	r.Get("/slug", c.PreviewSlug)

	r.Post("/documents/preview", c.PreviewDocument)
	r.Post("/documents/import-html", c.ImportHTML)

	r.Get("/approved-emails", c.GetApprovedEmails)
	r.Post("/approved-emails", c.ApproveEmail)
	r.Delete("/approved-emails/:id", c.RevokeEmail)

	r.Post("/uploads", c.Upload)

	r.Get("/logs", c.GetLogs)
	r.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) PreviewSlug(ctx *fiber.Ctx) error {
	res, err := c.documentService.SlugPreview(ctx.UserContext(), ctx.Query("title"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success preview slug", res))
}

func (c *adminController) PreviewDocument(ctx *fiber.Ctx) error {
	var req dto.DocumentPreviewRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.Preview(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success preview document", res))
}

func (c *adminController) ImportHTML(ctx *fiber.Ctx) error {
	var req dto.ImportHTMLRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.ImportHTML(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success import html", res))
}

func (c *adminController) GetApprovedEmails(ctx *fiber.Ctx) error {
	res, err := c.approvedEmailService.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get approved emails", res))
}

func (c *adminController) ApproveEmail(ctx *fiber.Ctx) error {
	var req dto.ApprovedEmailRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.approvedEmailService.Approve(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success approve email", res))
}

func (c *adminController) RevokeEmail(ctx *fiber.Ctx) error {
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.approvedEmailService.Revoke(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success revoke email", nil))
}

func (c *adminController) Upload(ctx *fiber.Ctx) error {
	// A missing part is reported by the service as a validation error.
	file, _ := ctx.FormFile("file")

	res, err := c.uploadService.Upload(ctx.UserContext(), ctx.FormValue("bucket"), file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.logService.List(logger.LogFilter{
		Level:  ctx.Query("level"),
		Module: ctx.Query("module"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.logService.Get(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}
