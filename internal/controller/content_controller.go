package controller

import (
	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// contentController serves the admin CRUD routes of one content kind.
type contentController[Req any, Resp any] struct {
	path    string
	label   string
	service service.ContentAdmin[Req, Resp]
}

func NewContentController[Req any, Resp any](path, label string, service service.ContentAdmin[Req, Resp]) IContentController {
	return &contentController[Req, Resp]{path: path, label: label, service: service}
}

func (c *contentController[Req, Resp]) RegisterRoutes(r fiber.Router) {
	h := r.Group(c.path)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *contentController[Req, Resp]) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get "+c.label, res))
}

func (c *contentController[Req, Resp]) Show(ctx *fiber.Ctx) error {
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show "+c.label, res))
}

func (c *contentController[Req, Resp]) Create(ctx *fiber.Ctx) error {
	req := new(Req)
	if err := bindRequest(ctx, req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create "+c.label, res))
}

func (c *contentController[Req, Resp]) Update(ctx *fiber.Ctx) error {
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(Req)
	if err := bindRequest(ctx, req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update "+c.label, res))
}

func (c *contentController[Req, Resp]) Delete(ctx *fiber.Ctx) error {
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete "+c.label, nil))
}

type ISubServiceController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type subServiceController struct {
	service service.ICatalogService
}

func NewSubServiceController(service service.ICatalogService) ISubServiceController {
	return &subServiceController{service: service}
}

func (c *subServiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/services/:id/sub-services")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:subId", c.Update)
	h.Delete("/:subId", c.Delete)
}

func (c *subServiceController) GetAll(ctx *fiber.Ctx) error {
	serviceId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.ListSubServices(ctx.UserContext(), serviceId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get sub services", res))
}

func (c *subServiceController) Create(ctx *fiber.Ctx) error {
	serviceId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SubServiceRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateSubService(ctx.UserContext(), serviceId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create sub service", res))
}

func (c *subServiceController) Update(ctx *fiber.Ctx) error {
	serviceId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "subId")
	if err != nil {
		return err
	}

	var req dto.SubServiceRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateSubService(ctx.UserContext(), serviceId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update sub service", res))
}

func (c *subServiceController) Delete(ctx *fiber.Ctx) error {
	serviceId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "subId")
	if err != nil {
		return err
	}

	if err := c.service.DeleteSubService(ctx.UserContext(), serviceId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete sub service", nil))
}

type IProjectImageController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type projectImageController struct {
	service service.IProjectService
}

func NewProjectImageController(service service.IProjectService) IProjectImageController {
	return &projectImageController{service: service}
}

func (c *projectImageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:id/images")
	h.Post("", c.Add)
	h.Delete("/:imageId", c.Remove)
}

func (c *projectImageController) Add(ctx *fiber.Ctx) error {
	projectId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ProjectImageRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddImage(ctx.UserContext(), projectId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add project image", res))
}

func (c *projectImageController) Remove(ctx *fiber.Ctx) error {
	projectId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}
	imageId, err := paramUUID(ctx, "imageId")
	if err != nil {
		return err
	}

	if err := c.service.RemoveImage(ctx.UserContext(), projectId, imageId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove project image", nil))
}
