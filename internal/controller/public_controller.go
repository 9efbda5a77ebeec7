package controller

import (
	"strconv"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	ListServices(ctx *fiber.Ctx) error
	ShowService(ctx *fiber.Ctx) error
	ShowSubService(ctx *fiber.Ctx) error
	ListMarkets(ctx *fiber.Ctx) error
	ShowMarket(ctx *fiber.Ctx) error
	ListProjects(ctx *fiber.Ctx) error
	ShowProject(ctx *fiber.Ctx) error
	ListNews(ctx *fiber.Ctx) error
	ShowNews(ctx *fiber.Ctx) error
	NewsMarkdown(ctx *fiber.Ctx) error
	ListCareers(ctx *fiber.Ctx) error
	ShowCareer(ctx *fiber.Ctx) error
	ListLocations(ctx *fiber.Ctx) error
	ListTeam(ctx *fiber.Ctx) error
	Contact(ctx *fiber.Ctx) error
}

type publicController struct {
	service        service.IPublicService
	contactService service.IContactService
}

func NewPublicController(service service.IPublicService, contactService service.IContactService) IPublicController {
	return &publicController{service: service, contactService: contactService}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public/v1")
	h.Get("/home", c.Home)
	h.Get("/services", c.ListServices)
	h.Get("/services/:slug", c.ShowService)
	h.Get("/services/:slug/:subSlug", c.ShowSubService)
	h.Get("/markets", c.ListMarkets)
	h.Get("/markets/:slug", c.ShowMarket)
	h.Get("/projects", c.ListProjects)
	h.Get("/projects/:slug", c.ShowProject)
	h.Get("/news", c.ListNews)
	h.Get("/news/:slug", c.ShowNews)
	h.Get("/news/:slug/markdown", c.NewsMarkdown)
	h.Get("/careers", c.ListCareers)
	h.Get("/careers/:slug", c.ShowCareer)
	h.Get("/locations", c.ListLocations)
	h.Get("/team", c.ListTeam)
	h.Post("/contact", c.Contact)
}

func (c *publicController) Home(ctx *fiber.Ctx) error {
	res, err := c.service.Home(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get home", res))
}

func (c *publicController) ListServices(ctx *fiber.Ctx) error {
	res, err := c.service.ListServices(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get services", res))
}

func (c *publicController) ShowService(ctx *fiber.Ctx) error {
	res, err := c.service.GetService(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get service", res))
}

func (c *publicController) ShowSubService(ctx *fiber.Ctx) error {
	res, err := c.service.GetSubService(ctx.UserContext(), ctx.Params("slug"), ctx.Params("subSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get sub service", res))
}

func (c *publicController) ListMarkets(ctx *fiber.Ctx) error {
	res, err := c.service.ListMarkets(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get markets", res))
}

func (c *publicController) ShowMarket(ctx *fiber.Ctx) error {
	res, err := c.service.GetMarket(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get market", res))
}

func (c *publicController) ListProjects(ctx *fiber.Ctx) error {
	featured, _ := strconv.ParseBool(ctx.Query("featured", "false"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))

	res, err := c.service.ListProjects(ctx.UserContext(), dto.ProjectFilter{
		Featured: featured,
		Market:   ctx.Query("market"),
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get projects", res))
}

func (c *publicController) ShowProject(ctx *fiber.Ctx) error {
	res, err := c.service.GetProject(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get project", res))
}

func (c *publicController) ListNews(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))

	res, err := c.service.ListNews(ctx.UserContext(), dto.NewsFilter{
		Type:  ctx.Query("type"),
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get news", res))
}

func (c *publicController) ShowNews(ctx *fiber.Ctx) error {
	res, err := c.service.GetNews(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get news", res))
}

func (c *publicController) NewsMarkdown(ctx *fiber.Ctx) error {
	md, err := c.service.NewsMarkdown(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return ctx.SendString(md)
}

func (c *publicController) ListCareers(ctx *fiber.Ctx) error {
	res, err := c.service.ListCareers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get careers", res))
}

func (c *publicController) ShowCareer(ctx *fiber.Ctx) error {
	res, err := c.service.GetCareer(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get career", res))
}

func (c *publicController) ListLocations(ctx *fiber.Ctx) error {
	res, err := c.service.ListLocations(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get locations", res))
}

func (c *publicController) ListTeam(ctx *fiber.Ctx) error {
	res, err := c.service.ListTeam(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get team", res))
}

func (c *publicController) Contact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := bindRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.contactService.Submit(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message sent", nil))
}
