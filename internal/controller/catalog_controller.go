package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-shopchat-be/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	CreateCollection(ctx *fiber.Ctx) error
	InsertPoints(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/db")
	h.Post("/create-collection", c.CreateCollection)
	h.Post("/insert-points", c.InsertPoints)
}

func (c *catalogController) CreateCollection(ctx *fiber.Ctx) error {
	res, err := c.catalogService.CreateCollection(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) InsertPoints(ctx *fiber.Ctx) error {
	res, err := c.catalogService.InsertPoints(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
