package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ai-shopchat-be/internal/dto"
	"ai-shopchat-be/internal/pkg/serverutils"
	"ai-shopchat-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	outcome, err := c.chatService.HandleChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	switch res := outcome.(type) {
	case dto.AnswerOutcome:
		return ctx.JSON(dto.AnswerResponse{Mode: "answer", Text: res.Text})
	case dto.SearchOutcome:
		return ctx.JSON(dto.SearchResponse{
			Analyzed: res.Analyzed,
			Result:   res.Result,
			Usage:    res.Usage,
		})
	default:
		return fmt.Errorf("unknown chat outcome type %T", outcome)
	}
}
