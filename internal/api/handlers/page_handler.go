package handlers

import (
	"HomeStock-Backend/web"

	"github.com/gofiber/fiber/v2"
)

type (
	PageHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Dashboard(c *fiber.Ctx) error
	}

	pageHandler struct{}
)

func NewPageHandler() PageHandler {
	return &pageHandler{}
}

func servePage(c *fiber.Ctx, name string) error {
	body, err := web.Page(name)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

func (h *pageHandler) Signup(c *fiber.Ctx) error {
	return servePage(c, "signup.html")
}

func (h *pageHandler) Login(c *fiber.Ctx) error {
	return servePage(c, "login.html")
}

func (h *pageHandler) Dashboard(c *fiber.Ctx) error {
	return servePage(c, "dashboard.html")
}
