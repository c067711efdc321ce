package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Success answers with the bare success envelope used by the dashboard API.
func Success(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(fiber.Map{"success": true})
}

// Failure answers with a false envelope. The underlying error is logged
// server-side only, never echoed to the client.
func Failure(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{"success": false})
}

// HTML answers with a small server-rendered outcome page.
func HTML(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(body)
}
