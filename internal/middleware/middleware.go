package middleware

import (
	"HomeStock-Backend/domain"
	"HomeStock-Backend/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthPage(sessionService session.SessionService) fiber.Handler
		AuthAPI(sessionService session.SessionService) fiber.Handler
		AuthItems(sessionService session.SessionService) fiber.Handler
	}

	// AlertResetter releases per-session alert state once a token stops
	// resolving; the item service satisfies it.
	AlertResetter interface {
		ResetAlerts(sessionToken string)
	}

	middleware struct {
		alerts AlertResetter
	}
)

func NewMiddleware(alerts AlertResetter) Middleware {
	return &middleware{alerts: alerts}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: false,
	})
}

// resolve looks up the session cookie and, when valid, stores the user id and
// token in request locals for downstream scoping. A cookie that no longer
// resolves (expired or destroyed) also sheds any alert state minted under it.
func (m *middleware) resolve(c *fiber.Ctx, sessionService session.SessionService) bool {
	token := c.Cookies(domain.SessionCookieName)
	if token == "" {
		return false
	}

	userID, err := sessionService.Resolve(c.Context(), token)
	if err != nil {
		if m.alerts != nil {
			m.alerts.ResetAlerts(token)
		}
		return false
	}

	c.Locals("user_id", userID.String())
	c.Locals("session_token", token)
	return true
}

// AuthPage gates HTML routes: unauthenticated requests are sent to the login
// page.
func (m *middleware) AuthPage(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.resolve(c, sessionService) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// AuthAPI gates mutation routes: unauthenticated requests get a false envelope
// with no further detail.
func (m *middleware) AuthAPI(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.resolve(c, sessionService) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false})
		}
		return c.Next()
	}
}

// AuthItems gates the item list, which degrades to an empty array rather than
// an error envelope.
func (m *middleware) AuthItems(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.resolve(c, sessionService) {
			return c.Status(fiber.StatusUnauthorized).JSON([]domain.ItemResponse{})
		}
		return c.Next()
	}
}
