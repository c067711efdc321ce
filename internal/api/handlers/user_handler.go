package handlers

import (
	"errors"
	"time"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/internal/api/presenters"
	"HomeStock-Backend/pkg/item"
	"HomeStock-Backend/pkg/session"
	"HomeStock-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	userHandler struct {
		userService    user.UserService
		sessionService session.SessionService
		itemService    item.ItemService
		validator      *validator.Validate
	}
)

func NewUserHandler(
	userService user.UserService,
	sessionService session.SessionService,
	itemService item.ItemService,
	validator *validator.Validate,
) UserHandler {
	return &userHandler{
		userService:    userService,
		sessionService: sessionService,
		itemService:    itemService,
		validator:      validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.HTML(c, fiber.StatusBadRequest,
			"<h2>Registration failed</h2><a href='/'>Try again</a>")
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HTML(c, fiber.StatusBadRequest,
			"<h2>Registration failed</h2><p>Please fill all required fields.</p><a href='/'>Try again</a>")
	}

	if _, err := h.userService.Register(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return presenters.HTML(c, fiber.StatusConflict,
				"<h2>Email already registered</h2><a href='/login'>Login</a>")
		}
		log.Errorf("%s: %v", domain.MessageFailedRegister, err)
		return presenters.HTML(c, fiber.StatusInternalServerError,
			"<h2>Registration failed</h2><a href='/'>Try again</a>")
	}

	return presenters.HTML(c, fiber.StatusOK,
		"<h2>Registration successful</h2><a href='/login'>Login</a>")
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.HTML(c, fiber.StatusBadRequest,
			"<h2>Invalid credentials</h2><a href='/login'>Try again</a>")
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HTML(c, fiber.StatusUnauthorized,
			"<h2>Invalid credentials</h2><a href='/login'>Try again</a>")
	}

	sess, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		// unknown email and wrong password answer identically
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.HTML(c, fiber.StatusUnauthorized,
				"<h2>Invalid credentials</h2><a href='/login'>Try again</a>")
		}
		log.Errorf("%s: %v", domain.MessageFailedLogin, err)
		return presenters.HTML(c, fiber.StatusInternalServerError,
			"<h2>Login failed</h2><a href='/login'>Try again</a>")
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    sess.Token,
		Expires:  sess.ExpiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(domain.SessionCookieName)
	if token != "" {
		// the cookie is cleared regardless; an undeleted row lapses on its own
		if err := h.sessionService.Destroy(c.Context(), token); err != nil {
			log.Errorf("%s: %v", domain.MessageFailedProcessRequest, err)
		}
		h.itemService.ResetAlerts(token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/login", fiber.StatusSeeOther)
}
