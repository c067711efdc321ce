package routes

import (
	"net/http"

	"HomeStock-Backend/internal/api/handlers"
	"HomeStock-Backend/internal/middleware"
	"HomeStock-Backend/pkg/session"
	"HomeStock-Backend/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ItemHandler    handlers.ItemHandler
	PageHandler    handlers.PageHandler
	Middleware     middleware.Middleware
	SessionService session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pages()
	c.Auth()
	c.Items()
}

func (c *Config) Pages() {
	c.App.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(web.StaticFS()),
	}))
	c.App.Get("/", c.PageHandler.Signup)
	c.App.Get("/login", c.PageHandler.Login)
	c.App.Get("/dashboard", c.Middleware.AuthPage(c.SessionService), c.PageHandler.Dashboard)
}

func (c *Config) Auth() {
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Get("/logout", c.UserHandler.Logout)
}

func (c *Config) Items() {
	c.App.Post("/add-item", c.Middleware.AuthAPI(c.SessionService), c.ItemHandler.AddItem)
	c.App.Get("/items", c.Middleware.AuthItems(c.SessionService), c.ItemHandler.GetItems)
	c.App.Delete("/delete-item/:id", c.Middleware.AuthAPI(c.SessionService), c.ItemHandler.DeleteItem)
}
