package config

import (
	"HomeStock-Backend/internal/api/handlers"
	"HomeStock-Backend/internal/api/routes"
	"HomeStock-Backend/internal/middleware"
	"HomeStock-Backend/internal/utils"
	"HomeStock-Backend/pkg/item"
	"HomeStock-Backend/pkg/session"
	"HomeStock-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	sessionRepository := session.NewSessionRepository(db)
	itemRepository := item.NewItemRepository(db)

	// Service
	sessionService := session.NewSessionService(sessionRepository)
	userService := user.NewUserService(userRepository, sessionService)
	itemService := item.NewItemService(itemRepository)

	middlewares := middleware.NewMiddleware(itemService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, sessionService, itemService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	pageHandler := handlers.NewPageHandler()

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ItemHandler:    itemHandler,
		PageHandler:    pageHandler,
		Middleware:     middlewares,
		SessionService: sessionService,
	}
	routesConfig.Setup()
	return app, nil
}
