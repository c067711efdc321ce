package handlers

import (
	"errors"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/internal/api/presenters"
	"HomeStock-Backend/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ItemHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Failure(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Failure(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	if _, err := h.itemService.AddItem(c.Context(), *req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, domain.ErrInvalidUsageDays),
			errors.Is(err, domain.ErrInvalidExpiryDate):
			return presenters.Failure(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
		default:
			return presenters.Failure(c, fiber.StatusInternalServerError, domain.MessageFailedAddItem, err)
		}
	}

	return presenters.Success(c, fiber.StatusCreated)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionToken := c.Locals("session_token").(string)

	items, err := h.itemService.GetItems(c.Context(), userID, sessionToken)
	if err != nil {
		// the dashboard expects an array here even on failure
		log.Errorf("%s: %v", domain.MessageFailedGetItems, err)
		return c.Status(fiber.StatusInternalServerError).JSON([]domain.ItemResponse{})
	}

	return c.JSON(items)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.itemService.DeleteItem(c.Context(), itemID, userID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.Failure(c, fiber.StatusNotFound, domain.MessageFailedDeleteItem, nil)
		}
		return presenters.Failure(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteItem, err)
	}

	return presenters.Success(c, fiber.StatusOK)
}
