package item

import (
	"context"
	"sync"
	"time"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/entities"
	"HomeStock-Backend/pkg/stock"

	"github.com/google/uuid"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		GetItems(ctx context.Context, userID string, sessionToken string) ([]domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id string, userID string) error
		ResetAlerts(sessionToken string)
	}

	itemService struct {
		itemRepository ItemRepository

		// alert de-duplication state, one notifier per live session
		mu        sync.Mutex
		notifiers map[string]*stock.Notifier
	}
)

func NewItemService(itemRepository ItemRepository) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		notifiers:      make(map[string]*stock.Notifier),
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	if req.Quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	unit := req.QuantityUnit
	if unit == "" {
		unit = stock.DefaultUnit
	}

	usageDays := stock.UsageToDays(req.UsageDays, req.UsageUnit)
	if usageDays < 1 {
		return domain.ItemResponse{}, domain.ErrInvalidUsageDays
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.Item{
		ID:           uuid.New(),
		UserID:       userUUID,
		ItemName:     req.ItemName,
		Quantity:     stock.ToBaseUnit(req.Quantity, unit),
		QuantityUnit: unit,
		Location:     req.Location,
		UsageDays:    usageDays,
		DaysLeft:     usageDays,
		ExpiryDate:   expiryDate,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return s.toResponse(item, nil, time.Now()), nil
}

func (s *itemService) GetItems(ctx context.Context, userID string, sessionToken string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifier := s.notifierFor(sessionToken)
	now := time.Now()

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(item, notifier, now))
	}
	return response, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string, userID string) error {
	deleted, err := s.itemRepository.DeleteItem(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ResetAlerts drops the de-duplication state for a session, typically at
// logout.
func (s *itemService) ResetAlerts(sessionToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifiers, sessionToken)
}

func (s *itemService) notifierFor(sessionToken string) *stock.Notifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	notifier, ok := s.notifiers[sessionToken]
	if !ok {
		notifier = stock.NewNotifier()
		s.notifiers[sessionToken] = notifier
	}
	return notifier
}

func (s *itemService) toResponse(item *entities.Item, notifier *stock.Notifier, now time.Time) domain.ItemResponse {
	status := stock.Derive(item.Quantity, item.QuantityUnit, item.ExpiryDate, now)

	var alerts []string
	if notifier != nil {
		for _, kind := range status.Kinds() {
			if notifier.ShouldNotify(item.ItemName, kind) {
				alerts = append(alerts, kind)
			}
		}
	}

	expiry := ""
	if item.ExpiryDate != nil {
		expiry = item.ExpiryDate.Format("2006-01-02")
	}

	return domain.ItemResponse{
		ID:              item.ID.String(),
		ItemName:        item.ItemName,
		Quantity:        item.Quantity,
		QuantityUnit:    item.QuantityUnit,
		DisplayQuantity: stock.FormatQuantity(item.Quantity, item.QuantityUnit),
		Location:        item.Location,
		UsageDays:       item.UsageDays,
		DaysLeft:        item.DaysLeft,
		DaysLeftText:    stock.FormatDaysLeft(item.DaysLeft),
		ExpiryDate:      expiry,
		Status:          status,
		StatusLabel:     status.Label(),
		Alerts:          alerts,
	}
}
