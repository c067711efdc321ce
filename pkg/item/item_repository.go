package item

import (
	"context"

	"HomeStock-Backend/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItems(ctx context.Context, userID string) ([]*entities.Item, error)
		DeleteItem(ctx context.Context, id string, userID string) (int64, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItems(ctx context.Context, userID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes the item only when both id and owner match, so foreign
// and nonexistent ids are indistinguishable to the caller. Returns the number
// of rows removed.
func (r *itemRepository) DeleteItem(ctx context.Context, id string, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Item{})
	return res.RowsAffected, res.Error
}
