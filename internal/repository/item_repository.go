package repository

import (
	"github.com/brycehall/stache/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// ListByUser lists items across all of the user's staches
func (r *GormItemRepository) ListByUser(userID uint64) ([]models.Item, error) {
	var items []models.Item
	err := r.db.
		Joins("JOIN staches ON staches.id = items.stache_id").
		Where("staches.user_id = ?", userID).
		Preload("Stache").
		Order("items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDForUser finds an item by ID, scoped through its stache to the
// owner. An item in another user's stache looks exactly like a missing
// item.
func (r *GormItemRepository) FindByIDForUser(id, userID uint64) (*models.Item, error) {
	var item models.Item
	err := r.db.
		Joins("JOIN staches ON staches.id = items.stache_id").
		Where("items.id = ? AND staches.user_id = ?", id, userID).
		Preload("Stache").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a new item
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update updates an item. Associations are omitted: the item usually
// arrives with its old Stache preloaded, and saving it would write the
// stale foreign key back over a changed StacheID.
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Omit(clause.Associations).Save(item).Error
}

// Delete removes the item, clearing any task references to it first.
func (r *GormItemRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectTask{}).
			Where("item_id = ?", id).
			Update("item_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Item{}, id).Error
	})
}
