package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNameRequired = errors.New("name is required")
)

// ItemService handles item business logic.
type ItemService struct {
	itemRepo   repository.ItemRepository
	stacheRepo repository.StacheRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, stacheRepo repository.StacheRepository) *ItemService {
	return &ItemService{
		itemRepo:   itemRepo,
		stacheRepo: stacheRepo,
	}
}

// ItemInput holds the form fields for creating or editing an item.
type ItemInput struct {
	StacheID  uint64
	Name      string
	Category  string
	Location  string
	Condition string
	Tags      string
	Notes     string
}

// ListForUser returns all items across the user's staches.
func (s *ItemService) ListForUser(userID uint64) ([]models.Item, error) {
	items, err := s.itemRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns the user's item with the given ID, reached through the
// ownership chain item -> stache -> user.
func (s *ItemService) Get(id, userID uint64) (*models.Item, error) {
	item, err := s.itemRepo.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// Create validates the input and persists the item. The target stache
// must belong to the user; a foreign stache ID reads as not found.
func (s *ItemService) Create(userID uint64, input ItemInput) (*models.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}

	if _, err := s.stacheRepo.FindByIDForUser(input.StacheID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStacheNotFound
		}
		return nil, fmt.Errorf("failed to find stache: %w", err)
	}

	item := &models.Item{
		StacheID:  input.StacheID,
		Name:      name,
		Category:  strings.TrimSpace(input.Category),
		Location:  strings.TrimSpace(input.Location),
		Condition: strings.TrimSpace(input.Condition),
		Tags:      models.ParseTags(input.Tags),
		Notes:     strings.TrimSpace(input.Notes),
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// Update edits the item. Moving it to another stache is allowed only
// when that stache also belongs to the user.
func (s *ItemService) Update(userID uint64, item *models.Item, input ItemInput) (*models.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}

	if input.StacheID != item.StacheID {
		if _, err := s.stacheRepo.FindByIDForUser(input.StacheID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStacheNotFound
			}
			return nil, fmt.Errorf("failed to find stache: %w", err)
		}
		item.StacheID = input.StacheID
	}

	item.Name = name
	item.Category = strings.TrimSpace(input.Category)
	item.Location = strings.TrimSpace(input.Location)
	item.Condition = strings.TrimSpace(input.Condition)
	item.Tags = models.ParseTags(input.Tags)
	item.Notes = strings.TrimSpace(input.Notes)

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes the item and clears any task references to it.
func (s *ItemService) Delete(item *models.Item) error {
	if err := s.itemRepo.Delete(item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
