package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"github.com/brycehall/stache/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrStacheNotFound     = errors.New("stache not found")
	ErrStacheNameRequired = errors.New("name is required")
)

// StacheService handles stache business logic.
type StacheService struct {
	stacheRepo repository.StacheRepository
}

// NewStacheService creates a new StacheService.
func NewStacheService(stacheRepo repository.StacheRepository) *StacheService {
	return &StacheService{
		stacheRepo: stacheRepo,
	}
}

// StacheInput holds the form fields for creating or editing a stache.
// Tags is the raw comma-separated string as typed.
type StacheInput struct {
	Name        string
	Description string
	Locations   string
	Tags        string
}

// ListForUser returns the user's staches, newest first.
func (s *StacheService) ListForUser(userID uint64) ([]models.Stache, error) {
	staches, err := s.stacheRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staches: %w", err)
	}
	return staches, nil
}

// GetBySlug returns the user's stache with the given slug. Someone
// else's slug behaves exactly like a slug that does not exist.
func (s *StacheService) GetBySlug(slug string, userID uint64) (*models.Stache, error) {
	stache, err := s.stacheRepo.FindBySlugForUser(slug, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStacheNotFound
		}
		return nil, fmt.Errorf("failed to find stache: %w", err)
	}
	return stache, nil
}

// Create validates the input, allocates a globally unique slug from the
// name, and persists the stache.
func (s *StacheService) Create(userID uint64, input StacheInput) (*models.Stache, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrStacheNameRequired
	}

	slug, err := s.allocateSlug(name)
	if err != nil {
		return nil, err
	}

	stache := &models.Stache{
		UserID:      userID,
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Locations:   strings.TrimSpace(input.Locations),
		Tags:        models.ParseTags(input.Tags),
	}

	if err := s.stacheRepo.Create(stache); err != nil {
		return nil, fmt.Errorf("failed to create stache: %w", err)
	}

	return stache, nil
}

// Update edits the stache's fields. The slug stays what it was at
// creation, whatever the name becomes.
func (s *StacheService) Update(stache *models.Stache, input StacheInput) (*models.Stache, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrStacheNameRequired
	}

	stache.Name = name
	stache.Description = strings.TrimSpace(input.Description)
	stache.Locations = strings.TrimSpace(input.Locations)
	stache.Tags = models.ParseTags(input.Tags)

	if err := s.stacheRepo.Update(stache); err != nil {
		return nil, fmt.Errorf("failed to update stache: %w", err)
	}

	return stache, nil
}

// Delete removes the stache and cascades to its items.
func (s *StacheService) Delete(stache *models.Stache) error {
	if err := s.stacheRepo.Delete(stache.ID); err != nil {
		return fmt.Errorf("failed to delete stache: %w", err)
	}
	return nil
}

// allocateSlug probes the base slug, then base-2, base-3, ... until a
// free one turns up. Uniqueness is global across all users.
func (s *StacheService) allocateSlug(name string) (string, error) {
	base := utils.Slugify(name)

	candidate := base
	for n := 2; ; n++ {
		taken, err := s.stacheRepo.SlugExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
