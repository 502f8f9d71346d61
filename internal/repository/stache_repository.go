package repository

import (
	"errors"

	"github.com/brycehall/stache/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStacheRepository is a GORM implementation of StacheRepository
type GormStacheRepository struct {
	db *gorm.DB
}

// NewStacheRepository creates a new StacheRepository
func NewStacheRepository(db *gorm.DB) StacheRepository {
	return &GormStacheRepository{db: db}
}

// ListByUser lists the user's staches, newest first, items preloaded
func (r *GormStacheRepository) ListByUser(userID uint64) ([]models.Stache, error) {
	var staches []models.Stache
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&staches).Error
	if err != nil {
		return nil, err
	}
	return staches, nil
}

// FindByIDForUser finds a stache by ID, scoped to the owner
func (r *GormStacheRepository) FindByIDForUser(id, userID uint64) (*models.Stache, error) {
	var stache models.Stache
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&stache).Error
	if err != nil {
		return nil, err
	}
	return &stache, nil
}

// FindBySlugForUser finds a stache by slug, scoped to the owner
func (r *GormStacheRepository) FindBySlugForUser(slug string, userID uint64) (*models.Stache, error) {
	var stache models.Stache
	err := r.db.Where("slug = ? AND user_id = ?", slug, userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.id ASC")
		}).
		First(&stache).Error
	if err != nil {
		return nil, err
	}
	return &stache, nil
}

// SlugExists checks the slug against all staches, across every user.
func (r *GormStacheRepository) SlugExists(slug string) (bool, error) {
	var stache models.Stache
	err := r.db.Select("id").Where("slug = ?", slug).First(&stache).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create creates a new stache
func (r *GormStacheRepository) Create(stache *models.Stache) error {
	return r.db.Create(stache).Error
}

// Update updates a stache. Associations are omitted so a stache that
// arrived with its items preloaded only writes its own row.
func (r *GormStacheRepository) Update(stache *models.Stache) error {
	return r.db.Omit(clause.Associations).Save(stache).Error
}

// Delete removes the stache and everything hanging off it in one
// transaction: task references to its items are cleared, the items are
// deleted, projects that used the stache for context go with their
// tasks, then the stache itself.
func (r *GormStacheRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		itemIDs := tx.Model(&models.Item{}).Select("id").Where("stache_id = ?", id)
		if err := tx.Model(&models.ProjectTask{}).
			Where("item_id IN (?)", itemIDs).
			Update("item_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("stache_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}

		projectIDs := tx.Model(&models.Project{}).Select("id").Where("stache_id = ?", id)
		if err := tx.Where("project_id IN (?)", projectIDs).Delete(&models.ProjectTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stache_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Stache{}, id).Error
	})
}
