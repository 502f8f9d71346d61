package repository

import (
	"github.com/brycehall/stache/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash
func (r *GormUserRepository) UpdatePassword(id uint64, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// Delete removes the user and all owned staches, items, projects, and
// tasks. Children go first so no statement ever leaves an orphan row.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&models.Project{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("project_id IN (?)", projectIDs).Delete(&models.ProjectTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		stacheIDs := tx.Model(&models.Stache{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("stache_id IN (?)", stacheIDs).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Stache{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}

// Stats returns counts of everything the user owns
func (r *GormUserRepository) Stats(id uint64) (*UserStats, error) {
	stats := &UserStats{}

	if err := r.db.Model(&models.Stache{}).
		Where("user_id = ?", id).
		Count(&stats.StacheCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Item{}).
		Joins("JOIN staches ON staches.id = items.stache_id").
		Where("staches.user_id = ?", id).
		Count(&stats.ItemCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Project{}).
		Where("user_id = ?", id).
		Count(&stats.ProjectCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.ProjectTask{}).
		Joins("JOIN projects ON projects.id = project_tasks.project_id").
		Where("projects.user_id = ?", id).
		Count(&stats.TaskCount).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
