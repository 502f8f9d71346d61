package repository

import (
	"github.com/brycehall/stache/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// ListByUser lists the user's projects, newest first, optionally
// filtered by status
func (r *GormProjectRepository) ListByUser(userID uint64, status *models.ProjectStatus) ([]models.Project, error) {
	query := r.db.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var projects []models.Project
	err := query.
		Preload("Stache").
		Preload("Tasks").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByIDForUser finds a project by ID, scoped to the owner, with
// tasks (in insertion order) and their linked items preloaded
func (r *GormProjectRepository) FindByIDForUser(id, userID uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Stache").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_tasks.id ASC")
		}).
		Preload("Tasks.Item").
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates a project. Associations are omitted: the project
// usually arrives with its old Stache (and tasks) preloaded, and
// saving them would write the stale foreign key back over a changed
// StacheID.
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

// Delete removes the project and its tasks in one transaction
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTask{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

// CreateTask adds a task to a project
func (r *GormProjectRepository) CreateTask(task *models.ProjectTask) error {
	return r.db.Create(task).Error
}

// FindTaskForUser finds a task by ID within a project, scoped through
// the project to its owner
func (r *GormProjectRepository) FindTaskForUser(taskID, projectID, userID uint64) (*models.ProjectTask, error) {
	var task models.ProjectTask
	err := r.db.
		Joins("JOIN projects ON projects.id = project_tasks.project_id").
		Where("project_tasks.id = ? AND project_tasks.project_id = ? AND projects.user_id = ?",
			taskID, projectID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a task. Associations are omitted so a task that
// arrived with its linked item preloaded only writes its own row.
func (r *GormProjectRepository) UpdateTask(task *models.ProjectTask) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}
