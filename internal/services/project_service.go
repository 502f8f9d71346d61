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
	ErrProjectNotFound         = errors.New("project not found")
	ErrProjectNameRequired     = errors.New("name is required")
	ErrTaskNotFound            = errors.New("task not found")
	ErrTaskDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus           = errors.New("invalid project status")
)

// ProjectService handles project and task business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	stacheRepo  repository.StacheRepository
	itemRepo    repository.ItemRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, stacheRepo repository.StacheRepository, itemRepo repository.ItemRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		stacheRepo:  stacheRepo,
		itemRepo:    itemRepo,
	}
}

// ProjectInput holds the form fields for creating or editing a project.
type ProjectInput struct {
	Name        string
	Description string
	StacheID    uint64
}

// ListForUser returns the user's projects, newest first. filter is the
// raw query value: "planning", "in-progress", "completed", or
// "all"/empty for everything.
func (s *ProjectService) ListForUser(userID uint64, filter string) ([]models.Project, error) {
	var status *models.ProjectStatus
	if filter != "" && filter != "all" {
		st := models.ProjectStatus(filter)
		if !models.ValidProjectStatus(st) {
			return nil, ErrInvalidStatus
		}
		status = &st
	}

	projects, err := s.projectRepo.ListByUser(userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get returns the user's project with the given ID, tasks included.
func (s *ProjectService) Get(id, userID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create validates the input and persists the project. New projects
// start in planning. The context stache must belong to the user.
func (s *ProjectService) Create(userID uint64, input ProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	if _, err := s.stacheRepo.FindByIDForUser(input.StacheID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStacheNotFound
		}
		return nil, fmt.Errorf("failed to find stache: %w", err)
	}

	project := &models.Project{
		UserID:      userID,
		StacheID:    input.StacheID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Status:      models.ProjectStatusPlanning,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update edits the project's name, description, and context stache.
func (s *ProjectService) Update(userID uint64, project *models.Project, input ProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	if input.StacheID != project.StacheID {
		if _, err := s.stacheRepo.FindByIDForUser(input.StacheID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStacheNotFound
			}
			return nil, fmt.Errorf("failed to find stache: %w", err)
		}
		project.StacheID = input.StacheID
	}

	project.Name = name
	project.Description = strings.TrimSpace(input.Description)

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// SetStatus moves the project to in-progress or completed. The status
// buttons never produce anything else, so nothing else is accepted.
func (s *ProjectService) SetStatus(project *models.Project, status models.ProjectStatus) error {
	if status != models.ProjectStatusInProgress && status != models.ProjectStatusCompleted {
		return ErrInvalidStatus
	}

	project.Status = status
	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}
	return nil
}

// Delete removes the project and cascades to its tasks.
func (s *ProjectService) Delete(project *models.Project) error {
	if err := s.projectRepo.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// AddTask appends a task to the project. An optional item reference
// must point at an item the user owns; anything else reads as not
// found.
func (s *ProjectService) AddTask(userID uint64, project *models.Project, description string, itemID *uint64) (*models.ProjectTask, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrTaskDescriptionRequired
	}

	if itemID != nil {
		if _, err := s.itemRepo.FindByIDForUser(*itemID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, fmt.Errorf("failed to find item: %w", err)
		}
	}

	task := &models.ProjectTask{
		ProjectID:   project.ID,
		ItemID:      itemID,
		Description: description,
	}

	if err := s.projectRepo.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ToggleTask flips a task's completed flag.
func (s *ProjectService) ToggleTask(taskID, projectID, userID uint64) (*models.ProjectTask, error) {
	task, err := s.projectRepo.FindTaskForUser(taskID, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Completed = !task.Completed
	if err := s.projectRepo.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}
