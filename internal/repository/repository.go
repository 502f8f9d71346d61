package repository

import (
	"github.com/brycehall/stache/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(id uint64, passwordHash string) error

	// Delete removes the user and everything they own in one transaction
	Delete(id uint64) error

	// Stats returns counts of everything the user owns
	Stats(id uint64) (*UserStats, error)
}

// UserStats holds the aggregate counts shown on the profile page.
type UserStats struct {
	StacheCount  int64
	ItemCount    int64
	ProjectCount int64
	TaskCount    int64
}

// StacheRepository defines the interface for stache data access.
// Every lookup is scoped to the owning user; a stache owned by someone
// else is indistinguishable from a missing one.
type StacheRepository interface {
	// ListByUser lists the user's staches, newest first, items preloaded
	ListByUser(userID uint64) ([]models.Stache, error)

	// FindByIDForUser finds a stache by ID, scoped to the owner
	FindByIDForUser(id, userID uint64) (*models.Stache, error)

	// FindBySlugForUser finds a stache by slug, scoped to the owner,
	// with its items preloaded
	FindBySlugForUser(slug string, userID uint64) (*models.Stache, error)

	// SlugExists reports whether any stache, regardless of owner, uses
	// the slug
	SlugExists(slug string) (bool, error)

	// Create creates a new stache
	Create(stache *models.Stache) error

	// Update updates a stache
	Update(stache *models.Stache) error

	// Delete removes the stache, its items, and the projects that used
	// it for context, in one transaction
	Delete(id uint64) error
}

// ItemRepository defines the interface for item data access. Ownership
// is reached through the item's stache.
type ItemRepository interface {
	// ListByUser lists items across all of the user's staches
	ListByUser(userID uint64) ([]models.Item, error)

	// FindByIDForUser finds an item by ID, scoped through its stache to
	// the owner
	FindByIDForUser(id, userID uint64) (*models.Item, error)

	// Create creates a new item
	Create(item *models.Item) error

	// Update updates an item
	Update(item *models.Item) error

	// Delete removes the item, clearing task references to it, in one
	// transaction
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project and task data
// access.
type ProjectRepository interface {
	// ListByUser lists the user's projects, newest first, optionally
	// filtered by status
	ListByUser(userID uint64, status *models.ProjectStatus) ([]models.Project, error)

	// FindByIDForUser finds a project by ID, scoped to the owner, with
	// tasks and their linked items preloaded
	FindByIDForUser(id, userID uint64) (*models.Project, error)

	// Create creates a new project
	Create(project *models.Project) error

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes the project and its tasks in one transaction
	Delete(id uint64) error

	// CreateTask adds a task to a project
	CreateTask(task *models.ProjectTask) error

	// FindTaskForUser finds a task by ID within a project, scoped to
	// the project owner
	FindTaskForUser(taskID, projectID, userID uint64) (*models.ProjectTask, error)

	// UpdateTask updates a task
	UpdateTask(task *models.ProjectTask) error
}
