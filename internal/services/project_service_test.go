package services

import (
	"testing"

	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type projectTestEnv struct {
	db             *gorm.DB
	authService    *AuthService
	stacheService  *StacheService
	itemService    *ItemService
	projectService *ProjectService
	user           *models.User
	stache         *models.Stache
}

func setupProjectTest(t *testing.T) projectTestEnv {
	t.Helper()
	db := newTestDB(t)

	authService := NewAuthService(repository.NewUserRepository(db))
	stacheService := NewStacheService(repository.NewStacheRepository(db))

	user, err := authService.Signup(SignupInput{Username: "alice", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)
	stache, err := stacheService.Create(user.ID, StacheInput{Name: "Workshop"})
	require.NoError(t, err)

	return projectTestEnv{
		db:             db,
		authService:    authService,
		stacheService:  stacheService,
		itemService:    NewItemService(repository.NewItemRepository(db), repository.NewStacheRepository(db)),
		projectService: NewProjectService(repository.NewProjectRepository(db), repository.NewStacheRepository(db), repository.NewItemRepository(db)),
		user:           user,
		stache:         stache,
	}
}

func TestProjectService_CreateStartsInPlanning(t *testing.T) {
	env := setupProjectTest(t)

	project, err := env.projectService.Create(env.user.ID, ProjectInput{
		Name:     "Build a workbench",
		StacheID: env.stache.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.ProjectStatusPlanning, project.Status)

	_, err = env.projectService.Create(env.user.ID, ProjectInput{Name: "  ", StacheID: env.stache.ID})
	require.ErrorIs(t, err, ErrProjectNameRequired)

	_, err = env.projectService.Create(env.user.ID, ProjectInput{Name: "Orphan", StacheID: env.stache.ID + 999})
	require.ErrorIs(t, err, ErrStacheNotFound)
}

func TestProjectService_ListFilterByStatus(t *testing.T) {
	env := setupProjectTest(t)

	planning, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Planning one", StacheID: env.stache.ID})
	require.NoError(t, err)
	active, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Active one", StacheID: env.stache.ID})
	require.NoError(t, err)
	require.NoError(t, env.projectService.SetStatus(active, models.ProjectStatusInProgress))

	all, err := env.projectService.ListForUser(env.user.ID, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyPlanning, err := env.projectService.ListForUser(env.user.ID, "planning")
	require.NoError(t, err)
	require.Len(t, onlyPlanning, 1)
	require.Equal(t, planning.ID, onlyPlanning[0].ID)

	onlyActive, err := env.projectService.ListForUser(env.user.ID, "in-progress")
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	require.Equal(t, active.ID, onlyActive[0].ID)

	_, err = env.projectService.ListForUser(env.user.ID, "bogus")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProjectService_UpdateMovesProjectBetweenStaches(t *testing.T) {
	env := setupProjectTest(t)

	target, err := env.stacheService.Create(env.user.ID, StacheInput{Name: "Garage"})
	require.NoError(t, err)

	created, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Build a workbench", StacheID: env.stache.ID})
	require.NoError(t, err)

	// Fetch the way the edit handler does, with the old stache
	// preloaded, then change the context stache.
	project, err := env.projectService.Get(created.ID, env.user.ID)
	require.NoError(t, err)
	require.Equal(t, env.stache.ID, project.Stache.ID)

	_, err = env.projectService.Update(env.user.ID, project, ProjectInput{Name: "Build a workbench", StacheID: target.ID})
	require.NoError(t, err)

	reloaded, err := env.projectService.Get(created.ID, env.user.ID)
	require.NoError(t, err)
	require.Equal(t, target.ID, reloaded.StacheID)
	require.Equal(t, target.ID, reloaded.Stache.ID)
}

func TestProjectService_SetStatus(t *testing.T) {
	env := setupProjectTest(t)

	project, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Build a workbench", StacheID: env.stache.ID})
	require.NoError(t, err)

	// Only the two button targets are accepted; there is no way back
	// to planning.
	require.ErrorIs(t, env.projectService.SetStatus(project, models.ProjectStatusPlanning), ErrInvalidStatus)
	require.ErrorIs(t, env.projectService.SetStatus(project, models.ProjectStatus("done")), ErrInvalidStatus)

	require.NoError(t, env.projectService.SetStatus(project, models.ProjectStatusInProgress))
	reloaded, err := env.projectService.Get(project.ID, env.user.ID)
	require.NoError(t, err)
	require.Equal(t, models.ProjectStatusInProgress, reloaded.Status)

	require.NoError(t, env.projectService.SetStatus(project, models.ProjectStatusCompleted))
}

func TestProjectService_AddTask(t *testing.T) {
	env := setupProjectTest(t)

	project, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Build a workbench", StacheID: env.stache.ID})
	require.NoError(t, err)
	item, err := env.itemService.Create(env.user.ID, ItemInput{StacheID: env.stache.ID, Name: "Circular saw"})
	require.NoError(t, err)

	_, err = env.projectService.AddTask(env.user.ID, project, "   ", nil)
	require.ErrorIs(t, err, ErrTaskDescriptionRequired)

	bob, err := env.authService.Signup(SignupInput{Username: "bob", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)
	_, err = env.projectService.AddTask(bob.ID, project, "Cut the legs", &item.ID)
	require.ErrorIs(t, err, ErrItemNotFound)

	task, err := env.projectService.AddTask(env.user.ID, project, "Cut the legs", &item.ID)
	require.NoError(t, err)
	require.False(t, task.Completed)
	require.Equal(t, item.ID, *task.ItemID)
}

func TestProjectService_ToggleTask(t *testing.T) {
	env := setupProjectTest(t)

	project, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Build a workbench", StacheID: env.stache.ID})
	require.NoError(t, err)
	task, err := env.projectService.AddTask(env.user.ID, project, "Cut the legs", nil)
	require.NoError(t, err)

	toggled, err := env.projectService.ToggleTask(task.ID, project.ID, env.user.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = env.projectService.ToggleTask(task.ID, project.ID, env.user.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)

	bob, err := env.authService.Signup(SignupInput{Username: "bob", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)
	_, err = env.projectService.ToggleTask(task.ID, project.ID, bob.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestProjectService_DeleteCascadesTasks(t *testing.T) {
	env := setupProjectTest(t)

	project, err := env.projectService.Create(env.user.ID, ProjectInput{Name: "Build a workbench", StacheID: env.stache.ID})
	require.NoError(t, err)
	_, err = env.projectService.AddTask(env.user.ID, project, "Cut the legs", nil)
	require.NoError(t, err)
	_, err = env.projectService.AddTask(env.user.ID, project, "Attach the top", nil)
	require.NoError(t, err)

	require.NoError(t, env.projectService.Delete(project))

	_, err = env.projectService.Get(project.ID, env.user.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)

	var taskCount int64
	require.NoError(t, env.db.Model(&models.ProjectTask{}).Count(&taskCount).Error)
	require.Zero(t, taskCount)
}
