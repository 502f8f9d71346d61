package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/brycehall/stache/internal/dto"
	weberrors "github.com/brycehall/stache/internal/errors"
	"github.com/brycehall/stache/internal/middleware"
	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler coordinates the project and task pages.
type ProjectHandler struct {
	projectService *services.ProjectService
	stacheService  *services.StacheService
	itemService    *services.ItemService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, stacheService *services.StacheService, itemService *services.ItemService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		stacheService:  stacheService,
		itemService:    itemService,
	}
}

// List shows the user's projects, optionally filtered by ?status=.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	filter := c.DefaultQuery("status", "all")

	projects, err := h.projectService.ListForUser(userID, filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.Redirect(http.StatusFound, "/projects")
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "projects.html", gin.H{
		"Projects": projects,
		"Filter":   filter,
	})
}

// ShowNew renders the empty project form.
func (h *ProjectHandler) ShowNew(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	staches, err := h.stacheService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "project_form.html", gin.H{
		"Title":   "New Project",
		"Action":  "/projects/new",
		"Form":    dto.ProjectForm{},
		"Staches": staches,
	})
}

// Create handles the new-project form.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	form := projectFormFromRequest(c)

	project, err := h.projectService.Create(userID, services.ProjectInput{
		Name:        form.Name,
		Description: form.Description,
		StacheID:    form.StacheID,
	})
	if err != nil {
		msg, ok := projectFormErrorMessage(err)
		if !ok {
			weberrors.Internal(c, pageData(c))
			return
		}

		staches, listErr := h.stacheService.ListForUser(userID)
		if listErr != nil {
			weberrors.Internal(c, pageData(c))
			return
		}

		form.Error = msg
		render(c, http.StatusOK, "project_form.html", gin.H{
			"Title":   "New Project",
			"Action":  "/projects/new",
			"Form":    form,
			"Staches": staches,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", project.ID))
}

// Detail shows one project with its task list and an add-task form.
func (h *ProjectHandler) Detail(c *gin.Context) {
	h.renderDetail(c, "", "", "")
}

// ShowEdit renders the edit form pre-filled.
func (h *ProjectHandler) ShowEdit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	staches, err := h.stacheService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "project_form.html", gin.H{
		"Title":   "Edit " + project.Name,
		"Action":  fmt.Sprintf("/projects/%d/edit", project.ID),
		"Form":    dto.ProjectFormFrom(project),
		"Staches": staches,
	})
}

// Edit handles the edit form.
func (h *ProjectHandler) Edit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	form := projectFormFromRequest(c)
	if _, err := h.projectService.Update(userID, project, services.ProjectInput{
		Name:        form.Name,
		Description: form.Description,
		StacheID:    form.StacheID,
	}); err != nil {
		msg, ok := projectFormErrorMessage(err)
		if !ok {
			weberrors.Internal(c, pageData(c))
			return
		}

		staches, listErr := h.stacheService.ListForUser(userID)
		if listErr != nil {
			weberrors.Internal(c, pageData(c))
			return
		}

		form.Error = msg
		render(c, http.StatusOK, "project_form.html", gin.H{
			"Title":   "Edit " + project.Name,
			"Action":  fmt.Sprintf("/projects/%d/edit", project.ID),
			"Form":    form,
			"Staches": staches,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", project.ID))
}

// AddTask appends a task from the form on the detail page. A missing
// description re-renders the page with the error inline.
func (h *ProjectHandler) AddTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	description := c.PostForm("description")
	rawItemID := c.PostForm("item_id")

	var itemID *uint64
	if rawItemID != "" {
		id, err := strconv.ParseUint(rawItemID, 10, 64)
		if err != nil {
			weberrors.NotFound(c, pageData(c))
			return
		}
		itemID = &id
	}

	if _, err := h.projectService.AddTask(userID, project, description, itemID); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskDescriptionRequired):
			h.renderDetail(c, "Task description is required.", description, rawItemID)
		case errors.Is(err, services.ErrItemNotFound):
			weberrors.NotFound(c, pageData(c))
		default:
			weberrors.Internal(c, pageData(c))
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", project.ID))
}

// ToggleTask flips a task's completed flag.
func (h *ProjectHandler) ToggleTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	projectID, ok := parseID(c, "id")
	if !ok {
		weberrors.NotFound(c, pageData(c))
		return
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		weberrors.NotFound(c, pageData(c))
		return
	}

	if _, err := h.projectService.ToggleTask(taskID, projectID, userID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c, pageData(c))
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", projectID))
}

// SetStatus moves the project between in-progress and completed. Any
// other value is ignored and the page just reloads.
func (h *ProjectHandler) SetStatus(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	status := models.ProjectStatus(c.PostForm("status"))
	if err := h.projectService.SetStatus(project, status); err != nil && !errors.Is(err, services.ErrInvalidStatus) {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", project.ID))
}

// Delete removes the project and its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(project); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) loadProject(c *gin.Context) (*models.Project, bool) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c, "id")
	if !ok {
		weberrors.NotFound(c, pageData(c))
		return nil, false
	}

	project, err := h.projectService.Get(id, userID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			weberrors.NotFound(c, pageData(c))
			return nil, false
		}
		weberrors.Internal(c, pageData(c))
		return nil, false
	}

	return project, true
}

// renderDetail renders the project detail page, optionally with an
// inline add-task error and the rejected description and item
// selection preserved.
func (h *ProjectHandler) renderDetail(c *gin.Context, taskError, taskDescription, taskItemID string) {
	userID, _ := middleware.GetUserID(c)

	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "project_detail.html", gin.H{
		"Project":         project,
		"Items":           items,
		"TaskError":       taskError,
		"TaskDescription": taskDescription,
		"TaskItemID":      taskItemID,
	})
}

func projectFormFromRequest(c *gin.Context) dto.ProjectForm {
	stacheID, _ := strconv.ParseUint(c.PostForm("stache_id"), 10, 64)
	return dto.ProjectForm{
		StacheID:    stacheID,
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
}

func projectFormErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrProjectNameRequired):
		return "Name is required.", true
	case errors.Is(err, services.ErrStacheNotFound):
		return "Pick one of your staches.", true
	default:
		return "", false
	}
}
