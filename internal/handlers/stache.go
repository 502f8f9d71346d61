package handlers

import (
	"errors"
	"net/http"

	"github.com/brycehall/stache/internal/dto"
	weberrors "github.com/brycehall/stache/internal/errors"
	"github.com/brycehall/stache/internal/middleware"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-gonic/gin"
)

// StacheHandler coordinates the stache pages.
type StacheHandler struct {
	stacheService *services.StacheService
}

// NewStacheHandler creates a new StacheHandler.
func NewStacheHandler(stacheService *services.StacheService) *StacheHandler {
	return &StacheHandler{
		stacheService: stacheService,
	}
}

// List shows all of the user's staches.
func (h *StacheHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	staches, err := h.stacheService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "staches.html", gin.H{
		"Staches": staches,
	})
}

// ShowNew renders the empty stache form.
func (h *StacheHandler) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "stache_form.html", gin.H{
		"Title":  "New Stache",
		"Action": "/staches/new",
		"Form":   dto.StacheForm{},
	})
}

// Create handles the new-stache form.
func (h *StacheHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	form := stacheFormFromRequest(c)

	stache, err := h.stacheService.Create(userID, services.StacheInput{
		Name:        form.Name,
		Description: form.Description,
		Locations:   form.Locations,
		Tags:        form.Tags,
	})
	if err != nil {
		if errors.Is(err, services.ErrStacheNameRequired) {
			form.Error = "Name is required."
			render(c, http.StatusOK, "stache_form.html", gin.H{
				"Title":  "New Stache",
				"Action": "/staches/new",
				"Form":   form,
			})
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/staches/"+stache.Slug)
}

// Detail shows one stache with its items.
func (h *StacheHandler) Detail(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stache, err := h.stacheService.GetBySlug(c.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, services.ErrStacheNotFound) {
			weberrors.NotFound(c, pageData(c))
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "stache_detail.html", gin.H{
		"Stache": stache,
	})
}

// ShowEdit renders the edit form pre-filled.
func (h *StacheHandler) ShowEdit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stache, err := h.stacheService.GetBySlug(c.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, services.ErrStacheNotFound) {
			weberrors.NotFound(c, pageData(c))
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "stache_form.html", gin.H{
		"Title":  "Edit " + stache.Name,
		"Action": "/staches/" + stache.Slug + "/edit",
		"Form":   dto.StacheFormFrom(stache),
	})
}

// Edit handles the edit form. The slug never changes, even when the
// name does.
func (h *StacheHandler) Edit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stache, err := h.stacheService.GetBySlug(c.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, services.ErrStacheNotFound) {
			weberrors.NotFound(c, pageData(c))
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	form := stacheFormFromRequest(c)
	if _, err := h.stacheService.Update(stache, services.StacheInput{
		Name:        form.Name,
		Description: form.Description,
		Locations:   form.Locations,
		Tags:        form.Tags,
	}); err != nil {
		if errors.Is(err, services.ErrStacheNameRequired) {
			form.Error = "Name is required."
			render(c, http.StatusOK, "stache_form.html", gin.H{
				"Title":  "Edit " + stache.Name,
				"Action": "/staches/" + stache.Slug + "/edit",
				"Form":   form,
			})
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/staches/"+stache.Slug)
}

// Delete removes the stache and its items.
func (h *StacheHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stache, err := h.stacheService.GetBySlug(c.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, services.ErrStacheNotFound) {
			weberrors.NotFound(c, pageData(c))
			return
		}
		weberrors.Internal(c, pageData(c))
		return
	}

	if err := h.stacheService.Delete(stache); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/staches")
}

func stacheFormFromRequest(c *gin.Context) dto.StacheForm {
	return dto.StacheForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Locations:   c.PostForm("locations"),
		Tags:        c.PostForm("tags"),
	}
}
