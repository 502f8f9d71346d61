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

// ItemHandler coordinates the item pages.
type ItemHandler struct {
	itemService   *services.ItemService
	stacheService *services.StacheService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *services.ItemService, stacheService *services.StacheService) *ItemHandler {
	return &ItemHandler{
		itemService:   itemService,
		stacheService: stacheService,
	}
}

// List shows every item across the user's staches.
func (h *ItemHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.itemService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "items.html", gin.H{
		"Items": items,
	})
}

// ShowNew renders the empty item form with the user's staches as
// destination choices.
func (h *ItemHandler) ShowNew(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	staches, err := h.stacheService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	form := dto.ItemForm{}
	if stacheID, err := strconv.ParseUint(c.Query("stache_id"), 10, 64); err == nil {
		form.StacheID = stacheID
	}

	render(c, http.StatusOK, "item_form.html", gin.H{
		"Title":   "New Item",
		"Action":  "/items/new",
		"Form":    form,
		"Staches": staches,
	})
}

// Create handles the new-item form.
func (h *ItemHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	form := itemFormFromRequest(c)

	item, err := h.itemService.Create(userID, itemInputFromForm(form))
	if err != nil {
		msg, ok := itemFormErrorMessage(err)
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
		render(c, http.StatusOK, "item_form.html", gin.H{
			"Title":   "New Item",
			"Action":  "/items/new",
			"Form":    form,
			"Staches": staches,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/items/%d", item.ID))
}

// Detail shows one item.
func (h *ItemHandler) Detail(c *gin.Context) {
	item, ok := h.loadItem(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "item_detail.html", gin.H{
		"Item": item,
	})
}

// ShowEdit renders the edit form pre-filled.
func (h *ItemHandler) ShowEdit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	item, ok := h.loadItem(c)
	if !ok {
		return
	}

	staches, err := h.stacheService.ListForUser(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "item_form.html", gin.H{
		"Title":   "Edit " + item.Name,
		"Action":  fmt.Sprintf("/items/%d/edit", item.ID),
		"Form":    dto.ItemFormFrom(item),
		"Staches": staches,
	})
}

// Edit handles the edit form.
func (h *ItemHandler) Edit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	item, ok := h.loadItem(c)
	if !ok {
		return
	}

	form := itemFormFromRequest(c)
	if _, err := h.itemService.Update(userID, item, itemInputFromForm(form)); err != nil {
		msg, ok := itemFormErrorMessage(err)
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
		render(c, http.StatusOK, "item_form.html", gin.H{
			"Title":   "Edit " + item.Name,
			"Action":  fmt.Sprintf("/items/%d/edit", item.ID),
			"Form":    form,
			"Staches": staches,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/items/%d", item.ID))
}

// Delete removes the item.
func (h *ItemHandler) Delete(c *gin.Context) {
	item, ok := h.loadItem(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(item); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/items")
}

// loadItem resolves the :id parameter through the ownership chain and
// renders the 404 page when the item is missing or foreign.
func (h *ItemHandler) loadItem(c *gin.Context) (*models.Item, bool) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c, "id")
	if !ok {
		weberrors.NotFound(c, pageData(c))
		return nil, false
	}

	item, err := h.itemService.Get(id, userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			weberrors.NotFound(c, pageData(c))
			return nil, false
		}
		weberrors.Internal(c, pageData(c))
		return nil, false
	}

	return item, true
}

func itemFormFromRequest(c *gin.Context) dto.ItemForm {
	stacheID, _ := strconv.ParseUint(c.PostForm("stache_id"), 10, 64)
	return dto.ItemForm{
		StacheID:  stacheID,
		Name:      c.PostForm("name"),
		Category:  c.PostForm("category"),
		Location:  c.PostForm("location"),
		Condition: c.PostForm("condition"),
		Tags:      c.PostForm("tags"),
		Notes:     c.PostForm("notes"),
	}
}

func itemInputFromForm(form dto.ItemForm) services.ItemInput {
	return services.ItemInput{
		StacheID:  form.StacheID,
		Name:      form.Name,
		Category:  form.Category,
		Location:  form.Location,
		Condition: form.Condition,
		Tags:      form.Tags,
		Notes:     form.Notes,
	}
}

func itemFormErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrItemNameRequired):
		return "Name is required.", true
	case errors.Is(err, services.ErrStacheNotFound):
		return "Pick one of your staches.", true
	default:
		return "", false
	}
}
