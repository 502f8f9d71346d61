// Package dto holds the view models handed to templates. Form structs
// carry the submitted values back to the page so a failed validation
// re-renders with nothing lost.
package dto

import (
	"github.com/brycehall/stache/internal/models"
)

// StacheForm backs the new/edit stache form.
type StacheForm struct {
	Name        string
	Description string
	Locations   string
	Tags        string
	Error       string
}

// StacheFormFrom pre-fills the form from an existing stache.
func StacheFormFrom(s *models.Stache) StacheForm {
	return StacheForm{
		Name:        s.Name,
		Description: s.Description,
		Locations:   s.Locations,
		Tags:        s.Tags.String(),
	}
}

// ItemForm backs the new/edit item form.
type ItemForm struct {
	StacheID  uint64
	Name      string
	Category  string
	Location  string
	Condition string
	Tags      string
	Notes     string
	Error     string
}

// ItemFormFrom pre-fills the form from an existing item.
func ItemFormFrom(i *models.Item) ItemForm {
	return ItemForm{
		StacheID:  i.StacheID,
		Name:      i.Name,
		Category:  i.Category,
		Location:  i.Location,
		Condition: i.Condition,
		Tags:      i.Tags.String(),
		Notes:     i.Notes,
	}
}

// ProjectForm backs the new/edit project form.
type ProjectForm struct {
	StacheID    uint64
	Name        string
	Description string
	Error       string
}

// ProjectFormFrom pre-fills the form from an existing project.
func ProjectFormFrom(p *models.Project) ProjectForm {
	return ProjectForm{
		StacheID:    p.StacheID,
		Name:        p.Name,
		Description: p.Description,
	}
}
