package models

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ValidProjectStatus reports whether s is one of the three known states.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project is a task list owned by a user, referencing one stache for
// context.
type Project struct {
	ID          uint64        `gorm:"primarykey"`
	UserID      uint64        `gorm:"index;not null"`
	StacheID    uint64        `gorm:"index;not null"`
	Name        string        `gorm:"type:varchar(200);not null"`
	Description string        `gorm:"type:text"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'planning';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	User   User          `gorm:"foreignKey:UserID"`
	Stache Stache        `gorm:"foreignKey:StacheID"`
	Tasks  []ProjectTask `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
