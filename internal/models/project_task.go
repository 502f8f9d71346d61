package models

import "time"

// ProjectTask is a single entry on a project's task list, optionally
// linked to a tracked item. When the linked item is deleted the
// reference is cleared but the task text survives.
type ProjectTask struct {
	ID          uint64  `gorm:"primarykey"`
	ProjectID   uint64  `gorm:"index;not null"`
	ItemID      *uint64 `gorm:"index"`
	Description string  `gorm:"type:varchar(255);not null"`
	Completed   bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time

	// Relations
	Project Project `gorm:"foreignKey:ProjectID"`
	Item    *Item   `gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`
}
