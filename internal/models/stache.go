package models

import "time"

// Stache is a named collection of items owned by a single user. Its slug
// is derived from the name at creation and never changes afterwards,
// even if the stache is renamed.
type Stache struct {
	ID          uint64  `gorm:"primarykey"`
	UserID      uint64  `gorm:"index;not null"`
	Name        string  `gorm:"type:varchar(120);not null"`
	Slug        string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string  `gorm:"type:text"`
	Locations   string  `gorm:"type:varchar(255)"`
	Tags        TagList `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	User  User   `gorm:"foreignKey:UserID"`
	Items []Item `gorm:"foreignKey:StacheID;constraint:OnDelete:CASCADE"`
}

// ItemCount is used by list views; Items must be preloaded.
func (s Stache) ItemCount() int {
	return len(s.Items)
}
