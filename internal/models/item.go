package models

// Item is a single tracked belonging. It belongs to exactly one stache;
// the owning user is reached through the stache.
type Item struct {
	ID        uint64  `gorm:"primarykey"`
	StacheID  uint64  `gorm:"index;not null"`
	Name      string  `gorm:"type:varchar(120);not null"`
	Category  string  `gorm:"type:varchar(80)"`
	Location  string  `gorm:"type:varchar(120)"`
	Condition string  `gorm:"type:varchar(80)"`
	Tags      TagList `gorm:"type:varchar(255)"`
	Notes     string  `gorm:"type:text"`

	// Relations
	Stache Stache `gorm:"foreignKey:StacheID"`
}
