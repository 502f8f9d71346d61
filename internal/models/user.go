package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey"`
	Username     string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	// Relations
	Staches  []Stache  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects []Project `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
