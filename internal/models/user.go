package models

import "gorm.io/gorm"

// User represents a user in the system.
type User struct {
	gorm.Model
	Name string `gorm:"size:255;unique;not null"`

	Reviews []Review `gorm:"foreignKey:UserID"` // Has Many relationship
	Games   []*Game  `gorm:"many2many:game_users;"`
}
