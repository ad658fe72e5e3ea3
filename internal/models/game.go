package models

import "gorm.io/gorm"

// Game represents a game in the catalogue.
type Game struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Genre       string `gorm:"size:100"`
	Platform    string `gorm:"size:100"`
	ReleaseYear int

	Reviews []Review `gorm:"foreignKey:GameID"` // Has Many relationship
	Users   []*User  `gorm:"many2many:game_users;"`
}
