package models

import "gorm.io/gorm"

// Review is a user's rating of a single game. A review belongs to exactly
// one Game and exactly one User; both foreign keys are mandatory.
type Review struct {
	gorm.Model
	GameID  uint `gorm:"not null;index"`
	UserID  uint `gorm:"not null;index"`
	Rating  int  `gorm:"not null"`
	Comment string

	Game Game `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
