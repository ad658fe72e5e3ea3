package models

import "time"

// GameUser links a user to a game they have logged. It is the join model
// behind both many2many collections (Game.Users and User.Games), so an
// append through either side lands in the same table.
// The primary key is a composite of (GameID, UserID) to ensure uniqueness.
type GameUser struct {
	GameID    uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time

	// Define foreign key relationships
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
