package store

import (
	"gamelog/backend/internal/models"

	"gorm.io/gorm/clause"
)

// CreateGame persists a new game.
func (s *Store) CreateGame(game *models.Game) error {
	return s.db.Omit(clause.Associations).Create(game).Error
}

// GameByID fetches a single game.
func (s *Store) GameByID(id uint) (models.Game, error) {
	var game models.Game
	err := s.db.First(&game, id).Error
	return game, err
}

// GameByTitle fetches a game by its exact title.
func (s *Store) GameByTitle(title string) (models.Game, error) {
	var game models.Game
	err := s.db.Where("title = ?", title).First(&game).Error
	return game, err
}

// GameReviews returns all reviews written for a game.
func (s *Store) GameReviews(gameID uint) ([]models.Review, error) {
	game, err := s.GameByID(gameID)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	err = s.db.Model(&game).Association("Reviews").Find(&reviews)
	return reviews, err
}

// GameUsers returns the users associated with a game through the join table.
func (s *Store) GameUsers(gameID uint) ([]models.User, error) {
	game, err := s.GameByID(gameID)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = s.db.Model(&game).Association("Users").Find(&users)
	return users, err
}
