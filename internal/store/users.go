package store

import (
	"gamelog/backend/internal/models"

	"gorm.io/gorm/clause"
)

// CreateUser persists a new user. Timestamps are filled in by the storage
// layer; callers must leave them zero.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Omit(clause.Associations).Create(user).Error
}

// UserByID fetches a single user.
func (s *Store) UserByID(id uint) (models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	return user, err
}

// UserByName fetches a user by their unique name.
func (s *Store) UserByName(name string) (models.User, error) {
	var user models.User
	err := s.db.Where("name = ?", name).First(&user).Error
	return user, err
}

// UserReviews returns all reviews written by a user.
func (s *Store) UserReviews(userID uint) ([]models.Review, error) {
	user, err := s.UserByID(userID)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	err = s.db.Model(&user).Association("Reviews").Find(&reviews)
	return reviews, err
}

// UserGames returns the games associated with a user through the join table.
func (s *Store) UserGames(userID uint) ([]models.Game, error) {
	user, err := s.UserByID(userID)
	if err != nil {
		return nil, err
	}

	var games []models.Game
	err = s.db.Model(&user).Association("Games").Find(&games)
	return games, err
}
