package store

import (
	"gamelog/backend/internal/models"

	"gorm.io/gorm/clause"
)

// CreateReview persists a new review. Parent rows are never auto-created:
// a review pointing at a missing game or user fails with the driver's
// foreign-key violation and nothing is persisted.
func (s *Store) CreateReview(review *models.Review) error {
	return s.db.Omit(clause.Associations).Create(review).Error
}

// ReviewByID fetches a single review with its game and user loaded.
func (s *Store) ReviewByID(id uint) (models.Review, error) {
	var review models.Review
	err := s.db.Preload("Game").Preload("User").First(&review, id).Error
	return review, err
}

// HasReview reports whether a user has already reviewed a game.
func (s *Store) HasReview(gameID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Review{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	return count > 0, err
}

// Reviews returns every review in the store.
func (s *Store) Reviews() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Find(&reviews).Error
	return reviews, err
}
