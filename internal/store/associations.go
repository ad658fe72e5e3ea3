package store

import (
	"gamelog/backend/internal/models"
)

// Linked reports whether a (user, game) pair is already associated.
func (s *Store) Linked(userID, gameID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.GameUser{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	return count > 0, err
}

// LinkGame associates a user with a game. Linking an already-linked pair
// is a no-op; the composite primary key on game_users backs this up if
// two writers race past the check. Because Game.Users and User.Games
// share the same join model, the game shows up in the user's collection
// and the user in the game's without a second write.
func (s *Store) LinkGame(userID, gameID uint) error {
	linked, err := s.Linked(userID, gameID)
	if err != nil {
		return err
	}
	if linked {
		return nil
	}

	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	game, err := s.GameByID(gameID)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Association("Games").Append(&game)
}

// UnlinkGame removes the association between a user and a game. The
// reviews the user wrote for the game are left untouched.
func (s *Store) UnlinkGame(userID, gameID uint) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	game, err := s.GameByID(gameID)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Association("Games").Delete(&game)
}

// DeriveAssociations links every reviewer to the game they reviewed.
// LinkGame already skips linked pairs, so running it twice creates
// nothing new; the count of rows created falls out of the table size.
func (s *Store) DeriveAssociations() (int, error) {
	reviews, err := s.Reviews()
	if err != nil {
		return 0, err
	}

	var before int64
	if err := s.db.Model(&models.GameUser{}).Count(&before).Error; err != nil {
		return 0, err
	}

	for _, review := range reviews {
		if err := s.LinkGame(review.UserID, review.GameID); err != nil {
			return 0, err
		}
	}

	var after int64
	if err := s.db.Model(&models.GameUser{}).Count(&after).Error; err != nil {
		return 0, err
	}

	return int(after - before), nil
}
