// Package seed populates the store with a small catalogue for demos.
// Running it twice leaves the database unchanged.
package seed

import (
	"errors"

	"gamelog/backend/internal/models"
	"gamelog/backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gameRow struct {
	title       string
	genre       string
	platform    string
	releaseYear int
}

type reviewRow struct {
	game    string
	user    string
	rating  int
	comment string
}

var games = []gameRow{
	{"Streets of Fire", "Beat 'em up", "Arcade", 1989},
	{"Chrono Drift", "RPG", "SNES", 1995},
	{"Harvest Lane", "Simulation", "PC", 2019},
	{"Null Pointer", "Puzzle", "PC", 2021},
}

var users = []string{"admin", "mel", "sasha"}

var reviews = []reviewRow{
	{"Streets of Fire", "admin", 10, "Still the best brawler ever made."},
	{"Streets of Fire", "mel", 7, "Rough edges, great soundtrack."},
	{"Chrono Drift", "mel", 9, "The time loop twist holds up."},
	{"Harvest Lane", "sasha", 8, "Lost a whole weekend to turnips."},
}

// Run inserts the sample games, users, and reviews, then derives the
// Game–User associations from the reviews that exist.
func Run(s *store.Store) error {
	for _, row := range games {
		if _, err := s.GameByTitle(row.title); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		game := models.Game{
			Title:       row.title,
			Genre:       row.genre,
			Platform:    row.platform,
			ReleaseYear: row.releaseYear,
		}
		if err := s.CreateGame(&game); err != nil {
			return err
		}
		logrus.WithField("title", game.Title).Info("seeded game")
	}

	for _, name := range users {
		if _, err := s.UserByName(name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := models.User{Name: name}
		if err := s.CreateUser(&user); err != nil {
			return err
		}
		logrus.WithField("name", user.Name).Info("seeded user")
	}

	for _, row := range reviews {
		game, err := s.GameByTitle(row.game)
		if err != nil {
			return err
		}
		user, err := s.UserByName(row.user)
		if err != nil {
			return err
		}

		exists, err := s.HasReview(game.ID, user.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		review := models.Review{
			GameID:  game.ID,
			UserID:  user.ID,
			Rating:  row.rating,
			Comment: row.comment,
		}
		if err := s.CreateReview(&review); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"game": row.game,
			"user": row.user,
		}).Info("seeded review")
	}

	created, err := s.DeriveAssociations()
	if err != nil {
		return err
	}
	logrus.WithField("created", created).Info("derived game-user associations")

	return nil
}
