package seed_test

import (
	"testing"

	"gamelog/backend/internal/database"
	"gamelog/backend/internal/models"
	"gamelog/backend/internal/seed"
	"gamelog/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func tableCounts(t *testing.T, db *gorm.DB) (games, users, reviews, links int64) {
	t.Helper()

	require.NoError(t, db.Model(&models.Game{}).Count(&games).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	require.NoError(t, db.Model(&models.GameUser{}).Count(&links).Error)
	return
}

func TestRunIsIdempotent(t *testing.T) {
	db, err := database.Open("file:seed_idempotent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	s := store.New(db)

	require.NoError(t, seed.Run(s))
	games, users, reviews, links := tableCounts(t, db)
	assert.Positive(t, games)
	assert.Positive(t, users)
	assert.Positive(t, reviews)
	assert.Positive(t, links)

	require.NoError(t, seed.Run(s))
	games2, users2, reviews2, links2 := tableCounts(t, db)
	assert.Equal(t, games, games2)
	assert.Equal(t, users, users2)
	assert.Equal(t, reviews, reviews2)
	assert.Equal(t, links, links2)
}

func TestRunDerivesAssociationsFromReviews(t *testing.T) {
	db, err := database.Open("file:seed_derive?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	s := store.New(db)

	require.NoError(t, seed.Run(s))

	game, err := s.GameByTitle("Streets of Fire")
	require.NoError(t, err)
	user, err := s.UserByName("admin")
	require.NoError(t, err)

	userGames, err := s.UserGames(user.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(userGames))
	for _, g := range userGames {
		titles = append(titles, g.Title)
	}
	assert.Contains(t, titles, "Streets of Fire")

	gameUsers, err := s.GameUsers(game.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(gameUsers))
	for _, u := range gameUsers {
		names = append(names, u.Name)
	}
	assert.Contains(t, names, "admin")
}
