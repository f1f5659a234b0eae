package seed

import (
	"testing"

	"mingle/internal/database"
	"mingle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedTestDB(t)

	s := NewSeeder(db, Options{
		NumUsers:   8,
		NumPosts:   20,
		SkipBcrypt: true,
		// ShouldClean uses TRUNCATE, which SQLite does not support
	})
	require.NoError(t, s.Seed())

	var userCount, profileCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)

	assert.Equal(t, int64(8), userCount)
	assert.Equal(t, userCount, profileCount, "every user gets a profile")
	assert.Equal(t, int64(20), postCount)

	// every post carries a slug derived from its body
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, post := range posts {
		assert.NotEmpty(t, post.Slug)
	}

	// replies always point at a parent on the same post
	var replies []models.Comment
	require.NoError(t, db.Where("is_reply = ?", true).Find(&replies).Error)
	for _, reply := range replies {
		require.NotNil(t, reply.ReplyID)
		var parent models.Comment
		require.NoError(t, db.First(&parent, *reply.ReplyID).Error)
		assert.Equal(t, parent.PostID, reply.PostID)
	}

	// no self-follows in the generated graph
	var selfFollows int64
	require.NoError(t, db.Model(&models.Relation{}).
		Where("from_user_id = to_user_id").
		Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	// the well-known dev login exists
	var known models.User
	require.NoError(t, db.Where("username = ?", "mingle").First(&known).Error)
}

func TestCreateUserOverrides(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db, Options{SkipBcrypt: true})

	user, err := s.CreateUser(func(u *models.User) {
		u.Username = "fixed-name"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-name", user.Username)
	assert.NotZero(t, user.ID)
}

func TestCreatePostDerivesSlug(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db, Options{SkipBcrypt: true})

	user, err := s.CreateUser()
	require.NoError(t, err)

	post, err := s.CreatePost(user, func(p *models.Post) {
		p.Body = "Fixed body for slug checking"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-body-for-slug-checking", post.Slug)
}
