package server

import (
	"fmt"
	"net/http"
	"testing"

	"mingle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	s, app, db := setupTestServer(t)
	target := createTestUser(t, db, "profiled")
	viewer := createTestUser(t, db, "viewer")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", authToken(t, s, target), map[string]string{
		"body": "a post on my profile",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	profilePath := fmt.Sprintf("/api/users/%d", target.ID)

	t.Run("Anonymous", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, profilePath, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view struct {
			User        models.User `json:"user"`
			IsFollowing bool        `json:"is_following"`
			Followers   int64       `json:"followers"`
			Following   int64       `json:"following"`
		}
		decodeBody(t, resp, &view)
		assert.Equal(t, "profiled", view.User.Username)
		assert.Len(t, view.User.Posts, 1)
		assert.False(t, view.IsFollowing)
		assert.Zero(t, view.Followers)
	})

	t.Run("Follower Viewer", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Relation{FromUserID: viewer.ID, ToUserID: target.ID}).Error)

		resp := doJSON(t, app, http.MethodGet, profilePath, authToken(t, s, viewer), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view struct {
			IsFollowing bool  `json:"is_following"`
			Followers   int64 `json:"followers"`
		}
		decodeBody(t, resp, &view)
		assert.True(t, view.IsFollowing)
		assert.Equal(t, int64(1), view.Followers)
	})

	t.Run("Missing User", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/9999", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bad ID", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/abc", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	s, app, db := setupTestServer(t)
	user := createTestUser(t, db, "editor")
	token := authToken(t, s, user)

	t.Run("Valid Update", func(t *testing.T) {
		age := 33
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"email": "editor-new@example.com",
			"age":   age,
			"bio":   "updated bio",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			User models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "editor-new@example.com", body.User.Email)
		require.NotNil(t, body.User.Profile)
		require.NotNil(t, body.User.Profile.Age)
		assert.Equal(t, age, *body.User.Profile.Age)
		assert.Equal(t, "updated bio", body.User.Profile.Bio)
	})

	// An invalid submission is silently ignored: 200 with the old values.
	t.Run("Invalid Email Is A No-Op", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"email": "not-an-email",
			"bio":   "this should not stick",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			User models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "editor-new@example.com", body.User.Email)
		require.NotNil(t, body.User.Profile)
		assert.Equal(t, "updated bio", body.User.Profile.Bio)
	})

	t.Run("Invalid Age Is A No-Op", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"email": "editor-new@example.com",
			"age":   -4,
			"bio":   "negative years old",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			User models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "updated bio", body.User.Profile.Bio)
	})

	// A full-form replace: omitting age and bio alongside a valid email
	// clears the stored values rather than keeping them.
	t.Run("Absent Fields Are Cleared", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"email": "editor-new@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			User models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		require.NotNil(t, body.User.Profile)
		assert.Nil(t, body.User.Profile.Age)
		assert.Empty(t, body.User.Profile.Bio)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", "", map[string]any{
			"email": "anon@example.com",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestFollowUser(t *testing.T) {
	s, app, db := setupTestServer(t)
	follower := createTestUser(t, db, "follower")
	followee := createTestUser(t, db, "followee")
	token := authToken(t, s, follower)

	followPath := fmt.Sprintf("/api/users/%d/follow", followee.ID)

	t.Run("Success", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, followPath, token, nil)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Relation{}).
			Where("from_user_id = ? AND to_user_id = ?", follower.ID, followee.ID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Already Following", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, followPath, token, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Follow Yourself", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", follower.ID), token, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Target", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/9999/follow", token, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUnfollowUser(t *testing.T) {
	s, app, db := setupTestServer(t)
	follower := createTestUser(t, db, "quitter")
	followee := createTestUser(t, db, "abandoned")
	token := authToken(t, s, follower)

	require.NoError(t, db.Create(&models.Relation{FromUserID: follower.ID, ToUserID: followee.ID}).Error)

	unfollowPath := fmt.Sprintf("/api/users/%d/follow", followee.ID)

	t.Run("Success", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, unfollowPath, token, nil)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Relation{}).
			Where("from_user_id = ?", follower.ID).
			Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("Not Following", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, unfollowPath, token, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetMyProfile(t *testing.T) {
	s, app, db := setupTestServer(t)
	user := createTestUser(t, db, "selfie")
	token := authToken(t, s, user)

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		User models.User `json:"user"`
	}
	decodeBody(t, resp, &view)
	assert.Equal(t, user.ID, view.User.ID)
	assert.Equal(t, "selfie", view.User.Username)
	// the password hash never leaves the API
	assert.Empty(t, view.User.Password)
}

// Profile pages are public while /users/me stays behind auth, and the /me
// route must win over the :id wildcard for authenticated callers.
func TestUserRouteVisibility(t *testing.T) {
	s, app, db := setupTestServer(t)
	user := createTestUser(t, db, "visible")

	t.Run("Profile Without Token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Me Without Token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Me Is Not An ID", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/me", authToken(t, s, user), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view struct {
			User models.User `json:"user"`
		}
		decodeBody(t, resp, &view)
		assert.Equal(t, user.ID, view.User.ID)
	})
}
