package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mingle/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()

	var page Pagination
	app.Get("/items", func(c *fiber.Ctx) error {
		page = parsePagination(c, 20)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name           string
		url            string
		expectedLimit  int
		expectedOffset int
	}{
		{"Defaults", "/items", 20, 0},
		{"Explicit", "/items?limit=5&offset=10", 5, 10},
		{"Zero Limit Falls Back", "/items?limit=0", 20, 0},
		{"Negative Offset Clamped", "/items?offset=-3", 20, 0},
		{"Limit Capped", "/items?limit=5000", maxPaginationLimit, 0},
		{"Garbage Ignored", "/items?limit=abc&offset=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.expectedLimit, page.Limit)
			assert.Equal(t, tt.expectedOffset, page.Offset)
		})
	}
}

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"commentId", "comment ID"},
		{"userId", "user ID"},
		{"slug", "slug"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, humanizeParam(tt.param))
	}
}

func TestServiceErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"Not Found", models.NewNotFoundError("Post", 1), http.StatusNotFound},
		{"Unauthorized", models.NewUnauthorizedError("not yours"), http.StatusForbidden},
		{"Conflict", models.NewConflictError("already done"), http.StatusConflict},
		{"Internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Plain Error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, serviceErrorStatus(tt.err))
		})
	}
}
