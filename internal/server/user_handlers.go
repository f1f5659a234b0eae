// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"mingle/internal/models"
	"mingle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me (protected)
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(ctx, userID, userID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me (protected). The request is a
// full-form replace: age, bio and email are all applied together, so an
// absent age or bio clears the stored value. A submission that fails
// validation (including a missing email) applies nothing and responds 200
// with the unchanged profile.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Email string `json:"email"`
		Age   *int   `json:"age"`
		Bio   string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID: userID,
		Email:  req.Email,
		Age:    req.Age,
		Bio:    req.Bio,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// GetUserProfile handles GET /api/users/:id (public). Authenticated viewers
// additionally get whether they follow the profile's owner.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	profile, err := s.userService.GetProfile(ctx, targetID, viewerID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(profile)
}
