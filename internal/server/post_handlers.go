// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"mingle/internal/models"
	"mingle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts (public). Supports ?search= for substring
// matching on the post body.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)
	search := c.Query("search")

	posts, err := s.postService.ListPosts(ctx, search, page.Limit, page.Offset, viewerID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts (protected). The slug is derived from
// the body server-side.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID: userID,
		Body:   req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPostDetail handles GET /api/posts/:id/:slug (public). Both the ID and
// the slug must identify the same post or the response is 404. The detail
// payload bundles the post with its comment tree.
func (s *Server) GetPostDetail(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	postSlug := c.Params("slug")
	viewerID, _ := s.optionalUserID(c)

	post, err := s.postService.GetDetail(ctx, id, postSlug, viewerID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	comments, err := s.commentService.ListComments(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// UpdatePost handles PUT /api/posts/:id (protected, owner only). Editing the
// body recomputes the slug, so old detail URLs stop resolving.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"body"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		UserID: userID,
		PostID: id,
		Body:   req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id (protected, owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, userID, id); err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// LikePost handles POST /api/posts/:id/like (protected). Likes are permanent;
// liking the same post twice is a conflict.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.LikePost(ctx, userID, id)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(post)
}
