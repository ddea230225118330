package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"boardapi/internal/service"
)

type deleteRequest struct {
	Password string `json:"password"`
}

// ListPosts godoc
// @Summary List posts
// @Description Newest first, paginated, optionally filtered by a search column.
// @Tags posts
// @Produce json
// @Param searchColumn query string false "author, title or contents"
// @Param searchWord query string false "search term"
// @Param nowPage query int false "1-based page number"
// @Success 200 {object} service.PageResult
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /posts [get]
func ListPosts(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), service.ListRequest{
			SearchColumn: c.Query("searchColumn"),
			SearchWord:   c.Query("searchWord"),
			NowPage:      c.Query("nowPage"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetPost godoc
// @Summary Show a post
// @Description Returns the post and increments its hit count.
// @Tags posts
// @Produce json
// @Param id path int true "post id"
// @Success 200 {object} model.Post
// @Failure 404 {object} errorPayload
// @Router /posts/{id} [get]
func GetPost(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		post, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(post)
	}
}

// WritePost godoc
// @Summary Write a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.WriteInput true "new post"
// @Success 201 {object} model.Post
// @Failure 400 {object} errorPayload
// @Router /posts [post]
func WritePost(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.WriteInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		post, err := svc.Write(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// ReplyPost godoc
// @Summary Reply to a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "parent post id"
// @Param post body service.WriteInput true "reply"
// @Success 201 {object} model.Post
// @Failure 404 {object} errorPayload
// @Router /posts/{id}/replies [post]
func ReplyPost(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.WriteInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		post, err := svc.Reply(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// ModifyPost godoc
// @Summary Modify a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "post id"
// @Param post body service.ModifyInput true "changes and password"
// @Success 200 {object} model.Post
// @Failure 403 {object} errorPayload
// @Router /posts/{id} [put]
func ModifyPost(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.ModifyInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		post, err := svc.Modify(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(post)
	}
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Accept json
// @Param id path int true "post id"
// @Param body body deleteRequest true "password"
// @Success 204
// @Failure 403 {object} errorPayload
// @Router /posts/{id} [delete]
func DeletePost(svc service.BoardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req deleteRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Delete(c.UserContext(), id, req.Password); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
