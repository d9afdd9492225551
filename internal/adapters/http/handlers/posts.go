package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/posts-gateway/internal/ports"
)

// PostHandler serves the posts and comments endpoints.
// Failures are attached with c.Error and rendered by the error middleware.
type PostHandler struct {
	service ports.PostService
}

// NewPostHandler creates a post handler.
func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts handles GET /posts with an optional integer userId filter.
func (h *PostHandler) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		_ = c.Error(dto.BadRequest(err))
		return
	}

	userID, err := query.UserFilter()
	if err != nil {
		_ = c.Error(dto.BadRequest(err))
		return
	}

	posts, err := h.service.ListPosts(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// GetComments handles GET /posts/:id/comments.
func (h *PostHandler) GetComments(c *gin.Context) {
	comments, err := h.service.GetComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// GetPostDetails handles GET /posts/:id/details.
func (h *PostHandler) GetPostDetails(c *gin.Context) {
	details, err := h.service.GetPostDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDetailsResponse(details))
}

// RegisterRoutes registers the post routes on rg.
func (h *PostHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/posts", h.ListPosts)
	rg.GET("/posts/:id", h.GetPost)
	rg.GET("/posts/:id/comments", h.GetComments)
	rg.GET("/posts/:id/details", h.GetPostDetails)
}
