package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen/posts-gateway/internal/domain"
)

// ListPostsQuery holds the query parameters of GET /posts.
// UserID is kept as text so that an empty value means no filter.
type ListPostsQuery struct {
	UserID string `form:"userId" json:"userId"`
}

// UserFilter returns the userId filter, or nil when the parameter is absent or blank.
func (q ListPostsQuery) UserFilter() (*int, error) {
	raw := strings.TrimSpace(q.UserID)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: userId: %w", ErrBinding, err)
	}

	return &id, nil
}

// PostResponse is the wire shape of a post.
type PostResponse struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// CommentResponse is the wire shape of a comment.
type CommentResponse struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// PostDetailsResponse is the wire shape of GET /posts/{id}/details.
type PostDetailsResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}

// ToPostResponse converts a domain Post to its wire shape.
func ToPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		UserID: p.UserID,
		ID:     p.ID,
		Title:  p.Title,
		Body:   p.Body,
	}
}

// ToPostResponses converts posts, always returning a non-nil slice.
func ToPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostResponse(p))
	}

	return out
}

// ToCommentResponses converts comments, always returning a non-nil slice.
func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{
			PostID: c.PostID,
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Body:   c.Body,
		})
	}

	return out
}

// ToPostDetailsResponse converts a post with its comments.
func ToPostDetailsResponse(d domain.PostDetails) PostDetailsResponse {
	return PostDetailsResponse{
		Post:     ToPostResponse(d.Post),
		Comments: ToCommentResponses(d.Comments),
	}
}
