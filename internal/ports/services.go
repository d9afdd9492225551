// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Failures are *domain.Error values carrying the intended status
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/posts-gateway/internal/domain"
)

// PostClient is the upstream posts/comments API.
// Every method issues exactly one GET and never retries.
type PostClient interface {
	// ListPosts returns every upstream post in upstream order.
	// An empty upstream body yields an empty, non-nil slice.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// GetPost returns one post. An upstream 404 is a "Resource Not Found"
	// domain error; an empty upstream body yields a zero Post.
	GetPost(ctx context.Context, id string) (domain.Post, error)

	// GetCommentsByPostID returns comments using the /comments?postId= filter.
	GetCommentsByPostID(ctx context.Context, postID string) ([]domain.Comment, error)

	// GetCommentsForPost returns comments using the /posts/{postId}/comments route.
	GetCommentsForPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

// PostService is the application use-case surface consumed by HTTP handlers.
type PostService interface {
	// ListPosts returns posts, keeping only those owned by userID when it is non-nil.
	ListPosts(ctx context.Context, userID *int) ([]domain.Post, error)

	// GetPost returns one post; blank ids fail with 400 before any upstream call.
	GetPost(ctx context.Context, id string) (domain.Post, error)

	// GetComments returns the comments of one post; blank ids fail with 400.
	GetComments(ctx context.Context, postID string) ([]domain.Comment, error)

	// GetPostDetails returns a post together with its comments.
	GetPostDetails(ctx context.Context, id string) (domain.PostDetails, error)
}
