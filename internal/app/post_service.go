// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/posts-gateway/internal/domain"
	"github.com/jsamuelsen/posts-gateway/internal/ports"
)

const (
	msgBlankPostID  = "Post ID cannot be null or empty"
	msgPostNotFound = "Post not found"
)

// CommentsRoute selects which upstream route serves comments.
type CommentsRoute string

const (
	// CommentsRouteQuery uses /comments?postId={id}.
	CommentsRouteQuery CommentsRoute = "query"

	// CommentsRouteNested uses /posts/{id}/comments.
	CommentsRouteNested CommentsRoute = "nested"
)

// PostService orchestrates post and comment use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type PostService struct {
	postClient    ports.PostClient
	commentsRoute CommentsRoute
	logger        *slog.Logger
}

// PostServiceConfig contains configuration for the post service.
type PostServiceConfig struct {
	PostClient ports.PostClient
	Logger     *slog.Logger

	// CommentsRoute defaults to CommentsRouteQuery.
	CommentsRoute CommentsRoute
}

// NewPostService creates a new post service with the provided dependencies.
// Panics if PostClient is nil. Defaults logger to slog.Default() if nil.
func NewPostService(cfg PostServiceConfig) *PostService {
	if cfg.PostClient == nil {
		panic("PostService: PostClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	route := cfg.CommentsRoute
	if route == "" {
		route = CommentsRouteQuery
	}

	return &PostService{
		postClient:    cfg.PostClient,
		commentsRoute: route,
		logger:        logger,
	}
}

// ListPosts returns every post, or only those of userID when it is non-nil.
func (s *PostService) ListPosts(ctx context.Context, userID *int) ([]domain.Post, error) {
	posts, err := s.postClient.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	if userID == nil {
		return posts, nil
	}

	filtered := domain.FilterPostsByUser(posts, *userID)

	s.logger.DebugContext(ctx, "filtered posts by user",
		slog.Int("user_id", *userID),
		slog.Int("total", len(posts)),
		slog.Int("matched", len(filtered)),
	)

	return filtered, nil
}

// GetPost returns one post.
// Blank ids fail with 400 before the upstream is called, and an empty
// upstream answer is reported as 404.
func (s *PostService) GetPost(ctx context.Context, id string) (domain.Post, error) {
	if domain.IsBlank(id) {
		return domain.Post{}, domain.NewBadRequestError(msgBlankPostID)
	}

	post, err := s.postClient.GetPost(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	if post.IsZero() {
		s.logger.InfoContext(ctx, "upstream returned no post", slog.String("post_id", id))
		return domain.Post{}, domain.NewNotFoundError(msgPostNotFound)
	}

	return post, nil
}

// GetComments returns the comments of one post using the configured route.
func (s *PostService) GetComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if domain.IsBlank(postID) {
		return nil, domain.NewBadRequestError(msgBlankPostID)
	}

	if s.commentsRoute == CommentsRouteNested {
		return s.postClient.GetCommentsForPost(ctx, postID)
	}

	return s.postClient.GetCommentsByPostID(ctx, postID)
}

// GetPostDetails fetches a post and its comments concurrently.
// The first failure wins; the other call is canceled.
func (s *PostService) GetPostDetails(ctx context.Context, id string) (domain.PostDetails, error) {
	if domain.IsBlank(id) {
		return domain.PostDetails{}, domain.NewBadRequestError(msgBlankPostID)
	}

	post, comments, err := Parallel2(ctx,
		func(ctx context.Context) (domain.Post, error) {
			return s.postClient.GetPost(ctx, id)
		},
		func(ctx context.Context) ([]domain.Comment, error) {
			return s.postClient.GetCommentsForPost(ctx, id)
		},
	)
	if err != nil {
		return domain.PostDetails{}, err
	}

	if post.IsZero() {
		return domain.PostDetails{}, domain.NewNotFoundError(msgPostNotFound)
	}

	return domain.PostDetails{Post: post, Comments: comments}, nil
}
