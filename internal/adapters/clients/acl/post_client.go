package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/domain"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

const (
	msgErrorFetchingPost     = "Error fetching post: "
	msgErrorFetchingComments = "Error fetching comments for post: "
	msgCannotFindPost        = "Cannot find a Post with id "
	msgCannotFindComments    = "Cannot find comments for post with id "

	// healthCheckPath is a cheap upstream resource used for readiness.
	healthCheckPath = "/posts/1"
)

// PostClientConfig contains configuration for the post client.
type PostClientConfig struct {
	// Client is the HTTP client to use for requests.
	// Its BaseURL should point at the upstream posts API.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// PostClient implements ports.PostClient against a JSONPlaceholder-style API.
type PostClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewPostClient creates a new post client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewPostClient(cfg PostClientConfig) *PostClient {
	if cfg.Client == nil {
		panic("PostClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.Name()),
		logger:      logger,
	}
}

// upstreamPost is the external DTO for a post.
type upstreamPost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// upstreamComment is the external DTO for a comment.
type upstreamComment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// ListPosts fetches every post.
// Implements ports.PostClient.
func (c *PostClient) ListPosts(ctx context.Context) ([]domain.Post, error) {
	c.logger.DebugContext(ctx, "fetching posts")

	var external []upstreamPost
	if _, err := c.GetJSON(ctx, "/posts", &external, ErrorMessages{
		Failure: msgErrorFetchingPost,
	}); err != nil {
		return nil, err
	}

	return TranslateSlice(external, translatePost), nil
}

// GetPost fetches one post.
// An empty upstream body yields a zero Post and no error.
// Implements ports.PostClient.
func (c *PostClient) GetPost(ctx context.Context, id string) (domain.Post, error) {
	c.logger.DebugContext(ctx, "fetching post", slog.String("post_id", id))

	var external upstreamPost
	found, err := c.GetJSON(ctx, "/posts/"+url.PathEscape(id), &external, ErrorMessages{
		NotFound: msgCannotFindPost + id,
		Failure:  msgErrorFetchingPost,
	})
	if err != nil {
		return domain.Post{}, err
	}

	if !found {
		c.logger.Log(ctx, logging.LevelTrace, "upstream returned empty post", slog.String("post_id", id))
	}

	return translatePost(external), nil
}

// GetCommentsByPostID fetches comments through the /comments?postId= filter.
// Implements ports.PostClient.
func (c *PostClient) GetCommentsByPostID(ctx context.Context, postID string) ([]domain.Comment, error) {
	c.logger.DebugContext(ctx, "fetching comments by query", slog.String("post_id", postID))

	query := url.Values{"postId": []string{postID}}

	return c.getComments(ctx, "/comments?"+query.Encode(), postID)
}

// GetCommentsForPost fetches comments through the /posts/{postId}/comments route.
// Implements ports.PostClient.
func (c *PostClient) GetCommentsForPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	c.logger.DebugContext(ctx, "fetching comments for post", slog.String("post_id", postID))

	return c.getComments(ctx, "/posts/"+url.PathEscape(postID)+"/comments", postID)
}

func (c *PostClient) getComments(ctx context.Context, path, postID string) ([]domain.Comment, error) {
	var external []upstreamComment
	if _, err := c.GetJSON(ctx, path, &external, ErrorMessages{
		NotFound: msgCannotFindComments + postID,
		Failure:  msgErrorFetchingComments + postID + ": ",
	}); err != nil {
		return nil, err
	}

	return TranslateSlice(external, translateComment), nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *PostClient) Name() string {
	return c.ServiceName()
}

// Check verifies the upstream is reachable.
// Implements ports.HealthChecker.
func (c *PostClient) Check(ctx context.Context) error {
	return c.Client().Check(ctx, healthCheckPath)
}

func translatePost(ext upstreamPost) domain.Post {
	return domain.Post{
		UserID: ext.UserID,
		ID:     ext.ID,
		Title:  ext.Title,
		Body:   ext.Body,
	}
}

func translateComment(ext upstreamComment) domain.Comment {
	return domain.Comment{
		ID:     ext.ID,
		PostID: ext.PostID,
		Name:   ext.Name,
		Email:  ext.Email,
		Body:   ext.Body,
	}
}
