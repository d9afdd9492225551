package domain

import "strings"

// Post is a post republished from the upstream API.
// This is a domain entity - it has no knowledge of wire formats.
type Post struct {
	UserID int
	ID     int
	Title  string
	Body   string
}

// IsZero reports whether every field holds its zero value.
// The upstream adapter returns a zero Post for an empty success body.
func (p Post) IsZero() bool {
	return p == Post{}
}

// Comment is a comment attached to a post.
type Comment struct {
	ID     int
	PostID int
	Name   string
	Email  string
	Body   string
}

// PostDetails bundles a post with its comments.
type PostDetails struct {
	Post     Post
	Comments []Comment
}

// FilterPostsByUser returns the posts written by userID, preserving order.
func FilterPostsByUser(posts []Post, userID int) []Post {
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.UserID == userID {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
