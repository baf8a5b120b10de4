package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"glowbook/models"
)

// ListFeed fetches one page of the social feed. An empty cursor fetches the
// first page.
func (c *Client) ListFeed(ctx context.Context, cursor string) (*models.FeedPage, error) {
	path := "/feed"
	if cursor != "" {
		path += "?cursor=" + url.QueryEscape(cursor)
	}
	var out models.FeedPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return &out, nil
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+pathEscape(postID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch post %s: %w", postID, err)
	}
	return &out, nil
}

// LikePost likes a post. The backend returns no authoritative count for post
// likes; the caller keeps its optimistic value.
func (c *Client) LikePost(ctx context.Context, postID string) error {
	if err := c.do(ctx, http.MethodPost, "/posts/"+pathEscape(postID)+"/like", nil, nil); err != nil {
		return fmt.Errorf("failed to like post %s: %w", postID, err)
	}
	return nil
}

// UnlikePost removes a like from a post.
func (c *Client) UnlikePost(ctx context.Context, postID string) error {
	if err := c.do(ctx, http.MethodDelete, "/posts/"+pathEscape(postID)+"/like", nil, nil); err != nil {
		return fmt.Errorf("failed to unlike post %s: %w", postID, err)
	}
	return nil
}

// ListComments fetches the comments on a post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.do(ctx, http.MethodGet, "/posts/"+pathEscape(postID)+"/comments", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch comments for post %s: %w", postID, err)
	}
	return out, nil
}

// CreateComment posts a comment and returns the created record.
func (c *Client) CreateComment(ctx context.Context, postID, body string) (*models.Comment, error) {
	req := struct {
		Body string `json:"body"`
	}{Body: body}
	var out models.Comment
	if err := c.do(ctx, http.MethodPost, "/posts/"+pathEscape(postID)+"/comments", req, &out); err != nil {
		return nil, fmt.Errorf("failed to create comment on post %s: %w", postID, err)
	}
	return &out, nil
}

// LikeComment likes a comment. Like post likes, no authoritative count comes
// back.
func (c *Client) LikeComment(ctx context.Context, commentID string) error {
	if err := c.do(ctx, http.MethodPost, "/comments/"+pathEscape(commentID)+"/like", nil, nil); err != nil {
		return fmt.Errorf("failed to like comment %s: %w", commentID, err)
	}
	return nil
}

// UnlikeComment removes a like from a comment.
func (c *Client) UnlikeComment(ctx context.Context, commentID string) error {
	if err := c.do(ctx, http.MethodDelete, "/comments/"+pathEscape(commentID)+"/like", nil, nil); err != nil {
		return fmt.Errorf("failed to unlike comment %s: %w", commentID, err)
	}
	return nil
}
