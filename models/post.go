package models

import "time"

// Post is a social feed entry published by a user or provider.
type Post struct {
	ID                 string    `json:"id"`
	AuthorID           string    `json:"authorId"`
	AuthorName         string    `json:"authorName"`
	AuthorAvatarURL    string    `json:"authorAvatarUrl,omitempty"`
	Caption            string    `json:"caption,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	LikeCount          int       `json:"likeCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	CommentCount       int       `json:"commentCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID                 string    `json:"id"`
	PostID             string    `json:"postId"`
	AuthorID           string    `json:"authorId"`
	AuthorName         string    `json:"authorName"`
	Body               string    `json:"body"`
	LikeCount          int       `json:"likeCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FeedPage is one page of the social feed.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	NextCursor string `json:"nextCursor,omitempty"`
}
