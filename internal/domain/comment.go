package domain

import "time"

// CommentStatus represents the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusSpam     CommentStatus = "spam"
)

// Comment represents a reader comment on a blog post awaiting moderation.
type Comment struct {
	ID            int64         `json:"id"`
	Author        string        `json:"author"`
	Email         string        `json:"email"`
	Content       string        `json:"content"`
	BlogPostID    int64         `json:"blogPostId"`
	BlogPostTitle string        `json:"blogPostTitle"`
	Status        CommentStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}
