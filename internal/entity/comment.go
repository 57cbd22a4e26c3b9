package entity

import "time"

type Comment struct {
	ID              string    `json:"id"`
	ContentID       string    `json:"content_id"`
	AuthorUserID    string    `json:"author_user_id"`
	Body            string    `json:"body"`
	ParentCommentID string    `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
