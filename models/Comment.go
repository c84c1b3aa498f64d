package models

import "time"

type Comment struct {
	CommentID int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	Body      string    `gorm:"not null" json:"body"`
	ReviewID  int       `gorm:"not null;index;column:review_id" json:"review_id"`
	Author    string    `gorm:"not null" json:"author"`
	Votes     int       `gorm:"not null" json:"votes"`
	CreatedAt time.Time `json:"created_at"`

	AuthorRef *User `gorm:"foreignKey:Author;references:Username" json:"-"`
}

// NewCommentInput is the payload accepted when posting a comment.
type NewCommentInput struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}
