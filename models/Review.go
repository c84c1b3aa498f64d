package models

import "time"

type Review struct {
	ReviewID     int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	Title        string    `gorm:"not null" json:"title"`
	ReviewBody   string    `gorm:"not null" json:"review_body"`
	Designer     string    `json:"designer"`
	ReviewImgURL string    `gorm:"column:review_img_url" json:"review_img_url"`
	Votes        int       `gorm:"not null" json:"votes"`
	Category     string    `gorm:"not null;index" json:"category"`
	Owner        string    `gorm:"not null" json:"owner"`
	CreatedAt    time.Time `json:"created_at"`

	CategoryRef *Category `gorm:"foreignKey:Category;references:Slug" json:"-"`
	OwnerRef    *User     `gorm:"foreignKey:Owner;references:Username" json:"-"`
	Comments    []Comment `gorm:"foreignKey:ReviewID;references:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReviewWithCount is a review row joined with the number of its comments.
type ReviewWithCount struct {
	Review
	CommentCount int64 `gorm:"column:comment_count" json:"comment_count"`
}
