package models

type Category struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}
