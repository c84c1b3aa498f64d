package models

type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}
