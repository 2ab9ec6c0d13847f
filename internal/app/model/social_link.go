package model

import (
	"time"
)

type SocialLink struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Platform  string    `gorm:"not null" json:"platform"` // e.g. "GitHub", "LinkedIn"
	URL       string    `gorm:"not null" json:"url"`
	Icon      string    `json:"icon"` // icon name for frontend rendering
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SocialLink) TableName() string {
	return "social_links"
}
