package model

import (
	"time"
)

// Resume is an uploaded resume file. The newest active row is the one
// the public site serves.
type Resume struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FileURL    string    `gorm:"not null" json:"file_url"`
	FileKey    string    `json:"-"`
	FileName   string    `gorm:"not null" json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
