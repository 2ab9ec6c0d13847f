package model

import (
	"time"
)

// PersonalInfo is the owner's profile. Singleton content row.
type PersonalInfo struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	FullName        string    `gorm:"not null" json:"full_name"`
	Title           string    `gorm:"not null" json:"title"`
	Bio             string    `json:"bio"`
	ProfileImage    string    `json:"profile_image"`
	ProfileImageKey string    `json:"-"` // storage key, needed to delete the object later
	Location        string    `json:"location"`
	Email           string    `gorm:"not null" json:"email"`
	Phone           string    `json:"phone"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PersonalInfo) TableName() string {
	return "personal_infos"
}
