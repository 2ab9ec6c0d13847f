package model

import (
	"time"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillExpert       SkillLevel = "Expert"
)

// ValidSkillLevel reports whether level is one of the known values.
func ValidSkillLevel(level string) bool {
	switch SkillLevel(level) {
	case SkillBeginner, SkillIntermediate, SkillExpert:
		return true
	}
	return false
}

type Skill struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Level     SkillLevel `gorm:"type:varchar(20);default:'Intermediate'" json:"level"`
	Category  string     `json:"category"` // e.g. "Frontend", "Backend", "DevOps"
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}
