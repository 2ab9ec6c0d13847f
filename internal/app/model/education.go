package model

import (
	"encoding/json"
	"time"
)

type Education struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	Institution       string     `gorm:"not null" json:"institution"`
	Degree            string     `gorm:"not null" json:"degree"`
	FieldOfStudy      string     `json:"field_of_study"`
	StartDate         time.Time  `gorm:"not null" json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CurrentlyStudying bool       `gorm:"default:false" json:"currently_studying"`
	Grade             string     `json:"grade"`
	Description       string     `gorm:"type:text" json:"-"` // JSON-encoded []string bullet points
	Location          string     `json:"location"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Education) TableName() string {
	return "educations"
}

func (e *Education) SetDescription(lines []string) {
	e.Description = encodeLines(lines)
}

func (e *Education) DescriptionList() []string {
	return decodeLines(e.Description)
}

func (e Education) MarshalJSON() ([]byte, error) {
	type alias Education
	return json.Marshal(struct {
		alias
		Description []string `json:"description"`
	}{
		alias:       alias(e),
		Description: e.DescriptionList(),
	})
}
