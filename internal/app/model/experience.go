package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Experience struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Company          string     `gorm:"not null" json:"company"`
	Location         string     `json:"location"` // city, remote, hybrid
	StartDate        time.Time  `gorm:"not null" json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking bool       `gorm:"default:false" json:"currently_working"`
	Description      string     `gorm:"type:text" json:"-"` // JSON-encoded []string bullet points
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Experience) TableName() string {
	return "experiences"
}

func (e *Experience) SetDescription(lines []string) {
	e.Description = encodeLines(lines)
}

func (e *Experience) DescriptionList() []string {
	return decodeLines(e.Description)
}

func (e Experience) MarshalJSON() ([]byte, error) {
	type alias Experience
	return json.Marshal(struct {
		alias
		Description []string `json:"description"`
	}{
		alias:       alias(e),
		Description: e.DescriptionList(),
	})
}

// encodeLines and decodeLines back the []string columns stored as text.

func encodeLines(lines []string) string {
	b, err := json.Marshal(lines)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeLines(raw string) []string {
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err == nil {
		return lines
	}
	var result []string
	for _, s := range strings.Split(raw, "\n") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}
