package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Project struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	TechStack   string    `gorm:"type:text" json:"-"` // JSON-encoded []string
	GithubLink  string    `json:"github_link"`
	LiveLink    string    `json:"live_link"`
	VideoURL    string    `json:"video_url"`
	VideoKey    string    `json:"-"`
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// SetTechStack stores the stack list as JSON.
func (p *Project) SetTechStack(stack []string) {
	b, err := json.Marshal(stack)
	if err != nil {
		p.TechStack = "[]"
		return
	}
	p.TechStack = string(b)
}

// TechStackList decodes the stored stack. Falls back to comma splitting
// for rows written before the JSON encoding.
func (p *Project) TechStackList() []string {
	var stack []string
	if err := json.Unmarshal([]byte(p.TechStack), &stack); err == nil {
		return stack
	}
	var result []string
	for _, s := range strings.Split(p.TechStack, ",") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// MarshalJSON exposes tech_stack as an array.
func (p Project) MarshalJSON() ([]byte, error) {
	type alias Project
	return json.Marshal(struct {
		alias
		TechStack []string `json:"tech_stack"`
	}{
		alias:     alias(p),
		TechStack: p.TechStackList(),
	})
}
