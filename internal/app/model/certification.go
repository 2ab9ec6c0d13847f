package model

import (
	"time"
)

type Certification struct {
	ID                  uint       `gorm:"primarykey" json:"id"`
	Name                string     `gorm:"not null" json:"name"`
	IssuingOrganization string     `gorm:"not null" json:"issuing_organization"`
	IssueDate           time.Time  `gorm:"not null" json:"issue_date"`
	ExpirationDate      *time.Time `json:"expiration_date,omitempty"`
	DoesNotExpire       bool       `gorm:"default:false" json:"does_not_expire"`
	CredentialID        string     `json:"credential_id"`
	CredentialURL       string     `json:"credential_url"`
	CertificateImage    string     `json:"certificate_image"`
	CertificateImageKey string     `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (Certification) TableName() string {
	return "certifications"
}
