package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/storage"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
)

type CertificationInput struct {
	Name                string
	IssuingOrganization string
	IssueDate           time.Time
	ExpirationDate      *time.Time
	DoesNotExpire       bool
	CredentialID        string
	CredentialURL       string
}

type CertificationService interface {
	List() ([]model.Certification, error)
	Create(ctx context.Context, input CertificationInput, image *FileUpload) (*model.Certification, error)
	Update(ctx context.Context, id uint, input CertificationInput, image *FileUpload) (*model.Certification, error)
	Delete(ctx context.Context, id uint) error
}

type certificationService struct {
	repo    repository.CertificationRepository
	objects storage.ObjectStorage
}

func NewCertificationService(repo repository.CertificationRepository, objects storage.ObjectStorage) CertificationService {
	return &certificationService{repo: repo, objects: objects}
}

func (s *certificationService) List() ([]model.Certification, error) {
	return s.repo.FindAll()
}

func (s *certificationService) Create(ctx context.Context, input CertificationInput, image *FileUpload) (*model.Certification, error) {
	certification := &model.Certification{
		Name:                input.Name,
		IssuingOrganization: input.IssuingOrganization,
		IssueDate:           input.IssueDate,
		ExpirationDate:      input.ExpirationDate,
		DoesNotExpire:       input.DoesNotExpire,
		CredentialID:        input.CredentialID,
		CredentialURL:       input.CredentialURL,
	}
	if certification.DoesNotExpire {
		certification.ExpirationDate = nil
	}

	var uploaded *storage.UploadResult
	if image != nil {
		var err error
		uploaded, err = s.objects.Upload(ctx, image.Data, "certifications", image.Filename, image.ContentType)
		if err != nil {
			logger.Error("Failed to upload certificate image", err)
			return nil, err
		}
		certification.CertificateImage = uploaded.URL
		certification.CertificateImageKey = uploaded.Key
	}

	if err := s.repo.Create(certification); err != nil {
		if uploaded != nil {
			if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
				logger.Error("Failed to clean up orphaned certificate image", delErr, map[string]interface{}{
					"key": uploaded.Key,
				})
			}
		}
		return nil, err
	}

	return certification, nil
}

func (s *certificationService) Update(ctx context.Context, id uint, input CertificationInput, image *FileUpload) (*model.Certification, error) {
	certification, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var uploaded *storage.UploadResult
	if image != nil {
		uploaded, err = s.objects.Upload(ctx, image.Data, "certifications", image.Filename, image.ContentType)
		if err != nil {
			logger.Error("Failed to upload certificate image", err)
			return nil, err
		}
	}

	oldKey := certification.CertificateImageKey
	certification.Name = input.Name
	certification.IssuingOrganization = input.IssuingOrganization
	certification.IssueDate = input.IssueDate
	certification.ExpirationDate = input.ExpirationDate
	certification.DoesNotExpire = input.DoesNotExpire
	certification.CredentialID = input.CredentialID
	certification.CredentialURL = input.CredentialURL
	if certification.DoesNotExpire {
		certification.ExpirationDate = nil
	}
	if uploaded != nil {
		certification.CertificateImage = uploaded.URL
		certification.CertificateImageKey = uploaded.Key
	}

	if err := s.repo.Update(certification); err != nil {
		if uploaded != nil {
			if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
				logger.Error("Failed to clean up orphaned certificate image", delErr, map[string]interface{}{
					"key": uploaded.Key,
				})
			}
		}
		return nil, err
	}

	if uploaded != nil && oldKey != "" {
		if delErr := s.objects.Delete(ctx, oldKey); delErr != nil {
			logger.Warn("Failed to delete replaced certificate image", map[string]interface{}{
				"key":   oldKey,
				"error": delErr.Error(),
			})
		}
	}

	return certification, nil
}

func (s *certificationService) Delete(ctx context.Context, id uint) error {
	certification, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if certification.CertificateImageKey != "" {
		if delErr := s.objects.Delete(ctx, certification.CertificateImageKey); delErr != nil {
			logger.Warn("Failed to delete certificate image object", map[string]interface{}{
				"key":   certification.CertificateImageKey,
				"error": delErr.Error(),
			})
		}
	}

	return nil
}
