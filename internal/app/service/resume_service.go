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

var ErrNoActiveResume = errors.New("no active resume")

// ResumeService stores uploaded resume files. Uploading a new file
// makes it the single active resume; older rows stay listed until
// deleted.
type ResumeService interface {
	List() ([]model.Resume, error)
	Active() (*model.Resume, error)
	Upload(ctx context.Context, file *FileUpload) (*model.Resume, error)
	Delete(ctx context.Context, id uint) error
}

type resumeService struct {
	repo    repository.ResumeRepository
	objects storage.ObjectStorage
}

func NewResumeService(repo repository.ResumeRepository, objects storage.ObjectStorage) ResumeService {
	return &resumeService{repo: repo, objects: objects}
}

func (s *resumeService) List() ([]model.Resume, error) {
	return s.repo.FindAll()
}

func (s *resumeService) Active() (*model.Resume, error) {
	resume, err := s.repo.FindActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveResume
		}
		return nil, err
	}
	return resume, nil
}

func (s *resumeService) Upload(ctx context.Context, file *FileUpload) (*model.Resume, error) {
	uploaded, err := s.objects.Upload(ctx, file.Data, "resumes", file.Filename, file.ContentType)
	if err != nil {
		logger.Error("Failed to upload resume file", err)
		return nil, err
	}

	if err := s.repo.DeactivateAll(); err != nil {
		if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
			logger.Error("Failed to clean up orphaned resume file", delErr, map[string]interface{}{
				"key": uploaded.Key,
			})
		}
		return nil, err
	}

	resume := &model.Resume{
		FileURL:    uploaded.URL,
		FileKey:    uploaded.Key,
		FileName:   file.Filename,
		UploadedAt: time.Now(),
		IsActive:   true,
	}
	if err := s.repo.Create(resume); err != nil {
		if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
			logger.Error("Failed to clean up orphaned resume file", delErr, map[string]interface{}{
				"key": uploaded.Key,
			})
		}
		return nil, err
	}

	logger.Info("Resume uploaded", map[string]interface{}{
		"resume_id": resume.ID,
		"file_name": resume.FileName,
	})
	return resume, nil
}

func (s *resumeService) Delete(ctx context.Context, id uint) error {
	resume, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if resume.FileKey != "" {
		if delErr := s.objects.Delete(ctx, resume.FileKey); delErr != nil {
			logger.Warn("Failed to delete resume file object", map[string]interface{}{
				"key":   resume.FileKey,
				"error": delErr.Error(),
			})
		}
	}

	return nil
}
