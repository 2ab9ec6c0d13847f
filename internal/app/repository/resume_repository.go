package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Create(resume *model.Resume) error
	FindAll() ([]model.Resume, error)
	FindActive() (*model.Resume, error)
	FindByID(id uint) (*model.Resume, error)
	Update(resume *model.Resume) error
	DeactivateAll() error
	Delete(id uint) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(resume *model.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		logger.Error("Failed to create resume in database", err, map[string]interface{}{
			"file_name": resume.FileName,
		})
		return err
	}
	return nil
}

func (r *resumeRepository) FindAll() ([]model.Resume, error) {
	var resumes []model.Resume
	if err := r.db.Order("uploaded_at DESC").Find(&resumes).Error; err != nil {
		logger.Error("Failed to list resumes from database", err)
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) FindActive() (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.Where("is_active = ?", true).Order("uploaded_at DESC").First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) FindByID(id uint) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.First(&resume, id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) Update(resume *model.Resume) error {
	if err := r.db.Save(resume).Error; err != nil {
		logger.Error("Failed to update resume in database", err, map[string]interface{}{
			"resume_id": resume.ID,
		})
		return err
	}
	return nil
}

// DeactivateAll clears the active flag on every stored resume so a
// newly uploaded one can become the single active document.
func (r *resumeRepository) DeactivateAll() error {
	if err := r.db.Model(&model.Resume{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
		logger.Error("Failed to deactivate resumes in database", err)
		return err
	}
	return nil
}

func (r *resumeRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Resume{}, id).Error; err != nil {
		logger.Error("Failed to delete resume from database", err, map[string]interface{}{
			"resume_id": id,
		})
		return err
	}
	return nil
}
