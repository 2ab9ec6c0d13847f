package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type CertificationRepository interface {
	Create(certification *model.Certification) error
	FindAll() ([]model.Certification, error)
	FindByID(id uint) (*model.Certification, error)
	Update(certification *model.Certification) error
	Delete(id uint) error
}

type certificationRepository struct {
	db *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) CertificationRepository {
	return &certificationRepository{db: db}
}

func (r *certificationRepository) Create(certification *model.Certification) error {
	if err := r.db.Create(certification).Error; err != nil {
		logger.Error("Failed to create certification in database", err, map[string]interface{}{
			"name": certification.Name,
		})
		return err
	}
	return nil
}

func (r *certificationRepository) FindAll() ([]model.Certification, error) {
	var certifications []model.Certification
	if err := r.db.Order("issue_date DESC").Find(&certifications).Error; err != nil {
		logger.Error("Failed to list certifications from database", err)
		return nil, err
	}
	return certifications, nil
}

func (r *certificationRepository) FindByID(id uint) (*model.Certification, error) {
	var certification model.Certification
	if err := r.db.First(&certification, id).Error; err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *certificationRepository) Update(certification *model.Certification) error {
	if err := r.db.Save(certification).Error; err != nil {
		logger.Error("Failed to update certification in database", err, map[string]interface{}{
			"certification_id": certification.ID,
		})
		return err
	}
	return nil
}

func (r *certificationRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Certification{}, id).Error; err != nil {
		logger.Error("Failed to delete certification from database", err, map[string]interface{}{
			"certification_id": id,
		})
		return err
	}
	return nil
}
