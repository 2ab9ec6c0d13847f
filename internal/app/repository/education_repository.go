package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type EducationRepository interface {
	Create(education *model.Education) error
	FindAll() ([]model.Education, error)
	FindByID(id uint) (*model.Education, error)
	Update(education *model.Education) error
	Delete(id uint) error
}

type educationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(education *model.Education) error {
	if err := r.db.Create(education).Error; err != nil {
		logger.Error("Failed to create education in database", err, map[string]interface{}{
			"institution": education.Institution,
		})
		return err
	}
	return nil
}

func (r *educationRepository) FindAll() ([]model.Education, error) {
	var educations []model.Education
	if err := r.db.Order("start_date DESC").Find(&educations).Error; err != nil {
		logger.Error("Failed to list educations from database", err)
		return nil, err
	}
	return educations, nil
}

func (r *educationRepository) FindByID(id uint) (*model.Education, error) {
	var education model.Education
	if err := r.db.First(&education, id).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *educationRepository) Update(education *model.Education) error {
	if err := r.db.Save(education).Error; err != nil {
		logger.Error("Failed to update education in database", err, map[string]interface{}{
			"education_id": education.ID,
		})
		return err
	}
	return nil
}

func (r *educationRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Education{}, id).Error; err != nil {
		logger.Error("Failed to delete education from database", err, map[string]interface{}{
			"education_id": id,
		})
		return err
	}
	return nil
}
