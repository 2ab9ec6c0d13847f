package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	Create(experience *model.Experience) error
	FindAll() ([]model.Experience, error)
	FindByID(id uint) (*model.Experience, error)
	Update(experience *model.Experience) error
	Delete(id uint) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(experience *model.Experience) error {
	if err := r.db.Create(experience).Error; err != nil {
		logger.Error("Failed to create experience in database", err, map[string]interface{}{
			"company": experience.Company,
		})
		return err
	}
	return nil
}

func (r *experienceRepository) FindAll() ([]model.Experience, error) {
	var experiences []model.Experience
	if err := r.db.Order("start_date DESC").Find(&experiences).Error; err != nil {
		logger.Error("Failed to list experiences from database", err)
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepository) FindByID(id uint) (*model.Experience, error) {
	var experience model.Experience
	if err := r.db.First(&experience, id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) Update(experience *model.Experience) error {
	if err := r.db.Save(experience).Error; err != nil {
		logger.Error("Failed to update experience in database", err, map[string]interface{}{
			"experience_id": experience.ID,
		})
		return err
	}
	return nil
}

func (r *experienceRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Experience{}, id).Error; err != nil {
		logger.Error("Failed to delete experience from database", err, map[string]interface{}{
			"experience_id": id,
		})
		return err
	}
	return nil
}
