package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(skill *model.Skill) error
	FindAll() ([]model.Skill, error)
	FindByID(id uint) (*model.Skill, error)
	Update(skill *model.Skill) error
	Delete(id uint) error
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *model.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		logger.Error("Failed to create skill in database", err, map[string]interface{}{
			"name": skill.Name,
		})
		return err
	}
	return nil
}

func (r *skillRepository) FindAll() ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.Order("created_at DESC").Find(&skills).Error; err != nil {
		logger.Error("Failed to list skills from database", err)
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Update(skill *model.Skill) error {
	if err := r.db.Save(skill).Error; err != nil {
		logger.Error("Failed to update skill in database", err, map[string]interface{}{
			"skill_id": skill.ID,
		})
		return err
	}
	return nil
}

func (r *skillRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Skill{}, id).Error; err != nil {
		logger.Error("Failed to delete skill from database", err, map[string]interface{}{
			"skill_id": id,
		})
		return err
	}
	return nil
}
