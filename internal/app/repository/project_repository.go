package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindAll() ([]model.Project, error)
	FindByID(id uint) (*model.Project, error)
	Update(project *model.Project) error
	Delete(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		logger.Error("Failed to create project in database", err, map[string]interface{}{
			"title": project.Title,
		})
		return err
	}
	return nil
}

func (r *projectRepository) FindAll() ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		logger.Error("Failed to list projects from database", err)
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		logger.Error("Failed to update project in database", err, map[string]interface{}{
			"project_id": project.ID,
		})
		return err
	}
	return nil
}

func (r *projectRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		logger.Error("Failed to delete project from database", err, map[string]interface{}{
			"project_id": id,
		})
		return err
	}
	return nil
}
