package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/storage"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
)

type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	GithubLink  string
	LiveLink    string
	IsFeatured  bool
}

type ProjectService interface {
	List() ([]model.Project, error)
	Get(id uint) (*model.Project, error)
	Create(ctx context.Context, input ProjectInput, video *FileUpload) (*model.Project, error)
	Update(ctx context.Context, id uint, input ProjectInput, video *FileUpload) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	repo    repository.ProjectRepository
	objects storage.ObjectStorage
}

func NewProjectService(repo repository.ProjectRepository, objects storage.ObjectStorage) ProjectService {
	return &projectService{repo: repo, objects: objects}
}

func (s *projectService) List() ([]model.Project, error) {
	return s.repo.FindAll()
}

func (s *projectService) Get(id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, input ProjectInput, video *FileUpload) (*model.Project, error) {
	project := &model.Project{
		Title:       input.Title,
		Description: input.Description,
		GithubLink:  input.GithubLink,
		LiveLink:    input.LiveLink,
		IsFeatured:  input.IsFeatured,
	}
	project.SetTechStack(input.TechStack)

	var uploaded *storage.UploadResult
	if video != nil {
		var err error
		uploaded, err = s.objects.Upload(ctx, video.Data, "projects", video.Filename, video.ContentType)
		if err != nil {
			logger.Error("Failed to upload project video", err)
			return nil, err
		}
		project.VideoURL = uploaded.URL
		project.VideoKey = uploaded.Key
	}

	if err := s.repo.Create(project); err != nil {
		if uploaded != nil {
			if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
				logger.Error("Failed to clean up orphaned project video", delErr, map[string]interface{}{
					"key": uploaded.Key,
				})
			}
		}
		return nil, err
	}

	logger.Info("Project created", map[string]interface{}{
		"project_id": project.ID,
		"title":      project.Title,
	})
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uint, input ProjectInput, video *FileUpload) (*model.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var uploaded *storage.UploadResult
	if video != nil {
		uploaded, err = s.objects.Upload(ctx, video.Data, "projects", video.Filename, video.ContentType)
		if err != nil {
			logger.Error("Failed to upload project video", err)
			return nil, err
		}
	}

	oldKey := project.VideoKey
	project.Title = input.Title
	project.Description = input.Description
	project.GithubLink = input.GithubLink
	project.LiveLink = input.LiveLink
	project.IsFeatured = input.IsFeatured
	project.SetTechStack(input.TechStack)
	if uploaded != nil {
		project.VideoURL = uploaded.URL
		project.VideoKey = uploaded.Key
	}

	if err := s.repo.Update(project); err != nil {
		if uploaded != nil {
			if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
				logger.Error("Failed to clean up orphaned project video", delErr, map[string]interface{}{
					"key": uploaded.Key,
				})
			}
		}
		return nil, err
	}

	if uploaded != nil && oldKey != "" {
		if delErr := s.objects.Delete(ctx, oldKey); delErr != nil {
			logger.Warn("Failed to delete replaced project video", map[string]interface{}{
				"key":   oldKey,
				"error": delErr.Error(),
			})
		}
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if project.VideoKey != "" {
		if delErr := s.objects.Delete(ctx, project.VideoKey); delErr != nil {
			logger.Warn("Failed to delete project video object", map[string]interface{}{
				"key":   project.VideoKey,
				"error": delErr.Error(),
			})
		}
	}

	logger.Info("Project deleted", map[string]interface{}{
		"project_id": id,
	})
	return nil
}
