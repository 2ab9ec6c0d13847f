package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
)

type ExperienceInput struct {
	Title            string
	Company          string
	Location         string
	StartDate        time.Time
	EndDate          *time.Time
	CurrentlyWorking bool
	Description      []string
}

type ExperienceService interface {
	List() ([]model.Experience, error)
	Create(input ExperienceInput) (*model.Experience, error)
	Update(id uint, input ExperienceInput) (*model.Experience, error)
	Delete(id uint) error
}

type experienceService struct {
	repo repository.ExperienceRepository
}

func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) List() ([]model.Experience, error) {
	return s.repo.FindAll()
}

func (s *experienceService) Create(input ExperienceInput) (*model.Experience, error) {
	experience := &model.Experience{
		Title:            input.Title,
		Company:          input.Company,
		Location:         input.Location,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		CurrentlyWorking: input.CurrentlyWorking,
	}
	experience.SetDescription(input.Description)
	if experience.CurrentlyWorking {
		experience.EndDate = nil
	}

	if err := s.repo.Create(experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) Update(id uint, input ExperienceInput) (*model.Experience, error) {
	experience, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	experience.Title = input.Title
	experience.Company = input.Company
	experience.Location = input.Location
	experience.StartDate = input.StartDate
	experience.EndDate = input.EndDate
	experience.CurrentlyWorking = input.CurrentlyWorking
	experience.SetDescription(input.Description)
	if experience.CurrentlyWorking {
		experience.EndDate = nil
	}

	if err := s.repo.Update(experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *experienceService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
