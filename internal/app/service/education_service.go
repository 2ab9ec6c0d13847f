package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
)

type EducationInput struct {
	Institution       string
	Degree            string
	FieldOfStudy      string
	StartDate         time.Time
	EndDate           *time.Time
	CurrentlyStudying bool
	Grade             string
	Description       []string
	Location          string
}

type EducationService interface {
	List() ([]model.Education, error)
	Create(input EducationInput) (*model.Education, error)
	Update(id uint, input EducationInput) (*model.Education, error)
	Delete(id uint) error
}

type educationService struct {
	repo repository.EducationRepository
}

func NewEducationService(repo repository.EducationRepository) EducationService {
	return &educationService{repo: repo}
}

func (s *educationService) List() ([]model.Education, error) {
	return s.repo.FindAll()
}

func (s *educationService) Create(input EducationInput) (*model.Education, error) {
	education := &model.Education{
		Institution:       input.Institution,
		Degree:            input.Degree,
		FieldOfStudy:      input.FieldOfStudy,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		CurrentlyStudying: input.CurrentlyStudying,
		Grade:             input.Grade,
		Location:          input.Location,
	}
	education.SetDescription(input.Description)
	if education.CurrentlyStudying {
		education.EndDate = nil
	}

	if err := s.repo.Create(education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) Update(id uint, input EducationInput) (*model.Education, error) {
	education, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	education.Institution = input.Institution
	education.Degree = input.Degree
	education.FieldOfStudy = input.FieldOfStudy
	education.StartDate = input.StartDate
	education.EndDate = input.EndDate
	education.CurrentlyStudying = input.CurrentlyStudying
	education.Grade = input.Grade
	education.Location = input.Location
	education.SetDescription(input.Description)
	if education.CurrentlyStudying {
		education.EndDate = nil
	}

	if err := s.repo.Update(education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
