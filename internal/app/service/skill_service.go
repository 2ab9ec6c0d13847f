package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
)

var ErrInvalidSkillLevel = errors.New("level must be Beginner, Intermediate or Expert")

type SkillInput struct {
	Name     string
	Level    string
	Category string
}

type SkillService interface {
	List() ([]model.Skill, error)
	Create(input SkillInput) (*model.Skill, error)
	Update(id uint, input SkillInput) (*model.Skill, error)
	Delete(id uint) error
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List() ([]model.Skill, error) {
	return s.repo.FindAll()
}

func (s *skillService) Create(input SkillInput) (*model.Skill, error) {
	level := input.Level
	if level == "" {
		level = string(model.SkillIntermediate)
	}
	if !model.ValidSkillLevel(level) {
		return nil, ErrInvalidSkillLevel
	}

	skill := &model.Skill{
		Name:     input.Name,
		Level:    model.SkillLevel(level),
		Category: input.Category,
	}
	if err := s.repo.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) Update(id uint, input SkillInput) (*model.Skill, error) {
	skill, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Level != "" && !model.ValidSkillLevel(input.Level) {
		return nil, ErrInvalidSkillLevel
	}

	skill.Name = input.Name
	if input.Level != "" {
		skill.Level = model.SkillLevel(input.Level)
	}
	skill.Category = input.Category

	if err := s.repo.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
