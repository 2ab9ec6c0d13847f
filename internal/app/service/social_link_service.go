package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
)

type SocialLinkInput struct {
	Platform string
	URL      string
	Icon     string
	IsActive bool
}

type SocialLinkService interface {
	List() ([]model.SocialLink, error)
	ListActive() ([]model.SocialLink, error)
	Create(input SocialLinkInput) (*model.SocialLink, error)
	Update(id uint, input SocialLinkInput) (*model.SocialLink, error)
	Delete(id uint) error
}

type socialLinkService struct {
	repo repository.SocialLinkRepository
}

func NewSocialLinkService(repo repository.SocialLinkRepository) SocialLinkService {
	return &socialLinkService{repo: repo}
}

func (s *socialLinkService) List() ([]model.SocialLink, error) {
	return s.repo.FindAll()
}

func (s *socialLinkService) ListActive() ([]model.SocialLink, error) {
	return s.repo.FindActive()
}

func (s *socialLinkService) Create(input SocialLinkInput) (*model.SocialLink, error) {
	link := &model.SocialLink{
		Platform: input.Platform,
		URL:      input.URL,
		Icon:     input.Icon,
		IsActive: input.IsActive,
	}
	if err := s.repo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialLinkService) Update(id uint, input SocialLinkInput) (*model.SocialLink, error) {
	link, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	link.Platform = input.Platform
	link.URL = input.URL
	link.Icon = input.Icon
	link.IsActive = input.IsActive

	if err := s.repo.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialLinkService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
