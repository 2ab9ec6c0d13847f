package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type SocialLinkRepository interface {
	Create(link *model.SocialLink) error
	FindAll() ([]model.SocialLink, error)
	FindActive() ([]model.SocialLink, error)
	FindByID(id uint) (*model.SocialLink, error)
	Update(link *model.SocialLink) error
	Delete(id uint) error
}

type socialLinkRepository struct {
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Create(link *model.SocialLink) error {
	if err := r.db.Create(link).Error; err != nil {
		logger.Error("Failed to create social link in database", err, map[string]interface{}{
			"platform": link.Platform,
		})
		return err
	}
	return nil
}

func (r *socialLinkRepository) FindAll() ([]model.SocialLink, error) {
	var links []model.SocialLink
	if err := r.db.Order("id ASC").Find(&links).Error; err != nil {
		logger.Error("Failed to list social links from database", err)
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepository) FindActive() ([]model.SocialLink, error) {
	var links []model.SocialLink
	if err := r.db.Where("is_active = ?", true).Order("id ASC").Find(&links).Error; err != nil {
		logger.Error("Failed to list active social links from database", err)
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepository) FindByID(id uint) (*model.SocialLink, error) {
	var link model.SocialLink
	if err := r.db.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialLinkRepository) Update(link *model.SocialLink) error {
	if err := r.db.Save(link).Error; err != nil {
		logger.Error("Failed to update social link in database", err, map[string]interface{}{
			"social_link_id": link.ID,
		})
		return err
	}
	return nil
}

func (r *socialLinkRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.SocialLink{}, id).Error; err != nil {
		logger.Error("Failed to delete social link from database", err, map[string]interface{}{
			"social_link_id": id,
		})
		return err
	}
	return nil
}
