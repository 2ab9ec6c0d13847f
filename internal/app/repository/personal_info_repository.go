package repository

import (
	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type PersonalInfoRepository interface {
	// Find returns the profile row. There is at most one.
	Find() (*model.PersonalInfo, error)
	Create(info *model.PersonalInfo) error
	Update(info *model.PersonalInfo) error
}

type personalInfoRepository struct {
	db *gorm.DB
}

func NewPersonalInfoRepository(db *gorm.DB) PersonalInfoRepository {
	return &personalInfoRepository{db: db}
}

func (r *personalInfoRepository) Find() (*model.PersonalInfo, error) {
	var info model.PersonalInfo
	if err := r.db.Order("id ASC").First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *personalInfoRepository) Create(info *model.PersonalInfo) error {
	if err := r.db.Create(info).Error; err != nil {
		logger.Error("Failed to create personal info in database", err)
		return err
	}
	return nil
}

func (r *personalInfoRepository) Update(info *model.PersonalInfo) error {
	if err := r.db.Save(info).Error; err != nil {
		logger.Error("Failed to update personal info in database", err, map[string]interface{}{
			"id": info.ID,
		})
		return err
	}
	return nil
}
