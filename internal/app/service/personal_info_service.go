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

// PersonalInfoInput carries the profile fields of a create or update.
type PersonalInfoInput struct {
	FullName string
	Title    string
	Bio      string
	Location string
	Email    string
	Phone    string
}

// PersonalInfoService manages the singleton profile row and its
// profile image object.
type PersonalInfoService interface {
	Get() (*model.PersonalInfo, error)
	Upsert(ctx context.Context, input PersonalInfoInput, image *FileUpload) (*model.PersonalInfo, error)
}

type personalInfoService struct {
	repo    repository.PersonalInfoRepository
	objects storage.ObjectStorage
}

func NewPersonalInfoService(repo repository.PersonalInfoRepository, objects storage.ObjectStorage) PersonalInfoService {
	return &personalInfoService{repo: repo, objects: objects}
}

func (s *personalInfoService) Get() (*model.PersonalInfo, error) {
	info, err := s.repo.Find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

// Upsert creates the profile row on first call and updates it after.
// A new image is uploaded before the row is touched; if persisting
// fails the fresh object is deleted, and on success the replaced
// object is removed.
func (s *personalInfoService) Upsert(ctx context.Context, input PersonalInfoInput, image *FileUpload) (*model.PersonalInfo, error) {
	info, err := s.repo.Find()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var uploaded *storage.UploadResult
	if image != nil {
		uploaded, err = s.objects.Upload(ctx, image.Data, "profile", image.Filename, image.ContentType)
		if err != nil {
			logger.Error("Failed to upload profile image", err)
			return nil, err
		}
	}

	if info == nil {
		info = &model.PersonalInfo{}
	}
	oldKey := info.ProfileImageKey

	info.FullName = input.FullName
	info.Title = input.Title
	info.Bio = input.Bio
	info.Location = input.Location
	info.Email = input.Email
	info.Phone = input.Phone
	if uploaded != nil {
		info.ProfileImage = uploaded.URL
		info.ProfileImageKey = uploaded.Key
	}

	if info.ID == 0 {
		err = s.repo.Create(info)
	} else {
		err = s.repo.Update(info)
	}
	if err != nil {
		if uploaded != nil {
			if delErr := s.objects.Delete(ctx, uploaded.Key); delErr != nil {
				logger.Error("Failed to clean up orphaned profile image", delErr, map[string]interface{}{
					"key": uploaded.Key,
				})
			}
		}
		return nil, err
	}

	if uploaded != nil && oldKey != "" && oldKey != uploaded.Key {
		if delErr := s.objects.Delete(ctx, oldKey); delErr != nil {
			logger.Warn("Failed to delete replaced profile image", map[string]interface{}{
				"key":   oldKey,
				"error": delErr.Error(),
			})
		}
	}

	return info, nil
}
