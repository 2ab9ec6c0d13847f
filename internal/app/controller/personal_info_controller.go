package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type PersonalInfoController struct {
	service service.PersonalInfoService
}

func NewPersonalInfoController(svc service.PersonalInfoService) *PersonalInfoController {
	return &PersonalInfoController{service: svc}
}

// Get returns the owner's profile
// GET /api/v1/personal-info
func (ctrl *PersonalInfoController) Get(c *gin.Context) {
	info, err := ctrl.service.Get()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Personal info not found")
			return
		}
		apperrors.InternalError(c, "Failed to load personal info")
		return
	}
	c.JSON(http.StatusOK, info)
}

// Upsert creates or replaces the profile, optionally with a new
// profile image
// PUT /api/v1/personal-info
func (ctrl *PersonalInfoController) Upsert(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "full_name", "title", "email") {
		return
	}

	input := service.PersonalInfoInput{
		FullName: f.Value("full_name"),
		Title:    f.Value("title"),
		Bio:      f.Value("bio"),
		Location: f.Value("location"),
		Email:    f.Value("email"),
		Phone:    f.Value("phone"),
	}

	info, err := ctrl.service.Upsert(c.Request.Context(), input, fileUpload(f))
	if err != nil {
		log.Error("Failed to save personal info", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to save personal info")
		return
	}

	c.JSON(http.StatusOK, info)
}
