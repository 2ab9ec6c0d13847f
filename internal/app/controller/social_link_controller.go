package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
)

type SocialLinkController struct {
	service service.SocialLinkService
}

func NewSocialLinkController(svc service.SocialLinkService) *SocialLinkController {
	return &SocialLinkController{service: svc}
}

func socialLinkInputFromForm(f *form.Form) service.SocialLinkInput {
	active := true
	if f.Has("is_active") {
		active = parseBoolField(f.Value("is_active"))
	}
	return service.SocialLinkInput{
		Platform: f.Value("platform"),
		URL:      f.Value("url"),
		Icon:     f.Value("icon"),
		IsActive: active,
	}
}

// List returns the active social links
// GET /api/v1/social-links
func (ctrl *SocialLinkController) List(c *gin.Context) {
	links, err := ctrl.service.ListActive()
	if err != nil {
		apperrors.InternalError(c, "Failed to load social links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListAll returns every link, including inactive ones
// GET /api/v1/social-links/all
func (ctrl *SocialLinkController) ListAll(c *gin.Context) {
	links, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load social links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// Create adds a social link
// POST /api/v1/social-links
func (ctrl *SocialLinkController) Create(c *gin.Context) {
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "platform", "url") {
		return
	}

	link, err := ctrl.service.Create(socialLinkInputFromForm(f))
	if err != nil {
		apperrors.InternalError(c, "Failed to create social link")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Update replaces a social link
// PUT /api/v1/social-links/:id
func (ctrl *SocialLinkController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "platform", "url") {
		return
	}

	link, err := ctrl.service.Update(id, socialLinkInputFromForm(f))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Social link not found")
			return
		}
		apperrors.InternalError(c, "Failed to update social link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// Delete removes a social link
// DELETE /api/v1/social-links/:id
func (ctrl *SocialLinkController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Social link not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete social link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Social link deleted successfully"})
}
