package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
)

type ExperienceController struct {
	service service.ExperienceService
}

func NewExperienceController(svc service.ExperienceService) *ExperienceController {
	return &ExperienceController{service: svc}
}

func experienceInputFromForm(c *gin.Context, f *form.Form) (service.ExperienceInput, bool) {
	startDate, err := parseDate(f.Value("start_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "start_date must be yyyy-mm-dd")
		return service.ExperienceInput{}, false
	}
	endDate, err := parseOptionalDate(f.Value("end_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "end_date must be yyyy-mm-dd")
		return service.ExperienceInput{}, false
	}

	return service.ExperienceInput{
		Title:            f.Value("title"),
		Company:          f.Value("company"),
		Location:         f.Value("location"),
		StartDate:        startDate,
		EndDate:          endDate,
		CurrentlyWorking: parseBoolField(f.Value("currently_working")),
		Description:      parseList(f.Value("description")),
	}, true
}

// List returns all experience entries
// GET /api/v1/experience
func (ctrl *ExperienceController) List(c *gin.Context) {
	experiences, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load experience entries")
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// Create adds an experience entry
// POST /api/v1/experience
func (ctrl *ExperienceController) Create(c *gin.Context) {
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "title", "company", "start_date") {
		return
	}
	input, ok := experienceInputFromForm(c, f)
	if !ok {
		return
	}

	experience, err := ctrl.service.Create(input)
	if err != nil {
		apperrors.InternalError(c, "Failed to create experience entry")
		return
	}
	c.JSON(http.StatusCreated, experience)
}

// Update replaces an experience entry
// PUT /api/v1/experience/:id
func (ctrl *ExperienceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "title", "company", "start_date") {
		return
	}
	input, ok := experienceInputFromForm(c, f)
	if !ok {
		return
	}

	experience, err := ctrl.service.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Experience entry not found")
			return
		}
		apperrors.InternalError(c, "Failed to update experience entry")
		return
	}
	c.JSON(http.StatusOK, experience)
}

// Delete removes an experience entry
// DELETE /api/v1/experience/:id
func (ctrl *ExperienceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Experience entry not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete experience entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience entry deleted successfully"})
}
