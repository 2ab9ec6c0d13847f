package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
)

type EducationController struct {
	service service.EducationService
}

func NewEducationController(svc service.EducationService) *EducationController {
	return &EducationController{service: svc}
}

func educationInputFromForm(c *gin.Context, f *form.Form) (service.EducationInput, bool) {
	startDate, err := parseDate(f.Value("start_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "start_date must be yyyy-mm-dd")
		return service.EducationInput{}, false
	}
	endDate, err := parseOptionalDate(f.Value("end_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "end_date must be yyyy-mm-dd")
		return service.EducationInput{}, false
	}

	return service.EducationInput{
		Institution:       f.Value("institution"),
		Degree:            f.Value("degree"),
		FieldOfStudy:      f.Value("field_of_study"),
		StartDate:         startDate,
		EndDate:           endDate,
		CurrentlyStudying: parseBoolField(f.Value("currently_studying")),
		Grade:             f.Value("grade"),
		Description:       parseList(f.Value("description")),
		Location:          f.Value("location"),
	}, true
}

// List returns all education entries
// GET /api/v1/education
func (ctrl *EducationController) List(c *gin.Context) {
	educations, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load education entries")
		return
	}
	c.JSON(http.StatusOK, educations)
}

// Create adds an education entry
// POST /api/v1/education
func (ctrl *EducationController) Create(c *gin.Context) {
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "institution", "degree", "start_date") {
		return
	}
	input, ok := educationInputFromForm(c, f)
	if !ok {
		return
	}

	education, err := ctrl.service.Create(input)
	if err != nil {
		apperrors.InternalError(c, "Failed to create education entry")
		return
	}
	c.JSON(http.StatusCreated, education)
}

// Update replaces an education entry
// PUT /api/v1/education/:id
func (ctrl *EducationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "institution", "degree", "start_date") {
		return
	}
	input, ok := educationInputFromForm(c, f)
	if !ok {
		return
	}

	education, err := ctrl.service.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Education entry not found")
			return
		}
		apperrors.InternalError(c, "Failed to update education entry")
		return
	}
	c.JSON(http.StatusOK, education)
}

// Delete removes an education entry
// DELETE /api/v1/education/:id
func (ctrl *EducationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Education entry not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete education entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education entry deleted successfully"})
}
