package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type CertificationController struct {
	service service.CertificationService
}

func NewCertificationController(svc service.CertificationService) *CertificationController {
	return &CertificationController{service: svc}
}

func certificationInputFromForm(c *gin.Context, f *form.Form) (service.CertificationInput, bool) {
	issueDate, err := parseDate(f.Value("issue_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "issue_date must be yyyy-mm-dd")
		return service.CertificationInput{}, false
	}
	expirationDate, err := parseOptionalDate(f.Value("expiration_date"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "expiration_date must be yyyy-mm-dd")
		return service.CertificationInput{}, false
	}

	return service.CertificationInput{
		Name:                f.Value("name"),
		IssuingOrganization: f.Value("issuing_organization"),
		IssueDate:           issueDate,
		ExpirationDate:      expirationDate,
		DoesNotExpire:       parseBoolField(f.Value("does_not_expire")),
		CredentialID:        f.Value("credential_id"),
		CredentialURL:       f.Value("credential_url"),
	}, true
}

// List returns all certifications
// GET /api/v1/certifications
func (ctrl *CertificationController) List(c *gin.Context) {
	certifications, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load certifications")
		return
	}
	c.JSON(http.StatusOK, certifications)
}

// Create adds a certification, optionally with a certificate image
// POST /api/v1/certifications
func (ctrl *CertificationController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "name", "issuing_organization", "issue_date") {
		return
	}
	input, ok := certificationInputFromForm(c, f)
	if !ok {
		return
	}

	certification, err := ctrl.service.Create(c.Request.Context(), input, fileUpload(f))
	if err != nil {
		log.Error("Failed to create certification", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to create certification")
		return
	}
	c.JSON(http.StatusCreated, certification)
}

// Update replaces a certification and optionally its image
// PUT /api/v1/certifications/:id
func (ctrl *CertificationController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "name", "issuing_organization", "issue_date") {
		return
	}
	input, ok := certificationInputFromForm(c, f)
	if !ok {
		return
	}

	certification, err := ctrl.service.Update(c.Request.Context(), id, input, fileUpload(f))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Certification not found")
			return
		}
		log.Error("Failed to update certification", err, map[string]interface{}{
			"certification_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to update certification")
		return
	}
	c.JSON(http.StatusOK, certification)
}

// Delete removes a certification and its image object
// DELETE /api/v1/certifications/:id
func (ctrl *CertificationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Certification not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete certification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
}
