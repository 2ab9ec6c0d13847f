package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
	"github.com/akshayrj/portfolio-backend/internal/storage"
)

// resumeContentTypes limits uploads to document formats.
var resumeContentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type ResumeController struct {
	service service.ResumeService
}

func NewResumeController(svc service.ResumeService) *ResumeController {
	return &ResumeController{service: svc}
}

// Active returns the currently served resume
// GET /api/v1/resume
func (ctrl *ResumeController) Active(c *gin.Context) {
	resume, err := ctrl.service.Active()
	if err != nil {
		if errors.Is(err, service.ErrNoActiveResume) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "No resume uploaded")
			return
		}
		apperrors.InternalError(c, "Failed to load resume")
		return
	}
	c.JSON(http.StatusOK, resume)
}

// List returns every uploaded resume, newest first
// GET /api/v1/resume/all
func (ctrl *ResumeController) List(c *gin.Context) {
	resumes, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load resumes")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

// Upload stores a new resume file and makes it active
// POST /api/v1/resume
func (ctrl *ResumeController) Upload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if f.Attachment == nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "resume file is required")
		return
	}
	if err := storage.ValidateContentType(f.Attachment.ContentType, resumeContentTypes); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Resume must be a PDF or Word document")
		return
	}

	resume, err := ctrl.service.Upload(c.Request.Context(), fileUpload(f))
	if err != nil {
		log.Error("Failed to upload resume", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to upload resume")
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// Delete removes a stored resume and its file
// DELETE /api/v1/resume/:id
func (ctrl *ResumeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Resume not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete resume")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}
