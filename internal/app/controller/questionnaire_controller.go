package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
)

type QuestionnaireController struct {
	questionnaireService service.QuestionnaireService
	authService          service.AuthService
}

func NewQuestionnaireController(
	questionnaireService service.QuestionnaireService,
	authService service.AuthService,
) *QuestionnaireController {
	return &QuestionnaireController{
		questionnaireService: questionnaireService,
		authService:          authService,
	}
}

type SaveSectionRequest struct {
	Values map[string]interface{} `json:"values" binding:"required"`
}

// GetSchema returns the questionnaire definition
// GET /api/v1/questionnaire/schema
func (ctrl *QuestionnaireController) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": seal.Schema()})
}

// SaveSection stores one section's responses
// PUT /api/v1/companies/:id/questionnaire/sections/:section
func (ctrl *QuestionnaireController) SaveSection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	var req SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Section values are required")
		return
	}

	questionnaire, err := ctrl.questionnaireService.SaveSection(companyID, c.Param("section"), req.Values)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSection):
			apperrors.BadRequest(c, apperrors.SealInvalidSection, "Unknown questionnaire section")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		case errors.Is(err, service.ErrQuestionnaireLocked):
			apperrors.Conflict(c, apperrors.SealQuestionnaireLocked, "The questionnaire is locked after submission")
		default:
			log.Error("Failed to save questionnaire section", err, map[string]interface{}{
				"company_id": companyID,
				"section":    c.Param("section"),
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

// GetQuestionnaire returns the stored responses
// GET /api/v1/companies/:id/questionnaire
func (ctrl *QuestionnaireController) GetQuestionnaire(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	questionnaire, err := ctrl.questionnaireService.GetQuestionnaire(companyID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionnaireNotFound) {
			apperrors.NotFound(c, apperrors.SealQuestionnaireNotFound, "Questionnaire not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

// GetProgress returns recomputed completion state
// GET /api/v1/companies/:id/questionnaire/progress
func (ctrl *QuestionnaireController) GetProgress(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	progress, err := ctrl.questionnaireService.GetProgress(companyID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// Submit freezes the application for review
// POST /api/v1/companies/:id/questionnaire/submit
func (ctrl *QuestionnaireController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	if err := ctrl.questionnaireService.Submit(companyID); err != nil {
		var validationErr *seal.ValidationError
		switch {
		case errors.As(err, &validationErr):
			sections := make(map[string][]string, len(validationErr.Sections))
			for _, section := range validationErr.Sections {
				sections[section.SectionKey] = section.Fields
			}
			apperrors.RespondWithSubmissionError(c, sections)
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		case errors.Is(err, service.ErrQuestionnaireNotFound):
			apperrors.NotFound(c, apperrors.SealQuestionnaireNotFound, "Questionnaire not found")
		case errors.Is(err, service.ErrNotEligible):
			apperrors.Conflict(c, apperrors.SealNotEligible, "The application has already been submitted")
		default:
			log.Error("Failed to submit questionnaire", err, map[string]interface{}{
				"company_id": companyID,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

// Unlock rolls a submitted application back to draft
// POST /api/v1/admin/companies/:id/questionnaire/unlock
func (ctrl *QuestionnaireController) Unlock(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.questionnaireService.Unlock(companyID); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Questionnaire unlocked"})
}
