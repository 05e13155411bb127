package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
)

type CertificationController struct {
	certificationService service.CertificationService
	issueService         service.IssueService
}

func NewCertificationController(
	certificationService service.CertificationService,
	issueService service.IssueService,
) *CertificationController {
	return &CertificationController{
		certificationService: certificationService,
		issueService:         issueService,
	}
}

type UpdateScoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateScore records an evaluation score and applies the badge tier
// PUT /api/v1/admin/companies/:id/score
func (ctrl *CertificationController) UpdateScore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Score is required")
		return
	}

	company, err := ctrl.certificationService.UpdateScore(companyID, *req.Score)
	if err != nil {
		switch {
		case errors.Is(err, seal.ErrInvalidScore):
			apperrors.BadRequest(c, apperrors.SealInvalidScore, "Score must be between 0 and 100")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		default:
			log.Error("Failed to update company score", err, map[string]interface{}{
				"company_id": companyID,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// SetStatus moves an application through the review pipeline
// PUT /api/v1/admin/companies/:id/status
func (ctrl *CertificationController) SetStatus(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Status is required")
		return
	}

	company, err := ctrl.certificationService.SetStatus(companyID, model.CompanyStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown company status")
		case errors.Is(err, service.ErrInvalidStatusTransition):
			apperrors.Conflict(c, apperrors.ResourceConflict, "The company has not submitted an application")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// GetStanding derives the company's standing from its active issues
// GET /api/v1/companies/:id/standing
func (ctrl *CertificationController) GetStanding(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	standing, activeIssues, err := ctrl.issueService.GetCompanyStanding(companyID)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"standing":      standing,
		"active_issues": activeIssues,
	})
}
