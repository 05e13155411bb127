package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

type IssueController struct {
	issueService service.IssueService
	authService  service.AuthService
}

func NewIssueController(issueService service.IssueService, authService service.AuthService) *IssueController {
	return &IssueController{
		issueService: issueService,
		authService:  authService,
	}
}

type CreateIssueRequest struct {
	EvaluationID     string     `json:"evaluation_id"`
	IssueType        string     `json:"issue_type" binding:"required"`
	Severity         string     `json:"severity" binding:"required"`
	EvaluationNotes  string     `json:"evaluation_notes"`
	ResponseDeadline *time.Time `json:"response_deadline"`
}

type RespondToIssueRequest struct {
	Response string `json:"response" binding:"required"`
}

// CreateIssue raises a concern against a company
// POST /api/v1/admin/companies/:id/issues
func (ctrl *IssueController) CreateIssue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Issue type and severity are required")
		return
	}

	issue, err := ctrl.issueService.CreateIssue(service.CreateIssueInput{
		CompanyID:        companyID,
		EvaluationID:     req.EvaluationID,
		IssueType:        req.IssueType,
		Severity:         model.IssueSeverity(req.Severity),
		EvaluationNotes:  req.EvaluationNotes,
		ResponseDeadline: req.ResponseDeadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSeverity):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown issue severity")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		default:
			log.Error("Failed to create issue", err, map[string]interface{}{
				"company_id": companyID,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"issue": issue})
}

// RespondToIssue records the company's reply to an issue
// POST /api/v1/issues/:id/respond
func (ctrl *IssueController) RespondToIssue(c *gin.Context) {
	issueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RespondToIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A response is required")
		return
	}

	issue, err := ctrl.issueService.RespondToIssue(issueID, req.Response)
	if err != nil {
		ctrl.respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issue": issue})
}

// ResolveIssue closes an issue as addressed
// POST /api/v1/admin/issues/:id/resolve
func (ctrl *IssueController) ResolveIssue(c *gin.Context) {
	issueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	issue, err := ctrl.issueService.ResolveIssue(issueID)
	if err != nil {
		ctrl.respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issue": issue})
}

// DismissIssue closes an issue as unfounded
// POST /api/v1/admin/issues/:id/dismiss
func (ctrl *IssueController) DismissIssue(c *gin.Context) {
	issueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	issue, err := ctrl.issueService.DismissIssue(issueID)
	if err != nil {
		ctrl.respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issue": issue})
}

// ListIssues returns a company's issues, optionally filtered by status
// GET /api/v1/companies/:id/issues?status=
func (ctrl *IssueController) ListIssues(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	issues, err := ctrl.issueService.GetCompanyIssues(companyID, c.Query("status"))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

func (ctrl *IssueController) respondIssueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIssueNotFound):
		apperrors.NotFound(c, apperrors.IssueNotFound, "Issue not found")
	case errors.Is(err, service.ErrIssueAlreadyClosed):
		apperrors.Conflict(c, apperrors.IssueAlreadyClosed, "The issue has already been resolved or dismissed")
	case errors.Is(err, service.ErrDeadlinePassed):
		apperrors.RespondWithError(c, http.StatusUnprocessableEntity, apperrors.IssueDeadlinePassed, "The response deadline has passed")
	default:
		apperrors.InternalError(c, "")
	}
}
