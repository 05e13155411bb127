package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

type CompanyController struct {
	companyService service.CompanyService
	authService    service.AuthService
}

func NewCompanyController(companyService service.CompanyService, authService service.AuthService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		authService:    authService,
	}
}

type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Website       string `json:"website"`
	ContactEmail  string `json:"contact_email" binding:"required,email"`
	EmployeeCount int    `json:"employee_count" binding:"required,min=1"`
}

// parseIDParam reads a :param path segment as an unsigned ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid ID in path")
		return 0, false
	}
	return uint(id), true
}

// canAccessCompany allows staff roles unconditionally and company users for
// their own company only
func canAccessCompany(c *gin.Context, authService service.AuthService, companyID uint) bool {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return false
	}
	if role == model.RoleAdvisor || role == model.RoleAdmin || role == model.RoleSuperAdmin {
		return true
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return false
	}
	user, err := authService.GetUserByID(userID)
	if err != nil {
		return false
	}
	return user.CompanyID != nil && *user.CompanyID == companyID
}

// CreateCompany registers a company owned by the caller
// POST /api/v1/companies
func (ctrl *CompanyController) CreateCompany(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid company details")
		return
	}

	company, err := ctrl.companyService.CreateCompany(userID, service.CreateCompanyInput{
		Name:          req.Name,
		Website:       req.Website,
		ContactEmail:  req.ContactEmail,
		EmployeeCount: req.EmployeeCount,
	})
	if err != nil {
		log.Error("Failed to create company", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "company")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// GetCompany returns one company
// GET /api/v1/companies/:id
func (ctrl *CompanyController) GetCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	company, err := ctrl.companyService.GetCompany(companyID)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// MyCompany returns the caller's own company
// GET /api/v1/companies/mine
func (ctrl *CompanyController) MyCompany(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	if user.CompanyID == nil {
		apperrors.NotFound(c, apperrors.SealCompanyNotFound, "No company registered for this account")
		return
	}

	company, err := ctrl.companyService.GetCompany(*user.CompanyID)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// ListCompanies lists companies, optionally filtered by status
// GET /api/v1/admin/companies?status=
func (ctrl *CompanyController) ListCompanies(c *gin.Context) {
	companies, err := ctrl.companyService.ListCompanies(c.Query("status"))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// ListCertified returns the public directory of verified companies
// GET /api/v1/companies/certified
func (ctrl *CompanyController) ListCertified(c *gin.Context) {
	companies, err := ctrl.companyService.ListCertified()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}
