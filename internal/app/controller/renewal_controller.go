package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

type RenewalController struct {
	renewalService service.RenewalService
	authService    service.AuthService
}

func NewRenewalController(renewalService service.RenewalService, authService service.AuthService) *RenewalController {
	return &RenewalController{
		renewalService: renewalService,
		authService:    authService,
	}
}

// A renewal carrying a transaction ID is recorded as paid; the status itself
// is never accepted from the client.
type CreateRenewalRequest struct {
	RenewalYear          int        `json:"renewal_year" binding:"required"`
	PaymentTransactionID string     `json:"payment_transaction_id"`
	PaymentDate          *time.Time `json:"payment_date"`
}

type ProcessPaymentRequest struct {
	RenewalYear   int        `json:"renewal_year" binding:"required"`
	TransactionID string     `json:"transaction_id" binding:"required"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// CreateRenewal records a yearly renewal for a company
// POST /api/v1/companies/:id/renewals
func (ctrl *RenewalController) CreateRenewal(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	var req CreateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Renewal year is required")
		return
	}

	renewal, err := ctrl.renewalService.CreateRenewal(service.CreateRenewalInput{
		CompanyID:            companyID,
		RenewalYear:          req.RenewalYear,
		PaymentTransactionID: req.PaymentTransactionID,
		PaymentDate:          req.PaymentDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateRenewal):
			apperrors.Conflict(c, apperrors.RenewalDuplicate, "A renewal already exists for this company and year")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
		default:
			log.Error("Failed to create renewal", err, map[string]interface{}{
				"company_id":   companyID,
				"renewal_year": req.RenewalYear,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "renewal")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"renewal": renewal})
}

// ProcessPayment marks a renewal paid and grants the reward bundle
// POST /api/v1/companies/:id/renewals/payment
func (ctrl *RenewalController) ProcessPayment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Renewal year and transaction ID are required")
		return
	}

	renewal, err := ctrl.renewalService.ProcessRenewalPayment(companyID, req.RenewalYear, req.TransactionID, req.PaymentDate)
	if err != nil {
		if errors.Is(err, service.ErrRenewalNotFound) {
			apperrors.NotFound(c, apperrors.RenewalNotFound, "Renewal not found")
			return
		}
		log.Error("Failed to process renewal payment", err, map[string]interface{}{
			"company_id":   companyID,
			"renewal_year": req.RenewalYear,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"renewal": renewal})
}

// QuoteFee returns the yearly fee for the company's current headcount
// GET /api/v1/companies/:id/renewals/fee
func (ctrl *RenewalController) QuoteFee(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	fee, err := ctrl.renewalService.CalculateRenewalFee(companyID)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount_cents": fee})
}

// ListRenewals returns a company's renewal history
// GET /api/v1/companies/:id/renewals
func (ctrl *RenewalController) ListRenewals(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	renewals, err := ctrl.renewalService.GetCompanyRenewals(companyID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"renewals": renewals})
}

// ListExpiring lists paid renewals lapsing within the requested days
// GET /api/v1/admin/renewals/expiring?days=30
func (ctrl *RenewalController) ListExpiring(c *gin.Context) {
	days := 30
	if d, err := strconv.Atoi(c.Query("days")); err == nil && d > 0 {
		days = d
	}

	expiring, err := ctrl.renewalService.GetExpiringRenewals(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"renewals": expiring,
		"count":    len(expiring),
	})
}
