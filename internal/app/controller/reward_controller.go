package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

type RewardController struct {
	rewardService service.RewardService
	authService   service.AuthService
}

func NewRewardController(rewardService service.RewardService, authService service.AuthService) *RewardController {
	return &RewardController{
		rewardService: rewardService,
		authService:   authService,
	}
}

// ListRewards returns a company's reward history
// GET /api/v1/companies/:id/rewards
func (ctrl *RewardController) ListRewards(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	rewards, err := ctrl.rewardService.GetCompanyRewards(companyID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// RequestPhysicalBadge queues a physical badge for fulfillment
// POST /api/v1/companies/:id/rewards/physical-badge
func (ctrl *RewardController) RequestPhysicalBadge(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessCompany(c, ctrl.authService, companyID) {
		apperrors.Forbidden(c, "")
		return
	}

	reward, err := ctrl.rewardService.RequestPhysicalBadge(companyID)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.SealCompanyNotFound, "Company not found")
			return
		}
		log.Error("Failed to request physical badge", err, map[string]interface{}{
			"company_id": companyID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reward": reward})
}

// MarkDelivered records external fulfillment of a reward
// POST /api/v1/admin/rewards/:id/delivered
func (ctrl *RewardController) MarkDelivered(c *gin.Context) {
	rewardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.rewardService.MarkRewardDelivered(rewardID); err != nil {
		if errors.Is(err, service.ErrRewardNotFound) {
			apperrors.NotFound(c, apperrors.RewardNotFound, "Reward not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reward marked delivered"})
}
