package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
	"github.com/peaceseal/peaceseal-backend/internal/websocket"
)

type CampaignController struct {
	campaignService service.CampaignService
	donationService service.DonationService
	hub             *websocket.Hub
}

func NewCampaignController(
	campaignService service.CampaignService,
	donationService service.DonationService,
	hub *websocket.Hub,
) *CampaignController {
	return &CampaignController{
		campaignService: campaignService,
		donationService: donationService,
		hub:             hub,
	}
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced at the router layer
		return true
	},
}

type CreateCampaignRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	GoalCents   int64  `json:"goal_cents" binding:"required,min=1"`
}

type RecordDonationRequest struct {
	AmountCents   int64  `json:"amount_cents" binding:"required,min=1"`
	TransactionID string `json:"transaction_id" binding:"required"`
	DonorName     string `json:"donor_name"`
}

type CreatePledgeRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=1"`
	Recurring   bool  `json:"recurring"`
}

// CreateCampaign opens a fundraising drive
// POST /api/v1/admin/campaigns
func (ctrl *CampaignController) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title and goal are required")
		return
	}

	campaign, err := ctrl.campaignService.CreateCampaign(service.CreateCampaignInput{
		Title:       req.Title,
		Description: req.Description,
		GoalCents:   req.GoalCents,
	})
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// ListCampaigns lists campaigns
// GET /api/v1/campaigns?active=true
func (ctrl *CampaignController) ListCampaigns(c *gin.Context) {
	campaigns, err := ctrl.campaignService.ListCampaigns(c.Query("active") == "true")
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// GetCampaign returns one campaign with its cached raised total
// GET /api/v1/campaigns/:id
func (ctrl *CampaignController) GetCampaign(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := ctrl.campaignService.GetCampaign(campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			apperrors.NotFound(c, apperrors.CampaignNotFound, "Campaign not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	total, err := ctrl.campaignService.GetCampaignTotal(c.Request.Context(), campaignID)
	if err != nil {
		total = campaign.RaisedCents
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":     campaign,
		"raised_cents": total,
	})
}

// CloseCampaign stops a campaign from accepting contributions
// POST /api/v1/admin/campaigns/:id/close
func (ctrl *CampaignController) CloseCampaign(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.campaignService.CloseCampaign(campaignID); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			apperrors.NotFound(c, apperrors.CampaignNotFound, "Campaign not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign closed"})
}

// RecordDonation stores a settled donation against a campaign
// POST /api/v1/campaigns/:id/donations
func (ctrl *CampaignController) RecordDonation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Amount and transaction ID are required")
		return
	}

	// Attribute the gift when the caller is logged in
	var userID *uint
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	donation, err := ctrl.donationService.RecordDonation(c.Request.Context(), service.RecordDonationInput{
		CampaignID:    campaignID,
		UserID:        userID,
		AmountCents:   req.AmountCents,
		TransactionID: req.TransactionID,
		DonorName:     req.DonorName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			apperrors.NotFound(c, apperrors.CampaignNotFound, "Campaign not found")
		case errors.Is(err, service.ErrCampaignInactive):
			apperrors.Conflict(c, apperrors.CampaignInactive, "The campaign is not accepting contributions")
		default:
			log.Error("Failed to record donation", err, map[string]interface{}{
				"campaign_id": campaignID,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"donation": donation})
}

// ListDonations returns a campaign's donations
// GET /api/v1/campaigns/:id/donations
func (ctrl *CampaignController) ListDonations(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	donations, err := ctrl.donationService.GetCampaignDonations(campaignID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

// MyDonations returns the caller's donation history
// GET /api/v1/donations/mine
func (ctrl *CampaignController) MyDonations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	donations, err := ctrl.donationService.GetUserDonations(userID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

// CreatePledge records a commitment to give
// POST /api/v1/campaigns/:id/pledges
func (ctrl *CampaignController) CreatePledge(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Amount is required")
		return
	}

	pledge, err := ctrl.campaignService.CreatePledge(campaignID, userID, req.AmountCents, req.Recurring)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			apperrors.NotFound(c, apperrors.CampaignNotFound, "Campaign not found")
		case errors.Is(err, service.ErrCampaignInactive):
			apperrors.Conflict(c, apperrors.CampaignInactive, "The campaign is not accepting contributions")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pledge": pledge})
}

// CancelPledge cancels one of the caller's pledges
// DELETE /api/v1/pledges/:id
func (ctrl *CampaignController) CancelPledge(c *gin.Context) {
	pledgeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := ctrl.campaignService.CancelPledge(pledgeID, userID); err != nil {
		if errors.Is(err, service.ErrPledgeNotFound) {
			apperrors.NotFound(c, apperrors.PledgeNotFound, "Pledge not found")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pledge cancelled"})
}

// MyPledges returns the caller's pledges
// GET /api/v1/pledges/mine
func (ctrl *CampaignController) MyPledges(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	pledges, err := ctrl.campaignService.GetUserPledges(userID)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pledges": pledges})
}

// LiveFeed upgrades the connection and streams donation events
// GET /api/v1/campaigns/live
func (ctrl *CampaignController) LiveFeed(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade live feed connection", err, nil)
		return
	}

	client := &websocket.Client{
		Hub:  ctrl.hub,
		Conn: &websocket.Conn{Conn: conn},
		Send: make(chan []byte, 64),
	}
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
