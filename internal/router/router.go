package router

import (
	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/controller"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

type Router struct {
	authController          *controller.AuthController
	companyController       *controller.CompanyController
	questionnaireController *controller.QuestionnaireController
	certificationController *controller.CertificationController
	renewalController       *controller.RenewalController
	rewardController        *controller.RewardController
	issueController         *controller.IssueController
	campaignController      *controller.CampaignController
	notificationController  *controller.NotificationController
	uploadController        *controller.UploadController
	exportController        *controller.ExportController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	companyController *controller.CompanyController,
	questionnaireController *controller.QuestionnaireController,
	certificationController *controller.CertificationController,
	renewalController *controller.RenewalController,
	rewardController *controller.RewardController,
	issueController *controller.IssueController,
	campaignController *controller.CampaignController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	exportController *controller.ExportController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		companyController:       companyController,
		questionnaireController: questionnaireController,
		certificationController: certificationController,
		renewalController:       renewalController,
		rewardController:        rewardController,
		issueController:         issueController,
		campaignController:      campaignController,
		notificationController:  notificationController,
		uploadController:        uploadController,
		exportController:        exportController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Peace Seal API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		// Public questionnaire definition and certified directory
		v1.GET("/questionnaire/schema", r.questionnaireController.GetSchema)

		companies := v1.Group("/companies")
		{
			companies.GET("/certified", r.companyController.ListCertified)
			companies.GET("/mine", r.authMiddleware.Authenticate(), r.companyController.MyCompany)

			companies.POST("", r.authMiddleware.Authenticate(), r.companyController.CreateCompany)
			companies.GET("/:id", r.authMiddleware.Authenticate(), r.companyController.GetCompany)
			companies.GET("/:id/standing", r.authMiddleware.Authenticate(), r.certificationController.GetStanding)

			companies.GET("/:id/questionnaire", r.authMiddleware.Authenticate(), r.questionnaireController.GetQuestionnaire)
			companies.PUT("/:id/questionnaire/sections/:section", r.authMiddleware.Authenticate(), r.questionnaireController.SaveSection)
			companies.GET("/:id/questionnaire/progress", r.authMiddleware.Authenticate(), r.questionnaireController.GetProgress)
			companies.POST("/:id/questionnaire/submit", r.authMiddleware.Authenticate(), r.questionnaireController.Submit)

			companies.GET("/:id/renewals", r.authMiddleware.Authenticate(), r.renewalController.ListRenewals)
			companies.POST("/:id/renewals", r.authMiddleware.Authenticate(), r.renewalController.CreateRenewal)
			companies.POST("/:id/renewals/payment", r.authMiddleware.Authenticate(), r.renewalController.ProcessPayment)
			companies.GET("/:id/renewals/fee", r.authMiddleware.Authenticate(), r.renewalController.QuoteFee)

			companies.GET("/:id/rewards", r.authMiddleware.Authenticate(), r.rewardController.ListRewards)
			companies.POST("/:id/rewards/physical-badge", r.authMiddleware.Authenticate(), r.rewardController.RequestPhysicalBadge)

			companies.GET("/:id/issues", r.authMiddleware.Authenticate(), r.issueController.ListIssues)
		}

		issues := v1.Group("/issues", r.authMiddleware.Authenticate())
		{
			issues.POST("/:id/respond", r.issueController.RespondToIssue)
		}

		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", r.campaignController.ListCampaigns)
			campaigns.GET("/live", r.campaignController.LiveFeed)
			campaigns.GET("/:id", r.campaignController.GetCampaign)
			campaigns.GET("/:id/donations", r.campaignController.ListDonations)
			campaigns.POST("/:id/donations", r.authMiddleware.OptionalAuthenticate(), r.campaignController.RecordDonation)
			campaigns.POST("/:id/pledges", r.authMiddleware.Authenticate(), r.campaignController.CreatePledge)
		}

		v1.GET("/donations/mine", r.authMiddleware.Authenticate(), r.campaignController.MyDonations)
		v1.GET("/pledges/mine", r.authMiddleware.Authenticate(), r.campaignController.MyPledges)
		v1.DELETE("/pledges/:id", r.authMiddleware.Authenticate(), r.campaignController.CancelPledge)

		notifications := v1.Group("/notifications", r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.ListNotifications)
			notifications.POST("/:id/read", r.notificationController.MarkRead)
		}

		v1.POST("/upload/presigned-url",
			r.authMiddleware.Authenticate(),
			r.uploadController.GeneratePresignedURL,
		)

		admin := v1.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole("advisor", "admin", "super_admin"),
		)
		{
			admin.GET("/companies", r.companyController.ListCompanies)
			admin.PUT("/companies/:id/score", r.certificationController.UpdateScore)
			admin.PUT("/companies/:id/status", r.certificationController.SetStatus)
			admin.POST("/companies/:id/questionnaire/unlock", r.questionnaireController.Unlock)
			admin.POST("/companies/:id/issues", r.issueController.CreateIssue)
			admin.POST("/issues/:id/resolve", r.issueController.ResolveIssue)
			admin.POST("/issues/:id/dismiss", r.issueController.DismissIssue)
			admin.GET("/renewals/expiring", r.renewalController.ListExpiring)
			admin.POST("/rewards/:id/delivered", r.rewardController.MarkDelivered)

			admin.POST("/campaigns",
				r.authMiddleware.RequireRole("admin", "super_admin"),
				r.campaignController.CreateCampaign,
			)
			admin.POST("/campaigns/:id/close",
				r.authMiddleware.RequireRole("admin", "super_admin"),
				r.campaignController.CloseCampaign,
			)
			admin.GET("/exports/companies",
				r.authMiddleware.RequireRole("admin", "super_admin"),
				r.exportController.ExportCertifiedCompanies,
			)
			admin.GET("/exports/donations",
				r.authMiddleware.RequireRole("admin", "super_admin"),
				r.exportController.ExportDonations,
			)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
