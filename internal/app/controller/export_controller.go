package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	apperrors "github.com/peaceseal/peaceseal-backend/internal/errors"
	"github.com/peaceseal/peaceseal-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	exportService service.ExportService
}

func NewExportController(exportService service.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportCertifiedCompanies downloads the verified company roster as XLSX
// GET /api/v1/admin/exports/companies
func (ctrl *ExportController) ExportCertifiedCompanies(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.exportService.ExportCertifiedCompanies()
	if err != nil {
		log.Error("Failed to export certified companies", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	filename := fmt.Sprintf("certified-companies-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportDonations downloads the donation ledger as XLSX
// GET /api/v1/admin/exports/donations
func (ctrl *ExportController) ExportDonations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.exportService.ExportDonations()
	if err != nil {
		log.Error("Failed to export donations", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	filename := fmt.Sprintf("donations-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
