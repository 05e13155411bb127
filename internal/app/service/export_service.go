package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	ExportCertifiedCompanies() (*bytes.Buffer, error)
	ExportDonations() (*bytes.Buffer, error)
}

type exportService struct {
	companyRepo  repository.CompanyRepository
	donationRepo repository.DonationRepository
	log          *logger.Logger
}

func NewExportService(
	companyRepo repository.CompanyRepository,
	donationRepo repository.DonationRepository,
	log *logger.Logger,
) ExportService {
	return &exportService{
		companyRepo:  companyRepo,
		donationRepo: donationRepo,
		log:          log,
	}
}

// ExportCertifiedCompanies builds an XLSX roster of verified companies for
// operator reporting
func (s *exportService) ExportCertifiedCompanies() (*bytes.Buffer, error) {
	companies, err := s.companyRepo.ListCertified()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Certified Companies"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "Website", "Contact Email", "Employees", "Score", "Badge Level", "Renewal Due"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, company := range companies {
		score := ""
		if company.Score != nil {
			score = fmt.Sprintf("%d", *company.Score)
		}
		renewalDue := ""
		if company.RenewalDueDate != nil {
			renewalDue = company.RenewalDueDate.Format("2006-01-02")
		}

		values := []interface{}{
			company.ID,
			company.Name,
			company.Website,
			company.ContactEmail,
			company.EmployeeCount,
			score,
			string(company.BadgeLevel),
			renewalDue,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.log.Error("Failed to write companies export", err, nil)
		return nil, err
	}

	s.log.Info("Certified companies exported", map[string]interface{}{
		"count": len(companies),
	})
	return buf, nil
}

// ExportDonations builds an XLSX ledger of all recorded donations
func (s *exportService) ExportDonations() (*bytes.Buffer, error) {
	donations, err := s.donationRepo.ListAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Donations"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Receipt", "Campaign ID", "Donor", "Amount (cents)", "Transaction ID", "Donated At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, donation := range donations {
		values := []interface{}{
			donation.ReceiptNumber,
			donation.CampaignID,
			donation.DonorName,
			donation.AmountCents,
			donation.TransactionID,
			donation.DonatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.log.Error("Failed to write donations export", err, nil)
		return nil, err
	}

	s.log.Info("Donations exported", map[string]interface{}{
		"count": len(donations),
	})
	return buf, nil
}
