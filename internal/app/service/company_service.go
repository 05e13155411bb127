package service

import (
	"errors"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CreateCompanyInput struct {
	Name          string
	Website       string
	ContactEmail  string
	EmployeeCount int
}

type CompanyService interface {
	CreateCompany(ownerUserID uint, input CreateCompanyInput) (*model.Company, error)
	GetCompany(companyID uint) (*model.Company, error)
	ListCompanies(status string) ([]model.Company, error)
	ListCertified() ([]model.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
}

func NewCompanyService(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// CreateCompany registers a certification subject and links the creating user
func (s *companyService) CreateCompany(ownerUserID uint, input CreateCompanyInput) (*model.Company, error) {
	company := &model.Company{
		Name:          input.Name,
		Website:       input.Website,
		ContactEmail:  input.ContactEmail,
		EmployeeCount: input.EmployeeCount,
		Status:        model.StatusDraft,
		PaymentStatus: model.PaymentPending,
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ownerUserID)
	if err != nil {
		return nil, err
	}
	user.CompanyID = &company.ID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.log.Info("Company registered", map[string]interface{}{
		"company_id": company.ID,
		"name":       company.Name,
		"owner_id":   ownerUserID,
	})
	return company, nil
}

func (s *companyService) GetCompany(companyID uint) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(status string) ([]model.Company, error) {
	return s.companyRepo.List(status)
}

func (s *companyService) ListCertified() ([]model.Company, error) {
	return s.companyRepo.ListCertified()
}
