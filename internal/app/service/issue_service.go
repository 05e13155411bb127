package service

import (
	"errors"
	"time"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

var (
	ErrIssueNotFound      = errors.New("issue not found")
	ErrIssueAlreadyClosed = errors.New("issue has already been resolved or dismissed")
	ErrDeadlinePassed     = errors.New("issue response deadline has passed")
	ErrInvalidSeverity    = errors.New("unknown issue severity")
)

var validSeverities = map[model.IssueSeverity]bool{
	model.SeverityLow:      true,
	model.SeverityMedium:   true,
	model.SeverityHigh:     true,
	model.SeverityCritical: true,
}

// ResponseDeadline overrides the configured response window when the advisor
// needs a shorter or longer one; nil uses the default.
type CreateIssueInput struct {
	CompanyID        uint
	EvaluationID     string
	IssueType        string
	Severity         model.IssueSeverity
	EvaluationNotes  string
	ResponseDeadline *time.Time
}

type IssueService interface {
	CreateIssue(input CreateIssueInput) (*model.Issue, error)
	RespondToIssue(issueID uint, response string) (*model.Issue, error)
	ResolveIssue(issueID uint) (*model.Issue, error)
	DismissIssue(issueID uint) (*model.Issue, error)
	GetCompanyIssues(companyID uint, status string) ([]model.Issue, error)
	GetCompanyStanding(companyID uint) (seal.Standing, int64, error)
}

type issueService struct {
	issueRepo   repository.IssueRepository
	companyRepo repository.CompanyRepository
	cfg         *config.SealConfig
	log         *logger.Logger
}

func NewIssueService(
	issueRepo repository.IssueRepository,
	companyRepo repository.CompanyRepository,
	cfg *config.SealConfig,
	log *logger.Logger,
) IssueService {
	return &issueService{
		issueRepo:   issueRepo,
		companyRepo: companyRepo,
		cfg:         cfg,
		log:         log,
	}
}

// CreateIssue opens a concern against a company. The response deadline is
// fixed at creation, either explicit or the configured window from now, and
// never extended.
func (s *issueService) CreateIssue(input CreateIssueInput) (*model.Issue, error) {
	if !validSeverities[input.Severity] {
		return nil, ErrInvalidSeverity
	}

	if _, err := s.companyRepo.FindByID(input.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	deadline := time.Now().Add(s.cfg.IssueResponseWindow)
	if input.ResponseDeadline != nil {
		deadline = *input.ResponseDeadline
	}

	issue := &model.Issue{
		CompanyID:               input.CompanyID,
		EvaluationID:            input.EvaluationID,
		IssueType:               input.IssueType,
		Severity:                input.Severity,
		Status:                  model.IssueActive,
		EvaluationNotes:         input.EvaluationNotes,
		CompanyResponseDeadline: deadline,
	}
	if err := s.issueRepo.Create(issue); err != nil {
		return nil, err
	}

	s.log.Info("Issue raised against company", map[string]interface{}{
		"company_id": input.CompanyID,
		"issue_id":   issue.ID,
		"severity":   input.Severity,
	})
	return issue, nil
}

// RespondToIssue records the company's reply. Replies are rejected after the
// deadline and on closed issues; responding does not by itself resolve.
func (s *issueService) RespondToIssue(issueID uint, response string) (*model.Issue, error) {
	issue, err := s.findOpenIssue(issueID)
	if err != nil {
		return nil, err
	}

	if time.Now().After(issue.CompanyResponseDeadline) {
		s.log.Warn("Issue response rejected past deadline", map[string]interface{}{
			"issue_id": issueID,
			"deadline": issue.CompanyResponseDeadline,
		})
		return nil, ErrDeadlinePassed
	}

	issue.CompanyResponse = response
	if err := s.issueRepo.Update(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// ResolveIssue closes the issue as addressed. Terminal; standing improves
// immediately since it is derived from the live active count.
func (s *issueService) ResolveIssue(issueID uint) (*model.Issue, error) {
	return s.closeIssue(issueID, model.IssueResolved)
}

// DismissIssue closes the issue as unfounded
func (s *issueService) DismissIssue(issueID uint) (*model.Issue, error) {
	return s.closeIssue(issueID, model.IssueDismissed)
}

func (s *issueService) closeIssue(issueID uint, status model.IssueStatus) (*model.Issue, error) {
	issue, err := s.findOpenIssue(issueID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	issue.Status = status
	issue.ResolvedAt = &now
	if err := s.issueRepo.Update(issue); err != nil {
		return nil, err
	}

	s.log.Info("Issue closed", map[string]interface{}{
		"issue_id": issueID,
		"status":   status,
	})
	return issue, nil
}

func (s *issueService) findOpenIssue(issueID uint) (*model.Issue, error) {
	issue, err := s.issueRepo.FindByID(issueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}
	if issue.Closed() {
		return nil, ErrIssueAlreadyClosed
	}
	return issue, nil
}

func (s *issueService) GetCompanyIssues(companyID uint, status string) ([]model.Issue, error) {
	return s.issueRepo.FindByCompanyID(companyID, status)
}

// GetCompanyStanding derives standing from the current active issue count
func (s *issueService) GetCompanyStanding(companyID uint) (seal.Standing, int64, error) {
	if _, err := s.companyRepo.FindByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrCompanyNotFound
		}
		return "", 0, err
	}

	active, err := s.issueRepo.CountActiveByCompanyID(companyID)
	if err != nil {
		return "", 0, err
	}
	return seal.StandingForActiveIssues(int(active)), active, nil
}
