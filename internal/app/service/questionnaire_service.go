package service

import (
	"errors"
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrQuestionnaireLocked   = errors.New("questionnaire is locked after submission")
	ErrInvalidSection        = errors.New("unknown questionnaire section")
	ErrNotEligible           = errors.New("company is not eligible to submit an application")
)

type QuestionnaireService interface {
	SaveSection(companyID uint, sectionKey string, values map[string]interface{}) (*model.Questionnaire, error)
	GetQuestionnaire(companyID uint) (*model.Questionnaire, error)
	GetProgress(companyID uint) (*seal.Progress, error)
	Submit(companyID uint) error
	Unlock(companyID uint) error
}

type questionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepository
	companyRepo       repository.CompanyRepository
	db                *gorm.DB
	log               *logger.Logger
}

func NewQuestionnaireService(
	questionnaireRepo repository.QuestionnaireRepository,
	companyRepo repository.CompanyRepository,
	db *gorm.DB,
	log *logger.Logger,
) QuestionnaireService {
	return &questionnaireService{
		questionnaireRepo: questionnaireRepo,
		companyRepo:       companyRepo,
		db:                db,
		log:               log,
	}
}

// SaveSection stores one section's responses. The questionnaire is created on
// first save and rejects writes once the application has been submitted.
func (s *questionnaireService) SaveSection(companyID uint, sectionKey string, values map[string]interface{}) (*model.Questionnaire, error) {
	if _, ok := seal.SectionByKey(sectionKey); !ok {
		return nil, ErrInvalidSection
	}

	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	if company.QuestionnaireLocked() {
		s.log.Warn("Rejected questionnaire write on locked application", map[string]interface{}{
			"company_id": companyID,
			"status":     company.Status,
		})
		return nil, ErrQuestionnaireLocked
	}

	questionnaire, err := s.questionnaireRepo.FindByCompanyID(companyID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		questionnaire = &model.Questionnaire{
			CompanyID: companyID,
			Responses: model.ResponseMap{},
		}
		if err := s.questionnaireRepo.Create(questionnaire); err != nil {
			return nil, err
		}
	}

	if questionnaire.Responses == nil {
		questionnaire.Responses = model.ResponseMap{}
	}
	questionnaire.Responses[sectionKey] = values
	questionnaire.ActiveSection = sectionKey

	if err := s.questionnaireRepo.Update(questionnaire); err != nil {
		return nil, err
	}

	s.log.Info("Questionnaire section saved", map[string]interface{}{
		"company_id": companyID,
		"section":    sectionKey,
	})
	return questionnaire, nil
}

func (s *questionnaireService) GetQuestionnaire(companyID uint) (*model.Questionnaire, error) {
	questionnaire, err := s.questionnaireRepo.FindByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, err
	}
	return questionnaire, nil
}

// GetProgress recomputes completion from the stored responses and the schema.
// Nothing is cached; two consecutive calls always agree.
func (s *questionnaireService) GetProgress(companyID uint) (*seal.Progress, error) {
	responses := seal.Responses{}
	questionnaire, err := s.questionnaireRepo.FindByCompanyID(companyID)
	if err == nil {
		responses = seal.Responses(questionnaire.Responses)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress := seal.ComputeProgress(seal.Schema(), responses)
	return &progress, nil
}

// Submit runs the submission gate: every required field of every non-optional
// section must be complete. On failure it returns a *seal.ValidationError
// listing all offending fields and changes nothing. On success the company
// moves from draft to application_submitted.
func (s *questionnaireService) Submit(companyID uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	company, err := s.companyRepo.FindByIDTx(tx, companyID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	if !company.ApplicationEligible() {
		tx.Rollback()
		return ErrNotEligible
	}

	var questionnaire model.Questionnaire
	if err := tx.Where("company_id = ?", companyID).First(&questionnaire).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionnaireNotFound
		}
		return err
	}

	if validationErr := seal.ValidateSubmission(
		seal.Schema(),
		seal.Responses(questionnaire.Responses),
		questionnaire.ActiveSection,
	); validationErr != nil {
		tx.Rollback()
		s.log.Warn("Questionnaire submission rejected", map[string]interface{}{
			"company_id":       companyID,
			"failing_sections": len(validationErr.Sections),
		})
		return validationErr
	}

	now := time.Now()
	questionnaire.CompletedAt = &now
	if err := s.questionnaireRepo.UpdateTx(tx, &questionnaire); err != nil {
		tx.Rollback()
		return err
	}

	company.Status = model.StatusApplicationSubmitted
	if err := s.companyRepo.UpdateTx(tx, company); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// Scoring, renewals and rewards stay downstream of an explicit evaluator
	// action; submission only freezes the application.
	s.log.Info("Questionnaire submitted", map[string]interface{}{
		"company_id": companyID,
	})
	return nil
}

// Unlock rolls a submitted application back to draft so the company can edit
// again. Restricted to auditor-role operators at the controller layer.
func (s *questionnaireService) Unlock(companyID uint) error {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	if company.Status == model.StatusDraft {
		return nil
	}

	questionnaire, err := s.questionnaireRepo.FindByCompanyID(companyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	company.Status = model.StatusDraft
	if err := s.companyRepo.Update(company); err != nil {
		return err
	}

	if questionnaire != nil {
		questionnaire.CompletedAt = nil
		if err := s.questionnaireRepo.Update(questionnaire); err != nil {
			return err
		}
	}

	s.log.Info("Questionnaire unlocked for editing", map[string]interface{}{
		"company_id": companyID,
	})
	return nil
}
