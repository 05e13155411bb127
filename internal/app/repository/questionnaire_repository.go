package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type QuestionnaireRepository interface {
	Create(questionnaire *model.Questionnaire) error
	FindByCompanyID(companyID uint) (*model.Questionnaire, error)
	Update(questionnaire *model.Questionnaire) error
	UpdateTx(tx *gorm.DB, questionnaire *model.Questionnaire) error
}

type questionnaireRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionnaireRepository(db *gorm.DB, log *logger.Logger) QuestionnaireRepository {
	return &questionnaireRepository{db: db, log: log}
}

func (r *questionnaireRepository) Create(questionnaire *model.Questionnaire) error {
	r.log.Debug("Creating questionnaire in database", map[string]interface{}{
		"company_id": questionnaire.CompanyID,
	})

	if err := r.db.Create(questionnaire).Error; err != nil {
		r.log.Error("Failed to create questionnaire in database", err, map[string]interface{}{
			"company_id": questionnaire.CompanyID,
		})
		return err
	}
	return nil
}

func (r *questionnaireRepository) FindByCompanyID(companyID uint) (*model.Questionnaire, error) {
	var questionnaire model.Questionnaire
	if err := r.db.Where("company_id = ?", companyID).First(&questionnaire).Error; err != nil {
		return nil, err
	}
	return &questionnaire, nil
}

func (r *questionnaireRepository) Update(questionnaire *model.Questionnaire) error {
	return r.UpdateTx(r.db, questionnaire)
}

func (r *questionnaireRepository) UpdateTx(tx *gorm.DB, questionnaire *model.Questionnaire) error {
	r.log.Debug("Updating questionnaire in database", map[string]interface{}{
		"questionnaire_id": questionnaire.ID,
		"company_id":       questionnaire.CompanyID,
	})

	if err := tx.Save(questionnaire).Error; err != nil {
		r.log.Error("Failed to update questionnaire in database", err, map[string]interface{}{
			"questionnaire_id": questionnaire.ID,
		})
		return err
	}
	return nil
}
