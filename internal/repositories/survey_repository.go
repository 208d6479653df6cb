package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"surveyforge/internal/models/db_models"
)

type SurveyRepositoryInterface interface {
	CreateSurvey(ctx context.Context, survey *db_models.Survey) error
	GetSurveyByID(ctx context.Context, surveyID string) (*db_models.Survey, error)
	ListSurveysByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Survey, error)
	UpdateSurvey(ctx context.Context, survey *db_models.Survey) error
	DeleteSurvey(ctx context.Context, surveyID string) error
	CountQuestions(ctx context.Context, surveyID string) (int64, error)
}

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepositoryInterface {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) CreateSurvey(ctx context.Context, survey *db_models.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *SurveyRepository) GetSurveyByID(ctx context.Context, surveyID string) (*db_models.Survey, error) {
	var survey db_models.Survey
	err := r.db.WithContext(ctx).First(&survey, "id = ?", surveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *SurveyRepository) ListSurveysByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Survey, error) {
	var surveys []db_models.Survey
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&surveys).Error
	return surveys, err
}

func (r *SurveyRepository) UpdateSurvey(ctx context.Context, survey *db_models.Survey) error {
	return r.db.WithContext(ctx).Save(survey).Error
}

func (r *SurveyRepository) DeleteSurvey(ctx context.Context, surveyID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Where("survey_id = ?", surveyID).Delete(&db_models.Question{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Delete(&db_models.Survey{}, "id = ?", surveyID).Error
	})
}

func (r *SurveyRepository) CountQuestions(ctx context.Context, surveyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Question{}).
		Where("survey_id = ?", surveyID).
		Count(&count).Error
	return count, err
}
