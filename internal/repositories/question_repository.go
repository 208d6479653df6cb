package repositories

import (
	"context"

	"gorm.io/gorm"
	"surveyforge/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	CreateQuestion(ctx context.Context, question *db_models.Question) error
	ListQuestionsBySurvey(ctx context.Context, surveyID string) ([]db_models.Question, error)
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepositoryInterface {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *db_models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(question).Error
	})
}

// ListQuestionsBySurvey returns questions in creation order. Creation order
// is arrival order at the API; there is no client-supplied rank.
func (r *QuestionRepository) ListQuestionsBySurvey(ctx context.Context, surveyID string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}
