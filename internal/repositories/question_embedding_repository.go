package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"surveyforge/internal/models/db_models"
)

type IQuestionEmbeddingRepository interface {
	CreateQuestionEmbedding(embedding db_models.QuestionEmbedding) error
	ListSimilarQuestions(vector pgvector.Vector, surveyID string) ([]db_models.QuestionEmbedding, error)
}

type QuestionEmbeddingRepository struct {
	db *gorm.DB
}

func NewQuestionEmbeddingRepository(db *gorm.DB) IQuestionEmbeddingRepository {
	return &QuestionEmbeddingRepository{db: db}
}

func (r *QuestionEmbeddingRepository) CreateQuestionEmbedding(embedding db_models.QuestionEmbedding) error {
	return r.db.Create(&embedding).Error
}

// ListSimilarQuestions returns stored questions whose cosine similarity to
// the probe vector exceeds 0.85, nearest first. Used to drop AI suggestions
// that restate a question the survey already has.
func (r *QuestionEmbeddingRepository) ListSimilarQuestions(vector pgvector.Vector, surveyID string) ([]db_models.QuestionEmbedding, error) {
	var results []db_models.QuestionEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM question_embeddings
        WHERE survey_id = $2
          AND (1 - (embedding <=> $1)) > 0.85
        ORDER BY embedding <=> $1
        LIMIT 10
    `

	err := r.db.Raw(query, vecStr, surveyID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
