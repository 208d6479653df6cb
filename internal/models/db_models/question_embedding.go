package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// QuestionEmbedding stores one vector per persisted question so the
// suggestion flow can drop near-duplicate AI proposals.
type QuestionEmbedding struct {
	QuestionID string `gorm:"primaryKey;column:question_id"`
	SurveyID   string
	Text       string
	Category   string
	Tags       pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}
