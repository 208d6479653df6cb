package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Question rows carry no explicit rank; listing order follows creation time,
// which is arrival order at the API.
type Question struct {
	BaseModel
	SurveyID uuid.UUID `gorm:"type:uuid;index"`
	Text     string
	Type     string
	Required bool
	Choices  pq.StringArray `gorm:"type:text[]"`
}
