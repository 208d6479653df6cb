package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Survey struct {
	BaseModel
	OwnerID         uuid.UUID `gorm:"type:uuid;index"`
	Title           string
	Description     string
	Category        string
	BackgroundImage string
	Tags            pq.StringArray `gorm:"type:text[]"`
	IsActive        bool

	// Respondent-facing settings, flattened into columns.
	AllowAnonymous         bool
	ShowProgressBar        bool
	AllowMultipleResponses bool
	Theme                  string

	Questions []Question
}
