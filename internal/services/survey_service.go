package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"surveyforge/internal/models/db_models"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/models/response_models"
	"surveyforge/internal/repositories"
	"surveyforge/pkg/utils"
)

type SurveyServiceInterface interface {
	CreateSurvey(ctx context.Context, req request_models.CreateSurveyRequest, ownerID string) (*response_models.SurveyResponse, error)
	GetSurveyByID(ctx context.Context, surveyID string) (*response_models.SurveyResponse, error)
	ListSurveysByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.SurveyResponse, error)
	UpdateSurvey(ctx context.Context, surveyID string, req request_models.UpdateSurveyRequest) error
	DeleteSurvey(ctx context.Context, surveyID string) error
}

type SurveyService struct {
	surveyRepo repositories.SurveyRepositoryInterface
}

func NewSurveyService(surveyRepo repositories.SurveyRepositoryInterface) SurveyServiceInterface {
	return &SurveyService{surveyRepo: surveyRepo}
}

func (s *SurveyService) CreateSurvey(ctx context.Context, req request_models.CreateSurveyRequest, ownerID string) (*response_models.SurveyResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, utils.ErrInvalidInput
	}

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	survey := &db_models.Survey{
		OwnerID:                owner,
		Title:                  strings.TrimSpace(req.Title),
		Description:            req.Description,
		Category:               req.Category,
		BackgroundImage:        req.BackgroundImage,
		Tags:                   req.Tags,
		IsActive:               req.IsActive,
		AllowAnonymous:         req.Settings.AllowAnonymous,
		ShowProgressBar:        req.Settings.ShowProgressBar,
		AllowMultipleResponses: req.Settings.AllowMultipleResponses,
		Theme:                  req.Settings.Theme,
	}

	if err := s.surveyRepo.CreateSurvey(ctx, survey); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildSurveyResponse(survey, 0), nil
}

func (s *SurveyService) GetSurveyByID(ctx context.Context, surveyID string) (*response_models.SurveyResponse, error) {
	survey, err := s.surveyRepo.GetSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if survey == nil {
		return nil, utils.ErrSurveyNotFound
	}

	count, err := s.surveyRepo.CountQuestions(ctx, surveyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildSurveyResponse(survey, int(count)), nil
}

func (s *SurveyService) ListSurveysByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.SurveyResponse, error) {
	surveys, err := s.surveyRepo.ListSurveysByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SurveyResponse, 0, len(surveys))
	for i := range surveys {
		out = append(out, *buildSurveyResponse(&surveys[i], 0))
	}
	return out, nil
}

func (s *SurveyService) UpdateSurvey(ctx context.Context, surveyID string, req request_models.UpdateSurveyRequest) error {
	survey, err := s.surveyRepo.GetSurveyByID(ctx, surveyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if survey == nil {
		return utils.ErrSurveyNotFound
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return utils.ErrInvalidInput
		}
		survey.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		survey.Description = *req.Description
	}
	if req.Category != nil {
		survey.Category = *req.Category
	}
	if req.Tags != nil {
		survey.Tags = *req.Tags
	}
	if req.IsActive != nil {
		survey.IsActive = *req.IsActive
	}
	if req.BackgroundImage != nil {
		survey.BackgroundImage = *req.BackgroundImage
	}
	if req.Settings != nil {
		survey.AllowAnonymous = req.Settings.AllowAnonymous
		survey.ShowProgressBar = req.Settings.ShowProgressBar
		survey.AllowMultipleResponses = req.Settings.AllowMultipleResponses
		survey.Theme = req.Settings.Theme
	}

	if err := s.surveyRepo.UpdateSurvey(ctx, survey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SurveyService) DeleteSurvey(ctx context.Context, surveyID string) error {
	survey, err := s.surveyRepo.GetSurveyByID(ctx, surveyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if survey == nil {
		return utils.ErrSurveyNotFound
	}

	if err := s.surveyRepo.DeleteSurvey(ctx, surveyID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildSurveyResponse(s *db_models.Survey, questionCount int) *response_models.SurveyResponse {
	id := s.ID.String()
	return &response_models.SurveyResponse{
		ID:              id,
		SurveyID:        id,
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Tags:            s.Tags,
		IsActive:        s.IsActive,
		BackgroundImage: s.BackgroundImage,
		Settings: response_models.SurveySettingsView{
			AllowAnonymous:         s.AllowAnonymous,
			ShowProgressBar:        s.ShowProgressBar,
			AllowMultipleResponses: s.AllowMultipleResponses,
			Theme:                  s.Theme,
		},
		QuestionCount: questionCount,
		CreatedAt:     utils.FormatUnixSeconds(s.CreatedAt),
		UpdatedAt:     utils.FormatUnixSeconds(s.UpdatedAt),
	}
}
