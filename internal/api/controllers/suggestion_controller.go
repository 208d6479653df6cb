package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/models/response_models"
	"surveyforge/internal/services"
	"surveyforge/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// GenerateQuestions godoc
// @Summary Suggest survey questions
// @Description Ask the AI for candidate questions given the draft context
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateQuestionsRequest true "Draft context snapshot"
// @Success 200 {object} response_models.GenerateQuestionsResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-questions [post]
func (s *SuggestionController) GenerateQuestions(c *gin.Context) {
	var req request_models.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	questions, err := s.suggestionService.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.GenerateQuestionsResponse{Questions: questions},
		"Questions generated successfully")
}

// GenerateSurvey godoc
// @Summary Generate a whole survey draft
// @Description The draft is parked under a single-use handoff token
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateSurveyRequest true "Survey topic"
// @Success 200 {object} response_models.GenerateSurveyResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-survey [post]
func (s *SuggestionController) GenerateSurvey(c *gin.Context) {
	var req request_models.GenerateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := s.suggestionService.GenerateSurveyDraft(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.GenerateSurveyResponse{HandoffToken: token},
		"Survey draft generated successfully")
}

// ConsumeDraft godoc
// @Summary Consume a generated draft
// @Description Returns the parked draft and deletes it; a token works once
// @Tags AI
// @Produce json
// @Param token path string true "Handoff token"
// @Success 200 {object} builder.Draft
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/handoff/{token} [get]
func (s *SuggestionController) ConsumeDraft(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Handoff token is required")
		return
	}

	draft, err := s.suggestionService.ConsumeDraft(token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Draft handed off successfully")
}
