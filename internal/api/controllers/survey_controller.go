package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/services"
	"surveyforge/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Persist survey metadata and return the durable survey id
// @Tags Surveys
// @Accept json
// @Produce json
// @Param request body request_models.CreateSurveyRequest true "Survey payload"
// @Success 200 {object} response_models.SurveyResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys [post]
func (s *SurveyController) CreateSurvey(c *gin.Context) {
	var req request_models.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ownerID := c.GetString("user_id")
	if ownerID == "" {
		ownerID = req.UserID
	}

	survey, err := s.surveyService.CreateSurvey(c.Request.Context(), req, ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, survey, "Survey created successfully")
}

// GetSurveyByID godoc
// @Summary Get survey by ID
// @Tags Surveys
// @Produce json
// @Param surveyId path string true "Survey ID"
// @Success 200 {object} response_models.SurveyResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{surveyId} [get]
func (s *SurveyController) GetSurveyByID(c *gin.Context) {
	surveyID := c.Param("surveyId")
	if surveyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Survey ID is required")
		return
	}

	survey, err := s.surveyService.GetSurveyByID(c.Request.Context(), surveyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, survey, "Survey fetched successfully")
}

// ListSurveys godoc
// @Summary List surveys of the authenticated user
// @Tags Surveys
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.SurveyResponse
// @Security BearerAuth
// @Router /surveys [get]
func (s *SurveyController) ListSurveys(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	ownerID := c.GetString("user_id")

	surveys, err := s.surveyService.ListSurveysByOwner(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, surveys, "Surveys fetched successfully")
}

// UpdateSurvey godoc
// @Summary Update survey metadata
// @Tags Surveys
// @Accept json
// @Produce json
// @Param surveyId path string true "Survey ID"
// @Param request body request_models.UpdateSurveyRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{surveyId} [put]
func (s *SurveyController) UpdateSurvey(c *gin.Context) {
	surveyID := c.Param("surveyId")
	if surveyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Survey ID is required")
		return
	}

	var req request_models.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.surveyService.UpdateSurvey(c.Request.Context(), surveyID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey updated successfully")
}

// DeleteSurvey godoc
// @Summary Delete a survey and its questions
// @Tags Surveys
// @Produce json
// @Param surveyId path string true "Survey ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{surveyId} [delete]
func (s *SurveyController) DeleteSurvey(c *gin.Context) {
	surveyID := c.Param("surveyId")
	if surveyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Survey ID is required")
		return
	}

	if err := s.surveyService.DeleteSurvey(c.Request.Context(), surveyID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey deleted successfully")
}
