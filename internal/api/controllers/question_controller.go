package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/services"
	"surveyforge/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Attach one question to an existing survey
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body request_models.CreateQuestionRequest true "Question payload"
// @Success 200 {object} response_models.QuestionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /questions [post]
func (q *QuestionController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := q.questionService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question created successfully")
}

// ListQuestionsBySurvey godoc
// @Summary List questions of a survey
// @Description Questions are returned in creation order
// @Tags Questions
// @Produce json
// @Param surveyId query string true "Survey ID"
// @Success 200 {array} response_models.QuestionResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /questions [get]
func (q *QuestionController) ListQuestionsBySurvey(c *gin.Context) {
	surveyID := c.Query("surveyId")
	if surveyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "surveyId query parameter is required")
		return
	}

	questions, err := q.questionService.ListQuestionsBySurvey(c.Request.Context(), surveyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}
