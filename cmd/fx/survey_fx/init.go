package survey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surveyforge/internal/api/controllers"
	"surveyforge/internal/repositories"
	"surveyforge/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideSurveyService, controllers.NewSurveyController)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepositoryInterface {
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService(surveyRepo repositories.SurveyRepositoryInterface) services.SurveyServiceInterface {
	return services.NewSurveyService(surveyRepo)
}
