package question_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surveyforge/internal/api/controllers"
	"surveyforge/internal/repositories"
	"surveyforge/internal/services"
	"surveyforge/pkg/utils"
)

var Module = fx.Provide(
	provideQuestionRepo,
	provideQuestionEmbeddingRepo,
	provideQuestionService,
	controllers.NewQuestionController)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionEmbeddingRepo(db *gorm.DB) repositories.IQuestionEmbeddingRepository {
	return repositories.NewQuestionEmbeddingRepository(db)
}

func provideQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	surveyRepo repositories.SurveyRepositoryInterface,
	embeddingRepo repositories.IQuestionEmbeddingRepository,
	aiClient utils.SuggestionClientInterface,
) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, surveyRepo, embeddingRepo, aiClient)
}
