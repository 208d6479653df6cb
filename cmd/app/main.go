package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surveyforge/cmd/fx/account_fx"
	"surveyforge/cmd/fx/db_fx"
	"surveyforge/cmd/fx/handoff_fx"
	"surveyforge/cmd/fx/question_fx"
	"surveyforge/cmd/fx/suggestion_fx"
	"surveyforge/cmd/fx/survey_fx"
	"surveyforge/internal/api/controllers"
	"surveyforge/internal/infra"
	"surveyforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		handoff_fx.Module,
		account_fx.Module,
		survey_fx.Module,
		question_fx.Module,
		suggestion_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	questionController *controllers.QuestionController,
	suggestionController *controllers.SuggestionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, surveyController, questionController, suggestionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	questionController *controllers.QuestionController,
	suggestionController *controllers.SuggestionController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	surveysGroup := r.Group("/surveys")
	surveysGroup.Use(middleware.JWTAuthMiddleware())
	surveysGroup.POST("", surveyController.CreateSurvey)
	surveysGroup.GET("", surveyController.ListSurveys)
	surveysGroup.GET("/:surveyId", surveyController.GetSurveyByID)
	surveysGroup.PUT("/:surveyId", surveyController.UpdateSurvey)
	surveysGroup.DELETE("/:surveyId", surveyController.DeleteSurvey)

	questionsGroup := r.Group("/questions")
	questionsGroup.Use(middleware.JWTAuthMiddleware())
	questionsGroup.POST("", questionController.CreateQuestion)
	questionsGroup.GET("", questionController.ListQuestionsBySurvey)

	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.JWTAuthMiddleware())
	aiGroup.POST("/generate-questions", suggestionController.GenerateQuestions)
	aiGroup.POST("/generate-survey", suggestionController.GenerateSurvey)
	aiGroup.GET("/handoff/:token", suggestionController.ConsumeDraft)
}
