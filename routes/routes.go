package routes

import (
	"nutrisnap/controllers"
	"nutrisnap/middlewares"
	"nutrisnap/models"
	"nutrisnap/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
	}

	// Patient-only: health profile and meal log
	patient := r.Group("/")
	patient.Use(middlewares.AuthMiddleware(), middlewares.RequireUserType(models.UserTypePatient))
	{
		patient.GET("/health-profile", controllers.GetHealthProfile)
		patient.PUT("/health-profile", controllers.UpsertHealthProfile)

		patient.POST("/meals", controllers.LogMeal)
		patient.POST("/meals/quick", controllers.QuickCaptureMeal)
		patient.GET("/meals", controllers.ListMeals)
		patient.GET("/meals/stats", controllers.MealStats)
		patient.GET("/meals/:id", controllers.GetMeal)
		patient.PUT("/meals/:id", controllers.UpdateMeal)
		patient.DELETE("/meals/:id", controllers.DeleteMeal)

		patient.POST("/evaluations", controllers.CreateEvaluation)
	}

	// Nutritionist-only: pool and workflow transitions
	nutri := r.Group("/")
	nutri.Use(middlewares.AuthMiddleware(), middlewares.RequireUserType(models.UserTypeNutritionist))
	{
		nutri.PUT("/nutritionists/profile", controllers.UpsertNutritionistProfile)

		nutri.GET("/evaluations/pool", controllers.ListEvaluationPool)
		nutri.POST("/evaluations/:id/accept", controllers.AcceptEvaluation)
		nutri.POST("/evaluations/:id/reject", controllers.RejectEvaluation)
		nutri.PUT("/evaluations/:id/feedback", controllers.SaveEvaluationFeedback)
		nutri.POST("/evaluations/:id/complete", controllers.CompleteEvaluation)
	}

	// Shared authenticated routes
	shared := r.Group("/")
	shared.Use(middlewares.AuthMiddleware())
	{
		shared.GET("/nutritionists", controllers.ListNutritionists)
		shared.GET("/nutritionists/:id", controllers.GetNutritionist)

		shared.GET("/evaluations", controllers.ListEvaluations)
		shared.GET("/evaluations/:id", controllers.GetEvaluation)

		shared.GET("/alerts", controllers.ListAlerts)
		shared.POST("/alerts/read", controllers.MarkAlertsRead)

		rc := controllers.NewRealtimeController(rt)
		shared.GET("/ws/alerts", rc.AlertsWS)
	}

	return r
}
