package routes

import (
	"github.com/Jared-RS3/food-app-sub002/config"
	"github.com/Jared-RS3/food-app-sub002/controllers"
	"github.com/Jared-RS3/food-app-sub002/logger"
	"github.com/Jared-RS3/food-app-sub002/middlewares"
	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	cache := services.NewCacheService(config.Redis)
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		logger.Warn("push service unavailable", zap.Error(err))
	}
	services.InitNotificationDeps(db, hub, push)

	game := services.NewGamificationService(services.NewGormProfileStore(db))
	feed := services.NewFeedService(db, hub)
	onboarding := services.NewOnboardingService(services.NewGormPreferencesStore(db))
	budget := services.NewBudgetService(db)
	restaurants := services.NewRestaurantService(db, cache, game)
	collections := services.NewCollectionService(db, game, feed)
	checkins := services.NewCheckInService(db, game, feed)
	leaderboard := services.NewLeaderboardService(db, cache)
	geocode := services.NewGeocodeService()

	onboardingCtl := controllers.NewOnboardingController(onboarding, geocode)
	gameCtl := controllers.NewGamificationController(game, leaderboard)
	budgetCtl := controllers.NewBudgetController(budget)
	restCtl := controllers.NewRestaurantController(restaurants)
	collCtl := controllers.NewCollectionController(collections)
	checkinCtl := controllers.NewCheckInController(checkins)
	feedCtl := controllers.NewFeedController(feed)
	deviceCtl := controllers.NewDeviceController(push)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public shared collections
	r.GET("/shared/:token", collCtl.Shared)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)

		user.GET("/route", onboardingCtl.Route)
		user.POST("/feature-tour/complete", onboardingCtl.CompleteFeatureTour)

		user.GET("/notifications", controllers.ListNotifications)
		user.POST("/notifications/read", controllers.MarkNotificationsRead)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/devices", deviceCtl.Register)
	}

	onboardingGroup := r.Group("/onboarding")
	onboardingGroup.Use(middlewares.AuthMiddleware())
	{
		onboardingGroup.POST("/advance", onboardingCtl.Advance)
		onboardingGroup.POST("/complete", onboardingCtl.Complete)
		onboardingGroup.POST("/skip", onboardingCtl.Skip)
	}

	gameGroup := r.Group("/gamification")
	gameGroup.Use(middlewares.AuthMiddleware())
	{
		gameGroup.GET("/summary", gameCtl.Summary)
		gameGroup.POST("/award", gameCtl.Award)
		gameGroup.GET("/leaderboard", gameCtl.TopUsers)
		gameGroup.GET("/rank", gameCtl.MyRank)
	}

	budgetGroup := r.Group("/budgets")
	budgetGroup.Use(middlewares.AuthMiddleware())
	{
		budgetGroup.PUT("/limits", budgetCtl.UpsertLimit)
		budgetGroup.POST("/expenses", budgetCtl.AddExpense)
		budgetGroup.GET("/summary", budgetCtl.Summary)
	}

	restGroup := r.Group("/restaurants")
	restGroup.Use(middlewares.AuthMiddleware())
	{
		restGroup.GET("", restCtl.Discover)
		restGroup.POST("", restCtl.Add)
		restGroup.POST("/:id/favorite", restCtl.ToggleFavorite)
		restGroup.PUT("/:id/must-try", restCtl.SetMustTry)
		restGroup.POST("/:id/checkin", checkinCtl.CheckIn)
		restGroup.POST("/:id/review", checkinCtl.Review)
	}

	favGroup := r.Group("/favorites")
	favGroup.Use(middlewares.AuthMiddleware())
	{
		favGroup.GET("", restCtl.Favorites)
	}

	collGroup := r.Group("/collections")
	collGroup.Use(middlewares.AuthMiddleware())
	{
		collGroup.GET("", collCtl.List)
		collGroup.POST("", collCtl.Create)
		collGroup.POST("/:id/items", collCtl.AddItem)
		collGroup.DELETE("/:id/items", collCtl.RemoveItem)
	}

	feedGroup := r.Group("/feed")
	feedGroup.Use(middlewares.AuthMiddleware())
	{
		feedGroup.GET("", feedCtl.List)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", rtCtl.FeedWS)
	}

	return r
}
