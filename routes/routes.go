package routes

import (
	"context"
	"net/http"
	"time"

	"logo-lms/config"
	"logo-lms/handlers"
	"logo-lms/helper"
	"logo-lms/logger"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/repositories"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the long-lived resources the router is built from.
// Redis and Avatars are optional.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     redis.UniversalClient
	Blacklist repositories.TokenBlacklist
	Avatars   services.AvatarStore
	Log       *logger.Logger
}

func Setup(deps Deps) (*gin.Engine, error) {
	log := deps.Log
	if log == nil {
		log = logger.New("api")
	}

	h, err := helper.NewHTTPHelper(log.With("http"))
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(deps.DB)
	courseRepo := repositories.NewCourseRepository(deps.DB)
	lessonRepo := repositories.NewLessonRepository(deps.DB)
	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	favoriteRepo := repositories.NewFavoriteRepository(deps.DB)
	purchaseRepo := repositories.NewPurchaseRepository(deps.DB)
	reviewRepo := repositories.NewReviewRepository(deps.DB)
	contentRepo := repositories.NewContentRepository(deps.DB)

	blacklist := deps.Blacklist
	if blacklist == nil {
		blacklist = repositories.NewGormTokenBlacklist(deps.DB)
	}

	// Initialize services
	tokens := services.NewTokenService(deps.Config.JWT)
	authService := services.NewAuthService(userRepo, tokens, blacklist)
	userService := services.NewUserService(userRepo, favoriteRepo, purchaseRepo, deps.Avatars)
	courseService := services.NewCourseService(courseRepo, categoryRepo, favoriteRepo)
	lessonService := services.NewLessonService(lessonRepo, courseRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, courseRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, courseRepo)
	reviewService := services.NewReviewService(reviewRepo, courseRepo, lessonRepo)
	contentService := services.NewContentService(contentRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, h)
	userHandler := handlers.NewUserHandler(userService, h)
	courseHandler := handlers.NewCourseHandler(courseService, purchaseService, h)
	lessonHandler := handlers.NewLessonHandler(lessonService, h)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, h)
	reviewHandler := handlers.NewReviewHandler(reviewService, h)
	contentHandler := handlers.NewContentHandler(contentService, categoryService, h)

	auth := middleware.NewAuth(tokens, h)
	ownerOnly := auth.RequireRole(models.RoleOwner)
	studentOnly := auth.RequireRole(models.RoleStudent)

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log.With("request")), middleware.CORS())

	router.GET("/health", health(deps))

	var limited gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.Redis != nil {
		limited = middleware.RateLimitMiddleware(deps.Redis, h, deps.Config.RateLimitRequests, deps.Config.RateLimitWindow)
	}

	// Auth
	router.POST("/register/", limited, authHandler.Register)
	router.POST("/login/", limited, authHandler.Login)
	router.POST("/token/refresh/", authHandler.Refresh)
	router.POST("/logout/", auth.AuthMiddleware(), authHandler.Logout)

	// Public content
	router.GET("/home/", contentHandler.GetHome)
	router.GET("/whycourse/", contentHandler.GetWhyCourse)
	router.GET("/categories/", contentHandler.GetCategories)

	// Profiles
	users := router.Group("/user", auth.AuthMiddleware())
	{
		users.GET("/", userHandler.GetUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.POST("/:id/avatar", userHandler.UploadAvatar)
	}

	// Courses
	router.GET("/courses/", auth.OptionalAuth(), courseHandler.GetCourses)
	router.GET("/courses/:id", courseHandler.GetCourse)
	router.POST("/courses/buy/", auth.AuthMiddleware(), studentOnly, courseHandler.BuyCourse)
	authoring := router.Group("/courses/create", auth.AuthMiddleware(), ownerOnly)
	{
		authoring.POST("/", courseHandler.CreateCourse)
		authoring.GET("/:id", courseHandler.GetOwnCourse)
		authoring.PUT("/:id", courseHandler.UpdateCourse)
		authoring.DELETE("/:id", courseHandler.DeleteCourse)
	}

	// Lessons
	lessons := router.Group("/lesson/create", auth.AuthMiddleware(), ownerOnly)
	{
		lessons.POST("/", lessonHandler.CreateLesson)
		lessons.GET("/:id", lessonHandler.GetLesson)
		lessons.PUT("/:id", lessonHandler.UpdateLesson)
		lessons.DELETE("/:id", lessonHandler.DeleteLesson)
	}

	// Favorites
	router.GET("/favorite/", auth.AuthMiddleware(), favoriteHandler.GetFavorites)
	router.POST("/favorite/create", auth.AuthMiddleware(), studentOnly, favoriteHandler.AddFavorite)
	router.DELETE("/favorites/remove/:course_id/", auth.AuthMiddleware(), studentOnly, favoriteHandler.RemoveFavorite)

	// Reviews
	router.GET("/reviews/", reviewHandler.GetReviews)
	router.GET("/reviews/:id/", reviewHandler.GetReview)
	router.POST("/reviews/create/", auth.AuthMiddleware(), studentOnly, reviewHandler.CreateReview)
	router.PUT("/reviews/:id/", auth.AuthMiddleware(), studentOnly, reviewHandler.UpdateReview)
	router.DELETE("/reviews/:id/", auth.AuthMiddleware(), studentOnly, reviewHandler.DeleteReview)

	return router, nil
}

func health(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok"}
		healthy := true

		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "unavailable"
			healthy = false
		}
		if deps.Redis != nil {
			status["redis"] = "ok"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = "unavailable"
				healthy = false
			}
		}

		if !healthy {
			status["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["status"] = "healthy"
		c.JSON(http.StatusOK, status)
	}
}
