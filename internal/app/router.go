// Package app wires storage, services and handlers into the HTTP router
package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/learnlife319/app/internal/auth/middleware"
	"github.com/learnlife319/app/internal/auth/service"
	"github.com/learnlife319/app/internal/handlers"
	loggerMiddleware "github.com/learnlife319/app/internal/logger/middleware"
	"github.com/learnlife319/app/internal/media"
	"github.com/learnlife319/app/internal/middlewares"
	"github.com/learnlife319/app/internal/repositories"
	"github.com/learnlife319/app/internal/services"
	"github.com/learnlife319/app/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Options holds the dependencies of the router
type Options struct {
	Store          *storage.Store
	MediaDir       string
	Sender         services.MessageSender
	TokenGenerator *service.TokenGenerator
	Metrics        *middlewares.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
	RateLimit      int
	CookieSecure   bool
}

// NewRouter builds the application router with every route under /api
func NewRouter(opts Options) chi.Router {
	logger := opts.Logger

	// Initialize repositories
	userRepo := repositories.NewUserRepository(opts.Store, logger)
	folderRepo := repositories.NewFolderRepository(opts.Store, logger)
	passageRepo := repositories.NewPassageRepository(opts.Store, logger)
	vocabularyRepo := repositories.NewVocabularyRepository(opts.Store, logger)
	writingRepo := repositories.NewWritingRepository(opts.Store, logger)
	speakingRepo := repositories.NewSpeakingRepository(opts.Store, logger)
	feedbackRepo := repositories.NewFeedbackRepository(opts.Store, logger)
	commentRepo := repositories.NewCommentRepository(opts.Store, logger)
	moodRepo := repositories.NewMoodRepository(opts.Store, logger)
	achievementRepo := repositories.NewAchievementRepository(opts.Store, logger)
	lessonRepo := repositories.NewLessonRepository(opts.Store, logger)

	// Initialize services
	targets := services.NewTargetResolver(passageRepo, vocabularyRepo, writingRepo, speakingRepo)
	authService := services.NewAuthService(userRepo, opts.TokenGenerator, logger)
	userService := services.NewUserService(userRepo, logger)
	folderService := services.NewFolderService(folderRepo, userRepo, logger)
	passageService := services.NewPassageService(passageRepo, folderRepo, userRepo, opts.Sender, logger)
	vocabularyService := services.NewVocabularyService(vocabularyRepo, folderRepo, logger)
	writingService := services.NewWritingService(writingRepo, logger)
	speakingService := services.NewSpeakingService(speakingRepo, logger)
	feedbackService := services.NewFeedbackService(feedbackRepo, targets, logger)
	commentService := services.NewCommentService(commentRepo, targets, userRepo, logger)
	moodService := services.NewMoodService(moodRepo, logger)
	achievementService := services.NewAchievementService(achievementRepo, logger)
	lessonService := services.NewLessonService(lessonRepo, logger)
	mediaService := services.NewMediaService(media.NewLocalStorage(opts.MediaDir), logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(logger)
	authHandler := handlers.NewAuthHandler(authService, logger, opts.TokenGenerator.AccessTokenExpiry(), opts.CookieSecure)
	userHandler := handlers.NewUserHandler(userService, logger)
	folderHandler := handlers.NewFolderHandler(folderService, logger)
	passageHandler := handlers.NewPassageHandler(passageService, logger)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService, logger)
	practiceHandler := handlers.NewPracticeHandler(writingService, speakingService, logger)
	commentHandler := handlers.NewCommentHandler(commentService, feedbackService, logger)
	progressHandler := handlers.NewProgressHandler(moodService, achievementService, logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, logger)
	mediaHandler := handlers.NewMediaHandler(mediaService, logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(opts.TokenGenerator, userRepo, logger)
	adminMiddleware := middleware.AdminMiddleware(userRepo, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middlewares.RecoveryMiddleware(logger))
	r.Use(middlewares.CORSMiddleware(opts.AllowedOrigins))
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
	}

	healthHandler.RegisterRoutes(r)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Documented location of the health check under the API base path
		healthHandler.RegisterRoutes(r)

		// Media uploads carry their own body limit
		mediaHandler.RegisterRoutes(r, authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))

			authHandler.RegisterRoutes(r, authMiddleware)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				userHandler.RegisterRoutes(r)
				folderHandler.RegisterRoutes(r)
				passageHandler.RegisterRoutes(r)
				vocabularyHandler.RegisterRoutes(r)
				practiceHandler.RegisterRoutes(r)
				commentHandler.RegisterRoutes(r)
				progressHandler.RegisterRoutes(r)
				lessonHandler.RegisterRoutes(r)

				// Admin routes re-check the stored admin flag on every request
				r.Group(func(r chi.Router) {
					r.Use(adminMiddleware)
					userHandler.RegisterAdminRoutes(r)
				})
			})
		})
	})

	return r
}

// NewServer creates the HTTP server with the timeouts used in production
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
