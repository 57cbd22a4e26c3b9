package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	contentHTTP "batilink/internal/controller/http"
	"batilink/internal/feedcache"
	"batilink/internal/repo/persistent"
	"batilink/internal/usecase"
	"batilink/internal/worker"
	"batilink/pkg/config"
	"batilink/pkg/jwt"
	"batilink/pkg/logger"
	"batilink/pkg/middleware"
	"batilink/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "batilink/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	contentRepo := persistent.NewContentRepository(db)
	tagRepo := persistent.NewTagRepository(db)
	mediaRepo := persistent.NewMediaRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	legalRepo := persistent.NewLegalRepository(db)
	userRepo := persistent.NewUserRepository(db)

	feedCache := feedcache.New(feedcache.DefaultTTL)

	// Initialize use cases
	contentUseCase := usecase.NewContentUseCase(contentRepo, tagRepo, mediaRepo, feedCache, log)
	tagUseCase := usecase.NewTagUseCase(tagRepo, feedCache)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, contentRepo)
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, s3Client, log)
	legalUseCase := usecase.NewLegalUseCase(legalRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService)

	// Background jobs
	ingestor := worker.NewRSSIngestor(legalUseCase, cfg.LegalFeedURL, "legifrance", log)
	summarizer := worker.NewSummarizerWorker(
		legalUseCase,
		worker.NewChatSummarizer(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, ""),
		log,
	)
	purger := worker.NewMediaPurger(mediaUseCase, log)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if cfg.WorkersEnabled {
		worker.NewRunner(ingestor, summarizer, purger, log).Start(workerCtx)
	}

	// Initialize HTTP handlers
	contentHandler := contentHTTP.NewContentHandler(contentUseCase, log)
	tagHandler := contentHTTP.NewTagHandler(tagUseCase, log)
	commentHandler := contentHTTP.NewCommentHandler(commentUseCase, log)
	mediaHandler := contentHTTP.NewMediaHandler(mediaUseCase, log)
	legalHandler := contentHTTP.NewLegalHandler(legalUseCase, ingestor, summarizer, cfg.InternalIngestKey, log)
	authHandler := contentHTTP.NewAuthHandler(authUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/content", contentHandler.GetFeed)
		public.GET("/content/:id", contentHandler.GetContent)
		public.GET("/content/:id/comments", commentHandler.ListComments)
		public.GET("/tags", tagHandler.ListTags)
		public.GET("/tags/:tagId/links", tagHandler.ListTagEntities)
		public.GET("/legal-articles", legalHandler.ListArticles)
		public.GET("/legal-articles/:id", legalHandler.GetArticle)

		public.POST("/internal/legal/ingest", legalHandler.RunIngest)
		public.POST("/internal/legal/run-summarizer", legalHandler.RunSummarizer)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.POST("/content", contentHandler.CreatePost)
		api.DELETE("/content/:id/media/:mediaId", contentHandler.RemoveMedia)
		api.PATCH("/content/:id/media/reorder", contentHandler.ReorderMedia)
		api.PATCH("/content/:id/media/cover", contentHandler.SetCover)

		api.POST("/content/:id/comments", commentHandler.CreateComment)

		api.POST("/media", mediaHandler.UploadMedia)
		api.GET("/media", mediaHandler.ListMyMedia)

		api.POST("/tags", tagHandler.CreateTag)
		api.POST("/tags/links", tagHandler.LinkTag)
		api.DELETE("/tags/links/:linkId", tagHandler.UnlinkTag)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Batilink API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Batilink API exited")
}
