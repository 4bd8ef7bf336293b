package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookassist/config"
	"bookassist/database"
	bookingRepo "bookassist/database/repository/booking"
	"bookassist/handlers"
	"bookassist/middleware"
	"bookassist/models"
	"bookassist/routes"
	"bookassist/services/chat"
	"bookassist/services/llm"
	"bookassist/services/notification"
	"bookassist/services/rag"
	"bookassist/services/tasks"
	"bookassist/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// LLM client; the engine still collects bookings without one, it just
	// loses fuzzy service matching and grounded answers.
	var completer *llm.Client
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := llm.NewClient(context.Background(), key,
			time.Duration(config.AppConfig.LLMTimeoutSeconds)*time.Second)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		completer = client
		defer completer.Close()
	} else {
		logger.Warn("GEMINI_API_KEY not set, running without LLM assistance")
	}

	// Knowledge retrieval for general questions.
	var answerer chat.QueryAnswerer
	if config.AppConfig.QdrantURL != "" && completer != nil {
		retriever, err := rag.NewRetriever(
			config.AppConfig.QdrantURL,
			config.AppConfig.QdrantAPIKey,
			config.AppConfig.QdrantCollection,
			completer,
			config.AppConfig.RagTopK,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize retriever: %v", err)
		}
		defer retriever.Close()
		answerer = &rag.Answerer{
			Retriever:    retriever,
			LLM:          completer,
			Logger:       logger,
			HistoryTurns: 6,
		}
	}

	mailer := notification.NewMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SenderEmail,
		config.AppConfig.SenderPassword,
		models.DefaultServiceCatalog,
		logger,
	)

	reminderOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
	reminders := tasks.NewScheduler(reminderOpts,
		config.AppConfig.DateLayout, config.AppConfig.TimeLayout, logger)
	defer reminders.Close()
	tasks.StartReminderWorker(reminderOpts, mailer, logger)

	// Conversation engine.
	validator := chat.NewValidator(
		config.AppConfig.ServiceTypes,
		config.AppConfig.MinPhoneDigits,
		config.AppConfig.DateLayout,
		config.AppConfig.TimeLayout,
	)
	extractor := &chat.Extractor{
		ServiceTypes: config.AppConfig.ServiceTypes,
		LLMTimeout:   time.Duration(config.AppConfig.LLMTimeoutSeconds) * time.Second,
	}
	if completer != nil {
		extractor.LLM = completer
	}
	flow := &chat.Flow{
		Validator: validator,
		Extractor: extractor,
		Catalog:   models.DefaultServiceCatalog,
		Store:     bookings,
		Notifier:  mailer,
		Reminders: reminders,
		Logger:    logger,
	}
	sessions := chat.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	chatService := chat.NewService(sessions, flow, answerer, logger, config.AppConfig.MaxMemoryMessages)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingRepo: bookings,

		ChatHandler:         handlers.ChatHandler(chatService),
		ResetSessionHandler: handlers.ResetSessionHandler(chatService),

		GetBookingsHandler:         handlers.GetBookingsHandler(bookings),
		GetBookingByIDHandler:      handlers.GetBookingByIDHandler(bookings),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatusHandler(bookings),
		DeleteBookingHandler:       handlers.DeleteBookingHandler(bookings),
		GetBookingStatsHandler:     handlers.GetBookingStatsHandler(bookings),
		GetCustomerHandler:         handlers.GetCustomerHandler(bookings),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	logger.Info("Server exited cleanly")
}
