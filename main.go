package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"camerastore/config"
	"camerastore/cron"
	"camerastore/database"
	bookingRepoPkg "camerastore/database/repository/booking"
	productRepoPkg "camerastore/database/repository/product"
	userRepoPkg "camerastore/database/repository/user"
	"camerastore/handlers"
	"camerastore/middleware"
	"camerastore/routes"
	"camerastore/services/admin"
	"camerastore/services/booking"
	"camerastore/services/notification"
	"camerastore/services/product"
	"camerastore/services/session"
	"camerastore/services/storage"
	"camerastore/services/user"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitAuthCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	storageService := storage.NewStorageService(cld)

	// repositories.
	db := database.DB()
	productRepo := productRepoPkg.NewMongoProductRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// background tasks and events.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	notificationService := notification.NewDefaultNotificationService(queue)

	var publisher notification.EventPublisher = notification.LogPublisher{}
	if url := config.AppConfig.RabbitURL; url != "" {
		rabbit, err := notification.NewRabbitPublisher(url)
		if err != nil {
			logger.Warn("main: rabbitmq unavailable, booking events will only be logged", zap.Error(err))
		} else {
			publisher = rabbit
		}
	}
	worker := cron.StartWorker(publisher, storageService)

	// services.
	sessionManager := session.NewManager(
		session.NewRedisStore(utils.GetAuthCacheClient()),
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.SessionTTLHours)*time.Hour,
	)
	productService := product.NewProductService(
		productRepo,
		storageService,
		notificationService,
		product.NewPricing(config.AppConfig.DisplayRate, config.AppConfig.DisplayCurrency),
	)
	productService.ImageBaseURL = storage.DeliveryBaseURL(config.AppConfig.CloudinaryCloudName)
	bookingService := booking.NewBookingService(bookingRepo, productService, notificationService)
	userService := user.NewUserService(userRepo, sessionManager)
	adminService := admin.NewAdminService(userRepo, productRepo, bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionManager,
		Products: handlers.NewProductHandler(productService, config.AppConfig.MaxUploadMB<<20),
		Bookings: handlers.NewBookingHandler(bookingService),
		Users:    handlers.NewUserHandler(userService),
		Admin:    handlers.NewAdminHandler(adminService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, utils.GetAuthCacheClient(), database.MongoClient)

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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopMonitor()
	worker.Shutdown()
	if err := queue.Close(); err != nil {
		logger.Warn("main: closing task queue", zap.Error(err))
	}
	publisher.Close()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: closing mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
