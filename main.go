// File: serenite/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenite/config"
	"serenite/cron"
	"serenite/database"
	availabilityRepoPkg "serenite/database/repository/availability"
	bookingRepoPkg "serenite/database/repository/booking"
	"serenite/handlers"
	"serenite/middleware"
	"serenite/models"
	"serenite/routes"
	"serenite/services/booking"
	"serenite/services/notification"
	"serenite/services/schedule"
	"serenite/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	engine := &schedule.DefaultScheduleEngine{
		AvailabilityRepo: availabilityRepo,
		BookingRepo:      bookingRepo,
		DefaultWindow: models.TimeWindow{
			Start: config.AppConfig.DefaultDayStart,
			End:   config.AppConfig.DefaultDayEnd,
		},
		StepMinutes: config.AppConfig.SlotStepMinutes,
	}
	cachedEngine := &schedule.CachedEngine{
		Inner: engine,
		Cache: utils.GetCacheClient(),
		TTL:   time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Engine:   cachedEngine,
		Payments: booking.NewStripePaymentHandler(""),
		Reminders: &booking.AsynqReminderScheduler{
			Client: reminderClient,
			Lead:   config.AppConfig.ReminderLeadMinutes,
		},
		Cache: utils.GetCacheClient(),
	}

	cron.InitReminderWorker(notification.LogNotifier{})

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Schedule:     handlers.NewScheduleHandler(cachedEngine),
		Availability: handlers.NewAvailabilityHandler(availabilityRepo, utils.GetCacheClient()),
		Booking:      handlers.NewBookingHandler(bookingService),
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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
