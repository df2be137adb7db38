package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	bookingRepo "medibook/database/repository/booking"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/notification"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctors := doctorRepo.NewMongoDoctorRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	notifier := notification.NewAsynqNotificationService()
	scheduleService := &schedule.DefaultScheduleService{
		Doctors:      doctors,
		Bookings:     bookings,
		Notifier:     notifier,
		Clock:        schedule.NewRealClock(),
		Policy:       noticePolicyFromConfig(),
		SlotMinutes:  config.AppConfig.SlotDurationMinutes,
		Search:       searchConfigFromConfig(),
		StorageLimit: timeoutsFromConfig(),
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, utils.GetCacheClient(), logger)
	bookingHandler := handlers.NewBookingHandler(scheduleService, logger)

	routes.RegisterScheduleRoutes(router, scheduleHandler, bookingHandler)

	// Background workers and monitors.
	cron.InitNotificationWorker()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

func noticePolicyFromConfig() schedule.NoticePolicy {
	policy := schedule.DefaultNoticePolicy()
	if h := config.AppConfig.SameDayLeadHours; h > 0 {
		policy.SameDayLead = time.Duration(h) * time.Hour
	}
	if h := config.AppConfig.NextDayMorningLeadHours; h > 0 {
		policy.NextDayMorningLead = time.Duration(h) * time.Hour
	}
	return policy
}

func searchConfigFromConfig() schedule.SearchConfig {
	search := schedule.DefaultSearchConfig()
	if d := config.AppConfig.SuggestionMaxDaysAhead; d > 0 {
		search.MaxDaysAhead = d
	}
	if n := config.AppConfig.SuggestionMaxResults; n > 0 {
		search.MaxResults = n
	}
	return search
}

func timeoutsFromConfig() schedule.Timeouts {
	limits := schedule.DefaultTimeouts()
	if s := config.AppConfig.BatchCheckTimeout; s > 0 {
		limits.BatchCheck = time.Duration(s) * time.Second
	}
	if s := config.AppConfig.SingleCheckTimeout; s > 0 {
		limits.SingleCheck = time.Duration(s) * time.Second
	}
	return limits
}
