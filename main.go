// File: tidify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tidify/config"
	"tidify/database"
	"tidify/database/repository"
	"tidify/handlers"
	"tidify/middleware"
	"tidify/routes"
	"tidify/services/booking"
	"tidify/services/notification"
	"tidify/services/user"
	"tidify/services/worker"
	"tidify/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; deployments set the
	// environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.ValidateDatastore(); err != nil {
		logger.Sugar().Fatalf("main: invalid datastore configuration: %v", err)
	}

	// The content repository is the only persistence layer; make sure the
	// three table documents exist before serving.
	store := database.NewStore(database.NewClientFromConfig(&config.AppConfig))
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	err := store.EnsureFiles(bootCtx,
		config.DataUsersPath,
		config.DataWorkersPath,
		config.DataBookingsPath,
	)
	cancelBoot()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize datastore files: %v", err)
	}

	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := repository.NewGitHubUserRepo(store)
	workerRepo := repository.NewGitHubWorkerRepo(store)
	bookingRepo := repository.NewGitHubBookingRepo(store)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	workerService := &worker.DefaultWorkerService{
		Repo: workerRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		WorkerRepo: workerRepo,
		Notifier:   notification.NewDefaultNotificationService(&config.AppConfig),
	}

	// handlers.
	userHandler := &handlers.UserHandler{Service: userService}
	workerHandler := &handlers.WorkerHandler{Service: workerService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService, Users: userService}
	adminHandler := &handlers.AdminHandler{
		Users:    userService,
		Workers:  workerService,
		Bookings: bookingService,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		HealthHandler: handlers.HealthHandler,
		StatsHandler:  handlers.StatsHandler(userService, workerService, bookingService),

		RegisterUserHandler:     userHandler.RegisterHandler,
		AuthenticateUserHandler: userHandler.LoginHandler,
		GetMeHandler:            userHandler.MeHandler,
		LogoutHandler:           userHandler.LogoutHandler,

		ListWorkersHandler:        workerHandler.ListHandler,
		GetWorkerHandler:          workerHandler.GetHandler,
		WorkerAvailabilityHandler: bookingHandler.AvailabilityHandler,
		GetMyWorkerProfileHandler: workerHandler.GetMyProfileHandler,
		SaveWorkerProfileHandler:  workerHandler.SaveProfileHandler,

		CreateBookingHandler: bookingHandler.CreateHandler,
		ListBookingsHandler:  bookingHandler.ListHandler,
		CancelBookingHandler: bookingHandler.CancelHandler,

		AdminUsersHandler:    adminHandler.UsersHandler,
		AdminWorkersHandler:  adminHandler.WorkersHandler,
		AdminBookingsHandler: adminHandler.BookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background dependency probes backing /health.
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	utils.StartHealthMonitor(monitorCtx, store, time.Minute)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
