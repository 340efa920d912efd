package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/delivery/http/controllers"
	"unidash-service/internal/app/delivery/http/middlewares"
	"unidash-service/internal/app/delivery/http/routers"
	"unidash-service/internal/app/drivers/database"
	"unidash-service/internal/app/drivers/logger"
	"unidash-service/internal/app/drivers/messaging"
	"unidash-service/internal/app/drivers/storage"
	"unidash-service/internal/app/services/academic/facultyloads"
	"unidash-service/internal/app/services/core/roles"
	"unidash-service/internal/app/services/core/timetable"
	"unidash-service/internal/app/services/shared/diagnosticsqueue"
	"unidash-service/internal/app/services/shared/jwtmanager"
	"unidash-service/internal/app/services/shared/locker"
	"unidash-service/internal/app/services/shared/redis"
	sharedStorage "unidash-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if err := bootstrapingTheApp(workerCtx, bootstrap, accessLog); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	cancelWorkers()
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, accessLog *logrus.Logger) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	// Service token for the academic backend
	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}

	// Faculty loads
	facultyLoadClient := facultyloads.NewFacultyLoadClient(
		internalConfig.Backend.BaseUrl,
		time.Duration(internalConfig.Backend.RequestTimeoutInSeconds)*time.Second,
		jwtManager,
		log,
	)
	cachedFacultyLoadClient := facultyloads.NewCachedFacultyLoadClient(
		facultyLoadClient,
		redisRepository,
		time.Duration(internalConfig.Timetable.LoadCacheTTLInMinutes)*time.Minute,
		log,
	)

	// Storage and diagnostics queue
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	diagnosticsQueue, err := diagnosticsqueue.NewService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.DiagnosticsQueue, log)
	if err != nil {
		return err
	}

	// Timetable
	timetableUsecase := timetable.NewTimetableUsecase(cachedFacultyLoadClient, minioStorage, diagnosticsQueue, internalConfig, log)
	timetableController := controllers.NewTimetableController(log, timetableUsecase, internalConfig)

	worker := timetable.NewWorker(log, internalConfig, lockerService, timetableUsecase)
	worker.Start(ctx)
	bootstrap.WorkerStop = func() {
		worker.Stop()
		if err := diagnosticsQueue.Close(); err != nil {
			log.Warn("Failed to close diagnostics queue channel", zap.Error(err))
		}
	}

	// Roles
	enforcer, err := roles.NewEnforcer(routers.BasePath(internalConfig))
	if err != nil {
		return err
	}
	roleUsecase := roles.NewCasbinRoleUsecase(enforcer)
	log.Info("Loaded role policy", zap.Strings("roles", roleUsecase.ListRoles(ctx)))

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, roleUsecase, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, accessLog, timetableController)
	return nil
}
