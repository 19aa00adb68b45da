package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	cache_adapter "github.com/potenlab/the-potential-backend/internal/adapters/cache"
	token_adapter "github.com/potenlab/the-potential-backend/internal/adapters/jwt"
	logger_adapter "github.com/potenlab/the-potential-backend/internal/adapters/logger"
	postgres_adapter "github.com/potenlab/the-potential-backend/internal/adapters/postgres"
	rabbitmq_adapter "github.com/potenlab/the-potential-backend/internal/adapters/rabbitmq"
	"github.com/potenlab/the-potential-backend/internal/adapters/rest"
	"github.com/potenlab/the-potential-backend/internal/configs"
	"github.com/potenlab/the-potential-backend/internal/constants"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/usecase"
	fluentlogger "github.com/potenlab/the-potential-backend/pkg/fluent_logger"
	"github.com/potenlab/the-potential-backend/pkg/postgres"
	"github.com/potenlab/the-potential-backend/pkg/rabbitmq/rabbitmq_common"
	"github.com/potenlab/the-potential-backend/pkg/rabbitmq/rabbitmq_producer"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitManager *rabbitmq_common.ConnectionManager
	producer      *rabbitmq_producer.Publisher
	fluentClient  *fluent.Fluent
	logger        port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so everything after can report failures properly.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Low-level infrastructure.
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    appConfig.Database.MaxConns,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	queryCache, err := cache_adapter.NewQueryCache(cache_adapter.Config{
		Capacity:           appConfig.Cache.Capacity,
		NumShards:          appConfig.Cache.NumShards,
		TTL:                appConfig.Cache.TTL,
		EvictionPercentage: appConfig.Cache.EvictionPercentage,
	})
	if err != nil {
		appLogger.Error("Failed to create query cache", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}
	unreadCounter := cache_adapter.NewUnreadCounter()

	// Persistence adapters wrapped in their cache decorators.
	expertRepo, err := postgres_adapter.NewExpertRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create expert repository: %w", err)
	}
	collaborationRepo, err := postgres_adapter.NewCollaborationRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create collaboration repository: %w", err)
	}
	notificationRepo, err := postgres_adapter.NewNotificationRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	programRepo, err := postgres_adapter.NewProgramRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create program repository: %w", err)
	}
	postRepo, err := postgres_adapter.NewPostRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}
	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	cachedExperts := cache_adapter.NewCachedExpertRepository(expertRepo, queryCache)
	cachedRequests := cache_adapter.NewCachedCollaborationRepository(collaborationRepo, queryCache)
	cachedPrograms := cache_adapter.NewCachedProgramRepository(programRepo, queryCache)
	cachedPosts := cache_adapter.NewCachedPostRepository(postRepo, queryCache)
	appLogger.Info("All persistence adapters initialized.", nil)

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// RabbitMQ is optional; without it notification events just stay local.
	notificationPublisher := rabbitmq_adapter.NewNoopNotificationPublisher()
	var rabbitManager *rabbitmq_common.ConnectionManager
	var producer *rabbitmq_producer.Publisher
	if appConfig.RabbitMQ.Enabled {
		pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		rabbitManager, err = rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, pkgLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		producer, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.MainExchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   pkgLogger,
		}, rabbitManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ producer", err, nil)
			rabbitManager.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create RabbitMQ producer: %w", err)
		}

		notificationPublisher, err = rabbitmq_adapter.NewNotificationPublisherAdapter(producer)
		if err != nil {
			producer.Close()
			rabbitManager.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create notification publisher: %w", err)
		}
		appLogger.Info("RabbitMQ publisher initialized.", nil)
	}

	// Use cases.
	findExpertsUC := usecase.NewFindExpertsUseCase(cachedExperts)
	getExpertUC := usecase.NewGetExpertDetailsUseCase(cachedExperts)
	upsertProfileUC := usecase.NewUpsertExpertProfileUseCase(cachedExperts)

	createRequestUC := usecase.NewCreateCollaborationRequestUseCase(cachedRequests, cachedExperts, notificationRepo, notificationPublisher, unreadCounter)
	respondRequestUC := usecase.NewRespondCollaborationRequestUseCase(cachedRequests, notificationRepo, notificationPublisher, unreadCounter)
	cancelRequestUC := usecase.NewCancelCollaborationRequestUseCase(cachedRequests)
	listSentUC := usecase.NewListSentRequestsUseCase(cachedRequests)
	listReceivedUC := usecase.NewListReceivedRequestsUseCase(cachedRequests)

	listNotificationsUC := usecase.NewListNotificationsUseCase(notificationRepo)
	markReadUC := usecase.NewMarkNotificationReadUseCase(notificationRepo, unreadCounter)
	markAllReadUC := usecase.NewMarkAllNotificationsReadUseCase(notificationRepo, unreadCounter)
	unreadCountUC := usecase.NewGetUnreadCountUseCase(notificationRepo, unreadCounter)

	findProgramsUC := usecase.NewFindSupportProgramsUseCase(cachedPrograms)

	listPostsUC := usecase.NewListPostsUseCase(cachedPosts)
	getPostUC := usecase.NewGetPostUseCase(cachedPosts)
	createPostUC := usecase.NewCreatePostUseCase(cachedPosts)

	registerUC := usecase.NewRegisterUserUseCase(userRepo)
	loginUC := usecase.NewLoginUserUseCase(userRepo, tokenService, appConfig.JWT.TokenTTL)
	validateTokenUC := usecase.NewValidateTokenUseCase(tokenService)
	appLogger.Info("Use cases wired.", nil)

	// REST API server.
	handlers := rest.Handlers{
		Auth:          rest.NewAuthHandler(registerUC, loginUC),
		Expert:        rest.NewExpertHandler(findExpertsUC, getExpertUC, upsertProfileUC),
		Collaboration: rest.NewCollaborationHandler(createRequestUC, respondRequestUC, cancelRequestUC, listSentUC, listReceivedUC),
		Notification:  rest.NewNotificationHandler(listNotificationsUC, markReadUC, markAllReadUC, unreadCountUC),
		Program:       rest.NewProgramHandler(findProgramsUC),
		Post:          rest.NewPostHandler(listPostsUC, getPostUC, createPostUC),
	}
	authMiddleware := rest.NewAuthMiddleware(validateTokenUC)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins, handlers, authMiddleware, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitManager: rabbitManager,
		producer:      producer,
		fluentClient:  fluentClient,
		logger:        appLogger,
	}, nil
}

// Run starts every component and blocks until a shutdown signal or a
// server error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.producer != nil {
			if err := a.producer.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}
		if a.rabbitManager != nil {
			if err := a.rabbitManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout directly, fluent itself may be gone already
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
