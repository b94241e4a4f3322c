package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"golang.org/x/sync/errgroup"

	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/events"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/mediastore"
	"vidtube/infrastructure/persistence"
	httpHandler "vidtube/interfaces/http"
	"vidtube/server"
	"vidtube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	if err := mongoDb.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoDb.Database(configuration.C.Database.Mongo.Name)

	mediaStore, err := mediastore.NewS3MediaStore(configuration.C.Storage)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Media store initialization failed")
		os.Exit(1)
	}

	// Lifecycle events are best-effort; a missing broker only disables them.
	var pubSubClient *pubsub.Client
	if configuration.C.Pubsub.ProjectID != "" {
		pubSubClient, err = pubsub.NewClient(ctx, configuration.C.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without lifecycle events")
			pubSubClient = nil
		}
	}
	eventTopic := configuration.C.Pubsub.Topic
	if eventTopic == "" {
		eventTopic = "video-events"
	}
	videoEvents := events.NewVideoEvents(pubSubClient, eventTopic)

	videoRepository := persistence.NewVideoRepository(db)
	statsRepository := persistence.NewChannelStatsRepository(db)
	userRepository := persistence.NewUserRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, mediaStore, videoEvents)
	dashboardUsecase := usecase.NewDashboardUsecase(statsRepository)

	userHandler := httpHandler.NewUserHandler(userUsecase)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUsecase, videoUsecase)

	router := server.InitiateRouter(userHandler, videoHandler, dashboardHandler, userRepository)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoDb.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting MongoDB")
	}
	if pubSubClient != nil {
		_ = pubSubClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
