package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"task-manager/backend/config"
	"task-manager/backend/handlers"
	"task-manager/backend/logging"
	"task-manager/backend/middleware"
	"task-manager/backend/repositories"
	"task-manager/backend/services"
	"task-manager/backend/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_LOAD_ERROR, Description: Failed to load configuration: %v", err)
	}

	logging.InitLogger(cfg.Logging)
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting task manager API...")

	if err := run(cfg); err != nil {
		logging.Logger.Fatalf("Event ID: SERVICE_ERROR, Description: %v", err)
	}
	logging.Logger.Info("Event ID: SERVICE_STOPPED, Description: Server stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := connectMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logging.Logger.Errorf("Event ID: DB_DISCONNECT_ERROR, Description: %v", err)
		}
	}()

	db := client.Database(cfg.Mongo.DBName)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	logging.Logger.Info("Event ID: DB_INDEXES_READY, Description: Unique indexes ensured")

	teams := repositories.NewTeamRepository(db)
	projects := repositories.NewProjectRepository(db)
	tasks := repositories.NewTaskRepository(db)
	users := repositories.NewUserRepository(db)
	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	router := handlers.NewRouter(handlers.Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(users, tokens)),
		Teams:    handlers.NewTeamHandler(services.NewTeamService(teams)),
		Projects: handlers.NewProjectHandler(services.NewProjectService(projects, teams)),
		Tasks:    handlers.NewTaskHandler(services.NewTaskService(tasks, projects, teams)),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}),
	}, middleware.NewAuthGate(tokens), cfg.Server.CORSOrigin)

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Infof("Event ID: SERVER_LISTENING, Description: Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	logging.Logger.Info("Event ID: SERVER_SHUTDOWN, Description: Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func connectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping mongo")
	}

	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Connected to MongoDB database %s", cfg.DBName)
	return client, nil
}
