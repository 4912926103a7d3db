package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bid-tracking-api/internal/config"
	"bid-tracking-api/internal/controller"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/external/restclient"
	"bid-tracking-api/internal/repo"
	"bid-tracking-api/internal/service"
	"bid-tracking-api/pkg/http_server"
	"bid-tracking-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

func runMigrations(logger *logrus.Logger, migrationUrl string, dbConn string) {
	migrations, err := migrate.New(migrationUrl, dbConn)
	if err != nil {
		logger.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("no change made by migration scripts")
		} else {
			logger.Fatal(err)
		}
	}
}

// startScheduler runs a pipeline pass on a fixed interval in a single
// goroutine, so at most one pass of each kind is ever active.
func startScheduler(ctx context.Context, logger *logrus.Logger, name string, interval time.Duration, pass func(context.Context) error) {
	if interval <= 0 {
		logger.WithField("job", name).Info("scheduler disabled")

		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := pass(ctx); err != nil {
					logger.WithField("job", name).WithError(err).Error("scheduled pass failed")
				}
			}
		}
	}()
}

func Run() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("cannot load config: ", err)
	}

	logger.Info("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		logger.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	logger.Info("Running migrations...")
	runMigrations(logger, cfg.MigrationUrl, cfg.PostgresConn)

	repositories := repo.NewRepositories(postgresDB)
	adapters := &external.Adapters{
		Calendar: restclient.NewCalendarClient(cfg.CalendarBaseUrl),
		Storage:  restclient.NewStorageClient(cfg.StorageBaseUrl),
		Notifier: restclient.NewNotifierClient(cfg.NotifierWebhookUrl),
		Listings: restclient.NewListingClient(cfg.ListingBaseUrl),
	}
	services := service.NewServices(repositories, adapters, logger)
	handler := echo.New()

	logger.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, cfg.AllowedEmailDomain)

	schedulerCtx, stopSchedulers := context.WithCancel(context.Background())
	defer stopSchedulers()

	startScheduler(schedulerCtx, logger, "sync", cfg.SyncInterval, func(ctx context.Context) error {
		_, err := services.Sync.Run(ctx)

		return err
	})
	startScheduler(schedulerCtx, logger, "discovery", cfg.PollInterval, func(ctx context.Context) error {
		_, err := services.Discovery.Poll(ctx)

		return err
	})

	logger.Info("Starting server on ", cfg.ServerAddress)
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		logger.Fatal("Notify error: ", err)
	}

	logger.Info("Shutting down...")
	stopSchedulers()
	if err := httpServer.Shutdown(); err != nil {
		logger.Fatal("Shutdown error: ", err)
	}

	logger.Info("Successful shutdown")
}
