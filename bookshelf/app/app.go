package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/config"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/handler"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/repository"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/server"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/service"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/service/googlebooks"
	"github.com/akmurmu82/library-management-app/bookshelf/migrations"
	"github.com/akmurmu82/library-management-app/pkg/circuit_breaker"
	"github.com/akmurmu82/library-management-app/pkg/kafka"
	"github.com/akmurmu82/library-management-app/pkg/logger"
	"github.com/akmurmu82/library-management-app/pkg/postgres"
	"github.com/akmurmu82/library-management-app/pkg/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log, err := logger.NewLogger(cfg.Log, "bookshelf")
	if err != nil {
		return errors.Wrap(err, "logger init")
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		return errors.Wrap(err, "session")
	}

	opts := []service.Option{
		service.WithBookFinder(googlebooks.NewService(
			log.Named("googlebooks"), cfg.GoogleBooks, circuit_breaker.NewFromConfig(cfg.CircuitBreaker))),
	}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		events := kafka.NewEventProducer(producer, cfg.Kafka.Topic)
		defer func() {
			if err := events.Close(); err != nil {
				log.Warn("kafka producer close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithEventPublisher(events))
		log.Info("publishing library events", zap.String("topic", cfg.Kafka.Topic))
	}
	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, sessions, log,
		handler.WithAllowOrigins(cfg.CORS.AllowOrigins),
		handler.WithAdminKey(cfg.Admin.Key),
	)
	if cfg.Admin.Key == "" {
		log.Info("ADMIN_KEY is not set, catalog administration is disabled")
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "server")
	}
	log.Info("Graceful shutdown finished")
	return nil
}
