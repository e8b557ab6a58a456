package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/kafka"
	"github.com/Astemirdum/restaurant-reservation/pkg/lock"
	"github.com/Astemirdum/restaurant-reservation/pkg/logger"
	"github.com/Astemirdum/restaurant-reservation/pkg/mongodb"
	"github.com/Astemirdum/restaurant-reservation/reservation/config"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/handler"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/publisher"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/repository"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/server"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "reservation")
	defer log.Sync() //nolint:errcheck

	policy, err := service.ParseBlacklistPolicy(cfg.BlacklistPolicy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.NewMongoDB(ctx, &cfg.Database, repository.Indexes())
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	opts := []service.Option{service.WithBlacklistPolicy(policy)}
	closers := []func(){
		func() {
			if err := mongodb.Close(context.Background(), db); err != nil {
				log.Error("mongodb.Close", zap.Error(err))
			}
		},
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer init %v", err)
		}
		pub := publisher.New(producer, cfg.Kafka.Topic, log)
		opts = append(opts, service.WithPublisher(pub))
		closers = append(closers, func() {
			if err := pub.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		})
	}

	if cfg.Lock.Enabled {
		rdb, err := lock.NewRedisClient(ctx, cfg.Lock)
		if err != nil {
			return fmt.Errorf("redis init %v", err)
		}
		opts = append(opts, service.WithLocker(lock.NewRedisLocker(rdb, cfg.Lock.TTL)))
		closers = append(closers, func() {
			if err := rdb.Close(); err != nil {
				log.Error("redis.Close", zap.Error(err))
			}
		})
	}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	svc := service.NewService(repo, log, opts...)
	h := handler.New(svc, svc, log, handler.WithAllowedOrigin(cfg.Server.AllowedOrigin))

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
