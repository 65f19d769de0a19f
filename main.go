package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/BojanNestorovic/WalletApp/api"
	"github.com/BojanNestorovic/WalletApp/internal/config"
	"github.com/BojanNestorovic/WalletApp/internal/logging"
	"github.com/BojanNestorovic/WalletApp/internal/operator"
	"github.com/BojanNestorovic/WalletApp/internal/service"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/memory"
)

const numWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("WalletApp starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	var store storage.Store
	switch envConfig.StorageBackend {
	case "memory":
		memStore := memory.NewStore()
		memStore.SeedDefaults()
		store = memStore
		logrus.Warn("running on the in-memory backend, data is not persisted")
	default:
		store, err = storage.NewStorage(envConfig)
		if err != nil {
			logrus.WithError(err).Fatal("storage.NewStorage")
			return
		}
	}

	svc := service.NewService(store)

	delegator := operator.NewOperatorDelegator(store, numWorkers, logger)
	delegator.Start()

	httpRest := &api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Operator: delegator,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(httpRest.Serve)
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpRest.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("HttpServer.Shutdown")
		}

		delegator.Stop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("WalletApp exited with error")
	}
	logrus.Info("WalletApp stopped")
}
