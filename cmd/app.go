package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"innacri/internal/components"
	"innacri/internal/config"
)

func Run() error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}

	logger := components.SetupLogger(cfg.Env)

	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Monitor.Run(ctx)
		logger.Info("proximity monitor stopped")
	}()

	if comps.Sender != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Sender.Run(ctx)
			logger.Info("webhook sender stopped")
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
	defer cancel()

	comps.ShutdownAll(shutdownCtx)
	logger.Info("gracefully shutting down the servers")

	return nil
}
