package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"innacri/internal/api"
	"innacri/internal/config"
	"innacri/internal/mapview"
	"innacri/internal/monitor"
	"innacri/internal/notify"
	"innacri/internal/service"
	"innacri/internal/storage/redis"
	"innacri/internal/store"
	"innacri/pkg/logger"
)

type Components struct {
	logger *slog.Logger

	HttpServer *api.Server
	Redis      *redis.Redis
	Store      *store.Store
	Monitor    *monitor.Monitor
	Simulator  *monitor.Simulator
	Sender     *notify.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	blob := redis.NewAlertBlob(redisClient)
	flags := redis.NewFlags(redisClient)
	webhookQueue := redis.NewWebhookQueue(redisClient.Client, redis.WebhookQueueKey)

	alertStore := store.NewStore(blob, log)
	if err := alertStore.Sync(ctx, cfg.Sample.Size); err != nil {
		return nil, fmt.Errorf("failed to sync alert store: %w", err)
	}

	renderer, err := mapview.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to init map renderer: %w", err)
	}

	var queue notify.WebhookQueue
	var sender *notify.WebhookSender
	if !cfg.Webhook.Disabled {
		queue = webhookQueue
		sender = notify.NewWebhookSender(log, cfg.Webhook, webhookQueue)
	}

	presenter := notify.NewPresenter(log, queue, cfg.Proximity.RadiusKm)
	mon := monitor.NewMonitor(alertStore, presenter, cfg.Proximity.RadiusKm, cfg.Proximity.CheckInterval, log)
	sim := monitor.NewSimulator(alertStore, presenter, cfg.Proximity.SimulationInterval, log)

	alertSvc := service.NewAlertService(alertStore, renderer, log, cfg.Sample.Size)
	proximitySvc := service.NewProximityService(ctx, mon, sim, presenter, log)
	statsSvc := service.NewStatsService(alertStore)
	tutorialSvc := service.NewTutorialService(flags, log)

	srv := service.NewService(alertSvc, proximitySvc, statsSvc, tutorialSvc)

	httpServer := api.NewServer(cfg, log, srv)
	log.Info("Initialized server")

	return &Components{
		logger:     log,
		HttpServer: httpServer,
		Redis:      redisClient,
		Store:      alertStore,
		Monitor:    mon,
		Simulator:  sim,
		Sender:     sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll(ctx context.Context) {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Simulator.Stop()

	if err := c.Store.Save(ctx); err != nil {
		c.logger.Error("final store save failed", slog.String("err", err.Error()))
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
