package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/scoreboard/pkg/app"
	"github.com/ghuser/scoreboard/pkg/config"
	"github.com/ghuser/scoreboard/pkg/database"
	"github.com/ghuser/scoreboard/pkg/events"
	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/pkg/telemetry"
	leaderboardEvents "github.com/ghuser/scoreboard/services/leaderboard/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelProviders, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelProviders.Shutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool, cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Meter:    otelProviders.MeterProvider,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires every leaderboard event handler.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	h, err := newScoreEventHandlers(a.Logger, a.Meter)
	if err != nil {
		return err
	}

	subs := map[string]func(context.Context, *message.Message) error{
		leaderboardEvents.TopicScoreRecorded: h.scoreRecorded,
		leaderboardEvents.TopicScoreDeleted:  h.scoreDeleted,
	}

	topics := make([]string, 0, len(subs))
	for topic := range subs {
		topics = append(topics, topic)
	}
	if err := a.EventBus.InitializeTopics(topics...); err != nil {
		return err
	}

	for topic, handler := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// scoreEventHandlers log the leaderboard's score events and count them per
// topic. Handlers must be idempotent: EventBus retries up to 3x on failure.
type scoreEventHandlers struct {
	log      logger.Logger
	consumed metric.Int64Counter
}

func newScoreEventHandlers(log logger.Logger, mp metric.MeterProvider) (*scoreEventHandlers, error) {
	consumed, err := mp.Meter("github.com/ghuser/scoreboard/cmd/worker").Int64Counter(
		"leaderboard.events.consumed",
		metric.WithDescription("Score events handled by the worker"),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	return &scoreEventHandlers{log: log, consumed: consumed}, nil
}

func (h *scoreEventHandlers) scoreRecorded(ctx context.Context, msg *message.Message) error {
	var evt leaderboardEvents.ScoreRecordedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", leaderboardEvents.TopicScoreRecorded, err)
	}

	h.consumed.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", leaderboardEvents.TopicScoreRecorded)))
	h.log.InfoContext(ctx, "score recorded",
		"event_id", evt.EventID,
		"score_id", evt.ScoreID,
		"player", evt.PlayerName,
		"score", evt.Score,
		"occurred_at", evt.OccurredAt,
	)
	return nil
}

func (h *scoreEventHandlers) scoreDeleted(ctx context.Context, msg *message.Message) error {
	var evt leaderboardEvents.ScoreDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", leaderboardEvents.TopicScoreDeleted, err)
	}

	h.consumed.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", leaderboardEvents.TopicScoreDeleted)))
	h.log.InfoContext(ctx, "score deleted", "event_id", evt.EventID, "score_id", evt.ScoreID)
	return nil
}
