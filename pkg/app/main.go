package app

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/scoreboard/pkg/database"
	"github.com/ghuser/scoreboard/pkg/events"
	"github.com/ghuser/scoreboard/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each bounded context's route registration during server start-up.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "score recorded", "score_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus     // nil disables domain event publishing
	Meter    metric.MeterProvider // nil falls back to the OTel global

	// ReportError receives unexpected errors returned to API clients.
	ReportError func(error)

	// IsProduction hides 5xx error details from API responses.
	IsProduction bool
}
