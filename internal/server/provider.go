package server

import (
	"log/slog"

	"fixturecal/internal/config"
	"fixturecal/internal/feed"
	"fixturecal/internal/feed/fulltime"
	"fixturecal/internal/feed/static"
)

// buildProvider selects the feed source named by the config and wraps it
// with retries. Unknown names fall back to the static provider so the
// service still boots with something to serve.
func buildProvider(cfg config.Config, logger *slog.Logger) feed.Provider {
	var inner feed.Provider
	switch cfg.Provider {
	case "fulltime":
		inner = fulltime.NewClient(fulltime.Config{
			FixturesURL: cfg.FixturesURL,
			ResultsURL:  cfg.ResultsURL,
		})
	case "static", "":
		inner = static.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to static", slog.String("provider", cfg.Provider))
		}
		inner = static.New()
	}
	return feed.NewRetryingProvider(inner, logger, cfg.RetryAttempts, cfg.RetryBackoff)
}
