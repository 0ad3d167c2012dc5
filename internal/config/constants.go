package config

import "time"

const (
	envPort          = "PORT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envProvider      = "PROVIDER"
	envFixturesURL   = "FIXTURES_URL"
	envResultsURL    = "RESULTS_URL"
	envTrackedTeam   = "TRACKED_TEAM"
	envTimezone      = "FIXTURE_TIMEZONE"
	envUIDPrefix     = "UID_PREFIX"
	envUIDDomain     = "UID_DOMAIN"
	envCalendarName  = "CALENDAR_NAME"
	envEventDuration = "EVENT_DURATION"
	envOutputPath    = "OUTPUT_PATH"
	envStatePath     = "STATE_PATH"
	envPollInterval  = "POLL_INTERVAL"
	envRefreshCron   = "REFRESH_CRON"
	envRetryAttempts = "FEED_RETRY_ATTEMPTS"
	envRetryBackoff  = "FEED_RETRY_BACKOFF"
	envNtfyTopic     = "NTFY_TOPIC"
	envConfigFile    = "CONFIG_FILE"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultProvider    = "static"
	defaultTimezone    = "Europe/London"
	defaultUIDPrefix   = "fixture"
	defaultUIDDomain   = "fixturecal"
	defaultStatePath   = "data/state.json"
	// Conservative default poll interval; the upstream feed updates a few
	// times per day at most.
	defaultPollInterval  = 30 * time.Minute
	defaultEventDuration = 2 * time.Hour
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
)
