package config

import "time"

// Config holds runtime configuration for the service.
type Config struct {
	Port string

	// Provider selects the feed source: "fulltime" or "static".
	Provider    string
	FixturesURL string
	ResultsURL  string

	// TrackedTeam is the club whose fixtures the calendar follows.
	TrackedTeam string
	// Timezone is the IANA zone fixture times are quoted in.
	Timezone      string
	UIDPrefix     string
	UIDDomain     string
	CalendarName  string
	EventDuration time.Duration
	// Links are reference URLs appended to every event description.
	Links []string

	// OutputPath, when set, additionally writes the calendar to disk.
	OutputPath string
	StatePath  string

	PollInterval time.Duration
	// RefreshCron, when set, overrides PollInterval with a cron schedule.
	RefreshCron string

	RetryAttempts int
	RetryBackoff  time.Duration

	NtfyTopic string

	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults, then overlays the optional YAML file named by CONFIG_FILE.
func Load() Config {
	cfg := Config{
		Port:          envOrDefault(envPort, defaultPort),
		Provider:      envOrDefault(envProvider, defaultProvider),
		FixturesURL:   envOrDefault(envFixturesURL, ""),
		ResultsURL:    envOrDefault(envResultsURL, ""),
		TrackedTeam:   envOrDefault(envTrackedTeam, ""),
		Timezone:      envOrDefault(envTimezone, defaultTimezone),
		UIDPrefix:     envOrDefault(envUIDPrefix, defaultUIDPrefix),
		UIDDomain:     envOrDefault(envUIDDomain, defaultUIDDomain),
		CalendarName:  envOrDefault(envCalendarName, ""),
		EventDuration: durationEnvOrDefault(envEventDuration, defaultEventDuration),
		OutputPath:    envOrDefault(envOutputPath, ""),
		StatePath:     envOrDefault(envStatePath, defaultStatePath),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		RefreshCron:   envOrDefault(envRefreshCron, ""),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		NtfyTopic:     envOrDefault(envNtfyTopic, ""),
		Metrics:       loadMetrics(),
	}

	if path := envOrDefault(envConfigFile, ""); path != "" {
		cfg = overlayFile(cfg, path)
	}

	if cfg.CalendarName == "" && cfg.TrackedTeam != "" {
		cfg.CalendarName = cfg.TrackedTeam + " Fixtures"
	}
	return cfg
}
