package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Timezone != "Europe/London" {
		t.Fatalf("unexpected timezone %s", cfg.Timezone)
	}
	if cfg.EventDuration != 2*time.Hour {
		t.Fatalf("unexpected event duration %v", cfg.EventDuration)
	}
	if cfg.PollInterval != 30*time.Minute {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.RetryAttempts != 3 {
		t.Fatalf("unexpected retry attempts %d", cfg.RetryAttempts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envTrackedTeam, "Poole Town FC Wessex U18 Colts")
	t.Setenv(envPollInterval, "5m")
	t.Setenv(envEventDuration, "105m")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port override ignored: %s", cfg.Port)
	}
	if cfg.TrackedTeam != "Poole Town FC Wessex U18 Colts" {
		t.Fatalf("tracked team override ignored: %s", cfg.TrackedTeam)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("poll interval override ignored: %v", cfg.PollInterval)
	}
	if cfg.EventDuration != 105*time.Minute {
		t.Fatalf("event duration override ignored: %v", cfg.EventDuration)
	}
	if cfg.CalendarName != "Poole Town FC Wessex U18 Colts Fixtures" {
		t.Fatalf("derived calendar name wrong: %s", cfg.CalendarName)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	cfg := Load()
	if cfg.PollInterval != 30*time.Minute {
		t.Fatalf("expected default on invalid duration, got %v", cfg.PollInterval)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tracked_team: "Poole Town FC Wessex U18 Colts"
timezone: "Europe/London"
uid_prefix: "ptfc-u18"
uid_domain: "poole-town"
refresh_cron: "0 7 * * *"
links:
  - "League Table: https://example.com/table"
  - "Results: https://example.com/results"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg := Load()
	if cfg.UIDPrefix != "ptfc-u18" || cfg.UIDDomain != "poole-town" {
		t.Fatalf("yaml uid settings ignored: %s@%s", cfg.UIDPrefix, cfg.UIDDomain)
	}
	if cfg.RefreshCron != "0 7 * * *" {
		t.Fatalf("yaml cron ignored: %s", cfg.RefreshCron)
	}
	if len(cfg.Links) != 2 {
		t.Fatalf("yaml links ignored: %v", cfg.Links)
	}
}

func TestLoadEnvBeatsMissingYAMLFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("uid_prefix: file-prefix\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envUIDDomain, "env-domain")

	cfg := Load()
	if cfg.UIDPrefix != "file-prefix" {
		t.Fatalf("yaml field ignored: %s", cfg.UIDPrefix)
	}
	if cfg.UIDDomain != "env-domain" {
		t.Fatalf("env field lost: %s", cfg.UIDDomain)
	}
}

func TestMissingConfigFileIgnored(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("missing file must not break defaults")
	}
}

func TestBoolEnvParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true}, {"true", true}, {"YES", true},
		{"0", false}, {"false", false}, {"no", false},
		{"maybe", true}, {"", true},
	}
	for _, tc := range cases {
		t.Setenv(envMetricsOn, tc.raw)
		if got := boolEnvOrDefault(envMetricsOn, true); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
