package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML overlay shape. Only non-zero fields override the
// environment-derived values, so the file can stay minimal.
type fileConfig struct {
	Provider      string   `yaml:"provider"`
	FixturesURL   string   `yaml:"fixtures_url"`
	ResultsURL    string   `yaml:"results_url"`
	TrackedTeam   string   `yaml:"tracked_team"`
	Timezone      string   `yaml:"timezone"`
	UIDPrefix     string   `yaml:"uid_prefix"`
	UIDDomain     string   `yaml:"uid_domain"`
	CalendarName  string   `yaml:"calendar_name"`
	EventDuration string   `yaml:"event_duration"`
	Links         []string `yaml:"links"`
	OutputPath    string   `yaml:"output_path"`
	StatePath     string   `yaml:"state_path"`
	RefreshCron   string   `yaml:"refresh_cron"`
	NtfyTopic     string   `yaml:"ntfy_topic"`
}

func overlayFile(cfg Config, path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// A named-but-missing file is ignored; env values stand.
		return cfg
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg
	}

	setIf(&cfg.Provider, fc.Provider)
	setIf(&cfg.FixturesURL, fc.FixturesURL)
	setIf(&cfg.ResultsURL, fc.ResultsURL)
	setIf(&cfg.TrackedTeam, fc.TrackedTeam)
	setIf(&cfg.Timezone, fc.Timezone)
	setIf(&cfg.UIDPrefix, fc.UIDPrefix)
	setIf(&cfg.UIDDomain, fc.UIDDomain)
	setIf(&cfg.CalendarName, fc.CalendarName)
	setIf(&cfg.OutputPath, fc.OutputPath)
	setIf(&cfg.StatePath, fc.StatePath)
	setIf(&cfg.RefreshCron, fc.RefreshCron)
	setIf(&cfg.NtfyTopic, fc.NtfyTopic)
	if len(fc.Links) > 0 {
		cfg.Links = fc.Links
	}
	if fc.EventDuration != "" {
		if d, err := time.ParseDuration(fc.EventDuration); err == nil && d > 0 {
			cfg.EventDuration = d
		}
	}
	return cfg
}

func setIf(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
