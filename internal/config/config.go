package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config path.
const EnvPath = "AFFECTD_CONFIG"

// DefaultPath is read when EnvPath is unset.
const DefaultPath = "config/affectd.yaml"

// Table sources.
const (
	SourceYAML     = "yaml"
	SourceTSV      = "tsv"
	SourcePostgres = "postgres"
)

// Affectd holds all configuration for the affect host.
type Affectd struct {
	LogLevel string `yaml:"log_level"`

	// Tick loop
	TickRate          time.Duration `yaml:"tick_rate"`
	Workers           int           `yaml:"workers"`            // 0 = runtime.NumCPU()
	ParallelThreshold int           `yaml:"parallel_threshold"` // actors before parallel update
	HudSyncInterval   time.Duration `yaml:"hud_sync_interval"`

	Tables   TablesConfig   `yaml:"tables"`
	Database DatabaseConfig `yaml:"database"`

	Scenario Scenario `yaml:"scenario"`
}

// TablesConfig selects where affect tables are read from.
type TablesConfig struct {
	Source       string `yaml:"source"` // yaml | tsv | postgres
	YAMLPath     string `yaml:"yaml_path"`
	TSVDir       string `yaml:"tsv_dir"`
	ResistPrefix string `yaml:"resist_prefix"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	Migrate      bool `yaml:"migrate"`        // apply migrations on start
	SeedFromYAML bool `yaml:"seed_from_yaml"` // replace db tables with tables.yaml_path
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Scenario is a scripted demo: actors spawned at start and timed events.
type Scenario struct {
	Duration time.Duration   `yaml:"duration"` // 0 = run until interrupted
	Actors   []ScenarioActor `yaml:"actors"`
	Events   []ScenarioEvent `yaml:"events"`
}

// ScenarioActor is spawned when the scenario starts.
type ScenarioActor struct {
	Name  string             `yaml:"name"`
	Npc   bool               `yaml:"npc"`
	X     float64            `yaml:"x"`
	Y     float64            `yaml:"y"`
	Z     float64            `yaml:"z"`
	Stats map[string]float64 `yaml:"stats"`
	Hud   bool               `yaml:"hud"` // log a HUD for this actor
}

// Scenario actions.
const (
	ActionApply  = "apply"
	ActionRemove = "remove"
	ActionDispel = "dispel"
)

// ScenarioEvent fires once when the scenario clock reaches At.
type ScenarioEvent struct {
	At     time.Duration `yaml:"at"`
	Actor  string        `yaml:"actor"`
	Action string        `yaml:"action"`

	AffectUID        int           `yaml:"affect_uid"`
	Source           string        `yaml:"source"`
	ValueMultiplier  float64       `yaml:"value_multiplier"`
	DurationOverride time.Duration `yaml:"duration_override"`
	SkillLevel       int           `yaml:"skill_level"`

	DispelType  string   `yaml:"dispel_type"`
	MaxRemove   int      `yaml:"max_remove"`
	RequireTags []string `yaml:"require_tags"`
	ExcludeTags []string `yaml:"exclude_tags"`
}

// Default returns the configuration used when no file exists.
func Default() Affectd {
	return Affectd{
		LogLevel:          "info",
		TickRate:          50 * time.Millisecond,
		ParallelThreshold: 1000,
		HudSyncInterval:   100 * time.Millisecond,
		Tables: TablesConfig{
			Source:       SourceYAML,
			YAMLPath:     "tables/affects.yaml",
			TSVDir:       "tables/tsv",
			ResistPrefix: "RESIST_",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "affectd",
			Password: "affectd",
			DBName:   "affectd",
			SSLMode:  "disable",
			Migrate:  true,
		},
	}
}

// Path returns the config path from EnvPath or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads the config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Affectd, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values the host cannot run with.
func (c Affectd) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %s", c.TickRate))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	switch c.Tables.Source {
	case SourceYAML:
		if c.Tables.YAMLPath == "" {
			errs = append(errs, errors.New("tables.yaml_path is required for yaml source"))
		}
	case SourceTSV:
		if c.Tables.TSVDir == "" {
			errs = append(errs, errors.New("tables.tsv_dir is required for tsv source"))
		}
	case SourcePostgres:
		if c.Database.SeedFromYAML && c.Tables.YAMLPath == "" {
			errs = append(errs, errors.New("tables.yaml_path is required for seed_from_yaml"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown tables.source %q", c.Tables.Source))
	}

	names := make(map[string]struct{}, len(c.Scenario.Actors))
	for i, a := range c.Scenario.Actors {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("scenario.actors[%d]: name is required", i))
			continue
		}
		if _, dup := names[a.Name]; dup {
			errs = append(errs, fmt.Errorf("scenario.actors[%d]: duplicate name %q", i, a.Name))
		}
		names[a.Name] = struct{}{}
	}

	for i, e := range c.Scenario.Events {
		if _, ok := names[e.Actor]; !ok {
			errs = append(errs, fmt.Errorf("scenario.events[%d]: unknown actor %q", i, e.Actor))
		}
		if e.Source != "" {
			if _, ok := names[e.Source]; !ok {
				errs = append(errs, fmt.Errorf("scenario.events[%d]: unknown source %q", i, e.Source))
			}
		}
		switch e.Action {
		case ActionApply, ActionRemove:
			if e.AffectUID <= 0 {
				errs = append(errs, fmt.Errorf("scenario.events[%d]: affect_uid is required for %s", i, e.Action))
			}
		case ActionDispel:
		default:
			errs = append(errs, fmt.Errorf("scenario.events[%d]: unknown action %q", i, e.Action))
		}
	}

	return errors.Join(errs...)
}
