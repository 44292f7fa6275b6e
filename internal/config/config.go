package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/naming"
	"github.com/alexanderramin/fuelplan/internal/nutrition"
	"github.com/alexanderramin/fuelplan/internal/scheduler"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Planner PlannerConfig `yaml:"planner"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type PlannerConfig struct {
	MealSlots          []scheduler.MealSlot `yaml:"meal_slots"`
	SlotBufferMin      int                  `yaml:"slot_buffer_min"`
	FallbackTime       string               `yaml:"fallback_time"`
	ReconcileTolerance float64              `yaml:"reconcile_tolerance"`
	NamingTolerance    float64              `yaml:"naming_tolerance"`
}

type ServerConfig struct {
	Addr              string   `yaml:"addr"`
	CORSOrigins       []string `yaml:"cors_origins"`
	ShutdownTimeoutMs int      `yaml:"shutdown_timeout_ms"`
}

type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the built-in planner settings. Logging is off.
func DefaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{
			MealSlots:          scheduler.DefaultSlots(),
			SlotBufferMin:      scheduler.DefaultBufferMin,
			FallbackTime:       scheduler.DefaultFallbackTime,
			ReconcileTolerance: nutrition.DefaultReconcileTolerance,
			NamingTolerance:    naming.DefaultTolerance,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			CORSOrigins:       []string{"*"},
			ShutdownTimeoutMs: 5000,
		},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FUELPLAN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FUELPLAN_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CORSOrigins = origins
	}
	if v := os.Getenv("FUELPLAN_LOG"); v != "" {
		cfg.Log.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FUELPLAN_SLOT_BUFFER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Planner.SlotBufferMin = n
		}
	}
	if v := os.Getenv("FUELPLAN_FALLBACK_TIME"); v != "" {
		cfg.Planner.FallbackTime = v
	}
	applyToleranceEnv(&cfg.Planner.ReconcileTolerance, "FUELPLAN_RECONCILE_TOLERANCE")
	applyToleranceEnv(&cfg.Planner.NamingTolerance, "FUELPLAN_NAMING_TOLERANCE")
}

func applyToleranceEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 || f >= 1 {
		return
	}
	*dst = f
}

// Validate checks the planner settings and returns every problem joined.
func (c *Config) Validate() error {
	errs := c.SchedulerOptions().Validate()
	if t := c.Planner.ReconcileTolerance; t <= 0 || t >= 1 {
		errs = append(errs, fmt.Errorf("planner.reconcile_tolerance must be in (0, 1), got %v", t))
	}
	if t := c.Planner.NamingTolerance; t <= 0 || t >= 1 {
		errs = append(errs, fmt.Errorf("planner.naming_tolerance must be in (0, 1), got %v", t))
	}
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server.addr is required"))
	}
	return errors.Join(errs...)
}

func (c *Config) SchedulerOptions() scheduler.Options {
	slots := make([]scheduler.MealSlot, len(c.Planner.MealSlots))
	copy(slots, c.Planner.MealSlots)
	return scheduler.Options{
		Slots:        slots,
		BufferMin:    c.Planner.SlotBufferMin,
		FallbackTime: c.Planner.FallbackTime,
	}
}

func (c *Config) CalculatorOptions() nutrition.Options {
	return nutrition.Options{ReconcileTolerance: c.Planner.ReconcileTolerance}
}
