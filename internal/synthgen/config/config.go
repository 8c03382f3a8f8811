package config

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/viper"

	"github.com/vaibhaw-/synthgen/internal/synthgen/healthcare"
)

type GenerationCfg struct {
	Seed      int64 `mapstructure:"seed"`
	ChunkSize int   `mapstructure:"chunk_size"`
	Progress  bool  `mapstructure:"progress"`
}

type VisitsCfg struct {
	Rows      int    `mapstructure:"rows"`
	Patients  int    `mapstructure:"patients"`
	Output    string `mapstructure:"output"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

type EmployeesCfg struct {
	Rows      int    `mapstructure:"rows"`
	Output    string `mapstructure:"output"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

type LoggingCfg struct {
	Level       string `mapstructure:"level"`
	File        string `mapstructure:"file"`
	Development bool   `mapstructure:"development"`
	RunLog      string `mapstructure:"run_log"`
}

type Config struct {
	Generation GenerationCfg `mapstructure:"generation"`
	Visits     VisitsCfg     `mapstructure:"visits"`
	Employees  EmployeesCfg  `mapstructure:"employees"`
	VocabFile  string        `mapstructure:"vocab_file"`
	Logging    LoggingCfg    `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("generation.seed", 0)
	v.SetDefault("generation.chunk_size", 10000)
	v.SetDefault("generation.progress", true)
	v.SetDefault("visits.rows", 100000)
	v.SetDefault("visits.patients", 0)
	v.SetDefault("visits.output", "healthcare_visits.csv")
	v.SetDefault("visits.start_date", "2020-01-01")
	v.SetDefault("visits.end_date", "2024-12-31")
	v.SetDefault("employees.rows", 10000)
	v.SetDefault("employees.output", "hr_employees.csv")
	v.SetDefault("employees.start_date", "2000-01-01")
	v.SetDefault("employees.end_date", "2024-12-31")
	v.SetDefault("vocab_file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.run_log", "")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}

// Validate checks numeric bounds and that both date windows parse.
func (c *Config) Validate() error {
	if c.Generation.ChunkSize < 1 {
		return fmt.Errorf("generation.chunk_size must be positive, got %d", c.Generation.ChunkSize)
	}
	if c.Visits.Rows < 0 {
		return fmt.Errorf("visits.rows must not be negative, got %d", c.Visits.Rows)
	}
	if c.Visits.Patients < 0 {
		return fmt.Errorf("visits.patients must not be negative, got %d", c.Visits.Patients)
	}
	if c.Visits.Patients > healthcare.MaxPatients {
		return fmt.Errorf("visits.patients must be at most %d, got %d", healthcare.MaxPatients, c.Visits.Patients)
	}
	if c.Employees.Rows < 0 {
		return fmt.Errorf("employees.rows must not be negative, got %d", c.Employees.Rows)
	}
	if _, _, err := c.Visits.Window(); err != nil {
		return fmt.Errorf("visits: %w", err)
	}
	if _, _, err := c.Employees.Window(); err != nil {
		return fmt.Errorf("employees: %w", err)
	}
	return nil
}

// Window returns the visit date range.
func (v VisitsCfg) Window() (time.Time, time.Time, error) {
	return window(v.StartDate, v.EndDate)
}

// Window returns the hiring date range.
func (e EmployeesCfg) Window() (time.Time, time.Time, error) {
	return window(e.StartDate, e.EndDate)
}

// PatientPool returns the configured pool size, or a third of the rows when
// unset, capped at healthcare.MaxPatients.
func (v VisitsCfg) PatientPool() int {
	if v.Patients > 0 {
		return v.Patients
	}
	return min(max(v.Rows/3, 1), healthcare.MaxPatients)
}

func window(startS, endS string) (time.Time, time.Time, error) {
	start, err := ParseDate(startS)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(endS)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s is before start_date %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return start, end, nil
}

// ParseDate accepts any layout dateparse understands and truncates to a UTC day.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ResolveSeed returns seed, or a clock-derived seed when it is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
