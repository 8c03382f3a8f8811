package runner

import (
	"fmt"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/healthcare"
	"github.com/vaibhaw-/synthgen/internal/synthgen/hr"
	"github.com/vaibhaw-/synthgen/internal/synthgen/vocab"
)

// Dataset names.
const (
	DatasetVisits    = "visits"
	DatasetEmployees = "employees"
)

// VisitsJob builds the healthcare visits job from cfg.
func VisitsJob(cfg *config.Config, v *vocab.Vocabulary, seed int64) (Job, error) {
	start, end, err := cfg.Visits.Window()
	if err != nil {
		return Job{}, fmt.Errorf("visits window: %w", err)
	}
	g, err := healthcare.NewGenerator(healthcare.Options{
		Start:    start,
		End:      end,
		Patients: cfg.Visits.PatientPool(),
		Seed:     seed,
	}, v)
	if err != nil {
		return Job{}, fmt.Errorf("visits generator: %w", err)
	}
	return Job{
		Dataset:   DatasetVisits,
		Output:    cfg.Visits.Output,
		Rows:      cfg.Visits.Rows,
		ChunkSize: cfg.Generation.ChunkSize,
		Seed:      seed,
		Source:    g,
		Progress:  cfg.Generation.Progress,
		RunLog:    cfg.Logging.RunLog,
	}, nil
}

// EmployeesJob builds the HR employees job from cfg.
func EmployeesJob(cfg *config.Config, v *vocab.Vocabulary, seed int64) (Job, error) {
	start, end, err := cfg.Employees.Window()
	if err != nil {
		return Job{}, fmt.Errorf("employees window: %w", err)
	}
	g, err := hr.NewGenerator(hr.Options{Start: start, End: end, Seed: seed}, v)
	if err != nil {
		return Job{}, fmt.Errorf("employees generator: %w", err)
	}
	return Job{
		Dataset:   DatasetEmployees,
		Output:    cfg.Employees.Output,
		Rows:      cfg.Employees.Rows,
		ChunkSize: cfg.Generation.ChunkSize,
		Seed:      seed,
		Source:    g,
		Progress:  cfg.Generation.Progress,
		RunLog:    cfg.Logging.RunLog,
	}, nil
}

// LoadVocabulary returns the vocabulary named by cfg.VocabFile, or the defaults.
func LoadVocabulary(cfg *config.Config) (*vocab.Vocabulary, error) {
	if cfg.VocabFile == "" {
		return vocab.Default(), nil
	}
	return vocab.LoadFile(cfg.VocabFile)
}
