package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
	"github.com/vaibhaw-/synthgen/internal/synthgen/runner"
)

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Generate healthcare visit records as CSV",
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Generate HR employee records as CSV",
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate both the visits and the employees CSV",
}

var (
	flagRows       int
	flagOutput     string
	flagSeed       int64
	flagChunkSize  int
	flagNoProgress bool
	flagPatients   int
)

func init() {
	// RunE is assigned here rather than in the literals: runGenerate refers
	// back to visitsCmd and employeesCmd, which would be an initialization cycle.
	visitsCmd.RunE = runGenerate(runner.DatasetVisits)
	employeesCmd.RunE = runGenerate(runner.DatasetEmployees)
	allCmd.RunE = runGenerate(runner.DatasetVisits, runner.DatasetEmployees)

	for _, c := range []*cobra.Command{visitsCmd, employeesCmd, allCmd} {
		c.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = from clock)")
		c.Flags().IntVar(&flagChunkSize, "chunk-size", 0, "rows buffered per write")
		c.Flags().BoolVar(&flagNoProgress, "no-progress", false, "disable the progress bar")
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{visitsCmd, employeesCmd} {
		c.Flags().IntVar(&flagRows, "rows", 0, "number of rows to generate")
		c.Flags().StringVar(&flagOutput, "output", "", "output CSV path")
	}
	visitsCmd.Flags().IntVar(&flagPatients, "patients", 0, "size of the patient ID pool")
}

// applyGenerateFlags overrides config with command line flags.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Generation.Seed = flagSeed
	}
	if flags.Changed("chunk-size") {
		cfg.Generation.ChunkSize = flagChunkSize
	}
	if flagNoProgress {
		cfg.Generation.Progress = false
	}
	switch cmd {
	case visitsCmd:
		if flags.Changed("rows") {
			cfg.Visits.Rows = flagRows
		}
		if flagOutput != "" {
			cfg.Visits.Output = flagOutput
		}
		if flags.Changed("patients") {
			cfg.Visits.Patients = flagPatients
		}
	case employeesCmd:
		if flags.Changed("rows") {
			cfg.Employees.Rows = flagRows
		}
		if flagOutput != "" {
			cfg.Employees.Output = flagOutput
		}
	}
	return cfg.Validate()
}

func runGenerate(datasets ...string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if err := applyGenerateFlags(cmd, cfg); err != nil {
			return err
		}
		v, err := runner.LoadVocabulary(cfg)
		if err != nil {
			return err
		}

		seed := config.ResolveSeed(cfg.Generation.Seed)
		if cfg.Generation.Seed == 0 {
			logger.L().Infow("no seed configured, using clock seed", "seed", seed)
		}

		for _, ds := range datasets {
			var job runner.Job
			switch ds {
			case runner.DatasetVisits:
				job, err = runner.VisitsJob(cfg, v, seed)
			case runner.DatasetEmployees:
				job, err = runner.EmployeesJob(cfg, v, seed)
			default:
				err = fmt.Errorf("unknown dataset %q", ds)
			}
			if err != nil {
				return err
			}
			job.ProgressWriter = cmd.ErrOrStderr()

			sum, err := runner.Run(cmd.Context(), job)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows written to %s (%s)\n", sum.Dataset, sum.Rows, sum.Output, sum.Size)
		}
		return nil
	}
}
