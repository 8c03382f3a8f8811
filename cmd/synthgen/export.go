package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
	"github.com/vaibhaw-/synthgen/internal/synthgen/runner"
	"github.com/vaibhaw-/synthgen/internal/synthgen/sqlload"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Convert a generated CSV into a PostgreSQL/MySQL script",
	RunE:  runSQL,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a generated CSV into PostgreSQL/MySQL",
	RunE:  runLoad,
}

var (
	flagDataset  string
	flagInput    string
	flagDriver   string
	flagSQLOut   string
	flagDatabase string
	flagDSN      string
	flagHost     string
	flagPort     int
	flagUser     string
	flagPassword string
	flagBatch    int
)

func init() {
	for _, c := range []*cobra.Command{sqlCmd, loadCmd} {
		c.Flags().StringVar(&flagDataset, "dataset", "", "dataset: visits|employees (required)")
		c.Flags().StringVar(&flagInput, "input", "", "input CSV (default: the dataset's configured output)")
		c.Flags().StringVar(&flagDriver, "driver", "postgres", "target database: postgres|mysql")
		c.Flags().StringVar(&flagDatabase, "database", "", "database name")
		_ = c.MarkFlagRequired("dataset")
		rootCmd.AddCommand(c)
	}
	sqlCmd.Flags().StringVar(&flagSQLOut, "output", "", "output SQL file (default stdout)")

	loadCmd.Flags().StringVar(&flagDSN, "dsn", "", "full DSN (overrides host/port/user/password/database)")
	loadCmd.Flags().StringVar(&flagHost, "host", "127.0.0.1", "database host")
	loadCmd.Flags().IntVar(&flagPort, "port", 0, "database port (default per driver)")
	loadCmd.Flags().StringVar(&flagUser, "user", "", "database user")
	loadCmd.Flags().StringVar(&flagPassword, "password", "", "database password")
	loadCmd.Flags().IntVar(&flagBatch, "batch", 1000, "rows per transaction")
}

// exportTarget resolves the table and input path for --dataset.
func exportTarget(cfg *config.Config) (sqlload.Table, string, error) {
	var (
		table sqlload.Table
		input string
	)
	switch flagDataset {
	case runner.DatasetVisits:
		table, input = sqlload.VisitsTable(), cfg.Visits.Output
	case runner.DatasetEmployees:
		table, input = sqlload.EmployeesTable(), cfg.Employees.Output
	default:
		return sqlload.Table{}, "", fmt.Errorf("unknown dataset %q (want visits or employees)", flagDataset)
	}
	if flagInput != "" {
		input = flagInput
	}
	return table, input, nil
}

func runSQL(cmd *cobra.Command, args []string) error {
	d, err := sqlload.ParseDialect(flagDriver)
	if err != nil {
		return err
	}
	table, input, err := exportTarget(config.Get())
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	// Output writer
	var out io.Writer
	if flagSQLOut == "" {
		out = cmd.OutOrStdout()
	} else {
		f, err := os.Create(flagSQLOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	n, err := sqlload.WriteScript(out, d, table, csv.NewReader(in), flagDatabase)
	if err != nil {
		return err
	}
	logger.L().Infow("sql script generated", "input", input, "output", flagSQLOut, "driver", string(d), "rows", n)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	d, err := sqlload.ParseDialect(flagDriver)
	if err != nil {
		return err
	}
	table, input, err := exportTarget(config.Get())
	if err != nil {
		return err
	}

	dsn := flagDSN
	if dsn == "" {
		if flagDatabase == "" {
			return fmt.Errorf("--database or --dsn is required")
		}
		port := flagPort
		if port == 0 {
			port = sqlload.DefaultPort(d)
		}
		dsn = sqlload.BuildDSN(d, flagUser, flagPassword, flagHost, port, flagDatabase)
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	db, err := sqlload.Open(cmd.Context(), d, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := sqlload.Load(cmd.Context(), db, d, table, csv.NewReader(in), flagBatch)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows loaded into %s\n", flagDataset, n, d.TableName(table))
	return nil
}
