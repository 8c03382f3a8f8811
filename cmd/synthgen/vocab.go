package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/runner"
	"github.com/vaibhaw-/synthgen/internal/synthgen/vocab"
)

var (
	vocabFile string
	dumpFile  string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect and validate reference vocabularies",
}

var vocabValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a vocabulary YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if vocabFile == "" {
			return fmt.Errorf("--file is required")
		}
		v, err := vocab.LoadFile(vocabFile)
		if err != nil {
			return fmt.Errorf("vocabulary validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "vocabulary validated successfully\n")
		fmt.Fprintf(cmd.OutOrStdout(), "departments: %d, diagnoses: %d, hr departments: %d\n",
			len(v.Departments), len(v.Diagnoses), len(v.HRDepartments))
		return nil
	},
}

var vocabDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective vocabulary as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if dumpFile != "" {
			cfg.VocabFile = dumpFile
		}
		v, err := runner.LoadVocabulary(cfg)
		if err != nil {
			return err
		}
		return v.Dump(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabValidateCmd)
	vocabCmd.AddCommand(vocabDumpCmd)

	vocabValidateCmd.Flags().StringVar(&vocabFile, "file", "", "Path to vocabulary YAML file")
	vocabDumpCmd.Flags().StringVar(&dumpFile, "file", "", "Path to vocabulary YAML file (default: config vocab_file)")
	_ = vocabValidateCmd.MarkFlagRequired("file")
}
