package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/vaibhaw-/synthgen/internal/synthgen/csvout"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

// Job describes one dataset written to one CSV file.
type Job struct {
	Dataset   string
	Output    string
	Rows      int
	ChunkSize int
	Seed      int64
	Source    csvout.Source

	// Progress enables a progress bar on ProgressWriter (stderr when nil).
	Progress       bool
	ProgressWriter io.Writer

	// RunLog, when set, receives one JSON line per finished job.
	RunLog string
}

type Summary struct {
	RunID      string `json:"run_id"`
	Timestamp  string `json:"timestamp"`
	Dataset    string `json:"dataset"`
	Output     string `json:"output"`
	Rows       int    `json:"rows"`
	Bytes      int64  `json:"bytes"`
	Size       string `json:"size"`
	Seed       int64  `json:"seed"`
	DurationMs int64  `json:"duration_ms"`
}

// countingWriter tracks bytes passed through to the file.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func appendRunLog(path string, summary Summary) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	return enc.Encode(summary)
}

func newProgressBar(job Job) *progressbar.ProgressBar {
	w := job.ProgressWriter
	if w == nil {
		w = os.Stderr
	}
	return progressbar.NewOptions(job.Rows,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(job.Dataset),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}

// Run writes job.Rows records from job.Source to job.Output.
// The output file is created (or truncated) and its directory made if missing.
func Run(ctx context.Context, job Job) (Summary, error) {
	log := logger.L()
	if job.Source == nil {
		return Summary{}, fmt.Errorf("%s: no source", job.Dataset)
	}
	if job.Output == "" {
		return Summary{}, fmt.Errorf("%s: no output path", job.Dataset)
	}

	runID := uuid.NewString()
	started := time.Now()
	log.Infow("generation started",
		"run_id", runID,
		"dataset", job.Dataset,
		"rows", job.Rows,
		"chunk_size", job.ChunkSize,
		"seed", job.Seed,
		"output", job.Output)

	if dir := filepath.Dir(job.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(job.Output)
	if err != nil {
		return Summary{}, fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	cw := &countingWriter{w: f}

	opts := csvout.Options{Rows: job.Rows, ChunkSize: job.ChunkSize}
	var bar *progressbar.ProgressBar
	if job.Progress {
		bar = newProgressBar(job)
		opts.Progress = bar.Add
	}

	n, err := csvout.Write(ctx, cw, job.Source, opts)
	if err != nil {
		log.Errorw("generation failed", "run_id", runID, "dataset", job.Dataset, "rows_written", n, "err", err.Error())
		return Summary{}, fmt.Errorf("%s: %w", job.Dataset, err)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if err := f.Close(); err != nil {
		return Summary{}, fmt.Errorf("close output: %w", err)
	}

	summary := Summary{
		RunID:      runID,
		Timestamp:  started.UTC().Format(time.RFC3339),
		Dataset:    job.Dataset,
		Output:     job.Output,
		Rows:       n,
		Bytes:      cw.n,
		Size:       humanize.Bytes(uint64(cw.n)),
		Seed:       job.Seed,
		DurationMs: time.Since(started).Milliseconds(),
	}
	log.Infow("generation complete",
		"run_id", runID,
		"dataset", job.Dataset,
		"rows", n,
		"size", summary.Size,
		"duration_ms", summary.DurationMs)

	if job.RunLog != "" {
		if err := appendRunLog(job.RunLog, summary); err != nil {
			log.Warnw("failed to append run log", "path", job.RunLog, "err", err.Error())
		}
	}
	return summary, nil
}
