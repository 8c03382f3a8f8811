// Package csvout streams generated rows to CSV in fixed-size chunks.
package csvout

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

// Source produces rows for one dataset.
type Source interface {
	Header() []string
	Record() []string
}

type Options struct {
	Rows      int
	ChunkSize int
	// Progress, if set, is called with the size of every flushed chunk.
	Progress func(n int) error
}

// Write emits the header and then opts.Rows records, buffering at most
// opts.ChunkSize rows before each flush. It returns the number of rows
// written. The context is checked between chunks.
func Write(ctx context.Context, w io.Writer, src Source, opts Options) (int, error) {
	if opts.Rows < 0 {
		return 0, fmt.Errorf("rows must not be negative, got %d", opts.Rows)
	}
	if opts.ChunkSize < 1 {
		return 0, fmt.Errorf("chunk size must be positive, got %d", opts.ChunkSize)
	}
	log := logger.L()

	cw := csv.NewWriter(w)
	header := src.Header()
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	written := 0
	chunk := make([][]string, 0, min(opts.ChunkSize, opts.Rows))
	for written < opts.Rows {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n := min(opts.ChunkSize, opts.Rows-written)
		chunk = chunk[:0]
		for i := 0; i < n; i++ {
			rec := src.Record()
			if len(rec) != len(header) {
				return written, fmt.Errorf("row %d has %d columns, header has %d", written+i+1, len(rec), len(header))
			}
			chunk = append(chunk, rec)
		}
		// WriteAll flushes.
		if err := cw.WriteAll(chunk); err != nil {
			return written, fmt.Errorf("write chunk at row %d: %w", written+1, err)
		}
		written += n
		log.Debugw("chunk written", "rows", n, "total", written)

		if opts.Progress != nil {
			if err := opts.Progress(n); err != nil {
				return written, fmt.Errorf("progress: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}
	return written, nil
}
