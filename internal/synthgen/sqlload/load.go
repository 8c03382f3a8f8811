package sqlload

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

// insertSQL returns the parameterized INSERT for t.
func insertSQL(d Dialect, t Table) string {
	ph := make([]string, len(t.Columns))
	for i := range ph {
		ph[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.TableName(t), d.columnList(t.ColumnNames()), strings.Join(ph, ", "))
}

// args converts one CSV row into bind arguments. Empty non-text cells are NULL.
func args(t Table, rec []string) ([]any, error) {
	out := make([]any, len(rec))
	for i, c := range t.Columns {
		v := rec[i]
		switch {
		case v == "" && c.Kind != KindText:
			out[i] = nil
		case c.Kind == KindBool:
			b, err := parseBool(v)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", c.Name, err)
			}
			out[i] = b
		default:
			out[i] = v
		}
	}
	return out, nil
}

// Load recreates t in db and inserts every row of r, committing every
// batch rows. It returns the number of rows committed.
func Load(ctx context.Context, db *sql.DB, d Dialect, t Table, r *csv.Reader, batch int) (int, error) {
	log := logger.L()
	if batch < 1 {
		return 0, fmt.Errorf("batch size must be positive, got %d", batch)
	}
	if err := readHeader(r, t); err != nil {
		return 0, err
	}

	for _, stmt := range d.DDL(t) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("ddl %q: %w", firstLine(stmt), err)
		}
	}
	log.Infow("table created", "table", d.TableName(t), "driver", string(d))

	query := insertSQL(d, t)
	committed := 0
	done := false
	for !done {
		n, eof, err := loadBatch(ctx, db, query, t, r, batch, committed)
		if err != nil {
			return committed, err
		}
		committed += n
		done = eof
		if n > 0 {
			log.Debugw("batch committed", "rows", n, "total", committed)
		}
	}

	for _, stmt := range d.IndexDDL(t) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return committed, fmt.Errorf("index %q: %w", stmt, err)
		}
	}
	log.Infow("load complete", "table", d.TableName(t), "rows", committed)
	return committed, nil
}

// loadBatch inserts up to batch rows in one transaction.
func loadBatch(ctx context.Context, db *sql.DB, query string, t Table, r *csv.Reader, batch, offset int) (n int, eof bool, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for n < batch {
		rec, rerr := r.Read()
		if errors.Is(rerr, io.EOF) {
			eof = true
			break
		}
		if rerr != nil {
			return 0, false, fmt.Errorf("read row %d: %w", offset+n+1, rerr)
		}
		a, aerr := args(t, rec)
		if aerr != nil {
			return 0, false, fmt.Errorf("row %d: %w", offset+n+1, aerr)
		}
		if _, err = stmt.ExecContext(ctx, a...); err != nil {
			return 0, false, fmt.Errorf("insert row %d: %w", offset+n+1, err)
		}
		n++
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit: %w", err)
	}
	return n, eof, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
