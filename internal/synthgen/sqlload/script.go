package sqlload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

// sqlEscape escapes single quotes for safe inline SQL generation.
func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// literal renders one CSV cell as an SQL literal. Empty cells of
// non-text columns become NULL.
func literal(c Column, v string) (string, error) {
	if v == "" && c.Kind != KindText {
		return "NULL", nil
	}
	switch c.Kind {
	case KindBool:
		b, err := parseBool(v)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", c.Name, err)
		}
		if b {
			return "TRUE", nil
		}
		return "FALSE", nil
	case KindInt, KindDecimal:
		if strings.ContainsFunc(v, func(r rune) bool { return (r < '0' || r > '9') && r != '.' && r != '-' }) {
			return "", fmt.Errorf("column %s: %q is not numeric", c.Name, v)
		}
		return v, nil
	default:
		return "'" + sqlEscape(v) + "'", nil
	}
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "t", "1", "yes":
		return true, nil
	case "false", "f", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", v)
}

// readHeader consumes the CSV header and checks it against t.
func readHeader(r *csv.Reader, t Table) error {
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	got := make([]string, len(header))
	for i, h := range header {
		got[i] = snake(h)
	}
	if !slices.Equal(got, t.ColumnNames()) {
		return fmt.Errorf("csv header %v does not match table %s", header, t.Name)
	}
	return nil
}

// WriteScript converts the CSV in r into an SQL script for d: DDL, one
// INSERT per row, then indexes. It returns the number of rows written.
func WriteScript(w io.Writer, d Dialect, t Table, r *csv.Reader, database string) (int, error) {
	log := logger.L()
	if err := readHeader(r, t); err != nil {
		return 0, err
	}

	// Header with import instructions
	if d == Postgres {
		fmt.Fprintf(w, "-- Generated SQL for PostgreSQL\n")
		fmt.Fprintf(w, "-- Import with: psql -U <user> -d %s -f <file>\n\n", database)
	} else {
		fmt.Fprintf(w, "-- Generated SQL for MySQL\n")
		fmt.Fprintf(w, "-- Import with: mysql -u <user> -p %s < <file>\n\n", database)
		if database != "" {
			fmt.Fprintf(w, "USE %s;\n\n", database)
		}
	}
	for _, stmt := range d.DDL(t) {
		fmt.Fprintf(w, "%s;\n", stmt)
	}
	fmt.Fprintln(w)

	table := d.TableName(t)
	cols := d.columnList(t.ColumnNames())
	vals := make([]string, len(t.Columns))
	n := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("read row %d: %w", n+1, err)
		}
		if len(rec) != len(t.Columns) {
			return n, fmt.Errorf("row %d has %d columns, want %d", n+1, len(rec), len(t.Columns))
		}
		for i, c := range t.Columns {
			if vals[i], err = literal(c, rec[i]); err != nil {
				return n, fmt.Errorf("row %d: %w", n+1, err)
			}
		}
		if _, err := fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n", table, cols, strings.Join(vals, ",")); err != nil {
			return n, fmt.Errorf("write row %d: %w", n+1, err)
		}
		n++
	}
	fmt.Fprintf(w, "\n-- Inserted %d rows into %s\n\n", n, table)

	for _, stmt := range d.IndexDDL(t) {
		fmt.Fprintf(w, "%s;\n", stmt)
	}
	if _, err := fmt.Fprintln(w, "\n-- Indexes created"); err != nil {
		return n, fmt.Errorf("write script: %w", err)
	}
	log.Debugw("sql script written", "table", table, "rows", n, "driver", string(d))
	return n, nil
}
