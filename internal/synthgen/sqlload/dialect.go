package sqlload

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// Dialect is a supported target database. Its value is the database/sql driver name.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// ParseDialect accepts "postgres"/"postgresql"/"pg" and "mysql".
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	}
	return "", fmt.Errorf("unsupported driver %q (want postgres or mysql)", s)
}

// TableName uses a schema on Postgres and a prefixed table on MySQL.
func (d Dialect) TableName(t Table) string {
	if d == Postgres {
		return t.Schema + "." + t.Name
	}
	return t.Schema + "_" + t.Name
}

// Placeholder returns the i-th (1-based) bind parameter.
func (d Dialect) Placeholder(i int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// Quote quotes an identifier: backticks on MySQL, double quotes on Postgres.
// Column names such as procedure are reserved words on MySQL.
func (d Dialect) Quote(ident string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// columnList quotes cols and joins them with ", ".
func (d Dialect) columnList(cols []string) string {
	q := make([]string, len(cols))
	for i, c := range cols {
		q[i] = d.Quote(c)
	}
	return strings.Join(q, ", ")
}

func (d Dialect) columnType(k ColumnKind) string {
	switch k {
	case KindDate:
		return "DATE"
	case KindInt:
		if d == Postgres {
			return "INTEGER"
		}
		return "INT"
	case KindDecimal:
		if d == Postgres {
			return "NUMERIC(12,2)"
		}
		return "DECIMAL(12,2)"
	case KindBool:
		return "BOOLEAN"
	default:
		if d == Postgres {
			return "TEXT"
		}
		return "VARCHAR(255)"
	}
}

// DDL returns the statements that (re)create t.
func (d Dialect) DDL(t Table) []string {
	name := d.TableName(t)
	var stmts []string
	if d == Postgres {
		stmts = append(stmts, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", t.Schema))
	}
	stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s", name))

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", name)
	for _, c := range t.Columns {
		fmt.Fprintf(&b, "    %s %s", d.Quote(c.Name), d.columnType(c.Kind))
		if c.Name == t.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		b.WriteString(",\n")
	}
	s := strings.TrimSuffix(b.String(), ",\n") + "\n)"
	if d == MySQL {
		s += " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
	}
	stmts = append(stmts, s)
	return stmts
}

// IndexDDL returns the secondary index statements for t.
func (d Dialect) IndexDDL(t Table) []string {
	stmts := make([]string, 0, len(t.Indexes))
	for _, cols := range t.Indexes {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX idx_%s_%s ON %s(%s)",
			t.Name, strings.Join(cols, "_"), d.TableName(t), d.columnList(cols)))
	}
	return stmts
}

// BuildDSN constructs a DSN for postgres/mysql
func BuildDSN(d Dialect, user, pass, host string, port int, db string) string {
	if d == Postgres {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, pass, host, port, db)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true", user, pass, host, port, db)
}

// DefaultPort returns the usual server port of d.
func DefaultPort(d Dialect) int {
	if d == Postgres {
		return 5432
	}
	return 3306
}

// Open connects and pings the database.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}
	return db, nil
}
