package sqlload

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaibhaw-/synthgen/internal/synthgen/csvout"
	"github.com/vaibhaw-/synthgen/internal/synthgen/healthcare"
	"github.com/vaibhaw-/synthgen/internal/synthgen/hr"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

func init() {
	logger.SetLogger(zap.NewNop())
}

func employeesCSV(t *testing.T, rows int) string {
	t.Helper()
	g, err := hr.NewGenerator(hr.Options{
		Start: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:  5,
	}, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = csvout.Write(context.Background(), &buf, g, csvout.Options{Rows: rows, ChunkSize: 10})
	require.NoError(t, err)
	return buf.String()
}

func visitsCSV(t *testing.T, rows int) string {
	t.Helper()
	g, err := healthcare.NewGenerator(healthcare.Options{
		Start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		Patients: 10,
		Seed:     5,
	}, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = csvout.Write(context.Background(), &buf, g, csvout.Options{Rows: rows, ChunkSize: 10})
	require.NoError(t, err)
	return buf.String()
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"VisitID":           "visit_id",
		"PatientID":         "patient_id",
		"DateOfBirth":       "date_of_birth",
		"ZipCode":           "zip_code",
		"FollowUpRequired":  "follow_up_required",
		"EmployeeID":        "employee_id",
		"LastPromotionDate": "last_promotion_date",
		"City":              "city",
	}
	for in, want := range tests {
		assert.Equal(t, want, snake(in), in)
	}
}

func TestTables(t *testing.T) {
	v := VisitsTable()
	assert.Len(t, v.Columns, len(healthcare.Header()))
	assert.Equal(t, "visit_id", v.Columns[0].Name)
	assert.Equal(t, v.PrimaryKey, v.Columns[0].Name)

	e := EmployeesTable()
	assert.Len(t, e.Columns, len(hr.Header()))
	assert.Equal(t, KindInt, e.Columns[13].Kind)
	assert.Equal(t, "manager_id", e.Columns[13].Name)
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"postgres": Postgres, "PG": Postgres, "postgresql": Postgres, "mysql": MySQL} {
		got, err := ParseDialect(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDialect("sqlite")
	assert.Error(t, err)
}

func TestDialectNaming(t *testing.T) {
	tbl := EmployeesTable()
	assert.Equal(t, "hr.employee", Postgres.TableName(tbl))
	assert.Equal(t, "hr_employee", MySQL.TableName(tbl))
	assert.Equal(t, "$3", Postgres.Placeholder(3))
	assert.Equal(t, "?", MySQL.Placeholder(3))
	assert.Equal(t, "`status`", MySQL.Quote("status"))
	assert.Equal(t, `"status"`, Postgres.Quote("status"))
	assert.Equal(t, "`a``b`", MySQL.Quote("a`b"))
	assert.True(t, strings.HasPrefix(insertSQL(MySQL, tbl), "INSERT INTO hr_employee (`employee_id`, `first_name`, "))
	assert.True(t, strings.HasSuffix(insertSQL(Postgres, tbl), ", $22)"))
}

func TestDDL(t *testing.T) {
	pg := Postgres.DDL(VisitsTable())
	require.Len(t, pg, 3)
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS healthcare", pg[0])
	assert.Contains(t, pg[2], `"visit_id" TEXT PRIMARY KEY`)
	assert.Contains(t, pg[2], `"billing_amount" NUMERIC(12,2)`)
	assert.Contains(t, pg[2], `"follow_up_required" BOOLEAN`)

	my := MySQL.DDL(EmployeesTable())
	require.Len(t, my, 2)
	assert.Contains(t, my[1], "`employee_id` INT PRIMARY KEY")
	assert.Contains(t, my[1], "ENGINE=InnoDB")

	idx := MySQL.IndexDDL(EmployeesTable())
	assert.Contains(t, idx, "CREATE INDEX idx_employee_manager_id ON hr_employee(`manager_id`)")
}

func TestVisitColumnsQuoted(t *testing.T) {
	tbl := VisitsTable()
	require.Contains(t, tbl.ColumnNames(), "procedure")

	tests := []struct {
		d      Dialect
		column string
		insert string
	}{
		{MySQL, "    `procedure` VARCHAR(255),", ", `procedure`, "},
		{Postgres, `    "procedure" TEXT,`, `, "procedure", `},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			ddl := tt.d.DDL(tbl)
			create := ddl[len(ddl)-1]
			assert.Contains(t, create, tt.column)
			assert.NotContains(t, create, "\n    procedure ")

			assert.Contains(t, insertSQL(tt.d, tbl), tt.insert)
			idx := tt.d.IndexDDL(tbl)
			assert.Contains(t, idx[0], "("+tt.d.Quote("patient_id")+")")

			var out bytes.Buffer
			n, err := WriteScript(&out, tt.d, tbl, csv.NewReader(strings.NewReader(visitsCSV(t, 3))), "synth")
			require.NoError(t, err)
			assert.Equal(t, 3, n)
			assert.Contains(t, out.String(), tt.column)
			assert.Equal(t, 3, strings.Count(out.String(), tt.insert))
		})
	}
}

func TestBuildDSN(t *testing.T) {
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", BuildDSN(Postgres, "u", "p", "h", 5432, "db"))
	assert.Equal(t, "u:p@tcp(h:3306)/db?parseTime=true&multiStatements=true", BuildDSN(MySQL, "u", "p", "h", 3306, "db"))
	assert.Equal(t, 5432, DefaultPort(Postgres))
	assert.Equal(t, 3306, DefaultPort(MySQL))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		col  Column
		in   string
		want string
	}{
		{Column{"n", KindText}, "O'Brien", "'O''Brien'"},
		{Column{"n", KindText}, "", "''"},
		{Column{"d", KindDate}, "", "NULL"},
		{Column{"d", KindDate}, "2020-01-02", "'2020-01-02'"},
		{Column{"i", KindInt}, "42", "42"},
		{Column{"m", KindDecimal}, "10.50", "10.50"},
		{Column{"b", KindBool}, "true", "TRUE"},
		{Column{"b", KindBool}, "false", "FALSE"},
	}
	for _, tt := range tests {
		got, err := literal(tt.col, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := literal(Column{"i", KindInt}, "1; DROP TABLE x")
	assert.Error(t, err)
	_, err = literal(Column{"b", KindBool}, "maybe")
	assert.Error(t, err)
}

func TestWriteScript(t *testing.T) {
	for _, d := range []Dialect{Postgres, MySQL} {
		t.Run(string(d), func(t *testing.T) {
			var out bytes.Buffer
			n, err := WriteScript(&out, d, EmployeesTable(), csv.NewReader(strings.NewReader(employeesCSV(t, 25))), "synth")
			require.NoError(t, err)
			assert.Equal(t, 25, n)

			s := out.String()
			table := d.TableName(EmployeesTable())
			assert.Equal(t, 25, strings.Count(s, "INSERT INTO "+table))
			assert.Contains(t, s, "CREATE TABLE "+table)
			assert.Contains(t, s, "-- Inserted 25 rows into "+table)
			assert.Contains(t, s, "CREATE INDEX")
			// employee 1 has no manager
			assert.Contains(t, s, "VALUES (1,")
			assert.Contains(t, s, ",NULL,")
		})
	}
}

func TestWriteScript_HeaderMismatch(t *testing.T) {
	var out bytes.Buffer
	_, err := WriteScript(&out, Postgres, VisitsTable(), csv.NewReader(strings.NewReader(employeesCSV(t, 2))), "db")
	assert.Error(t, err)

	_, err = WriteScript(&out, Postgres, VisitsTable(), csv.NewReader(strings.NewReader("")), "db")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	db, rec, err := openRecorder("")
	require.NoError(t, err)
	defer db.Close()

	n, err := Load(context.Background(), db, Postgres, VisitsTable(), csv.NewReader(strings.NewReader(visitsCSV(t, 23))), 10)
	require.NoError(t, err)
	assert.Equal(t, 23, n)

	assert.Len(t, rec.rows, 23)
	assert.Equal(t, 3, rec.commits)
	assert.Zero(t, rec.rollbks)
	require.GreaterOrEqual(t, len(rec.execs), 3)
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS healthcare", rec.execs[0])
	assert.True(t, strings.HasPrefix(rec.execs[len(rec.execs)-1], "CREATE INDEX"))

	// follow_up_required is the last column and bound as a bool
	_, isBool := rec.rows[0][len(rec.rows[0])-1].(bool)
	assert.True(t, isBool)
}

func TestLoad_NullManager(t *testing.T) {
	db, rec, err := openRecorder("")
	require.NoError(t, err)
	defer db.Close()

	n, err := Load(context.Background(), db, MySQL, EmployeesTable(), csv.NewReader(strings.NewReader(employeesCSV(t, 5))), 100)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, rec.commits)
	assert.Nil(t, rec.rows[0][13])
	assert.NotNil(t, rec.rows[1][13])
}

func TestLoad_InsertFailureRollsBack(t *testing.T) {
	data := visitsCSV(t, 15)
	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	require.NoError(t, err)
	failID := records[12][0]

	db, rec, err := openRecorder(failID)
	require.NoError(t, err)
	defer db.Close()

	n, err := Load(context.Background(), db, Postgres, VisitsTable(), csv.NewReader(strings.NewReader(data)), 10)
	require.Error(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 1, rec.commits)
	assert.Equal(t, 1, rec.rollbks)
}

func TestLoad_InvalidBatch(t *testing.T) {
	db, _, err := openRecorder("")
	require.NoError(t, err)
	defer db.Close()
	_, err = Load(context.Background(), db, Postgres, VisitsTable(), csv.NewReader(strings.NewReader("")), 0)
	assert.Error(t, err)
}
