// Package sqlload exports generated CSV files to PostgreSQL or MySQL,
// either as an SQL script or by loading rows over database/sql.
package sqlload

import (
	"strings"
	"unicode"

	"github.com/vaibhaw-/synthgen/internal/synthgen/healthcare"
	"github.com/vaibhaw-/synthgen/internal/synthgen/hr"
)

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindDate
	KindInt
	KindDecimal
	KindBool
)

type Column struct {
	Name string // snake_case column name
	Kind ColumnKind
}

// Table maps one dataset onto a database table.
type Table struct {
	Schema     string
	Name       string
	PrimaryKey string
	Columns    []Column
	Indexes    [][]string
}

// ColumnNames returns the column names in CSV order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

var visitKinds = map[string]ColumnKind{
	"DateOfBirth":      KindDate,
	"VisitDate":        KindDate,
	"DischargeDate":    KindDate,
	"AgeAtVisit":       KindInt,
	"LengthOfStay":     KindInt,
	"BillingAmount":    KindDecimal,
	"FollowUpRequired": KindBool,
}

var employeeKinds = map[string]ColumnKind{
	"EmployeeID":        KindInt,
	"ManagerID":         KindInt,
	"DateOfBirth":       KindDate,
	"HireDate":          KindDate,
	"LastPromotionDate": KindDate,
	"TerminationDate":   KindDate,
	"Salary":            KindInt,
	"PerformanceRating": KindInt,
}

// VisitsTable is healthcare.visit (healthcare_visit on MySQL).
func VisitsTable() Table {
	return Table{
		Schema:     "healthcare",
		Name:       "visit",
		PrimaryKey: "visit_id",
		Columns:    columns(healthcare.Header(), visitKinds),
		Indexes:    [][]string{{"patient_id"}, {"visit_date"}, {"department", "visit_date"}},
	}
}

// EmployeesTable is hr.employee (hr_employee on MySQL).
func EmployeesTable() Table {
	return Table{
		Schema:     "hr",
		Name:       "employee",
		PrimaryKey: "employee_id",
		Columns:    columns(hr.Header(), employeeKinds),
		Indexes:    [][]string{{"manager_id"}, {"department"}, {"status"}},
	}
}

func columns(header []string, kinds map[string]ColumnKind) []Column {
	cols := make([]Column, len(header))
	for i, h := range header {
		cols[i] = Column{Name: snake(h), Kind: kinds[h]}
	}
	return cols
}

// snake converts a CamelCase header to snake_case, keeping acronyms together:
// "VisitID" -> "visit_id", "DateOfBirth" -> "date_of_birth".
func snake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
