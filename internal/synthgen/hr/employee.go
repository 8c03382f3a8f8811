// Package hr generates synthetic employee records with a manager hierarchy.
package hr

import (
	"slices"
	"strconv"
	"time"

	"github.com/vaibhaw-/synthgen/internal/synthgen/dates"
)

// Employment statuses.
const (
	StatusActive     = "Active"
	StatusOnLeave    = "On Leave"
	StatusTerminated = "Terminated"
	StatusRetired    = "Retired"
)

var header = []string{
	"EmployeeID", "FirstName", "LastName", "Gender", "DateOfBirth", "Email", "Phone",
	"City", "State", "Department", "JobTitle", "JobLevel", "EmploymentType",
	"ManagerID", "HireDate", "LastPromotionDate", "TerminationDate", "TerminationReason",
	"Status", "Salary", "PerformanceRating", "Education",
}

// Header returns the employee CSV columns in output order.
func Header() []string {
	return slices.Clone(header)
}

// Employee is one generated row. ManagerID 0 means no manager; zero
// LastPromotionDate and TerminationDate mean the event never happened.
type Employee struct {
	ID                int
	FirstName         string
	LastName          string
	Gender            string
	DateOfBirth       time.Time
	Email             string
	Phone             string
	City              string
	State             string
	Department        string
	JobTitle          string
	JobLevel          string
	EmploymentType    string
	ManagerID         int
	HireDate          time.Time
	LastPromotionDate time.Time
	TerminationDate   time.Time
	TerminationReason string
	Status            string
	Salary            int
	PerformanceRating int
	Education         string
}

// Record renders the employee as a CSV row matching Header.
func (e Employee) Record() []string {
	manager := ""
	if e.ManagerID > 0 {
		manager = strconv.Itoa(e.ManagerID)
	}
	return []string{
		strconv.Itoa(e.ID),
		e.FirstName,
		e.LastName,
		e.Gender,
		dates.Format(e.DateOfBirth),
		e.Email,
		e.Phone,
		e.City,
		e.State,
		e.Department,
		e.JobTitle,
		e.JobLevel,
		e.EmploymentType,
		manager,
		dates.Format(e.HireDate),
		dates.Format(e.LastPromotionDate),
		dates.Format(e.TerminationDate),
		e.TerminationReason,
		e.Status,
		strconv.Itoa(e.Salary),
		strconv.Itoa(e.PerformanceRating),
		e.Education,
	}
}
