// Package healthcare generates synthetic hospital visit records.
package healthcare

import (
	"slices"
	"strconv"
	"time"

	"github.com/vaibhaw-/synthgen/internal/synthgen/dates"
	"github.com/vaibhaw-/synthgen/internal/synthgen/vocab"
)

var header = []string{
	"VisitID", "PatientID", "FirstName", "LastName", "Gender", "DateOfBirth",
	"BloodType", "City", "State", "ZipCode", "InsuranceProvider",
	"VisitDate", "AgeAtVisit", "VisitType", "Department", "AttendingPhysician",
	"DiagnosisCode", "Diagnosis", "Procedure", "Medication",
	"LengthOfStay", "DischargeDate", "BillingAmount", "PaymentStatus", "FollowUpRequired",
}

// Header returns the visit CSV columns in output order.
func Header() []string {
	return slices.Clone(header)
}

// Patient holds the demographic fields shared by all visits of one patient.
type Patient struct {
	ID                string
	FirstName         string
	LastName          string
	Gender            string
	DateOfBirth       time.Time
	BloodType         string
	City              string
	State             string
	ZipCode           string
	InsuranceProvider string
}

type Visit struct {
	VisitID            string
	Patient            Patient
	VisitDate          time.Time
	AgeAtVisit         int
	VisitType          string
	Department         string
	AttendingPhysician string
	Diagnosis          vocab.Diagnosis
	Procedure          string
	Medication         string
	LengthOfStay       int
	DischargeDate      time.Time
	BillingAmount      float64
	PaymentStatus      string
	FollowUpRequired   bool
}

// Record renders the visit as a CSV row matching Header.
func (v Visit) Record() []string {
	p := v.Patient
	return []string{
		v.VisitID,
		p.ID,
		p.FirstName,
		p.LastName,
		p.Gender,
		dates.Format(p.DateOfBirth),
		p.BloodType,
		p.City,
		p.State,
		p.ZipCode,
		p.InsuranceProvider,
		dates.Format(v.VisitDate),
		strconv.Itoa(v.AgeAtVisit),
		v.VisitType,
		v.Department,
		v.AttendingPhysician,
		v.Diagnosis.Code,
		v.Diagnosis.Name,
		v.Procedure,
		v.Medication,
		strconv.Itoa(v.LengthOfStay),
		dates.Format(v.DischargeDate),
		strconv.FormatFloat(v.BillingAmount, 'f', 2, 64),
		v.PaymentStatus,
		strconv.FormatBool(v.FollowUpRequired),
	}
}
