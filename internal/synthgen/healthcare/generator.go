package healthcare

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/vaibhaw-/synthgen/internal/synthgen/dates"
	"github.com/vaibhaw-/synthgen/internal/synthgen/vocab"
)

const (
	visitEmergency  = "Emergency"
	visitInpatient  = "Inpatient"
	visitTelehealth = "Telehealth"

	emergencyDepartment = "Emergency Medicine"

	maxPatientAge = 95
)

// MaxPatients is the largest pool that fits the six-digit PatientID.
const MaxPatients = 999999

var genders = []vocab.Weighted{{Value: "Female", Weight: 50}, {Value: "Male", Weight: 49}, {Value: "Other", Weight: 1}}

type Options struct {
	// Start and End bound VisitDate, inclusive.
	Start time.Time
	End   time.Time
	// Patients is the size of the PatientID pool.
	Patients int
	Seed     int64
	// PhysiciansPerDepartment defaults to 4.
	PhysiciansPerDepartment int
}

// Generator draws visits one at a time. Demographics are cached per
// patient so repeat visits agree on them.
type Generator struct {
	f          *gofakeit.Faker
	v          *vocab.Vocabulary
	opts       Options
	patients   map[string]Patient
	physicians map[string][]string
	seq        int
}

// NewGenerator builds a generator. A nil vocabulary selects vocab.Default().
func NewGenerator(opts Options, v *vocab.Vocabulary) (*Generator, error) {
	if v == nil {
		v = vocab.Default()
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}
	opts.Start, opts.End = dates.Day(opts.Start), dates.Day(opts.End)
	if opts.End.Before(opts.Start) {
		return nil, fmt.Errorf("visit window end %s before start %s",
			opts.End.Format(time.DateOnly), opts.Start.Format(time.DateOnly))
	}
	if opts.Patients < 1 {
		return nil, fmt.Errorf("patient pool must be positive, got %d", opts.Patients)
	}
	if opts.Patients > MaxPatients {
		return nil, fmt.Errorf("patient pool %d exceeds %d", opts.Patients, MaxPatients)
	}
	if opts.PhysiciansPerDepartment < 1 {
		opts.PhysiciansPerDepartment = 4
	}

	g := &Generator{
		f:          gofakeit.New(uint64(opts.Seed)),
		v:          v,
		opts:       opts,
		patients:   make(map[string]Patient),
		physicians: make(map[string][]string, len(v.Departments)),
	}
	for _, dept := range v.Departments {
		roster := make([]string, opts.PhysiciansPerDepartment)
		for i := range roster {
			roster[i] = fmt.Sprintf("Dr. %s %s", g.f.FirstName(), g.f.LastName())
		}
		g.physicians[dept] = roster
	}
	return g, nil
}

// Header returns the visit CSV columns.
func (g *Generator) Header() []string {
	return Header()
}

// Record returns the next visit as a CSV row.
func (g *Generator) Record() []string {
	return g.Next().Record()
}

// Generated returns the number of visits drawn so far.
func (g *Generator) Generated() int {
	return g.seq
}

// DistinctPatients returns how many patient IDs have been seen.
func (g *Generator) DistinctPatients() int {
	return len(g.patients)
}

// Next draws one visit.
func (g *Generator) Next() Visit {
	g.seq++
	f := g.f

	p := g.patient(fmt.Sprintf("P%06d", f.Number(1, g.opts.Patients)))
	visitType := vocab.PickWeighted(f, g.v.VisitTypes)
	dept := g.department(visitType)
	visitDate := dates.Between(f, g.opts.Start, g.opts.End)

	stay := 0
	if visitType == visitInpatient {
		stay = f.Number(1, 14)
	}

	procedure := vocab.Pick(f, g.v.Procedures)
	if visitType == visitTelehealth {
		procedure = "None"
	}

	followUp := f.Float64() < 0.3
	if visitType == visitInpatient || visitType == visitEmergency {
		followUp = f.Float64() < 0.6
	}

	return Visit{
		VisitID:            fmt.Sprintf("V%08d", g.seq),
		Patient:            p,
		VisitDate:          visitDate,
		AgeAtVisit:         dates.AgeAt(p.DateOfBirth, visitDate),
		VisitType:          visitType,
		Department:         dept,
		AttendingPhysician: vocab.Pick(f, g.physicians[dept]),
		Diagnosis:          g.v.PickDiagnosis(f),
		Procedure:          procedure,
		Medication:         vocab.Pick(f, g.v.Medications),
		LengthOfStay:       stay,
		DischargeDate:      visitDate.AddDate(0, 0, stay),
		BillingAmount:      g.billing(visitType, stay),
		PaymentStatus:      vocab.PickWeighted(f, g.v.PaymentStatuses),
		FollowUpRequired:   followUp,
	}
}

// patient returns the cached demographics for id, drawing them on first use.
func (g *Generator) patient(id string) Patient {
	if p, ok := g.patients[id]; ok {
		return p
	}
	f := g.f
	p := Patient{
		ID:                id,
		FirstName:         f.FirstName(),
		LastName:          f.LastName(),
		Gender:            vocab.PickWeighted(f, genders),
		DateOfBirth:       dates.Between(f, g.opts.Start.AddDate(-maxPatientAge, 0, 0), g.opts.Start.AddDate(0, 0, -1)),
		BloodType:         vocab.PickWeighted(f, g.v.BloodTypes),
		City:              f.City(),
		State:             f.StateAbr(),
		ZipCode:           f.Zip(),
		InsuranceProvider: vocab.Pick(f, g.v.InsuranceProviders),
	}
	g.patients[id] = p
	return p
}

func (g *Generator) department(visitType string) string {
	if visitType == visitEmergency && slices.Contains(g.v.Departments, emergencyDepartment) {
		return emergencyDepartment
	}
	return vocab.Pick(g.f, g.v.Departments)
}

func (g *Generator) billing(visitType string, stay int) float64 {
	f := g.f
	var amount float64
	switch visitType {
	case visitEmergency:
		amount = f.Float64Range(500, 3500)
	case visitInpatient:
		amount = f.Float64Range(2000, 8000) + float64(stay)*f.Float64Range(1200, 2500)
	case visitTelehealth:
		amount = f.Float64Range(40, 150)
	default:
		amount = f.Float64Range(80, 450)
	}
	return math.Round(amount*100) / 100
}
