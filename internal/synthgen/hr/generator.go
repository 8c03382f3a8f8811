package hr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/vaibhaw-/synthgen/internal/synthgen/dates"
	"github.com/vaibhaw-/synthgen/internal/synthgen/vocab"
)

const (
	chiefExecutiveTitle = "Chief Executive Officer"
	retirementReason    = "Retirement"
	emailDomain         = "example.com"

	minWorkingAge  = 18
	minRetireAge   = 55
	minTenureDays  = 30
	minPromoteDays = 180
	managerTries   = 8
)

// levelProfile describes hiring age and salary bands for one job level.
type levelProfile struct {
	weight               float64
	minAge, maxAge       int
	minSalary, maxSalary int
}

var profiles = map[string]levelProfile{
	vocab.LevelEntry:     {30, 18, 30, 38000, 60000},
	vocab.LevelAssociate: {30, 21, 40, 55000, 85000},
	vocab.LevelSenior:    {20, 25, 50, 80000, 130000},
	vocab.LevelManager:   {12, 28, 55, 100000, 160000},
	vocab.LevelDirector:  {6, 32, 60, 140000, 220000},
	vocab.LevelExecutive: {2, 35, 62, 200000, 400000},
}

var statuses = []vocab.Weighted{
	{Value: StatusActive, Weight: 78},
	{Value: StatusOnLeave, Weight: 4},
	{Value: StatusTerminated, Weight: 14},
	{Value: StatusRetired, Weight: 4},
}

var ratings = []vocab.Weighted{
	{Value: "1", Weight: 5}, {Value: "2", Weight: 10}, {Value: "3", Weight: 45},
	{Value: "4", Weight: 30}, {Value: "5", Weight: 10},
}

var genders = []vocab.Weighted{{Value: "Female", Weight: 49}, {Value: "Male", Weight: 49}, {Value: "Non-binary", Weight: 2}}

type Options struct {
	// Start and End bound HireDate; End also caps every later event.
	Start time.Time
	End   time.Time
	Seed  int64
}

// Generator draws employees in ID order. Only Active employees already
// generated are eligible as managers, so a ManagerID is always smaller
// than the employee's own ID.
type Generator struct {
	f      *gofakeit.Faker
	v      *vocab.Vocabulary
	opts   Options
	levels []vocab.Weighted
	depts  []string
	nextID int

	// active[dept][level] and activeAny[level] hold IDs of Active employees.
	active    map[string]map[int][]int
	activeAny map[int][]int
	hired     map[int]time.Time
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
		return nil, fmt.Errorf("hiring window end %s before start %s",
			opts.End.Format(time.DateOnly), opts.Start.Format(time.DateOnly))
	}

	levels := make([]vocab.Weighted, 0, len(vocab.JobLevels))
	for _, l := range vocab.JobLevels {
		levels = append(levels, vocab.Weighted{Value: l, Weight: profiles[l].weight})
	}
	return &Generator{
		f:         gofakeit.New(uint64(opts.Seed)),
		v:         v,
		opts:      opts,
		levels:    levels,
		depts:     v.HRDepartmentNames(),
		nextID:    1,
		active:    make(map[string]map[int][]int),
		activeAny: make(map[int][]int),
		hired:     make(map[int]time.Time),
	}, nil
}

// Header returns the employee CSV columns.
func (g *Generator) Header() []string {
	return Header()
}

// Record returns the next employee as a CSV row.
func (g *Generator) Record() []string {
	return g.Next().Record()
}

// Generated returns the number of employees drawn so far.
func (g *Generator) Generated() int {
	return g.nextID - 1
}

// Next draws the next employee.
func (g *Generator) Next() Employee {
	f := g.f
	id := g.nextID
	g.nextID++

	e := Employee{
		ID:             id,
		FirstName:      f.FirstName(),
		LastName:       f.LastName(),
		Gender:         vocab.PickWeighted(f, genders),
		Phone:          f.Phone(),
		City:           f.City(),
		State:          f.StateAbr(),
		Department:     vocab.Pick(f, g.depts),
		EmploymentType: vocab.PickWeighted(f, g.v.EmploymentTypes),
		Education:      vocab.Pick(f, g.v.EducationLevels),
	}
	e.Email = email(e.FirstName, e.LastName, id)

	if id == 1 {
		e.JobLevel = vocab.LevelExecutive
		e.JobTitle = chiefExecutiveTitle
		e.EmploymentType = "Full-time"
		e.Status = StatusActive
		e.HireDate = g.opts.Start
	} else {
		e.JobLevel = vocab.PickWeighted(f, g.levels)
		e.JobTitle = vocab.Pick(f, g.v.Titles(e.Department, e.JobLevel))
		if e.EmploymentType == "Intern" && e.JobLevel != vocab.LevelEntry {
			e.EmploymentType = "Full-time"
		}
		e.Status = vocab.PickWeighted(f, statuses)
		e.HireDate = dates.Between(f, g.opts.Start, g.opts.End)
		e.ManagerID = g.pickManager(e.Department, e.JobLevel, e.HireDate)
	}

	p := profiles[e.JobLevel]
	ageAtHire := f.Number(p.minAge, p.maxAge)
	e.DateOfBirth = dates.YearsBefore(e.HireDate, ageAtHire).AddDate(0, 0, -f.Number(0, 364))

	g.sequenceExit(&e)
	g.sequencePromotion(&e)
	e.Salary = g.salary(e.JobLevel, e.EmploymentType)
	e.PerformanceRating, _ = strconv.Atoi(vocab.PickWeighted(f, ratings))

	if e.Status == StatusActive {
		g.register(e)
	}
	return e
}

// sequenceExit sets the termination date for leavers, falling back to
// Active when the window leaves no room for minimum tenure.
func (g *Generator) sequenceExit(e *Employee) {
	if e.Status != StatusTerminated && e.Status != StatusRetired {
		return
	}
	earliest := e.HireDate.AddDate(0, 0, minTenureDays)
	if earliest.After(g.opts.End) {
		e.Status = StatusActive
		return
	}
	e.TerminationDate = dates.Between(g.f, earliest, g.opts.End)
	if e.Status == StatusRetired && dates.AgeAt(e.DateOfBirth, e.TerminationDate) < minRetireAge {
		e.Status = StatusTerminated
	}
	if e.Status == StatusRetired {
		e.TerminationReason = retirementReason
	} else {
		e.TerminationReason = vocab.Pick(g.f, g.v.TerminationReasons)
	}
}

func (g *Generator) sequencePromotion(e *Employee) {
	if e.JobLevel == vocab.LevelEntry || e.ID == 1 || g.f.Float64() >= 0.6 {
		return
	}
	earliest := e.HireDate.AddDate(0, 0, minPromoteDays)
	latest := g.opts.End
	if !e.TerminationDate.IsZero() {
		latest = e.TerminationDate
	}
	if earliest.After(latest) {
		return
	}
	e.LastPromotionDate = dates.Between(g.f, earliest, latest)
}

// pickManager prefers the nearest level at or above Manager (and above the
// employee's own level, executives excepted) in the same department, then
// the same levels in any department. Candidates must have been hired on or
// before hired. The chief executive is the last resort.
func (g *Generator) pickManager(dept, level string, hired time.Time) int {
	own := levelIndex(level)
	from := min(max(own+1, levelIndex(vocab.LevelManager)), levelIndex(vocab.LevelExecutive))
	for l := from; l < len(vocab.JobLevels); l++ {
		if id := g.sample(g.active[dept][l], hired); id != 0 {
			return id
		}
	}
	for l := from; l < len(vocab.JobLevels); l++ {
		if id := g.sample(g.activeAny[l], hired); id != 0 {
			return id
		}
	}
	if _, ok := g.hired[1]; ok {
		return 1
	}
	return 0
}

// sample draws up to managerTries candidates from ids and returns the first
// hired on or before hired, or 0.
func (g *Generator) sample(ids []int, hired time.Time) int {
	if len(ids) == 0 {
		return 0
	}
	for range managerTries {
		id := ids[g.f.Number(0, len(ids)-1)]
		if !g.hired[id].After(hired) {
			return id
		}
	}
	return 0
}

func (g *Generator) register(e Employee) {
	l := levelIndex(e.JobLevel)
	if g.active[e.Department] == nil {
		g.active[e.Department] = make(map[int][]int)
	}
	g.active[e.Department][l] = append(g.active[e.Department][l], e.ID)
	g.activeAny[l] = append(g.activeAny[l], e.ID)
	g.hired[e.ID] = e.HireDate
}

func (g *Generator) salary(level, employmentType string) int {
	p := profiles[level]
	s := float64(g.f.Number(p.minSalary, p.maxSalary))
	switch employmentType {
	case "Part-time":
		s *= 0.55
	case "Intern":
		s *= 0.6
	}
	return int(math.Round(s/100) * 100)
}

func levelIndex(level string) int {
	for i, l := range vocab.JobLevels {
		if l == level {
			return i
		}
	}
	return 0
}

func email(first, last string, id int) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				return r
			default:
				return -1
			}
		}, strings.ToLower(s))
	}
	return fmt.Sprintf("%s.%s%d@%s", clean(first), clean(last), id, emailDomain)
}
