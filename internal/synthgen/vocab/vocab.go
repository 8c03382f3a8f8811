// Package vocab holds the reference vocabularies every generator samples from.
package vocab

import (
	"fmt"
	"io"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"
)

// Diagnosis is an ICD-10 code with its short description.
type Diagnosis struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Weighted is a categorical value with a relative weight.
type Weighted struct {
	Value  string  `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// HRDepartment lists job titles per job level.
type HRDepartment struct {
	Name   string              `yaml:"name"`
	Titles map[string][]string `yaml:"titles"`
}

// Job levels, lowest first.
const (
	LevelEntry     = "Entry"
	LevelAssociate = "Associate"
	LevelSenior    = "Senior"
	LevelManager   = "Manager"
	LevelDirector  = "Director"
	LevelExecutive = "Executive"
)

// JobLevels is ordered from the lowest level to the highest.
var JobLevels = []string{LevelEntry, LevelAssociate, LevelSenior, LevelManager, LevelDirector, LevelExecutive}

type Vocabulary struct {
	// healthcare
	Departments        []string    `yaml:"departments"`
	Diagnoses          []Diagnosis `yaml:"diagnoses"`
	Medications        []string    `yaml:"medications"`
	Procedures         []string    `yaml:"procedures"`
	InsuranceProviders []string    `yaml:"insurance_providers"`
	BloodTypes         []Weighted  `yaml:"blood_types"`
	VisitTypes         []Weighted  `yaml:"visit_types"`
	PaymentStatuses    []Weighted  `yaml:"payment_statuses"`

	// hr
	HRDepartments      []HRDepartment `yaml:"hr_departments"`
	EducationLevels    []string       `yaml:"education_levels"`
	EmploymentTypes    []Weighted     `yaml:"employment_types"`
	TerminationReasons []string       `yaml:"termination_reasons"`
}

// Pick returns a uniformly random element of list.
func Pick(f *gofakeit.Faker, list []string) string {
	return list[f.Number(0, len(list)-1)]
}

// PickWeighted returns a value with probability proportional to its weight.
func PickWeighted(f *gofakeit.Faker, list []Weighted) string {
	total := 0.0
	for _, w := range list {
		total += w.Weight
	}
	r := f.Float64() * total
	for _, w := range list {
		if r < w.Weight {
			return w.Value
		}
		r -= w.Weight
	}
	return list[len(list)-1].Value
}

// PickDiagnosis returns a random diagnosis.
func (v *Vocabulary) PickDiagnosis(f *gofakeit.Faker) Diagnosis {
	return v.Diagnoses[f.Number(0, len(v.Diagnoses)-1)]
}

// Validate rejects vocabularies a generator could not sample from.
func (v *Vocabulary) Validate() error {
	lists := map[string]int{
		"departments":         len(v.Departments),
		"diagnoses":           len(v.Diagnoses),
		"medications":         len(v.Medications),
		"procedures":          len(v.Procedures),
		"insurance_providers": len(v.InsuranceProviders),
		"blood_types":         len(v.BloodTypes),
		"visit_types":         len(v.VisitTypes),
		"payment_statuses":    len(v.PaymentStatuses),
		"hr_departments":      len(v.HRDepartments),
		"education_levels":    len(v.EducationLevels),
		"employment_types":    len(v.EmploymentTypes),
		"termination_reasons": len(v.TerminationReasons),
	}
	for _, name := range sortedKeys(lists) {
		if lists[name] == 0 {
			return fmt.Errorf("vocabulary %q must not be empty", name)
		}
	}

	seen := map[string]struct{}{}
	for i, d := range v.Diagnoses {
		if d.Code == "" || d.Name == "" {
			return fmt.Errorf("diagnosis %d missing code or name", i)
		}
		if _, ok := seen[d.Code]; ok {
			return fmt.Errorf("duplicate diagnosis code %q", d.Code)
		}
		seen[d.Code] = struct{}{}
	}

	weighted := map[string][]Weighted{
		"blood_types":      v.BloodTypes,
		"visit_types":      v.VisitTypes,
		"payment_statuses": v.PaymentStatuses,
		"employment_types": v.EmploymentTypes,
	}
	for _, name := range sortedKeys(weighted) {
		total := 0.0
		for _, w := range weighted[name] {
			if w.Weight < 0 {
				return fmt.Errorf("%s: negative weight for %q", name, w.Value)
			}
			total += w.Weight
		}
		if total <= 0 {
			return fmt.Errorf("%s: weights must sum to a positive value", name)
		}
	}

	for _, d := range v.HRDepartments {
		if d.Name == "" {
			return fmt.Errorf("hr department missing name")
		}
		for _, level := range JobLevels {
			if len(d.Titles[level]) == 0 {
				return fmt.Errorf("hr department %q has no titles for level %s", d.Name, level)
			}
		}
	}
	return nil
}

// HRDepartmentNames returns the department names in declaration order.
func (v *Vocabulary) HRDepartmentNames() []string {
	names := make([]string, len(v.HRDepartments))
	for i, d := range v.HRDepartments {
		names[i] = d.Name
	}
	return names
}

// Titles returns the job titles of a department at a level.
func (v *Vocabulary) Titles(department, level string) []string {
	for _, d := range v.HRDepartments {
		if d.Name == department {
			return d.Titles[level]
		}
	}
	return nil
}

// LoadFile overlays the YAML file at path onto the defaults.
// Lists absent or empty in the file keep their default values.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var overlay Vocabulary
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("decode vocabulary %s: %w", path, err)
	}

	v := Default()
	v.merge(&overlay)
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Dump writes v as YAML.
func (v *Vocabulary) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	return enc.Close()
}

func (v *Vocabulary) merge(o *Vocabulary) {
	mergeStrings(&v.Departments, o.Departments)
	mergeStrings(&v.Medications, o.Medications)
	mergeStrings(&v.Procedures, o.Procedures)
	mergeStrings(&v.InsuranceProviders, o.InsuranceProviders)
	mergeStrings(&v.EducationLevels, o.EducationLevels)
	mergeStrings(&v.TerminationReasons, o.TerminationReasons)
	mergeWeighted(&v.BloodTypes, o.BloodTypes)
	mergeWeighted(&v.VisitTypes, o.VisitTypes)
	mergeWeighted(&v.PaymentStatuses, o.PaymentStatuses)
	mergeWeighted(&v.EmploymentTypes, o.EmploymentTypes)
	if len(o.Diagnoses) > 0 {
		v.Diagnoses = o.Diagnoses
	}
	if len(o.HRDepartments) > 0 {
		v.HRDepartments = o.HRDepartments
	}
}

func mergeStrings(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

func mergeWeighted(dst *[]Weighted, src []Weighted) {
	if len(src) > 0 {
		*dst = src
	}
}
