package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/healthcare"
	"github.com/vaibhaw-/synthgen/internal/synthgen/hr"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

func init() {
	logger.SetLogger(zap.NewNop())
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Generation: config.GenerationCfg{Seed: 7, ChunkSize: 64},
		Visits: config.VisitsCfg{
			Rows:      500,
			Patients:  40,
			Output:    filepath.Join(dir, "out", "visits.csv"),
			StartDate: "2023-01-01",
			EndDate:   "2023-12-31",
		},
		Employees: config.EmployeesCfg{
			Rows:      300,
			Output:    filepath.Join(dir, "out", "employees.csv"),
			StartDate: "2010-01-01",
			EndDate:   "2023-12-31",
		},
		Logging: config.LoggingCfg{RunLog: filepath.Join(dir, "run.jsonl")},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRun_Visits(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	job, err := VisitsJob(cfg, nil, 7)
	require.NoError(t, err)
	sum, err := Run(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, 500, sum.Rows)
	assert.Equal(t, DatasetVisits, sum.Dataset)
	assert.NotEmpty(t, sum.RunID)
	info, err := os.Stat(cfg.Visits.Output)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), sum.Bytes)

	records := readCSV(t, cfg.Visits.Output)
	require.Len(t, records, 501)
	assert.Equal(t, healthcare.Header(), records[0])

	// PatientID is column 1; FirstName..InsuranceProvider are columns 2-10.
	demo := map[string][]string{}
	for _, rec := range records[1:] {
		require.Len(t, rec, len(records[0]))
		if prev, ok := demo[rec[1]]; ok {
			assert.Equal(t, prev, rec[2:11], "patient %s", rec[1])
		} else {
			demo[rec[1]] = rec[2:11]
		}
	}
}

func TestRun_Employees(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	job, err := EmployeesJob(cfg, nil, 7)
	require.NoError(t, err)
	sum, err := Run(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, 300, sum.Rows)

	records := readCSV(t, cfg.Employees.Output)
	require.Len(t, records, 301)
	assert.Equal(t, hr.Header(), records[0])

	status := map[string]string{}
	for _, rec := range records[1:] {
		id := rec[0]
		if mgr := rec[13]; mgr != "" {
			mID, err := strconv.Atoi(mgr)
			require.NoError(t, err)
			eID, err := strconv.Atoi(id)
			require.NoError(t, err)
			assert.Less(t, mID, eID)
			assert.Equal(t, hr.StatusActive, status[mgr])
		}
		status[id] = rec[18]
	}
}

func TestRun_HeadersStableAcrossRuns(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	jobA, err := EmployeesJob(testConfig(a), nil, 1)
	require.NoError(t, err)
	jobB, err := EmployeesJob(testConfig(b), nil, 2)
	require.NoError(t, err)
	_, err = Run(context.Background(), jobA)
	require.NoError(t, err)
	_, err = Run(context.Background(), jobB)
	require.NoError(t, err)

	ra := readCSV(t, testConfig(a).Employees.Output)
	rb := readCSV(t, testConfig(b).Employees.Output)
	assert.Equal(t, ra[0], rb[0])
	assert.NotEqual(t, ra[1], rb[1])
}

func TestRun_SameSeedSameFile(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	for _, dir := range []string{a, b} {
		job, err := VisitsJob(testConfig(dir), nil, 99)
		require.NoError(t, err)
		_, err = Run(context.Background(), job)
		require.NoError(t, err)
	}
	da, err := os.ReadFile(testConfig(a).Visits.Output)
	require.NoError(t, err)
	db, err := os.ReadFile(testConfig(b).Visits.Output)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestRun_RunLog(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	for _, build := range []func(*config.Config) (Job, error){
		func(c *config.Config) (Job, error) { return VisitsJob(c, nil, 3) },
		func(c *config.Config) (Job, error) { return EmployeesJob(c, nil, 3) },
	} {
		job, err := build(cfg)
		require.NoError(t, err)
		_, err = Run(context.Background(), job)
		require.NoError(t, err)
	}

	f, err := os.Open(cfg.Logging.RunLog)
	require.NoError(t, err)
	defer f.Close()

	var got []Summary
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var s Summary
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		got = append(got, s)
	}
	require.Len(t, got, 2)
	assert.Equal(t, DatasetVisits, got[0].Dataset)
	assert.Equal(t, DatasetEmployees, got[1].Dataset)
	assert.NotEqual(t, got[0].RunID, got[1].RunID)
	assert.NotEmpty(t, got[1].Size)
	assert.Equal(t, int64(3), got[1].Seed)
}

func TestRun_Progress(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	job, err := VisitsJob(cfg, nil, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	job.Progress = true
	job.ProgressWriter = &out
	_, err = Run(context.Background(), job)
	require.NoError(t, err)
	assert.NotZero(t, out.Len())
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Job{Dataset: "x", Output: "x.csv"})
	assert.Error(t, err)

	dir := t.TempDir()
	job, err := VisitsJob(testConfig(dir), nil, 1)
	require.NoError(t, err)
	job.Output = ""
	_, err = Run(context.Background(), job)
	assert.Error(t, err)

	job.Output = filepath.Join(dir, "v.csv")
	job.ChunkSize = 0
	_, err = Run(context.Background(), job)
	assert.Error(t, err)
}

func TestJobs_InvalidWindow(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Visits.StartDate = "garbage"
	_, err := VisitsJob(cfg, nil, 1)
	assert.Error(t, err)

	cfg.Employees.EndDate = "1999-01-01"
	_, err = EmployeesJob(cfg, nil, 1)
	assert.Error(t, err)
}

func TestLoadVocabulary(t *testing.T) {
	cfg := testConfig(t.TempDir())
	v, err := LoadVocabulary(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, v.Departments)

	cfg.VocabFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = LoadVocabulary(cfg)
	assert.Error(t, err)
}
