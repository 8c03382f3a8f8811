package sqlload

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// recorder is a database/sql driver that records every statement and
// its arguments. Inserts containing failOn in any argument fail.
type recorder struct {
	mu      sync.Mutex
	execs   []string
	rows    [][]driver.Value
	commits int
	rollbks int
	failOn  string
}

func (r *recorder) Open(string) (driver.Conn, error) { return &fakeConn{r: r}, nil }

type fakeConn struct{ r *recorder }

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{r: c.r, query: query}, nil
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return &fakeTx{r: c.r}, nil }

type fakeTx struct{ r *recorder }

func (t *fakeTx) Commit() error {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	t.r.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	t.r.rollbks++
	return nil
}

type fakeStmt struct {
	r     *recorder
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	if strings.HasPrefix(s.query, "INSERT") {
		for _, a := range args {
			if v, ok := a.(string); ok && s.r.failOn != "" && v == s.r.failOn {
				return nil, errors.New("constraint violation")
			}
		}
		s.r.rows = append(s.r.rows, args)
	} else {
		s.r.execs = append(s.r.execs, s.query)
	}
	return driver.RowsAffected(1), nil
}

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) { return emptyRows{}, nil }

type emptyRows struct{}

func (emptyRows) Columns() []string         { return nil }
func (emptyRows) Close() error              { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }

var driverSeq struct {
	sync.Mutex
	n int
}

// openRecorder registers a fresh recorder under a unique driver name.
func openRecorder(failOn string) (*sql.DB, *recorder, error) {
	driverSeq.Lock()
	driverSeq.n++
	name := fmt.Sprintf("recorder%d", driverSeq.n)
	driverSeq.Unlock()

	r := &recorder{failOn: failOn}
	sql.Register(name, r)
	db, err := sql.Open(name, "")
	return db, r, err
}
