// Package storage is the reference persistence collaborator. It consumes
// the record contract — compiled metadata, the decode plan, the escaped
// primary-key literal — without participating in producing it.
package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/quarrydb/quarry/core/record"
)

// Store persists and rehydrates records for compiled record types.
type Store interface {
	// CreateTable creates the table for a record type.
	CreateTable(ctx context.Context, t *record.Type) error

	// Insert writes a record, filling autogenerated columns, and
	// returns the primary key value.
	Insert(ctx context.Context, rec *record.Record) (any, error)

	// Fetch reads one row by primary key and hydrates it through the
	// record type's decode plan.
	Fetch(ctx context.Context, t *record.Type, pk any) (*record.Record, error)

	// Delete removes a record by its primary key.
	Delete(ctx context.Context, rec *record.Record) error

	// Close releases the underlying connection.
	Close() error
}

// plans caches the per-record-type SQL this collaborator wires at
// finalization time.
type plans struct {
	mu sync.RWMutex

	// baseQuery by record name: SELECT of all columns.
	baseQuery map[string]string

	// insert by record name: INSERT with one placeholder per column.
	insert map[string]string
}

func newPlans() *plans {
	return &plans{
		baseQuery: make(map[string]string),
		insert:    make(map[string]string),
	}
}

// Attach registers this store's setup hooks with a registry. It must run
// before any record type is registered: the base-query hook caches the
// row-selection statement, the save hook caches the insert statement,
// and the enforcement hook creates the table and verifies the live
// schema against the declared columns.
func (s *SQLiteStore) Attach(reg *record.Registry) error {
	if err := reg.RegisterSetup("base_query", s.setupBaseQuery); err != nil {
		return err
	}
	if err := reg.RegisterSetup("save", s.setupSave); err != nil {
		return err
	}
	return reg.RegisterSetup("enforce_schema", s.setupEnforceSchema)
}

func (s *SQLiteStore) setupBaseQuery(t *record.Type, meta record.Metadata) error {
	cols := make([]string, len(meta.Columns))
	for i, c := range meta.Columns {
		cols[i] = c.Name
	}

	s.plans.mu.Lock()
	defer s.plans.mu.Unlock()
	s.plans.baseQuery[meta.Name] = fmt.Sprintf(
		"SELECT %s FROM %s", strings.Join(cols, ", "), meta.Table)
	return nil
}

func (s *SQLiteStore) setupSave(t *record.Type, meta record.Metadata) error {
	cols := make([]string, len(meta.Columns))
	marks := make([]string, len(meta.Columns))
	for i, c := range meta.Columns {
		cols[i] = c.Name
		marks[i] = "?"
	}

	s.plans.mu.Lock()
	defer s.plans.mu.Unlock()
	s.plans.insert[meta.Name] = fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		meta.Table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return nil
}
