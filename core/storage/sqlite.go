package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quarrydb/quarry/core/record"
	"github.com/quarrydb/quarry/core/schema"
	"github.com/quarrydb/quarry/core/typecast"
	"github.com/rs/zerolog"

	_ "github.com/mattn/go-sqlite3"
)

// Config configures a SQLiteStore.
type Config struct {
	// Path is the database file; ":memory:" for an in-memory database.
	Path string

	// Logger for schema enforcement events.
	Logger zerolog.Logger
}

// SQLiteStore implements Store with SQLite.
type SQLiteStore struct {
	db     *sql.DB
	plans  *plans
	logger zerolog.Logger
}

// NewSQLiteStore opens a SQLite database with the standard pragmas.
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	return &SQLiteStore{db: db, plans: newPlans(), logger: cfg.Logger}, nil
}

// CreateTable creates the table for a record type if it does not exist.
func (s *SQLiteStore) CreateTable(ctx context.Context, t *record.Type) error {
	createSQL := buildCreateTableSQL(t)
	if _, err := s.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create table %s: %w", t.Table(), err)
	}
	return nil
}

// buildCreateTableSQL renders the CREATE TABLE statement from compiled
// metadata.
func buildCreateTableSQL(t *record.Type) string {
	meta := t.Metadata()

	defs := make([]string, 0, len(meta.Columns))
	for _, col := range meta.Columns {
		def := col.Name + " " + col.Type.SQLType()
		if col.Name == meta.PrimaryKeyName {
			def += " PRIMARY KEY"
		} else if !col.Nilable && !col.Autogenerated {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		meta.Table, strings.Join(defs, ", "))
}

// setupEnforceSchema is the schema-enforcement hook: it creates the
// table at finalization and verifies the live schema against the
// declared columns, so that every later Hydrate runs over rows whose
// shape the decode plan already guarantees.
func (s *SQLiteStore) setupEnforceSchema(t *record.Type, meta record.Metadata) error {
	if err := s.CreateTable(context.Background(), t); err != nil {
		return err
	}

	live, err := s.tableColumns(context.Background(), meta.Table)
	if err != nil {
		return err
	}

	for _, col := range meta.Columns {
		liveType, ok := live[col.Name]
		if !ok {
			return fmt.Errorf("record %q: table %s is missing column %q",
				meta.Name, meta.Table, col.Name)
		}
		if !strings.EqualFold(liveType, col.Type.SQLType()) {
			s.logger.Warn().
				Str("record", meta.Name).
				Str("column", col.Name).
				Str("declared", col.Type.SQLType()).
				Str("live", liveType).
				Msg("column type drift")
		}
		delete(live, col.Name)
	}

	for name := range live {
		s.logger.Warn().
			Str("record", meta.Name).
			Str("column", name).
			Msg("undeclared column in live table")
	}

	return nil
}

// tableColumns reads the live column set via PRAGMA table_info.
func (s *SQLiteStore) tableColumns(ctx context.Context, table string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]string)
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt any
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = typ
	}
	return cols, rows.Err()
}

// Insert writes a record. Absent autogenerated columns are filled first:
// uuid and text primary keys get a fresh UUID, timestamps get now, and
// an integer primary key is left for SQLite to assign.
func (s *SQLiteStore) Insert(ctx context.Context, rec *record.Record) (any, error) {
	t := rec.Type()
	meta := t.Metadata()

	for _, col := range meta.Columns {
		if !col.Autogenerated {
			continue
		}
		if _, present := rec.Get(col.Name); present {
			continue
		}

		switch {
		case col.Name == meta.PrimaryKeyName && col.Type == schema.DomainUUID:
			if err := rec.Set(col.Name, uuid.New()); err != nil {
				return nil, err
			}
		case col.Name == meta.PrimaryKeyName && col.Type == schema.DomainText:
			if err := rec.Set(col.Name, uuid.New().String()); err != nil {
				return nil, err
			}
		case col.Type == schema.DomainTimestamp:
			if err := rec.Set(col.Name, time.Now().UTC()); err != nil {
				return nil, err
			}
		}
	}

	s.plans.mu.RLock()
	insertSQL, ok := s.plans.insert[meta.Name]
	s.plans.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("record %q: no insert plan (store not attached before registration)", meta.Name)
	}

	raw := rec.RawValues()
	args := make([]any, len(meta.Columns))
	for i, col := range meta.Columns {
		args[i] = raw[col.Name]
	}

	res, err := s.db.ExecContext(ctx, insertSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", meta.Table, err)
	}

	// SQLite assigned an integer primary key.
	if _, present := rec.Get(meta.PrimaryKeyName); !present && meta.PrimaryKeyType == schema.DomainInteger {
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert into %s: %w", meta.Table, err)
		}
		if err := rec.Set(meta.PrimaryKeyName, id); err != nil {
			return nil, err
		}
	}

	return rec.PrimaryKey(), nil
}

// Fetch reads one row by primary key and hydrates it through the record
// type's decode plan. Returns nil without error when no row matches.
func (s *SQLiteStore) Fetch(ctx context.Context, t *record.Type, pk any) (*record.Record, error) {
	meta := t.Metadata()

	s.plans.mu.RLock()
	baseQuery, ok := s.plans.baseQuery[meta.Name]
	s.plans.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("record %q: no base query (store not attached before registration)", meta.Name)
	}

	query := baseQuery + fmt.Sprintf(" WHERE %s = ?", meta.PrimaryKeyName)
	row := s.db.QueryRowContext(ctx, query, toDriver(pk))

	values := make([]any, len(meta.Columns))
	dest := make([]any, len(meta.Columns))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := row.Scan(dest...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rawRow := make(map[string]typecast.Raw, len(meta.Columns))
	for i, col := range meta.Columns {
		rawRow[col.Name] = values[i]
	}

	return t.Hydrate(rawRow)
}

// Delete removes a record's row. The statement is built from the
// primary-key name and its escaped literal representation.
func (s *SQLiteStore) Delete(ctx context.Context, rec *record.Record) error {
	t := rec.Type()

	literal, err := rec.PrimaryKeyLiteral()
	if err != nil {
		return err
	}

	deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE %s = %s",
		t.Table(), t.PrimaryKeyName(), literal)

	res, err := s.db.ExecContext(ctx, deleteSQL)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", t.Table(), err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("record %q: no row with %s = %s",
			t.Name(), t.PrimaryKeyName(), literal)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// toDriver converts a typed primary key value to a driver argument.
func toDriver(v any) any {
	switch x := v.(type) {
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	default:
		return x
	}
}
