package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quarrydb/quarry/core/schema"
	"github.com/quarrydb/quarry/core/typecast"
)

// Record is one decoded row. Values are decoded eagerly at construction;
// a nil slot means the column holds the absent value. Records are
// unshared and need no synchronization.
type Record struct {
	typ    *Type
	values []any
}

// Type returns the record's compiled type.
func (r *Record) Type() *Type { return r.typ }

// ColumnNames returns the column identifiers in declaration order,
// identical to the type-level listing.
func (r *Record) ColumnNames() []string { return r.typ.ColumnNames() }

// PrimaryKeyName returns the declared primary key column name,
// identical to the type-level accessor.
func (r *Record) PrimaryKeyName() string { return r.typ.PrimaryKeyName() }

// Get returns a column's decoded value and whether it is present.
// The conventional primary-key name resolves to the declared primary
// key even when it was declared under another name.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.typ.column(name)
	if !ok {
		return nil, false
	}
	return r.values[i], r.values[i] != nil
}

// Set replaces a column's value, typically after the backing store
// produced an autogenerated one. The value must match the column's
// domain type; nil is accepted only for nilable columns.
func (r *Record) Set(name string, v any) error {
	i, ok := r.typ.column(name)
	if !ok {
		return fmt.Errorf("record %q: no column %q", r.typ.meta.Name, name)
	}
	col := r.typ.meta.Columns[i]

	if v == nil {
		if !col.Nilable {
			return fmt.Errorf("record %q: column %q is not nilable", r.typ.meta.Name, col.Name)
		}
		r.values[i] = nil
		return nil
	}
	if !r.typ.codecs[i].Accepts(v) {
		return fmt.Errorf("record %q: column %q: %T is not a %s value",
			r.typ.meta.Name, col.Name, v, col.Type)
	}
	r.values[i] = v
	return nil
}

// require resolves a column of the given domain type and panics when the
// column is unknown or its value is absent. It backs the non-nilable
// accessors: absence or a shape mismatch here means the row no longer
// matches the declared schema, which is fatal.
func (r *Record) require(name string, want schema.DomainType) any {
	i, ok := r.typ.column(name)
	if !ok {
		panic(fmt.Sprintf("record %q: no column %q", r.typ.meta.Name, name))
	}
	col := r.typ.meta.Columns[i]
	if col.Type != want {
		panic(fmt.Sprintf("record %q: column %q is %s, not %s",
			r.typ.meta.Name, name, col.Type, want))
	}
	if r.values[i] == nil {
		panic(fmt.Sprintf("record %q: column %q holds no value", r.typ.meta.Name, name))
	}
	return r.values[i]
}

// lookup resolves a column of the given domain type for the nilable
// accessors: an absent value reports ok=false instead of panicking.
func (r *Record) lookup(name string, want schema.DomainType) (any, bool) {
	i, ok := r.typ.column(name)
	if !ok {
		panic(fmt.Sprintf("record %q: no column %q", r.typ.meta.Name, name))
	}
	col := r.typ.meta.Columns[i]
	if col.Type != want {
		panic(fmt.Sprintf("record %q: column %q is %s, not %s",
			r.typ.meta.Name, name, col.Type, want))
	}
	if r.values[i] == nil {
		return nil, false
	}
	return r.values[i], true
}

// Text returns a text column's value, panicking on absence.
func (r *Record) Text(name string) string {
	return r.require(name, schema.DomainText).(string)
}

// TextOK returns a nilable text column's value and presence.
func (r *Record) TextOK(name string) (string, bool) {
	v, ok := r.lookup(name, schema.DomainText)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Int returns an integer column's value, panicking on absence.
func (r *Record) Int(name string) int64 {
	return r.require(name, schema.DomainInteger).(int64)
}

// IntOK returns a nilable integer column's value and presence.
func (r *Record) IntOK(name string) (int64, bool) {
	v, ok := r.lookup(name, schema.DomainInteger)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// Float returns a float column's value, panicking on absence.
func (r *Record) Float(name string) float64 {
	return r.require(name, schema.DomainFloat).(float64)
}

// FloatOK returns a nilable float column's value and presence.
func (r *Record) FloatOK(name string) (float64, bool) {
	v, ok := r.lookup(name, schema.DomainFloat)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

// Bool returns a bool column's value, panicking on absence.
func (r *Record) Bool(name string) bool {
	return r.require(name, schema.DomainBool).(bool)
}

// BoolOK returns a nilable bool column's value and presence.
func (r *Record) BoolOK(name string) (bool, bool) {
	v, ok := r.lookup(name, schema.DomainBool)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// Truthy reports whether a bool column holds true. An absent value is
// false, never a panic.
func (r *Record) Truthy(name string) bool {
	v, ok := r.lookup(name, schema.DomainBool)
	return ok && v.(bool)
}

// Time returns a timestamp column's value, panicking on absence.
func (r *Record) Time(name string) time.Time {
	return r.require(name, schema.DomainTimestamp).(time.Time)
}

// TimeOK returns a nilable timestamp column's value and presence.
func (r *Record) TimeOK(name string) (time.Time, bool) {
	v, ok := r.lookup(name, schema.DomainTimestamp)
	if !ok {
		return time.Time{}, false
	}
	return v.(time.Time), true
}

// Bytes returns a blob column's value, panicking on absence.
func (r *Record) Bytes(name string) []byte {
	return r.require(name, schema.DomainBlob).([]byte)
}

// BytesOK returns a nilable blob column's value and presence.
func (r *Record) BytesOK(name string) ([]byte, bool) {
	v, ok := r.lookup(name, schema.DomainBlob)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// UUID returns a uuid column's value, panicking on absence.
func (r *Record) UUID(name string) uuid.UUID {
	return r.require(name, schema.DomainUUID).(uuid.UUID)
}

// UUIDOK returns a nilable uuid column's value and presence.
func (r *Record) UUIDOK(name string) (uuid.UUID, bool) {
	v, ok := r.lookup(name, schema.DomainUUID)
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// PrimaryKey returns the decoded primary key value, or nil when the
// backing store has not produced one yet.
func (r *Record) PrimaryKey() any {
	return r.values[r.typ.pkIndex]
}

// PrimaryKeyLiteral renders the primary key as an escaped SQL literal
// for the delete-by-primary-key contract: numeric domain types render
// bare, everything else as a single-quoted literal with quotes doubled.
func (r *Record) PrimaryKeyLiteral() (string, error) {
	v := r.values[r.typ.pkIndex]
	if v == nil {
		return "", fmt.Errorf("record %q: primary key %q holds no value",
			r.typ.meta.Name, r.typ.meta.PrimaryKeyName)
	}

	if r.typ.meta.PrimaryKeyType.Numeric() {
		switch n := v.(type) {
		case int64:
			return strconv.FormatInt(n, 10), nil
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case bool:
			if n {
				return "1", nil
			}
			return "0", nil
		}
	}

	raw := r.typ.codecs[r.typ.pkIndex].SerializeAny(v)
	var text string
	switch s := raw.(type) {
	case string:
		text = s
	case []byte:
		text = string(s)
	default:
		text = fmt.Sprint(s)
	}

	return "'" + strings.ReplaceAll(text, "'", "''") + "'", nil
}

// RawValues serializes the record's present values back to their raw
// representations, keyed by column name. Absent columns are omitted.
func (r *Record) RawValues() map[string]typecast.Raw {
	raw := make(map[string]typecast.Raw, len(r.values))
	for i, v := range r.values {
		if v == nil {
			continue
		}
		raw[r.typ.meta.Columns[i].Name] = r.typ.codecs[i].SerializeAny(v)
	}
	return raw
}
