package record

import (
	"fmt"

	"github.com/quarrydb/quarry/core/convention"
	"github.com/quarrydb/quarry/core/schema"
	"github.com/quarrydb/quarry/core/typecast"
)

// SetupStep is one unit of generated behavior, run once per record type
// at finalization. Every step receives the same frozen metadata.
type SetupStep func(t *Type, meta Metadata) error

// builtinSteps is the fixed pipeline every record type goes through
// before collaborator hooks run. Order matters: later steps read state
// the earlier ones bound.
var builtinSteps = []struct {
	name string
	step SetupStep
}{
	{"bind_table", bindTable},
	{"build_constructor", buildConstructor},
	{"build_decoders", buildDecoders},
	{"build_accessors", buildAccessors},
	{"list_columns", listColumns},
}

// bindTable binds the table name: explicit declaration wins, otherwise
// the conventional plural snake_case of the record name.
func bindTable(t *Type, meta Metadata) error {
	if t.meta.Table == "" {
		t.meta.Table = convention.TableName(meta.Name)
	}
	return nil
}

// buildConstructor selects the caller-supplied columns: every column in
// declaration order except autogenerated ones, which the backing store
// produces.
func buildConstructor(t *Type, meta Metadata) error {
	for i, col := range meta.Columns {
		if col.Autogenerated {
			continue
		}
		t.ctorCols = append(t.ctorCols, i)
	}
	return nil
}

// buildDecoders resolves one codec per column by its declared domain type.
func buildDecoders(t *Type, meta Metadata) error {
	t.codecs = make([]typecast.AnyCodec, len(meta.Columns))
	for i, col := range meta.Columns {
		c, ok := codecFor(col.Type)
		if !ok {
			return fmt.Errorf("record %q: column %q: no codec for domain type %q",
				meta.Name, col.Name, col.Type)
		}
		t.codecs[i] = c
	}
	return nil
}

// buildAccessors indexes columns by name and resolves the primary-key
// alias: when the declared primary key is not conventionally named and
// no column claims the conventional name, that name resolves to the
// primary key column too.
func buildAccessors(t *Type, meta Metadata) error {
	t.index = make(map[string]int, len(meta.Columns))
	t.pkIndex = -1

	for i, col := range meta.Columns {
		t.index[col.Name] = i
		if col.Name == meta.PrimaryKeyName {
			t.pkIndex = i
		}
	}

	if t.pkIndex < 0 {
		return fmt.Errorf("record %q: primary key %q is not a declared column",
			meta.Name, meta.PrimaryKeyName)
	}

	if _, claimed := t.index[convention.PrimaryKeyDefault]; !claimed {
		t.index[convention.PrimaryKeyDefault] = t.pkIndex
	}

	return nil
}

// listColumns caches the ordered column-name listing.
func listColumns(t *Type, meta Metadata) error {
	t.columnNames = make([]string, len(meta.Columns))
	for i, col := range meta.Columns {
		t.columnNames[i] = col.Name
	}
	return nil
}

// Type is one compiled record type. It is immutable after compilation
// and safe for concurrent use.
type Type struct {
	meta        Metadata
	index       map[string]int
	codecs      []typecast.AnyCodec
	columnNames []string
	ctorCols    []int
	pkIndex     int
}

// Name returns the record type name.
func (t *Type) Name() string { return t.meta.Name }

// Table returns the bound table name.
func (t *Type) Table() string { return t.meta.Table }

// Metadata returns the frozen five-tuple for this record type.
func (t *Type) Metadata() Metadata { return t.meta }

// ColumnNames returns the column identifiers in declaration order.
func (t *Type) ColumnNames() []string {
	names := make([]string, len(t.columnNames))
	copy(names, t.columnNames)
	return names
}

// Columns returns the column specs in declaration order.
func (t *Type) Columns() []schema.Column {
	cols := make([]schema.Column, len(t.meta.Columns))
	copy(cols, t.meta.Columns)
	return cols
}

// Associations returns the association specs in declaration order.
func (t *Type) Associations() []schema.Association {
	assocs := make([]schema.Association, len(t.meta.Associations))
	copy(assocs, t.meta.Associations)
	return assocs
}

// PrimaryKeyName returns the declared primary key column name.
func (t *Type) PrimaryKeyName() string { return t.meta.PrimaryKeyName }

// PrimaryKeyType returns the declared primary key domain type.
func (t *Type) PrimaryKeyType() schema.DomainType { return t.meta.PrimaryKeyType }

// ConstructorColumns returns the names of the columns the generated
// constructor requires, in declaration order.
func (t *Type) ConstructorColumns() []string {
	names := make([]string, len(t.ctorCols))
	for i, idx := range t.ctorCols {
		names[i] = t.meta.Columns[idx].Name
	}
	return names
}

// column resolves a column position by name, honoring the primary-key alias.
func (t *Type) column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// New constructs a record from caller-supplied values: one positional
// argument per non-autogenerated column, in declaration order. Values
// must already be typed domain values; a nilable column accepts nil.
func (t *Type) New(args ...any) (*Record, error) {
	if len(args) != len(t.ctorCols) {
		return nil, fmt.Errorf("record %q: constructor takes %d values (%v), got %d",
			t.meta.Name, len(t.ctorCols), t.ConstructorColumns(), len(args))
	}

	values := make([]any, len(t.meta.Columns))
	for i, idx := range t.ctorCols {
		col := t.meta.Columns[idx]
		v := args[i]

		if v == nil {
			if !col.Nilable {
				return nil, fmt.Errorf("record %q: column %q is not nilable", t.meta.Name, col.Name)
			}
			continue
		}
		if !t.codecs[idx].Accepts(v) {
			return nil, fmt.Errorf("record %q: column %q: %T is not a %s value",
				t.meta.Name, col.Name, v, col.Type)
		}
		values[idx] = v
	}

	return &Record{typ: t, values: values}, nil
}

// Hydrate decodes a raw row into a record. The row supplies every
// column, autogenerated ones included; each value is decoded through
// the column's codec. An absent raw value decodes to absent for a
// nilable column and fails for any other.
func (t *Type) Hydrate(row map[string]typecast.Raw) (*Record, error) {
	values := make([]any, len(t.meta.Columns))

	for i, col := range t.meta.Columns {
		raw, present := row[col.Name]
		if !present || raw == nil {
			if col.Nilable {
				continue
			}
			return nil, fmt.Errorf("record %q: column %q: raw value absent", t.meta.Name, col.Name)
		}

		v, ok := t.codecs[i].CastAny(raw)
		if !ok {
			return nil, fmt.Errorf("record %q: column %q: cannot decode %T value as %s",
				t.meta.Name, col.Name, raw, col.Type)
		}
		values[i] = v
	}

	return &Record{typ: t, values: values}, nil
}
