package schema

import (
	"errors"
	"fmt"
)

// Definition-time errors. Declaration mistakes halt record-type assembly;
// they are programmer errors, not runtime conditions.
var (
	ErrFrozen               = errors.New("definition already finalized")
	ErrDuplicateColumn      = errors.New("duplicate column")
	ErrPrimaryKeyRedeclared = errors.New("primary key already declared")
	ErrNoColumns            = errors.New("definition has no columns")
)

// Definition accumulates column and association declarations for one
// record type. It moves through two states: declaring (append-only) and
// finalized (frozen). Every declaration after Freeze is rejected.
type Definition struct {
	name    string
	table   string
	pkName  string
	pkType  DomainType
	columns []Column
	assocs  []Association
	frozen  bool
}

// New starts a definition for the named record type.
func New(name string) *Definition {
	return &Definition{name: name}
}

// Name returns the record type name.
func (d *Definition) Name() string { return d.name }

// Table returns the explicitly declared table name, or "" if the table
// name should be inferred by convention.
func (d *Definition) Table() string { return d.table }

// PrimaryKey returns the declared primary key name and type. Both are
// zero if no primary key was declared.
func (d *Definition) PrimaryKey() (string, DomainType) { return d.pkName, d.pkType }

// Columns returns the declared columns in declaration order.
func (d *Definition) Columns() []Column { return d.columns }

// Associations returns the declared associations in declaration order.
func (d *Definition) Associations() []Association { return d.assocs }

// Frozen reports whether the definition has been finalized.
func (d *Definition) Frozen() bool { return d.frozen }

// SetTable binds an explicit table name instead of the conventional one.
func (d *Definition) SetTable(table string) error {
	if d.frozen {
		return fmt.Errorf("record %q: set table %q: %w", d.name, table, ErrFrozen)
	}
	d.table = table
	return nil
}

// DeclarePrimaryKey records the primary key and appends its column.
// The primary key column is always autogenerated by the backing store.
func (d *Definition) DeclarePrimaryKey(name string, typ DomainType) error {
	if d.frozen {
		return fmt.Errorf("record %q: declare primary key %q: %w", d.name, name, ErrFrozen)
	}
	if d.pkName != "" {
		return fmt.Errorf("record %q: declare primary key %q (already %q): %w",
			d.name, name, d.pkName, ErrPrimaryKeyRedeclared)
	}
	if err := d.DeclareColumn(Column{Name: name, Type: typ, Autogenerated: true}); err != nil {
		return err
	}
	d.pkName = name
	d.pkType = typ
	return nil
}

// DeclareColumn appends a column declaration.
func (d *Definition) DeclareColumn(col Column) error {
	if d.frozen {
		return fmt.Errorf("record %q: declare column %q: %w", d.name, col.Name, ErrFrozen)
	}
	if col.Name == "" {
		return fmt.Errorf("record %q: column with empty name", d.name)
	}
	for _, existing := range d.columns {
		if existing.Name == col.Name {
			return fmt.Errorf("record %q: column %q: %w", d.name, col.Name, ErrDuplicateColumn)
		}
	}
	d.columns = append(d.columns, col)
	return nil
}

// DeclareAssociation appends an association declaration.
func (d *Definition) DeclareAssociation(a Association) error {
	if d.frozen {
		return fmt.Errorf("record %q: declare association to %q: %w", d.name, a.Target, ErrFrozen)
	}
	if a.Target == "" {
		return fmt.Errorf("record %q: association with empty target", d.name)
	}
	switch a.Kind {
	case HasOne, HasMany, BelongsTo:
		if a.Through != "" {
			return fmt.Errorf("record %q: association to %q: through is only valid for %s",
				d.name, a.Target, HasManyThrough)
		}
	case HasManyThrough:
		if a.Through == "" {
			return fmt.Errorf("record %q: association to %q: %s requires through",
				d.name, a.Target, HasManyThrough)
		}
	default:
		return fmt.Errorf("record %q: association to %q: unknown kind %q", d.name, a.Target, a.Kind)
	}
	d.assocs = append(d.assocs, a)
	return nil
}

// Freeze finalizes the definition. Freezing twice is an error, as is
// freezing a definition that declares no columns.
func (d *Definition) Freeze() error {
	if d.frozen {
		return fmt.Errorf("record %q: freeze: %w", d.name, ErrFrozen)
	}
	if len(d.columns) == 0 {
		return fmt.Errorf("record %q: freeze: %w", d.name, ErrNoColumns)
	}
	d.frozen = true
	return nil
}
