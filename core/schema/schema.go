// Package schema defines the declarative metadata for record types:
// columns, associations, and the per-record-type definition that
// accumulates them until it is frozen.
package schema

// DomainType is the logical value type of a column, as opposed to the
// raw wire representation the driver produces.
type DomainType string

const (
	DomainText      DomainType = "text"
	DomainInteger   DomainType = "integer"
	DomainFloat     DomainType = "float"
	DomainBool      DomainType = "bool"
	DomainBlob      DomainType = "blob"
	DomainTimestamp DomainType = "timestamp"
	DomainUUID      DomainType = "uuid"
)

// Column describes one declared table column.
type Column struct {
	// Name is the column identifier, unique within a record type.
	Name string `yaml:"name"`

	// Type is the logical value type.
	Type DomainType `yaml:"type"`

	// Nilable indicates the column may hold an absent value.
	Nilable bool `yaml:"nilable,omitempty"`

	// Autogenerated indicates the value is produced by the backing store
	// (primary key, timestamps), not supplied by the constructing caller.
	Autogenerated bool `yaml:"autogenerated,omitempty"`
}

// SQLType returns the SQLite column type for this domain type.
func (t DomainType) SQLType() string {
	switch t {
	case DomainInteger, DomainBool:
		return "INTEGER"
	case DomainFloat:
		return "REAL"
	case DomainBlob:
		return "BLOB"
	default:
		return "TEXT"
	}
}

// Numeric reports whether values of this domain type need no escaping
// when rendered as a SQL literal.
func (t DomainType) Numeric() bool {
	switch t {
	case DomainInteger, DomainFloat, DomainBool:
		return true
	default:
		return false
	}
}
