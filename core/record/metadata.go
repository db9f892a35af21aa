// Package record compiles frozen record-type definitions into concrete
// record types and decodes raw rows into record instances.
package record

import (
	"github.com/quarrydb/quarry/core/convention"
	"github.com/quarrydb/quarry/core/schema"
)

// Metadata is the frozen shape of one record type, handed unchanged to
// every setup step at finalization. It is immutable after compilation
// and safe to share across concurrent readers.
type Metadata struct {
	// Name is the record type name.
	Name string

	// Table is the bound table name.
	Table string

	// PrimaryKeyName and PrimaryKeyType describe the declared primary key.
	PrimaryKeyName string
	PrimaryKeyType schema.DomainType

	// Columns in declaration order.
	Columns []schema.Column

	// Associations in declaration order, foreign keys resolved.
	Associations []schema.Association
}

// buildMetadata captures a frozen definition, filling in conventional
// defaults for association foreign keys.
func buildMetadata(def *schema.Definition) Metadata {
	pkName, pkType := def.PrimaryKey()

	meta := Metadata{
		Name:           def.Name(),
		Table:          def.Table(),
		PrimaryKeyName: pkName,
		PrimaryKeyType: pkType,
		Columns:        append([]schema.Column(nil), def.Columns()...),
	}

	for _, a := range def.Associations() {
		if a.ForeignKey == "" {
			switch a.Kind {
			case schema.BelongsTo:
				// The joining column lives on this record, named after the target.
				a.ForeignKey = convention.ForeignKey(a.Target)
			default:
				// The joining column lives on the target, named after this record.
				a.ForeignKey = convention.ForeignKey(def.Name())
			}
		}
		meta.Associations = append(meta.Associations, a)
	}

	return meta
}
