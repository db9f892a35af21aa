package schema

// AssociationKind identifies the relationship shape between two record types.
type AssociationKind string

const (
	HasOne         AssociationKind = "has_one"
	HasMany        AssociationKind = "has_many"
	BelongsTo      AssociationKind = "belongs_to"
	HasManyThrough AssociationKind = "has_many_through"
)

// Association describes one declared relationship.
type Association struct {
	// Kind is the relationship shape.
	Kind AssociationKind `yaml:"kind"`

	// Target is the table the relationship points at.
	Target string `yaml:"target"`

	// ForeignKey names the joining column. Empty means derive it by
	// convention from the owning side's record name.
	ForeignKey string `yaml:"foreign_key,omitempty"`

	// Through is the join table for has_many_through relationships.
	// It is meaningful only for that kind.
	Through string `yaml:"through,omitempty"`
}
