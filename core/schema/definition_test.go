package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestDeclareColumns(t *testing.T) {
	def := New("user")

	if err := def.DeclareColumn(Column{Name: "name", Type: DomainText}); err != nil {
		t.Fatalf("DeclareColumn failed: %v", err)
	}
	if err := def.DeclareColumn(Column{Name: "age", Type: DomainInteger, Nilable: true}); err != nil {
		t.Fatalf("DeclareColumn failed: %v", err)
	}

	cols := def.Columns()
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Name != "name" || cols[1].Name != "age" {
		t.Errorf("columns out of declaration order: %v", cols)
	}
}

func TestDeclareDuplicateColumn(t *testing.T) {
	def := New("user")

	if err := def.DeclareColumn(Column{Name: "name", Type: DomainText}); err != nil {
		t.Fatalf("DeclareColumn failed: %v", err)
	}

	err := def.DeclareColumn(Column{Name: "name", Type: DomainInteger})
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("expected ErrDuplicateColumn, got %v", err)
	}
}

func TestDeclarePrimaryKey(t *testing.T) {
	def := New("user")

	if err := def.DeclarePrimaryKey("id", DomainInteger); err != nil {
		t.Fatalf("DeclarePrimaryKey failed: %v", err)
	}

	name, typ := def.PrimaryKey()
	if name != "id" || typ != DomainInteger {
		t.Errorf("PrimaryKey() = %q, %q; want id, integer", name, typ)
	}

	// The primary key implicitly declares its own column, autogenerated.
	cols := def.Columns()
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if cols[0].Name != "id" || !cols[0].Autogenerated {
		t.Errorf("primary key column = %+v; want autogenerated id", cols[0])
	}
}

func TestDeclarePrimaryKeyTwice(t *testing.T) {
	def := New("user")

	if err := def.DeclarePrimaryKey("id", DomainInteger); err != nil {
		t.Fatalf("DeclarePrimaryKey failed: %v", err)
	}

	err := def.DeclarePrimaryKey("uuid", DomainUUID)
	if !errors.Is(err, ErrPrimaryKeyRedeclared) {
		t.Errorf("expected ErrPrimaryKeyRedeclared, got %v", err)
	}
}

func TestDeclarationsAfterFreeze(t *testing.T) {
	def := New("user")
	if err := def.DeclareColumn(Column{Name: "name", Type: DomainText}); err != nil {
		t.Fatalf("DeclareColumn failed: %v", err)
	}
	if err := def.Freeze(); err != nil {
		t.Fatalf("Freeze failed: %v", err)
	}

	tests := []struct {
		name    string
		declare func() error
	}{
		{"column", func() error { return def.DeclareColumn(Column{Name: "age", Type: DomainInteger}) }},
		{"primary key", func() error { return def.DeclarePrimaryKey("id", DomainInteger) }},
		{"association", func() error { return def.DeclareAssociation(Association{Kind: HasMany, Target: "posts"}) }},
		{"table", func() error { return def.SetTable("people") }},
		{"freeze again", def.Freeze},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.declare(); !errors.Is(err, ErrFrozen) {
				t.Errorf("expected ErrFrozen, got %v", err)
			}
		})
	}
}

func TestFreezeWithoutColumns(t *testing.T) {
	def := New("empty")
	if err := def.Freeze(); !errors.Is(err, ErrNoColumns) {
		t.Errorf("expected ErrNoColumns, got %v", err)
	}
}

func TestDeclareAssociation(t *testing.T) {
	tests := []struct {
		name    string
		assoc   Association
		wantErr bool
	}{
		{"has_many", Association{Kind: HasMany, Target: "posts"}, false},
		{"belongs_to", Association{Kind: BelongsTo, Target: "users"}, false},
		{"has_one", Association{Kind: HasOne, Target: "profiles"}, false},
		{"through on has_many", Association{Kind: HasMany, Target: "tags", Through: "taggings"}, true},
		{"has_many_through", Association{Kind: HasManyThrough, Target: "tags", Through: "taggings"}, false},
		{"has_many_through without through", Association{Kind: HasManyThrough, Target: "tags"}, true},
		{"unknown kind", Association{Kind: "embeds_many", Target: "things"}, true},
		{"empty target", Association{Kind: HasMany}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := New("user")
			err := def.DeclareAssociation(tt.assoc)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeclareAssociation(%+v) error = %v, wantErr %v", tt.assoc, err, tt.wantErr)
			}
		})
	}
}

func TestErrorsNameTheRecordType(t *testing.T) {
	def := New("invoice")
	if err := def.DeclareColumn(Column{Name: "total", Type: DomainFloat}); err != nil {
		t.Fatalf("DeclareColumn failed: %v", err)
	}

	err := def.DeclareColumn(Column{Name: "total", Type: DomainFloat})
	if err == nil {
		t.Fatal("expected error on duplicate declaration")
	}
	for _, want := range []string{"invoice", "total"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %q", err, want)
		}
	}
}
