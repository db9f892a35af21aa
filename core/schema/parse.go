package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// recordFile is the YAML shape of one record-type definition file.
type recordFile struct {
	Record     string        `yaml:"record"`
	Table      string        `yaml:"table,omitempty"`
	PrimaryKey *primaryKey   `yaml:"primary_key,omitempty"`
	Columns    []Column      `yaml:"columns"`
	Assocs     []Association `yaml:"associations,omitempty"`
}

type primaryKey struct {
	Name string     `yaml:"name"`
	Type DomainType `yaml:"type"`
}

// ParseFile parses a record-type definition from a YAML file.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a record-type definition from YAML bytes. Declarations are
// replayed through the Definition builder, so the same definition-time
// errors fire for malformed files as for programmatic declaration.
func Parse(data []byte) (*Definition, error) {
	var file recordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if file.Record == "" {
		return nil, fmt.Errorf("record definition missing record name")
	}

	def := New(file.Record)

	if file.Table != "" {
		if err := def.SetTable(file.Table); err != nil {
			return nil, err
		}
	}

	if file.PrimaryKey != nil {
		if err := def.DeclarePrimaryKey(file.PrimaryKey.Name, file.PrimaryKey.Type); err != nil {
			return nil, err
		}
	}

	for _, col := range file.Columns {
		if err := def.DeclareColumn(col); err != nil {
			return nil, err
		}
	}

	for _, a := range file.Assocs {
		if err := def.DeclareAssociation(a); err != nil {
			return nil, err
		}
	}

	return def, nil
}

// ParseDir parses all record-type definitions from a directory,
// including subdirectories.
func ParseDir(dir string) ([]*Definition, error) {
	var defs []*Definition

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := ParseDir(path)
			if err != nil {
				return nil, err
			}
			defs = append(defs, sub...)
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		def, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}
