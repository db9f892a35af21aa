package record

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/quarrydb/quarry/core/schema"
	"github.com/rs/zerolog"
)

var (
	// ErrSetupLocked is returned when a collaborator tries to register a
	// setup step after a record type has already finalized. Later record
	// types would silently skip the late step, so registration is
	// one-shot: collaborators first, record types after.
	ErrSetupLocked = errors.New("setup registration locked")

	// ErrDuplicateRecord is returned when a record type name is
	// registered twice.
	ErrDuplicateRecord = errors.New("record type already registered")
)

// Config configures a Registry.
type Config struct {
	// Logger for finalization events.
	Logger zerolog.Logger
}

// Registry compiles and owns record types. Collaborators register setup
// steps before any record type finalizes; each Register call freezes one
// definition and runs the full pipeline over it.
type Registry struct {
	mu sync.RWMutex

	// types by record name
	types map[string]*Type

	// tables to record names, for conflict detection
	tables map[string]string

	// hooks run after the built-in steps, in registration order
	hooks []namedStep

	// locked flips when the first record type finalizes
	locked bool

	logger zerolog.Logger
}

type namedStep struct {
	name string
	step SetupStep
}

// NewRegistry creates a registry.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		types:  make(map[string]*Type),
		tables: make(map[string]string),
		logger: cfg.Logger,
	}
}

// RegisterSetup appends a collaborator setup step to the pipeline. It is
// rejected once any record type has finalized.
func (r *Registry) RegisterSetup(name string, step SetupStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.locked {
		return fmt.Errorf("setup step %q: %w", name, ErrSetupLocked)
	}
	for _, h := range r.hooks {
		if h.name == name {
			return fmt.Errorf("setup step %q already registered", name)
		}
	}

	r.hooks = append(r.hooks, namedStep{name: name, step: step})
	return nil
}

// Register finalizes a definition and compiles it into a record type.
// The definition is frozen, the built-in pipeline runs in fixed order,
// then collaborator hooks run in registration order, each receiving the
// same frozen metadata. Returns an error on duplicate record names,
// table claims, or an already-frozen definition.
func (r *Registry) Register(def *schema.Definition) (*Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := def.Name()
	if _, exists := r.types[name]; exists {
		return nil, fmt.Errorf("record %q: %w", name, ErrDuplicateRecord)
	}
	if pk, _ := def.PrimaryKey(); pk == "" {
		return nil, fmt.Errorf("record %q: no primary key declared", name)
	}

	if err := def.Freeze(); err != nil {
		return nil, err
	}

	t := &Type{meta: buildMetadata(def)}

	for _, s := range builtinSteps {
		if err := s.step(t, t.meta); err != nil {
			return nil, fmt.Errorf("record %q: setup step %q: %w", name, s.name, err)
		}
	}

	if claimed, exists := r.tables[t.meta.Table]; exists {
		return nil, fmt.Errorf("record %q: table %q already claimed by record %q",
			name, t.meta.Table, claimed)
	}

	for _, h := range r.hooks {
		if err := h.step(t, t.meta); err != nil {
			return nil, fmt.Errorf("record %q: setup step %q: %w", name, h.name, err)
		}
	}

	r.types[name] = t
	r.tables[t.meta.Table] = name
	r.locked = true

	r.logger.Debug().
		Str("record", name).
		Str("table", t.meta.Table).
		Int("columns", len(t.meta.Columns)).
		Msg("record type finalized")

	return t, nil
}

// Get returns a compiled record type by name.
func (r *Registry) Get(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	return t, ok
}

// List returns all compiled record types, sorted by name.
func (r *Registry) List() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].meta.Name < types[j].meta.Name
	})

	return types
}
