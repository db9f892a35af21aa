package record

import (
	"fmt"
	"sync"

	"github.com/quarrydb/quarry/core/schema"
	"github.com/quarrydb/quarry/core/typecast"
)

// codecs maps domain types to their type-erased codecs. Built-in domain
// types are registered here; user-defined domain types add theirs via
// RegisterCodec without touching existing entries.
var (
	codecMu sync.RWMutex
	codecs  = map[schema.DomainType]typecast.AnyCodec{
		schema.DomainText:      typecast.Erase(typecast.Text),
		schema.DomainInteger:   typecast.Erase(typecast.Integer),
		schema.DomainFloat:     typecast.Erase(typecast.Float),
		schema.DomainBool:      typecast.Erase(typecast.Boolean),
		schema.DomainBlob:      typecast.Erase(typecast.Blob),
		schema.DomainTimestamp: typecast.Erase(typecast.Timestamp),
		schema.DomainUUID:      typecast.Erase(typecast.UUID),
	}
)

// RegisterCodec binds a codec to a domain type. Rebinding a built-in
// domain type is an error; new domain types register freely.
func RegisterCodec(t schema.DomainType, c typecast.AnyCodec) error {
	codecMu.Lock()
	defer codecMu.Unlock()

	if _, exists := codecs[t]; exists {
		return fmt.Errorf("codec for domain type %q already registered", t)
	}
	codecs[t] = c
	return nil
}

// codecFor looks up the codec for a domain type.
func codecFor(t schema.DomainType) (typecast.AnyCodec, bool) {
	codecMu.RLock()
	defer codecMu.RUnlock()

	c, ok := codecs[t]
	return c, ok
}
