// Package typecast converts between raw driver values and typed domain values.
// Each domain type supplies a Codec; new domain types add a codec without
// touching existing ones.
package typecast

import "fmt"

// Raw is a value in one of the shapes a database driver produces or consumes:
// nil (absent), string, int64, float64, bool, []byte, or time.Time.
type Raw = any

// CastResult is the outcome of interpreting a raw value as a T.
// A failed cast carries no payload; the struct leaves room for a
// diagnostic field in a later revision.
type CastResult[T any] struct {
	value T
	ok    bool
}

// Success returns a successful cast holding v.
func Success[T any](v T) CastResult[T] {
	return CastResult[T]{value: v, ok: true}
}

// Failed returns a failed cast.
func Failed[T any]() CastResult[T] {
	return CastResult[T]{}
}

// OK reports whether the cast succeeded.
func (r CastResult[T]) OK() bool { return r.ok }

// Value returns the converted value and whether the cast succeeded.
func (r CastResult[T]) Value() (T, bool) { return r.value, r.ok }

// Codec converts one domain type to and from its raw representation.
// Cast never panics: a raw value whose shape does not match T yields a
// failed result, an ordinary data condition. Serialize is total over T.
type Codec[T any] interface {
	Cast(raw Raw) CastResult[T]
	Serialize(v T) Raw
}

// Deserialize casts raw and unwraps the result, panicking on a failed cast.
// It is for raw values whose shape is already guaranteed by the schema
// contract (rows read back from a verified store); callers that need a
// recoverable failure must use Cast directly.
func Deserialize[T any](c Codec[T], raw Raw) T {
	v, ok := c.Cast(raw).Value()
	if !ok {
		panic(fmt.Sprintf("typecast: cannot deserialize %T value %v", raw, raw))
	}
	return v
}

// AnyCodec is the type-erased face of a Codec, used where the target type
// is only known from column metadata at runtime.
type AnyCodec interface {
	CastAny(raw Raw) (any, bool)
	SerializeAny(v any) Raw
	Accepts(v any) bool
}

// erased adapts a typed Codec to AnyCodec.
type erased[T any] struct {
	codec Codec[T]
}

func (e erased[T]) CastAny(raw Raw) (any, bool) {
	v, ok := e.codec.Cast(raw).Value()
	if !ok {
		return nil, false
	}
	return v, true
}

func (e erased[T]) SerializeAny(v any) Raw {
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("typecast: serialize expects %T, got %T", tv, v))
	}
	return e.codec.Serialize(tv)
}

// Accepts reports whether v is a value of the codec's domain type.
func (e erased[T]) Accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

// Erase wraps a typed codec as an AnyCodec.
func Erase[T any](c Codec[T]) AnyCodec {
	return erased[T]{codec: c}
}
