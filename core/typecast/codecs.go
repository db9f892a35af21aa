package typecast

import (
	"time"

	"github.com/google/uuid"
)

// Built-in codecs, one per raw shape plus the absent marker and UUID.
var (
	Absent    Codec[any]       = absentCodec{}
	Text      Codec[string]    = textCodec{}
	Integer   Codec[int64]     = integerCodec{}
	Float     Codec[float64]   = floatCodec{}
	Boolean   Codec[bool]      = booleanCodec{}
	Blob      Codec[[]byte]    = blobCodec{}
	Timestamp Codec[time.Time] = timestampCodec{}
	UUID      Codec[uuid.UUID] = uuidCodec{}
)

// absentCodec handles the absent (NULL) domain type. Casting always
// succeeds; the value is the absent marker itself.
type absentCodec struct{}

func (absentCodec) Cast(raw Raw) CastResult[any] { return Success[any](nil) }
func (absentCodec) Serialize(v any) Raw          { return nil }

type textCodec struct{}

func (textCodec) Cast(raw Raw) CastResult[string] {
	switch v := raw.(type) {
	case string:
		return Success(v)
	case []byte:
		// Drivers commonly hand TEXT columns back as []byte.
		return Success(string(v))
	}
	return Failed[string]()
}

func (textCodec) Serialize(v string) Raw { return v }

type integerCodec struct{}

func (integerCodec) Cast(raw Raw) CastResult[int64] {
	switch v := raw.(type) {
	case int64:
		return Success(v)
	case int:
		return Success(int64(v))
	case int32:
		return Success(int64(v))
	}
	return Failed[int64]()
}

func (integerCodec) Serialize(v int64) Raw { return v }

type floatCodec struct{}

func (floatCodec) Cast(raw Raw) CastResult[float64] {
	switch v := raw.(type) {
	case float64:
		return Success(v)
	case float32:
		return Success(float64(v))
	case int64:
		return Success(float64(v))
	}
	return Failed[float64]()
}

func (floatCodec) Serialize(v float64) Raw { return v }

type booleanCodec struct{}

func (booleanCodec) Cast(raw Raw) CastResult[bool] {
	switch v := raw.(type) {
	case bool:
		return Success(v)
	case int64:
		// SQLite stores bool as int.
		if v == 0 || v == 1 {
			return Success(v == 1)
		}
	}
	return Failed[bool]()
}

func (booleanCodec) Serialize(v bool) Raw {
	if v {
		return int64(1)
	}
	return int64(0)
}

type blobCodec struct{}

func (blobCodec) Cast(raw Raw) CastResult[[]byte] {
	switch v := raw.(type) {
	case []byte:
		return Success(v)
	case string:
		return Success([]byte(v))
	}
	return Failed[[]byte]()
}

func (blobCodec) Serialize(v []byte) Raw { return v }

type timestampCodec struct{}

func (timestampCodec) Cast(raw Raw) CastResult[time.Time] {
	switch v := raw.(type) {
	case time.Time:
		return Success(v)
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return Success(t)
		}
	case []byte:
		if t, err := time.Parse(time.RFC3339Nano, string(v)); err == nil {
			return Success(t)
		}
	}
	return Failed[time.Time]()
}

func (timestampCodec) Serialize(v time.Time) Raw {
	return v.UTC().Format(time.RFC3339Nano)
}

type uuidCodec struct{}

func (uuidCodec) Cast(raw Raw) CastResult[uuid.UUID] {
	switch v := raw.(type) {
	case string:
		if id, err := uuid.Parse(v); err == nil {
			return Success(id)
		}
	case []byte:
		if id, err := uuid.ParseBytes(v); err == nil {
			return Success(id)
		}
	}
	return Failed[uuid.UUID]()
}

func (uuidCodec) Serialize(v uuid.UUID) Raw { return v.String() }
