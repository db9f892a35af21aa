package typecast

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCastResult(t *testing.T) {
	ok := Success("hello")
	if !ok.OK() {
		t.Error("Success result should report OK")
	}
	if v, present := ok.Value(); !present || v != "hello" {
		t.Errorf("Value() = %q, %v; want hello, true", v, present)
	}

	failed := Failed[string]()
	if failed.OK() {
		t.Error("Failed result should not report OK")
	}
	if _, present := failed.Value(); present {
		t.Error("Failed result should not hold a value")
	}
}

func TestTextCast(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want string
		ok   bool
	}{
		{"string", "hello", "hello", true},
		{"bytes", []byte("hello"), "hello", true},
		{"integer rejected", int64(42), "", false},
		{"nil rejected", nil, "", false},
		{"bool rejected", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Text.Cast(tt.raw).Value()
			if ok != tt.ok {
				t.Fatalf("Cast(%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && v != tt.want {
				t.Errorf("Cast(%v) = %q, want %q", tt.raw, v, tt.want)
			}
		})
	}
}

func TestIntegerCast(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want int64
		ok   bool
	}{
		{"int64", int64(42), 42, true},
		{"int", 42, 42, true},
		{"int32", int32(7), 7, true},
		{"string rejected", "42", 0, false},
		{"float rejected", 42.0, 0, false},
		{"nil rejected", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Integer.Cast(tt.raw).Value()
			if ok != tt.ok {
				t.Fatalf("Cast(%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && v != tt.want {
				t.Errorf("Cast(%v) = %d, want %d", tt.raw, v, tt.want)
			}
		})
	}
}

func TestBooleanCast(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want bool
		ok   bool
	}{
		{"true", true, true, true},
		{"false", false, false, true},
		{"one", int64(1), true, true},
		{"zero", int64(0), false, true},
		{"other int rejected", int64(2), false, false},
		{"string rejected", "true", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Boolean.Cast(tt.raw).Value()
			if ok != tt.ok {
				t.Fatalf("Cast(%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && v != tt.want {
				t.Errorf("Cast(%v) = %v, want %v", tt.raw, v, tt.want)
			}
		})
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	raw := Boolean.Serialize(true)
	if raw != int64(1) {
		t.Errorf("Serialize(true) = %v, want 1", raw)
	}

	v, ok := Boolean.Cast(raw).Value()
	if !ok || !v {
		t.Errorf("Cast(Serialize(true)) = %v, %v; want true, true", v, ok)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 30, 0, 500, time.UTC)

	raw := Timestamp.Serialize(t0)
	v, ok := Timestamp.Cast(raw).Value()
	if !ok {
		t.Fatalf("Cast(Serialize(t0)) failed for raw %v", raw)
	}
	if !v.Equal(t0) {
		t.Errorf("round trip = %v, want %v", v, t0)
	}
}

func TestTimestampCastRejectsGarbage(t *testing.T) {
	if Timestamp.Cast("not a time").OK() {
		t.Error("Cast should reject non-temporal text")
	}
	if Timestamp.Cast(int64(42)).OK() {
		t.Error("Cast should reject integers")
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()

	raw := UUID.Serialize(id)
	v, ok := UUID.Cast(raw).Value()
	if !ok {
		t.Fatalf("Cast(Serialize(id)) failed for raw %v", raw)
	}
	if v != id {
		t.Errorf("round trip = %v, want %v", v, id)
	}

	if UUID.Cast("not-a-uuid").OK() {
		t.Error("Cast should reject malformed uuid text")
	}
}

func TestAbsentAlwaysSucceeds(t *testing.T) {
	for _, raw := range []Raw{nil, "text", int64(1), true} {
		if !Absent.Cast(raw).OK() {
			t.Errorf("Absent.Cast(%v) should succeed", raw)
		}
	}
	if Absent.Serialize("anything") != nil {
		t.Error("Absent.Serialize should yield nil")
	}
}

func TestSerializeCastRoundTrips(t *testing.T) {
	// For every well-shaped raw value, cast then serialize reproduces it.
	t.Run("text", func(t *testing.T) {
		v := Deserialize(Text, "Ann")
		if raw := Text.Serialize(v); raw != "Ann" {
			t.Errorf("serialize(deserialize) = %v, want Ann", raw)
		}
	})
	t.Run("integer", func(t *testing.T) {
		v := Deserialize(Integer, int64(9))
		if raw := Integer.Serialize(v); raw != int64(9) {
			t.Errorf("serialize(deserialize) = %v, want 9", raw)
		}
	})
	t.Run("float", func(t *testing.T) {
		v := Deserialize(Float, 2.5)
		if raw := Float.Serialize(v); raw != 2.5 {
			t.Errorf("serialize(deserialize) = %v, want 2.5", raw)
		}
	})
}

func TestDeserializePanicsOnFailedCast(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Deserialize should panic on a failed cast")
		}
	}()
	Deserialize(Integer, "not a number")
}

func TestErase(t *testing.T) {
	c := Erase(Integer)

	v, ok := c.CastAny(int64(5))
	if !ok || v.(int64) != 5 {
		t.Errorf("CastAny = %v, %v; want 5, true", v, ok)
	}

	if _, ok := c.CastAny("nope"); ok {
		t.Error("CastAny should fail on mis-shaped raw")
	}

	if !c.Accepts(int64(1)) {
		t.Error("Accepts should admit int64")
	}
	if c.Accepts("text") {
		t.Error("Accepts should reject string for the integer codec")
	}

	if raw := c.SerializeAny(int64(5)); raw != int64(5) {
		t.Errorf("SerializeAny = %v, want 5", raw)
	}
}
