package runtime

import (
	"math"
	"testing"
)

func TestDisplayForms(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string verbatim", StringValue{Val: "hello"}, "hello"},
		{"empty string", StringValue{Val: ""}, ""},
		{"integral number", NumberValue{Val: 42}, "42"},
		{"zero", NumberValue{Val: 0}, "0"},
		{"negative integral", NumberValue{Val: -15}, "-15"},
		{"fractional number", NumberValue{Val: 3.14}, "3.14"},
		{"sub-one fraction", NumberValue{Val: 0.25}, "0.25"},
		{"integral beyond int64", NumberValue{Val: 1e23}, "100000000000000000000000"},
		{"negative integral beyond int64", NumberValue{Val: -1e23}, "-100000000000000000000000"},
		{"positive infinity", NumberValue{Val: math.Inf(1)}, "inf"},
		{"negative infinity", NumberValue{Val: math.Inf(-1)}, "-inf"},
		{"not a number", NumberValue{Val: math.NaN()}, "NaN"},
		{"true", BoolValue{Val: true}, "true"},
		{"false", BoolValue{Val: false}, "false"},
		{"null", NullValue{}, "null"},
	}

	for _, tt := range tests {
		if got := tt.value.Display(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{StringValue{}, "string"},
		{NumberValue{}, "number"},
		{BoolValue{}, "boolean"},
		{NullValue{}, "null"},
	}

	for _, tt := range tests {
		if got := tt.value.Kind().String(); got != tt.want {
			t.Errorf("Kind of %T: got %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestEnvironmentOverwrite(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", NumberValue{Val: 1})
	env.Define("a", NumberValue{Val: 2})

	v, ok := env.Lookup("a")
	if !ok {
		t.Fatal("a not bound")
	}
	if n := v.(NumberValue).Val; n != 2 {
		t.Errorf("a = %v, want 2", n)
	}
}

func TestEnvironmentSnapshotIsACopy(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", NumberValue{Val: 1})

	snap := env.Snapshot()
	snap["b"] = NumberValue{Val: 2}

	if _, ok := env.Lookup("b"); ok {
		t.Error("mutating a snapshot must not affect the environment")
	}
}

func TestEnvironmentKeysSorted(t *testing.T) {
	env := NewEnvironment()
	env.Define("c", NullValue{})
	env.Define("a", NullValue{})
	env.Define("b", NullValue{})

	keys := env.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
