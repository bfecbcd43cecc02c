package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"simplescript/interpreter-go/pkg/lexer"
	"simplescript/interpreter-go/pkg/parser"
	"simplescript/interpreter-go/pkg/runtime"
)

// fixtureManifest is one YAML script fixture: a source program plus the
// expected output, expected final bindings, and (for failing programs) the
// expected error message.
type fixtureManifest struct {
	Description string `yaml:"description"`
	Source      string `yaml:"source"`
	Expect      struct {
		Stdout    string                  `yaml:"stdout"`
		Error     string                  `yaml:"error"`
		Variables map[string]fixtureValue `yaml:"variables"`
	} `yaml:"expect"`
}

type fixtureValue struct {
	Kind  string `yaml:"kind"`
	Value any    `yaml:"value"`
}

func TestFixtures(t *testing.T) {
	root := filepath.Join("..", "..", "fixtures")
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		t.Run(name, func(t *testing.T) {
			runFixture(t, filepath.Join(root, entry.Name()))
		})
	}
}

func runFixture(t *testing.T, path string) {
	t.Helper()
	manifest := readFixture(t, path)

	program, parseErr := parser.New(lexer.New(manifest.Source)).Parse()
	if parseErr != nil {
		if manifest.Expect.Error == "" {
			t.Fatalf("parse error: %v", parseErr)
		}
		if parseErr.Error() != manifest.Expect.Error {
			t.Fatalf("expected error %q, got %q", manifest.Expect.Error, parseErr)
		}
		return
	}

	var out bytes.Buffer
	interp := NewWithOutput(&out)
	runErr := interp.Interpret(program)

	if manifest.Expect.Error != "" {
		if runErr == nil {
			t.Fatalf("expected error %q, program succeeded", manifest.Expect.Error)
		}
		if runErr.Error() != manifest.Expect.Error {
			t.Fatalf("expected error %q, got %q", manifest.Expect.Error, runErr)
		}
		return
	}
	if runErr != nil {
		t.Fatalf("interpret: %v", runErr)
	}

	if out.String() != manifest.Expect.Stdout {
		t.Errorf("stdout = %q, want %q", out.String(), manifest.Expect.Stdout)
	}

	for name, want := range manifest.Expect.Variables {
		got, ok := interp.Environment().Lookup(name)
		if !ok {
			t.Errorf("variable %s not bound", name)
			continue
		}
		assertValue(t, name, want, got)
	}
}

func readFixture(t *testing.T, path string) fixtureManifest {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	var manifest fixtureManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("parse fixture %s: %v", path, err)
	}
	return manifest
}

func assertValue(t *testing.T, name string, want fixtureValue, got runtime.Value) {
	t.Helper()
	if got.Kind().String() != want.Kind {
		t.Errorf("variable %s: kind %s, want %s", name, got.Kind(), want.Kind)
		return
	}
	switch v := got.(type) {
	case runtime.StringValue:
		if s, ok := want.Value.(string); !ok || v.Val != s {
			t.Errorf("variable %s = %q, want %v", name, v.Val, want.Value)
		}
	case runtime.NumberValue:
		if v.Val != asFloat(want.Value) {
			t.Errorf("variable %s = %v, want %v", name, v.Val, want.Value)
		}
	case runtime.BoolValue:
		if b, ok := want.Value.(bool); !ok || v.Val != b {
			t.Errorf("variable %s = %v, want %v", name, v.Val, want.Value)
		}
	case runtime.NullValue:
		// Kind check above is sufficient.
	}
}

// asFloat normalizes the numeric types the YAML decoder may produce.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
