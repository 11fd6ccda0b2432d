package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDocument = `{
  "name": "deps",
  "nodes": [{"id": "app"}, {"id": "lib"}],
  "edges": [{"from": "app", "to": "lib"}]
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func TestRunEmit(t *testing.T) {
	input := writeDocument(t, testDocument)
	output := filepath.Join(t.TempDir(), "graph.dot")

	err := runEmit(context.Background(), input, &emitOpts{output: output})
	if err != nil {
		t.Fatalf("runEmit() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := `digraph deps {
    app[label="app"];
    lib[label="lib"];
    app -> lib[label=""];
}
`
	if string(got) != want {
		t.Errorf("emitted DOT = %q, want %q", got, want)
	}
}

func TestRunEmit_WithTheme(t *testing.T) {
	input := writeDocument(t, testDocument)
	theme := writeTheme(t, `
[node]
shape = "box"
`)
	output := filepath.Join(t.TempDir(), "graph.dot")

	err := runEmit(context.Background(), input, &emitOpts{output: output, theme: theme})
	if err != nil {
		t.Fatalf("runEmit() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(got), `app[label="app"][shape="box"];`) {
		t.Errorf("emitted DOT = %q, want themed node shape", got)
	}
}

func TestRunEmit_InvalidDocument(t *testing.T) {
	input := writeDocument(t, `{"nodes": [{"id": "a"}, {"id": "a"}]}`)

	err := runEmit(context.Background(), input, &emitOpts{output: filepath.Join(t.TempDir(), "out.dot")})
	if err == nil {
		t.Error("runEmit() expected error for duplicate node id, got nil")
	}
}

func TestRunCheck(t *testing.T) {
	if err := runCheck(context.Background(), writeDocument(t, testDocument)); err != nil {
		t.Errorf("runCheck() error = %v", err)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	if err := runCheck(context.Background(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("runCheck() expected error for missing file, got nil")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"graph.json", "svg", "graph.svg"},
		{"dir/graph.json", "png", "dir/graph.png"},
		{"noext", "svg", "noext.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}
