package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input ext", "", "draft.txt", "draft"},
		{"output with known ext stripped", "out.svg", "draft.txt", "out"},
		{"output with json ext stripped", "out.json", "draft.txt", "out"},
		{"output without ext kept", "out", "draft.txt", "out"},
		{"unknown ext kept", "out.backup", "draft.txt", "out.backup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsDerivedNames(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "draft.txt")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg":  []byte("<svg/>"),
			"json": []byte("{}"),
		},
		formats: []string{"svg", "json"},
		input:   input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	for _, name := range []string{"draft.svg", "draft.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteArtifactsSuffix(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "draft.txt")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     input,
		suffix:    "arcs",
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "draft_arcs.svg")); err != nil {
		t.Errorf("expected draft_arcs.svg to exist: %v", err)
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "exact.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     filepath.Join(dir, "draft.txt"),
		output:    out,
		suffix:    "arcs", // ignored when output is explicit
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected explicit output path used: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("unexpected content: %s", data)
	}
}
