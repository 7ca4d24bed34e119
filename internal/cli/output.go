package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
)

// knownExtensions are stripped from output paths when deriving base names.
var knownExtensions = map[string]bool{
	pipeline.FormatSVG:  true,
	pipeline.FormatJSON: true,
	"png":               true,
	"dot":               true,
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input.
// If output has a known format extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if knownExtensions[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// artifactWriteParams bundles the inputs to writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // source file, used to derive output names
	output    string // explicit output path or base path
	suffix    string // inserted before the extension (e.g. "arcs")
	cacheHit  bool
}

// writeArtifacts writes each requested format to a file. A single format
// with an explicit output goes exactly there; otherwise names are derived
// from the input path.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 && p.output != "" {
		return writeArtifact(p.artifacts[p.formats[0]], p.output, p.cacheHit)
	}

	base := basePath(p.output, p.input)
	if p.suffix != "" {
		base = base + "_" + p.suffix
	}
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := fmt.Sprintf("%s.%s", base, format)
		if err := writeArtifact(data, path, p.cacheHit); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(data []byte, path string, cacheHit bool) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "" {
		printFile(path)
		if cacheHit {
			printDetail("from cache")
		}
	}
	return nil
}
