package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/relations"
)

// relationsCommand creates the relations command for character co-occurrence maps.
func (c *CLI) relationsCommand() *cobra.Command {
	var (
		charactersStr string
		format        string
		output        string
		segments      int
		minWeight     int
	)

	cmd := &cobra.Command{
		Use:   "relations [manuscript.txt]",
		Short: "Map which characters share scenes",
		Long: `Map which characters share scenes.

The relations command splits the manuscript into segments and connects
characters that appear in the same segment. Edge thickness reflects how
often a pair co-occurs. Output is rendered with Graphviz (svg, png) or
emitted as DOT source for external tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			characters := parseCharacters(charactersStr)
			if len(characters) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--characters is required (comma-separated names)")
			}
			if err := errors.ValidateFormat(format, []string{"svg", "png", "dot"}); err != nil {
				return err
			}
			return c.runRelations(cmd.Context(), args[0], characters, relations.Options{
				Segments:  segments,
				MinWeight: minWeight,
			}, format, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults next to the manuscript)")
	cmd.Flags().StringVar(&charactersStr, "characters", "", "character names, comma-separated (required)")
	cmd.Flags().IntVar(&segments, "segments", 0, "number of manuscript segments")
	cmd.Flags().IntVar(&minWeight, "min-weight", 0, "hide pairs that co-occur fewer times")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")

	return cmd
}

// runRelations builds the co-occurrence graph and renders it.
func (c *CLI) runRelations(ctx context.Context, input string, characters []string, opts relations.Options, format, output string) error {
	if err := errors.ValidateDocumentPath(input); err != nil {
		return err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read document %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	g, err := relations.Build(string(data), characters, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d relationships among %d characters", len(g.Edges), len(characters)))

	if len(g.Edges) == 0 {
		printWarning("No co-occurrences found; try fewer segments or a lower --min-weight")
	}

	dot := relations.ToDOT(g)

	var rendered []byte
	switch format {
	case "dot":
		rendered = []byte(dot)
	case "svg":
		rendered, err = relations.RenderSVG(ctx, dot)
	case "png":
		rendered, err = relations.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render relations %s: %w", format, err)
	}

	if output == "" {
		output = basePath("", input) + "_relations." + format
	}

	if err := writeArtifact(rendered, output, false); err != nil {
		return err
	}
	printSuccess("Mapped character relations from %s", input)
	c.touchRecent(input)
	return nil
}
