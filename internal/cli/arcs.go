package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
)

// arcsCommand creates the arcs command for character-arc heatmaps.
func (c *CLI) arcsCommand() *cobra.Command {
	var (
		charactersStr string
		formatsStr    string
		output        string
		noCache       bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "arcs [manuscript.txt]",
		Short: "Track character presence across a manuscript",
		Long: `Track character presence across a manuscript.

The arcs command splits the text into equal segments, counts mentions of
each named character per segment, and renders the result as a heatmap.
Each character's row is normalized against their own busiest segment, so
protagonists and minor characters both show the shape of their arc.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Document = args[0]
			opts.Characters = parseCharacters(charactersStr)
			if len(opts.Characters) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--characters is required (comma-separated names)")
			}
			opts.Formats = parseFormats(formatsStr)
			applyPrefs(&opts, c.loadPrefs())
			return c.runArcs(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	cmd.Flags().StringVar(&charactersStr, "characters", "", "character names, comma-separated (required)")
	cmd.Flags().IntVar(&opts.Segments, "segments", 0, "number of manuscript segments")
	cmd.Flags().IntVar(&opts.Bands, "bands", 0, "number of intensity bands")

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "render theme: parchment (default), midnight")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")

	return cmd
}

// runArcs executes the pipeline and writes the heatmap artifacts.
func (c *CLI) runArcs(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Tracking %d characters...", len(opts.Characters)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Arc analysis failed")
		return err
	}
	spinner.Stop()

	printSuccess("Tracked %d characters across %d segments", len(opts.Characters), opts.Segments)

	mentioned := 0
	if result.Heatmap != nil {
		for _, row := range result.Heatmap.Rows {
			for _, cell := range row {
				if cell.Mentions > 0 {
					mentioned++
					break
				}
			}
		}
	}
	if mentioned < len(opts.Characters) {
		printWarning("%d character(s) never appear in the text", len(opts.Characters)-mentioned)
	}

	c.touchRecent(opts.Document)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.ArcArtifacts,
		formats:   opts.Formats,
		input:     opts.Document,
		output:    output,
		suffix:    "arcs",
		cacheHit:  result.CacheInfo.HeatmapHit,
	})
}
