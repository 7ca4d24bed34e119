package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/recent"
)

// cloudCommand creates the cloud command for building word clouds.
func (c *CLI) cloudCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "cloud [manuscript.txt]",
		Short: "Build a word cloud from a manuscript",
		Long: `Build a word cloud from a manuscript.

The cloud command tokenizes the text, ranks word frequencies, scales each
word to a font size, and arranges the words in reading order with the flow
layout. Output can be SVG for viewing or JSON for further processing.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Document = args[0]
			opts.Formats = parseFormats(formatsStr)
			applyPrefs(&opts, c.loadPrefs())
			return c.runCloud(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Analyze flags
	cmd.Flags().IntVar(&opts.MaxWords, "max-words", 0, "maximum words in the cloud")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 0, "minimum word length")

	// Layout flags
	cmd.Flags().Float64Var(&opts.MaxWidth, "max-width", 0, "maximum cloud width in pixels")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "gap between words in pixels")

	// Render flags
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "render theme: parchment (default), midnight")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")

	return cmd
}

// runCloud executes the pipeline and writes the artifacts.
func (c *CLI) runCloud(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", opts.Document))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	printSuccess("Built word cloud from %s", opts.Document)
	printStats(result.Stats.WordCount, result.Stats.ItemCount, result.CacheInfo.CloudHit)

	c.touchRecent(opts.Document)

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Document,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	printNextStep("Track character arcs", fmt.Sprintf("quillpilot arcs %s --characters \"...\"", opts.Document))
	return nil
}

// touchRecent records the document on the recent list. Failures only warn;
// the analysis already succeeded.
func (c *CLI) touchRecent(path string) {
	list, err := recent.NewList("", 0)
	if err != nil {
		c.Logger.Warn("recent list unavailable", "err", err)
		return
	}
	title := filepath.Base(path)
	if err := list.Touch(path, title); err != nil {
		c.Logger.Warn("could not record recent document", "err", err)
	}
}
