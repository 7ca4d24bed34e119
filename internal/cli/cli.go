// Package cli implements the quillpilot command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/buildinfo"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cache"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/prefs"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "quillpilot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quillpilot",
		Short:        "QuillPilot analyzes manuscripts and visualizes what it finds",
		Long:         `QuillPilot is a writing-assistant toolkit that turns manuscript text into word clouds, character-arc heatmaps, and relationship maps, alongside theme notes and dialogue tips.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.cloudCommand())
	root.AddCommand(c.arcsCommand())
	root.AddCommand(c.relationsCommand())
	root.AddCommand(c.tipsCommand())
	root.AddCommand(c.notesCommand())
	root.AddCommand(c.recentCommand())
	root.AddCommand(c.welcomeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/quillpilot/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Preferences
// =============================================================================

// loadPrefs reads the user preferences file, falling back to defaults when
// the file is missing or the config dir is unavailable.
func (c *CLI) loadPrefs() prefs.Preferences {
	path, err := prefs.DefaultPath()
	if err != nil {
		return prefs.Default()
	}
	p, err := prefs.Load(path)
	if err != nil {
		c.Logger.Warn("preferences file is invalid, using defaults", "err", err)
		return prefs.Default()
	}
	return p
}

// applyPrefs fills unset pipeline options from stored preferences.
func applyPrefs(opts *pipeline.Options, p prefs.Preferences) {
	if opts.Theme == "" {
		opts.Theme = p.Theme
	}
	if opts.MaxWords == 0 {
		opts.MaxWords = p.Cloud.MaxWords
	}
	if opts.MaxWidth == 0 {
		opts.MaxWidth = p.Cloud.MaxWidth
	}
	if opts.Spacing == 0 {
		opts.Spacing = p.Cloud.Spacing
	}
	if opts.Segments == 0 {
		opts.Segments = p.Arcs.Segments
	}
	if opts.Bands == 0 {
		opts.Bands = p.Arcs.Bands
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseCharacters parses a comma-separated character list, trimming blanks.
func parseCharacters(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
