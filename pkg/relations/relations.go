// Package relations builds character co-occurrence graphs.
//
// Two characters are related when they appear in the same manuscript
// segment; the number of shared segments weights the edge. The graph is
// exported as Graphviz DOT and rendered to SVG or PNG via the Graphviz
// layout engines.
package relations

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
)

// Edge is an undirected weighted relation between two characters.
// From and To are ordered alphabetically so each pair appears once.
type Edge struct {
	From   string `json:"from" bson:"from"`
	To     string `json:"to" bson:"to"`
	Weight int    `json:"weight" bson:"weight"`
}

// Graph is a character relationship graph.
type Graph struct {
	Characters []string `json:"characters" bson:"characters"`
	Edges      []Edge   `json:"edges" bson:"edges"`
}

// Options configures graph construction.
type Options struct {
	// Segments is the number of manuscript slices used to detect
	// co-occurrence. Zero selects the default.
	Segments int

	// MinWeight drops edges with fewer shared segments.
	MinWeight int
}

// DefaultSegments is the default co-occurrence resolution.
const DefaultSegments = 30

// Build counts shared-segment co-occurrences for every character pair.
// Edges are sorted by descending weight, then alphabetically, so output
// is deterministic.
func Build(manuscript string, characters []string, opts Options) (Graph, error) {
	if len(characters) < 2 {
		return Graph{}, errors.New(errors.ErrCodeInvalidInput, "at least two character names are required")
	}
	for _, name := range characters {
		if strings.TrimSpace(name) == "" {
			return Graph{}, errors.New(errors.ErrCodeInvalidInput, "character names cannot be blank")
		}
	}
	if opts.Segments == 0 {
		opts.Segments = DefaultSegments
	}
	if opts.Segments < 1 {
		return Graph{}, errors.New(errors.ErrCodeInvalidInput, "segments must be at least 1, got %d", opts.Segments)
	}
	if opts.MinWeight < 0 {
		return Graph{}, errors.New(errors.ErrCodeInvalidInput, "min weight cannot be negative")
	}
	if opts.MinWeight == 0 {
		opts.MinWeight = 1
	}

	segments := text.Segments(manuscript, opts.Segments)

	// present[i] marks the segments where characters[i] appears.
	present := make([][]bool, len(characters))
	for i, name := range characters {
		present[i] = make([]bool, len(segments))
		for j, seg := range segments {
			present[i][j] = text.Mentions(seg, name) > 0
		}
	}

	g := Graph{Characters: characters}
	for i := 0; i < len(characters); i++ {
		for j := i + 1; j < len(characters); j++ {
			weight := 0
			for s := range segments {
				if present[i][s] && present[j][s] {
					weight++
				}
			}
			if weight < opts.MinWeight {
				continue
			}
			from, to := characters[i], characters[j]
			if to < from {
				from, to = to, from
			}
			g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight})
		}
	}

	sort.Slice(g.Edges, func(a, b int) bool {
		if g.Edges[a].Weight != g.Edges[b].Weight {
			return g.Edges[a].Weight > g.Edges[b].Weight
		}
		if g.Edges[a].From != g.Edges[b].From {
			return g.Edges[a].From < g.Edges[b].From
		}
		return g.Edges[a].To < g.Edges[b].To
	})

	return g, nil
}

// ToDOT converts the graph to Graphviz DOT format. Edge thickness scales
// with weight so stronger relationships read at a glance.
func ToDOT(g Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph relations {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=16];\n")
	buf.WriteString("\n")

	for _, name := range g.Characters {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	buf.WriteString("\n")
	maxWeight := 1
	for _, e := range g.Edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	for _, e := range g.Edges {
		penwidth := 1.0 + 3.0*float64(e.Weight)/float64(maxWeight)
		fmt.Fprintf(&buf, "  %q -- %q [penwidth=%.2f, label=%q];\n",
			e.From, e.To, penwidth, fmt.Sprintf("%d", e.Weight))
	}

	buf.WriteString("}\n")
	return buf.String()
}
