package render

import (
	"bytes"
	"fmt"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs"
)

// Heatmap cell geometry.
const (
	heatCellWidth  = 28.0
	heatCellHeight = 28.0
	heatCellGap    = 3.0
	heatLabelWidth = 140.0
	heatLabelFont  = 14.0
)

// RenderHeatmapSVG renders a character-arc heatmap as a grid of colored
// cells, one row per character, one column per manuscript segment.
func RenderHeatmapSVG(h arcs.Heatmap, theme Theme) []byte {
	gridWidth := float64(h.Segments)*(heatCellWidth+heatCellGap) - heatCellGap
	gridHeight := float64(len(h.Characters))*(heatCellHeight+heatCellGap) - heatCellGap
	width := heatLabelWidth + gridWidth + 2*framePadding
	height := gridHeight + 2*framePadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", theme.Background)
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f,%.1f)" font-family="Georgia, serif">`+"\n",
		framePadding, framePadding)

	for i, name := range h.Characters {
		rowY := float64(i) * (heatCellHeight + heatCellGap)

		fmt.Fprintf(&buf,
			`    <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" dominant-baseline="middle">%s</text>`+"\n",
			0.0, rowY+heatCellHeight/2, heatLabelFont, theme.Ink, xmlEscaper.Replace(name))

		for j, cell := range h.Rows[i] {
			x := heatLabelWidth + float64(j)*(heatCellWidth+heatCellGap)
			fmt.Fprintf(&buf,
				`    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"><title>%s: segment %d, %d mentions</title></rect>`+"\n",
				x, rowY, heatCellWidth, heatCellHeight,
				theme.HeatColor(cell.Band, h.Bands),
				xmlEscaper.Replace(name), j+1, cell.Mentions)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}
