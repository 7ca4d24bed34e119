package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
)

// framePadding is the whitespace around rendered content.
const framePadding = 24.0

// xmlEscaper escapes text nodes and attribute values in generated SVG.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderCloudSVG renders a word-cloud model as a standalone SVG document.
// Item positions come straight from the model; this function only maps
// them onto text elements and applies the theme.
func RenderCloudSVG(c cloud.Cloud, theme Theme) []byte {
	width := c.Width + 2*framePadding
	height := c.Height + 2*framePadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", theme.Background)
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f,%.1f)" font-family="Georgia, serif">`+"\n",
		framePadding, framePadding)

	for i, it := range c.Items {
		fmt.Fprintf(&buf,
			`    <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" fill-opacity="%.2f" dominant-baseline="hanging">%s</text>`+"\n",
			it.X, it.Y, it.FontSize, theme.WordColor(i), it.Opacity, xmlEscaper.Replace(it.Word))
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}
