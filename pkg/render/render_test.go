package render

import (
	"strings"
	"testing"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
)

func TestRenderCloudSVG(t *testing.T) {
	c := cloud.Cloud{
		Items: []cloud.Item{
			{Word: "storm", FontSize: 48, Opacity: 1.0, X: 0, Y: 0, W: 120, H: 50},
			{Word: "sea", FontSize: 24, Opacity: 0.6, X: 130, Y: 0, W: 60, H: 30},
		},
		Width:  190,
		Height: 50,
	}

	svg := string(RenderCloudSVG(c, Parchment))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		">storm</text>",
		">sea</text>",
		`font-size="48.0"`,
		`fill-opacity="0.60"`,
		Parchment.Background,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderCloudSVGEscapesText(t *testing.T) {
	c := cloud.Cloud{
		Items: []cloud.Item{{Word: "a<b&c", FontSize: 20, Opacity: 1, W: 10, H: 10}},
		Width: 10, Height: 10,
	}
	svg := string(RenderCloudSVG(c, Midnight))
	if strings.Contains(svg, ">a<b&c<") {
		t.Error("text content should be escaped")
	}
	if !strings.Contains(svg, "a&lt;b&amp;c") {
		t.Errorf("escaped text missing:\n%s", svg)
	}
}

func TestRenderHeatmapSVG(t *testing.T) {
	h := arcs.Heatmap{
		Characters: []string{"Mira", "Tomas"},
		Segments:   3,
		Bands:      5,
		Rows: [][]arcs.Cell{
			{{Mentions: 2, Intensity: 1, Band: 4}, {}, {Mentions: 1, Intensity: 0.5, Band: 2}},
			{{}, {Mentions: 1, Intensity: 1, Band: 4}, {}},
		},
	}

	svg := string(RenderHeatmapSVG(h, Midnight))

	if !strings.Contains(svg, ">Mira</text>") || !strings.Contains(svg, ">Tomas</text>") {
		t.Error("character labels missing")
	}
	if got := strings.Count(svg, "<rect x="); got != 6 {
		t.Errorf("cell count = %d, want 6", got)
	}
	// Hottest band color appears for the peak cells.
	if !strings.Contains(svg, Midnight.HeatRamp[len(Midnight.HeatRamp)-1]) {
		t.Error("top band color missing")
	}
}

func TestThemeByName(t *testing.T) {
	th, err := ThemeByName("midnight")
	if err != nil {
		t.Fatalf("ThemeByName error: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("theme = %q, want midnight", th.Name)
	}

	// Empty name falls back to the default.
	th, err = ThemeByName("")
	if err != nil {
		t.Fatalf("ThemeByName error: %v", err)
	}
	if th.Name != DefaultTheme.Name {
		t.Errorf("default theme = %q, want %q", th.Name, DefaultTheme.Name)
	}

	if _, err := ThemeByName("nonexistent"); err == nil {
		t.Error("unknown theme should be rejected")
	}
	if _, err := ThemeByName("Bad Name"); err == nil {
		t.Error("invalid theme name should be rejected")
	}
}

func TestHeatColorClamping(t *testing.T) {
	th := Parchment
	if got := th.HeatColor(0, 5); got != th.HeatRamp[0] {
		t.Errorf("band 0 = %s, want coldest", got)
	}
	if got := th.HeatColor(4, 5); got != th.HeatRamp[4] {
		t.Errorf("band 4 = %s, want hottest", got)
	}
	// More bands than ramp entries still maps inside the ramp.
	if got := th.HeatColor(9, 10); got != th.HeatRamp[4] {
		t.Errorf("band 9/10 = %s, want hottest", got)
	}
}

func TestWordColorCycles(t *testing.T) {
	th := Parchment
	n := len(th.Palette)
	if th.WordColor(0) != th.WordColor(n) {
		t.Error("palette should cycle by rank")
	}
}
