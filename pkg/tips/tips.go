// Package tips provides the dialogue-writing tips shown in the tips view
// and on the welcome screen.
//
// A built-in catalog ships with the application; writers can extend or
// replace it with a TOML catalog file. Tip-of-the-day selection is
// deterministic for a given date so every surface shows the same tip.
package tips

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Tip is a single piece of craft advice.
type Tip struct {
	Category string `toml:"category" json:"category"`
	Text     string `toml:"text" json:"text"`
}

// Catalog is an ordered collection of tips.
type Catalog struct {
	Tips []Tip `toml:"tips" json:"tips"`
}

// Builtin returns the built-in dialogue-tips catalog.
func Builtin() Catalog {
	return Catalog{Tips: builtinTips}
}

// LoadCatalog reads a TOML catalog file.
//
// The expected format:
//
//	[[tips]]
//	category = "subtext"
//	text = "Let characters talk around the thing they want."
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse tips catalog %s", path)
	}
	if len(c.Tips) == 0 {
		return Catalog{}, errors.New(errors.ErrCodeInvalidFormat, "tips catalog %s contains no tips", path)
	}
	for i, tip := range c.Tips {
		if strings.TrimSpace(tip.Text) == "" {
			return Catalog{}, errors.New(errors.ErrCodeInvalidFormat, "tip %d has empty text", i)
		}
	}
	return c, nil
}

// Categories returns the distinct categories in catalog order.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range c.Tips {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// ByCategory returns tips matching category (case-insensitive).
// An empty category returns all tips.
func (c Catalog) ByCategory(category string) []Tip {
	if category == "" {
		return c.Tips
	}
	var out []Tip
	for _, t := range c.Tips {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// OfTheDay selects the tip for the given date. The same date always
// yields the same tip, cycling through the catalog day by day.
func (c Catalog) OfTheDay(date time.Time) (Tip, error) {
	if len(c.Tips) == 0 {
		return Tip{}, errors.New(errors.ErrCodeNotFound, "catalog is empty")
	}
	epoch := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(date.UTC().Sub(epoch).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return c.Tips[days%len(c.Tips)], nil
}

// builtinTips is the dialogue-craft catalog that ships with the app.
var builtinTips = []Tip{
	{Category: "subtext", Text: "Let characters talk around the thing they want; the audience hears what is not said."},
	{Category: "subtext", Text: "When a character answers a question directly, make sure the honesty costs them something."},
	{Category: "voice", Text: "Give each speaker one verbal habit - a filler word, a rhythm, a dodge - and use it sparingly."},
	{Category: "voice", Text: "Read an exchange aloud with the names removed. If you can't tell who's speaking, the voices are too close."},
	{Category: "conflict", Text: "Two people agreeing is information; two people wanting different things is a scene."},
	{Category: "conflict", Text: "Interruptions and non-answers carry more tension than raised voices."},
	{Category: "pacing", Text: "Cut the greetings and the goodbyes. Enter the conversation late, leave early."},
	{Category: "pacing", Text: "A long speech reads faster when someone breaks it with a single hostile word."},
	{Category: "beats", Text: "Replace every second dialogue tag with an action beat that shows what the body is doing."},
	{Category: "beats", Text: "Silence is a reply. Let a character put down a cup instead of answering."},
	{Category: "exposition", Text: "Nobody explains what both speakers already know. Move backstory into friction instead."},
	{Category: "exposition", Text: "If a line exists only to inform the reader, give it to the character who least wants to say it."},
}
