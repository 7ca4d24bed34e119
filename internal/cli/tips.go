package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/tips"
)

// tipsCommand creates the tips command for dialogue-craft advice.
func (c *CLI) tipsCommand() *cobra.Command {
	var (
		category string
		daily    bool
		catalog  string
	)

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Show dialogue-writing tips",
		Long: `Show dialogue-writing tips.

Tips come from the built-in catalog or from a TOML catalog file supplied
with --catalog. Use --daily for the tip of the day, or --category to browse
one topic (subtext, voice, conflict, pacing, beats, exposition).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := tips.Builtin()
			if catalog != "" {
				loaded, err := tips.LoadCatalog(catalog)
				if err != nil {
					return err
				}
				cat = loaded
			}

			if daily {
				tip, err := cat.OfTheDay(time.Now())
				if err != nil {
					return err
				}
				printTip(tip)
				return nil
			}

			matched := cat.ByCategory(category)
			if len(matched) == 0 {
				printWarning("No tips in category %q", category)
				printDetail("Categories: %v", cat.Categories())
				return nil
			}
			for _, tip := range matched {
				printTip(tip)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "show one category only")
	cmd.Flags().BoolVar(&daily, "daily", false, "show the tip of the day")
	cmd.Flags().StringVar(&catalog, "catalog", "", "TOML catalog file replacing the built-in tips")

	return cmd
}

func printTip(t tips.Tip) {
	fmt.Println(StyleHighlight.Render("["+t.Category+"]") + " " + StyleValue.Render(t.Text))
}
