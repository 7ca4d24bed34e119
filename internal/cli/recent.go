package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/recent"
)

// recentCommand creates the recent command group for the recent-documents list.
func (c *CLI) recentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently analyzed documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := recent.NewList("", 0)
			if err != nil {
				return err
			}
			entries, err := list.Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No recent documents")
				printNextStep("Analyze one", "quillpilot cloud draft.txt")
				return nil
			}
			for _, e := range entries {
				title := e.Title
				if title == "" {
					title = e.Path
				}
				fmt.Println(StyleValue.Render(title) + "  " +
					StyleDim.Render(e.OpenedAt.Format("2006-01-02 15:04")) + "  " +
					StyleDim.Render(e.Path))
			}
			return nil
		},
	}

	cmd.AddCommand(c.recentClearCommand())
	cmd.AddCommand(c.recentRemoveCommand())

	return cmd
}

func (c *CLI) recentClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the recent-documents list",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := recent.NewList("", 0)
			if err != nil {
				return err
			}
			if err := list.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared recent documents")
			return nil
		},
	}
}

func (c *CLI) recentRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [path]",
		Short: "Remove one document from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := recent.NewList("", 0)
			if err != nil {
				return err
			}
			if err := list.Remove(args[0]); err != nil {
				return err
			}
			printSuccess("Removed %s", args[0])
			return nil
		},
	}
}
