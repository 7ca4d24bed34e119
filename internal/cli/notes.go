package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/notes"
)

// notesCommand creates the notes command group for theme notes.
func (c *CLI) notesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage theme notes",
		Long: `Manage theme notes.

Theme notes are short free-form observations about a manuscript's themes,
kept outside the manuscript file. They are stored as JSON under the user
config directory.`,
	}

	cmd.AddCommand(c.notesAddCommand())
	cmd.AddCommand(c.notesListCommand())
	cmd.AddCommand(c.notesShowCommand())
	cmd.AddCommand(c.notesEditCommand())
	cmd.AddCommand(c.notesRemoveCommand())

	return cmd
}

func (c *CLI) notesAddCommand() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a theme note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore("")
			if err != nil {
				return err
			}
			n, err := store.Create(cmd.Context(), strings.Join(args, " "), body)
			if err != nil {
				return err
			}
			printSuccess("Added note %s", n.Title)
			printDetail("id: %s", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&body, "body", "b", "", "note body text")
	return cmd
}

func (c *CLI) notesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List theme notes, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore("")
			if err != nil {
				return err
			}
			all, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				printInfo("No notes yet")
				printNextStep("Add one", "quillpilot notes add \"Water as memory\"")
				return nil
			}
			for _, n := range all {
				fmt.Println(StyleValue.Render(n.Title) + "  " +
					StyleDim.Render(n.UpdatedAt.Format("2006-01-02 15:04")) + "  " +
					StyleDim.Render(n.ID))
			}
			return nil
		},
	}
}

func (c *CLI) notesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a theme note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore("")
			if err != nil {
				return err
			}
			n, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(n.Title))
			printDetail("created %s, updated %s",
				n.CreatedAt.Format("2006-01-02"), n.UpdatedAt.Format("2006-01-02"))
			if n.Body != "" {
				printNewline()
				fmt.Println(n.Body)
			}
			return nil
		},
	}
}

func (c *CLI) notesEditCommand() *cobra.Command {
	var (
		title string
		body  string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update a theme note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore("")
			if err != nil {
				return err
			}
			n, err := store.Update(cmd.Context(), args[0], title, body)
			if err != nil {
				return err
			}
			printSuccess("Updated note %s", n.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title (unchanged if empty)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "new body text")
	return cmd
}

func (c *CLI) notesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a theme note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := notes.NewStore("")
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted note %s", args[0])
			return nil
		},
	}
}
