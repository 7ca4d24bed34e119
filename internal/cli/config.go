package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/prefs"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/render"
)

// configCommand creates the config command group for user preferences.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user preferences",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configThemeCommand())

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := prefs.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.loadPrefs()
			printKeyValue("theme", p.Theme)
			printKeyValue("max words", fmt.Sprintf("%d", p.Cloud.MaxWords))
			printKeyValue("max width", fmt.Sprintf("%.0f", p.Cloud.MaxWidth))
			printKeyValue("spacing", fmt.Sprintf("%.0f", p.Cloud.Spacing))
			printKeyValue("segments", fmt.Sprintf("%d", p.Arcs.Segments))
			printKeyValue("bands", fmt.Sprintf("%d", p.Arcs.Bands))
			printKeyValue("server", p.Server.Addr)
			if p.Server.RedisAddr != "" {
				printKeyValue("redis", p.Server.RedisAddr)
			}
			if p.Server.MongoURI != "" {
				printKeyValue("mongo", p.Server.MongoURI)
			}
			return nil
		},
	}
}

func (c *CLI) configThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Set the render theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := render.ThemeByName(args[0]); err != nil {
				printDetail("Available: %v", render.ThemeNames())
				return err
			}

			path, err := prefs.DefaultPath()
			if err != nil {
				return err
			}
			p := c.loadPrefs()
			p.Theme = args[0]
			if err := prefs.Save(p, path); err != nil {
				return err
			}
			printSuccess("Theme set to %s", args[0])
			return nil
		},
	}
}
