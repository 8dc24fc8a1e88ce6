package commands

import "github.com/spf13/cobra"

func (c *CLI) newCheckCmd() *cobra.Command {
	flags := &sourceFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if pyproject.toml is out of date with the requirements files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), c.options(flags))
		},
	}
	flags.register(cmd)
	return cmd
}
