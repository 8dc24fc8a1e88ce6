package commands

import "github.com/spf13/cobra"

func (c *CLI) newGenerateCmd() *cobra.Command {
	flags := &sourceFlags{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write pyproject.toml from the requirements files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.options(flags)
			opts.DryRun = dryRun
			_, err := c.app.Generate(cmd.Context(), opts)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the manifest instead of writing it")
	return cmd
}
