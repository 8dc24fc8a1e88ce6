// Package commands implements the CLI commands for reqsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reqsync/internal/app"
	"go.trai.ch/reqsync/internal/build"
)

// CLI represents the command line interface for reqsync.
type CLI struct {
	app         Application
	rootCmd     *cobra.Command
	configPath  string
	logJSON     bool
	onLogFormat func(json bool)
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (*app.Result, error)
	Check(ctx context.Context, opts app.GenerateOptions) error
	Watch(ctx context.Context, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reqsync",
		Short:         "Generate pyproject.toml from requirements.txt",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to reqsync.yaml (default: discovered from the working directory upwards)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if c.onLogFormat != nil {
			c.onLogFormat(c.logJSON)
		}
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogFormatHook registers a function called with the value of --log-json
// before any command runs.
func (c *CLI) SetLogFormatHook(fn func(json bool)) {
	c.onLogFormat = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// sourceFlags holds the flags shared by generate, check and watch.
type sourceFlags struct {
	source  string
	output  string
	name    string
	version string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "Requirements file to read (default: requirements.txt)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Manifest to generate (default: pyproject.toml)")
	cmd.Flags().StringVar(&f.name, "name", "", "Project name (default: the project directory name)")
	cmd.Flags().StringVar(&f.version, "project-version", "", "Project version (default: 0.1.0)")
}

func (c *CLI) options(f *sourceFlags) app.GenerateOptions {
	return app.GenerateOptions{
		ConfigPath: c.configPath,
		Source:     f.source,
		Output:     f.output,
		Name:       f.name,
		Version:    f.version,
	}
}
