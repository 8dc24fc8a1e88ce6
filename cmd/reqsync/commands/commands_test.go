package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqsync/cmd/reqsync/commands"
	"go.trai.ch/reqsync/internal/app"
	"go.trai.ch/reqsync/internal/build"
)

type mockApp struct {
	generateFunc func(ctx context.Context, opts app.GenerateOptions) (*app.Result, error)
	checkFunc    func(ctx context.Context, opts app.GenerateOptions) error
	watchFunc    func(ctx context.Context, opts app.GenerateOptions) error
}

func (m *mockApp) Generate(ctx context.Context, opts app.GenerateOptions) (*app.Result, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return &app.Result{}, nil
}

func (m *mockApp) Check(ctx context.Context, opts app.GenerateOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.GenerateOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) (*app.Result, error) {
				captured = opts
				return &app.Result{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"generate", "--dry-run",
			"-c", "configs/reqsync.yaml",
			"-s", "deps/requirements.txt",
			"-o", "build/pyproject.toml",
			"--name", "paper",
			"--project-version", "1.0.0",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.GenerateOptions{
			ConfigPath: "configs/reqsync.yaml",
			Source:     "deps/requirements.txt",
			Output:     "build/pyproject.toml",
			Name:       "paper",
			Version:    "1.0.0",
			DryRun:     true,
		}, captured)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(context.Context, app.GenerateOptions) (*app.Result, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"generate", "requirements.txt"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Check(t *testing.T) {
	stale := errors.New("stale")
	var captured app.GenerateOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.GenerateOptions) error {
			captured = opts
			return stale
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"check", "--source", "reqs.txt"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, stale)
	assert.Equal(t, "reqs.txt", captured.Source)
	assert.False(t, captured.DryRun)
}

func TestCommands_Watch(t *testing.T) {
	called := false
	mock := &mockApp{
		watchFunc: func(ctx context.Context, opts app.GenerateOptions) error {
			called = true
			assert.Equal(t, "pyproject.toml", opts.Output)
			assert.NotNil(t, ctx)
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "-o", "pyproject.toml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_LogFormatHook(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "default is pretty", args: []string{"generate"}, want: false},
		{name: "json flag", args: []string{"--log-json", "generate"}, want: true},
		{name: "json flag after subcommand", args: []string{"check", "--log-json"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *bool
			cli := commands.New(&mockApp{})
			cli.SetLogFormatHook(func(json bool) { got = &json })
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "reqsync version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "reqsync version "+build.Version)
}
