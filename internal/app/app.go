// Package app implements the application layer for reqsync.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/reqsync/internal/adapters/watcher" //nolint:depguard // debouncer is shared with the adapter
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/reqsync/internal/engine/generator"
	"go.trai.ch/reqsync/internal/ui/output"
	"go.trai.ch/reqsync/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.RequirementSource
	encoder      ports.ManifestEncoder
	store        ports.ManifestStore
	logger       ports.Logger
	watchers     ports.WatcherFactory
	stdout       io.Writer
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.RequirementSource,
	encoder ports.ManifestEncoder,
	store ports.ManifestStore,
	log ports.Logger,
	watchers ports.WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		encoder:      encoder,
		store:        store,
		logger:       log,
		watchers:     watchers,
		stdout:       os.Stdout,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithStdout sets the writer used for dry-run output and check diffs.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounceWindow sets how long watch mode waits for a burst of changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// GenerateOptions configures Generate, Check and Watch.
// Empty fields leave the configured value untouched.
type GenerateOptions struct {
	// Dir is the directory the command runs in. Defaults to ".".
	Dir string
	// ConfigPath is an explicit reqsync.yaml location.
	ConfigPath string
	// Source overrides the runtime requirements file, relative to Dir.
	Source string
	// Output overrides the generated manifest path, relative to Dir.
	Output string
	// Name overrides the project name.
	Name string
	// Version overrides the project version.
	Version string
	// DryRun prints the manifest instead of writing it.
	DryRun bool
}

// Result describes one generation.
type Result struct {
	// Output is the absolute manifest path.
	Output string
	// Content is the rendered manifest.
	Content []byte
	// Changed reports whether the file on disk was rewritten.
	Changed bool
	// Files lists the configuration file and every requirements file read.
	Files []string
	// Unmatched lists configured group packages that no source declares.
	Unmatched []string
}

// Generate renders the manifest and writes it unless DryRun is set.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return a.generate(ctx, cfg, opts)
}

func (a *App) generate(ctx context.Context, cfg *domain.Config, opts GenerateOptions) (*Result, error) {
	res, err := a.render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	for _, pkg := range res.Unmatched {
		a.logger.Warn(fmt.Sprintf("group package %q is not declared in any requirements file", pkg))
	}

	if opts.DryRun {
		if _, err := a.stdout.Write(res.Content); err != nil {
			return nil, zerr.Wrap(err, "failed to write dry-run output")
		}
		return res, nil
	}

	res.Changed, err = a.store.Write(res.Output, res.Content)
	if err != nil {
		return nil, err
	}

	shown := displayPath(cfg.Root, res.Output)
	if res.Changed {
		a.logger.Info(fmt.Sprintf("%s wrote %s", style.Check, shown))
	} else {
		a.logger.Info(shown + " is up to date")
	}
	return res, nil
}

// Check renders the manifest and compares it with the file on disk.
// A difference is printed as a unified diff and reported as domain.ErrManifestStale.
func (a *App) Check(ctx context.Context, opts GenerateOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	res, err := a.render(ctx, cfg)
	if err != nil {
		return err
	}

	current, err := a.store.Read(res.Output)
	if err != nil {
		return err
	}

	shown := displayPath(cfg.Root, res.Output)
	if bytes.Equal(current, res.Content) {
		a.logger.Info(fmt.Sprintf("%s %s is up to date", style.Check, shown))
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(res.Content)),
		FromFile: shown,
		ToFile:   shown + " (generated)",
		Context:  3,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to diff manifest")
	}
	if err := output.WriteDiff(a.stdout, output.NewRenderer(a.stdout), diff); err != nil {
		return zerr.Wrap(err, "failed to write diff")
	}

	a.logger.Warn(shown + " is out of date, run reqsync generate")
	return domain.ErrManifestStale
}

// Watch generates once and regenerates whenever the configuration or a
// requirements file changes, until ctx is cancelled.
// Failed regenerations are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts GenerateOptions) error {
	opts.DryRun = false

	if _, err := a.loadConfig(opts); err != nil {
		return err
	}

	w, err := a.watchers.NewWatcher()
	if err != nil {
		return err
	}

	var mu sync.Mutex
	watched := make(map[string]bool)
	register := func(files []string) {
		for _, f := range files {
			if watched[f] {
				continue
			}
			if err := w.Add(f); err != nil {
				a.logger.Error(err)
				continue
			}
			watched[f] = true
		}
	}

	register(a.regenerate(ctx, opts))
	a.logger.Info(fmt.Sprintf("%s watching %d files for changes", style.Dot, len(watched)))

	g, gctx := errgroup.WithContext(ctx)

	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		if gctx.Err() != nil {
			return
		}
		a.logger.Info(describeChange(paths) + ", regenerating")
		register(a.regenerate(gctx, opts))
	})

	if err := w.Start(gctx); err != nil {
		_ = w.Stop()
		return err
	}

	g.Go(func() error {
		for ev := range w.Events() {
			debouncer.Add(ev.Path)
		}
		if gctx.Err() == nil {
			return domain.ErrWatcherFailed
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		debouncer.Stop()
		return w.Stop()
	})

	return g.Wait()
}

// regenerate runs one generation for watch mode and returns the files to watch.
func (a *App) regenerate(ctx context.Context, opts GenerateOptions) []string {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		a.logger.Error(err)
		return nil
	}

	files := inputFiles(cfg)
	res, err := a.generate(ctx, cfg, opts)
	if err != nil {
		a.logger.Error(err)
		return files
	}
	return mergeFiles(files, res.Files)
}

// loadConfig loads the configuration, applies the overrides and validates the result.
func (a *App) loadConfig(opts GenerateOptions) (*domain.Config, error) {
	dir, err := filepath.Abs(withDefault(opts.Dir, "."))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	cfg, err := a.configLoader.Load(dir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Source != "" {
		cfg.Source = absJoin(dir, opts.Source)
	}
	if opts.Output != "" {
		cfg.Output = absJoin(dir, opts.Output)
	}
	if opts.Name != "" {
		cfg.Project.Name = opts.Name
	}
	if opts.Version != "" {
		cfg.Project.Version = opts.Version
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// render reads every source and encodes the manifest without touching the output.
func (a *App) render(ctx context.Context, cfg *domain.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runtimeSet, err := a.source.Load(cfg.Source, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	sets := []domain.SourceSet{*runtimeSet}

	for _, group := range cfg.Groups {
		if group.Source == "" {
			continue
		}
		set, err := a.source.Load(group.Source, cfg.Encoding)
		if err != nil {
			return nil, zerr.With(err, "group", group.Name)
		}
		set.Group = group.Name
		sets = append(sets, *set)
	}

	plan, err := generator.Build(cfg, sets)
	if err != nil {
		return nil, err
	}

	content, err := a.encoder.Encode(plan.Manifest)
	if err != nil {
		return nil, err
	}

	files := inputFiles(cfg)
	for _, set := range sets {
		files = mergeFiles(files, set.Files)
	}

	return &Result{
		Output:    cfg.Output,
		Content:   content,
		Files:     files,
		Unmatched: plan.Unmatched,
	}, nil
}

// inputFiles lists the files a configuration reads before any include is resolved.
func inputFiles(cfg *domain.Config) []string {
	var files []string
	if cfg.File != "" {
		files = append(files, cfg.File)
	}
	files = append(files, cfg.Source)
	for _, group := range cfg.Groups {
		if group.Source != "" {
			files = append(files, group.Source)
		}
	}
	return mergeFiles(nil, files)
}

// mergeFiles appends the entries of extra missing from files, keeping order.
func mergeFiles(files, extra []string) []string {
	for _, f := range extra {
		if !slices.Contains(files, f) {
			files = append(files, f)
		}
	}
	return files
}

func describeChange(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return strings.Join(names, ", ") + " changed"
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func absJoin(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
