// Package config provides the configuration loader for reqsync.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/reqsync/internal/adapters/fs"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs fs.FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys fs.FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load resolves the configuration for cwd.
// Without an explicit path it walks up from cwd looking for reqsync.yaml
// and falls back to defaults rooted at cwd when none is found.
func (l *Loader) Load(cwd, explicitPath string) (*domain.Config, error) {
	configPath, err := l.locate(cwd, explicitPath)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return l.build(cwd, "", &Reqsyncfile{})
	}

	var file Reqsyncfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return l.build(filepath.Dir(configPath), configPath, &file)
}

func (l *Loader) locate(cwd, explicitPath string) (string, error) {
	if explicitPath != "" {
		path, err := resolvePath(cwd, explicitPath)
		if err != nil {
			return "", err
		}
		if _, err := l.fs.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Reqsyncfile) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) build(root, configPath string, file *Reqsyncfile) (*domain.Config, error) {
	cfg := &domain.Config{
		Root:    root,
		File:    configPath,
		Version: withDefault(file.Version, domain.ConfigVersion),
		Project: domain.ProjectMetadata{
			Name:           withDefault(file.Project.Name, filepath.Base(root)),
			Version:        withDefault(file.Project.Version, domain.DefaultProjectVersion),
			Description:    file.Project.Description,
			RequiresPython: file.Project.RequiresPython,
		},
		Encoding:   domain.Encoding(withDefault(file.Encoding, string(domain.EncodingAuto))),
		GroupTable: domain.GroupTable(withDefault(file.GroupTable, string(domain.GroupTableDependencyGroups))),
	}

	var err error
	if cfg.Source, err = resolvePath(root, withDefault(file.Source, domain.DefaultSource)); err != nil {
		return nil, err
	}
	if cfg.Output, err = resolvePath(root, withDefault(file.Output, domain.DefaultOutput)); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.Groups))
	for name := range file.Groups {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dto := file.Groups[name]
		if dto == nil {
			dto = &GroupDTO{}
		}
		spec := domain.GroupSpec{Name: name, Packages: dto.Packages}
		if dto.Source != "" {
			if spec.Source, err = resolvePath(root, dto.Source); err != nil {
				return nil, err
			}
		}
		cfg.Groups = append(cfg.Groups, spec)
	}

	if file.BuildSystem != nil {
		cfg.BuildSystem = &domain.BuildSystem{
			Requires: file.BuildSystem.Requires,
			Backend:  file.BuildSystem.BuildBackend,
		}
	}

	return cfg, nil
}

// resolvePath expands a leading ~ and makes path absolute relative to base.
func resolvePath(base, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Clean(filepath.Join(base, expanded)), nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
