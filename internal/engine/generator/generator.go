// Package generator builds a manifest from configuration and parsed requirements.
package generator

import (
	"path/filepath"
	"slices"

	"go.trai.ch/reqsync/internal/core/domain"
)

// Plan is the result of building a manifest.
type Plan struct {
	Manifest *domain.Manifest
	// Unmatched lists configured group packages that no source declares.
	Unmatched []string
}

// Build assigns every declaration of sets to the runtime section or a group.
// Sets are processed in order; the runtime set is expected first.
func Build(cfg *domain.Config, sets []domain.SourceSet) (*Plan, error) {
	m := &domain.Manifest{
		Project:      cfg.Project,
		Dependencies: []domain.Requirement{},
		GroupTable:   cfg.GroupTable,
		BuildSystem:  cfg.BuildSystem,
	}

	groups := make(map[string][]domain.Requirement, len(cfg.Groups))
	for _, g := range cfg.Groups {
		groups[g.Name] = []domain.Requirement{}
	}

	seen := make(map[string]domain.Origin)
	matched := make(map[string]bool)

	for _, set := range sets {
		m.Sources = append(m.Sources, relativeTo(cfg.Output, set.Path))

		for _, req := range set.Requirements {
			key := req.Key()
			if prev, ok := seen[key]; ok {
				return nil, &domain.ParseError{
					File:     req.Origin.File,
					Line:     req.Origin.Line,
					Text:     req.String(),
					Err:      domain.ErrDuplicateRequirement,
					Previous: prev.String(),
				}
			}
			seen[key] = req.Origin

			group := set.Group
			if name, ok := cfg.GroupFor(req.Name); ok {
				matched[req.NormalizedName()] = true
				if group == "" {
					group = name
				}
			}

			if group == "" {
				m.Dependencies = append(m.Dependencies, req)
				continue
			}
			groups[group] = append(groups[group], req)
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		m.Groups = append(m.Groups, domain.DependencyGroup{Name: name, Requirements: groups[name]})
	}

	var unmatched []string
	for _, g := range cfg.Groups {
		for _, pkg := range g.Packages {
			if !matched[domain.NormalizeName(pkg)] {
				unmatched = append(unmatched, pkg)
			}
		}
	}

	return &Plan{Manifest: m, Unmatched: unmatched}, nil
}

// relativeTo renders path relative to the directory of output, in slash form.
func relativeTo(output, path string) string {
	if output == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(filepath.Dir(output), path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
