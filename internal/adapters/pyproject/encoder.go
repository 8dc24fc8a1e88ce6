// Package pyproject renders manifests as pyproject.toml documents.
package pyproject

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestEncoder = (*Encoder)(nil)

const itemIndent = "    "

// Encoder implements ports.ManifestEncoder.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

type projectTable struct {
	Name           string         `toml:"name"`
	Version        string         `toml:"version"`
	Description    string         `toml:"description,omitempty"`
	RequiresPython string         `toml:"requires-python,omitempty"`
	Dependencies   dependencyList `toml:"dependencies"`
}

type buildSystemTable struct {
	Requires []string `toml:"requires"`
	Backend  string   `toml:"build-backend,omitempty"`
}

// dependencyList renders as a multi-line array with one entry per line.
type dependencyList struct {
	items []string
}

func newDependencyList(reqs []domain.Requirement) dependencyList {
	items := make([]string, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, r.String())
	}
	return dependencyList{items: items}
}

// MarshalTOML implements toml.Marshaler.
func (l dependencyList) MarshalTOML() ([]byte, error) {
	if len(l.items) == 0 {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for _, item := range l.items {
		quoted, err := toml.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.WriteString(itemIndent)
		buf.Write(quoted)
		buf.WriteString(",\n")
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}

// Encode renders m. Sections appear in a fixed order separated by blank lines.
func (e *Encoder) Encode(m *domain.Manifest) ([]byte, error) {
	var sections [][]byte

	project, err := section("project", projectTable{
		Name:           m.Project.Name,
		Version:        m.Project.Version,
		Description:    m.Project.Description,
		RequiresPython: m.Project.RequiresPython,
		Dependencies:   newDependencyList(m.Dependencies),
	})
	if err != nil {
		return nil, err
	}
	sections = append(sections, project)

	if len(m.Groups) > 0 {
		groups := make(map[string]dependencyList, len(m.Groups))
		for _, g := range m.Groups {
			groups[g.Name] = newDependencyList(g.Requirements)
		}
		header := "dependency-groups"
		if m.GroupTable == domain.GroupTableOptional {
			header = "project.optional-dependencies"
		}
		body, err := section(header, groups)
		if err != nil {
			return nil, err
		}
		sections = append(sections, body)
	}

	if m.BuildSystem != nil {
		requires := m.BuildSystem.Requires
		if requires == nil {
			requires = []string{}
		}
		body, err := section("build-system", buildSystemTable{Requires: requires, Backend: m.BuildSystem.Backend})
		if err != nil {
			return nil, err
		}
		sections = append(sections, body)
	}

	var out bytes.Buffer
	out.WriteString(header(m.Sources))
	for _, s := range sections {
		out.WriteString("\n")
		out.Write(s)
	}
	return out.Bytes(), nil
}

func header(sources []string) string {
	from := "requirements"
	if len(sources) > 0 {
		from = strings.Join(sources, ", ")
	}
	return "# Generated by reqsync from " + from + ". Do not edit by hand.\n"
}

func section(name string, v any) ([]byte, error) {
	body, err := toml.Marshal(v)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error()), "table", name)
	}
	return append([]byte("["+name+"]\n"), body...), nil
}
