package pyproject_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqsync/internal/adapters/pyproject"
	"go.trai.ch/reqsync/internal/core/domain"
)

func req(name, constraint string) domain.Requirement {
	return domain.Requirement{Name: name, Constraint: constraint}
}

func paperManifest() *domain.Manifest {
	return &domain.Manifest{
		Project: domain.ProjectMetadata{
			Name:           "accident-severity",
			Version:        "0.1.0",
			Description:    "Highway accident severity classifiers",
			RequiresPython: ">=3.10",
		},
		Dependencies: []domain.Requirement{
			req("numpy", ">=1.24"),
			req("pandas", "==2.1.0"),
			{Name: "scikit-learn", Extras: []string{"alldeps"}, Constraint: ">=1.3,<1.5"},
		},
		Groups: []domain.DependencyGroup{
			{Name: "dev", Requirements: []domain.Requirement{req("pytest", "==7.0")}},
		},
		GroupTable:  domain.GroupTableDependencyGroups,
		BuildSystem: &domain.BuildSystem{Requires: []string{"hatchling"}, Backend: "hatchling.build"},
		Sources:     []string{"requirements.txt"},
	}
}

func TestEncoder_Encode_Golden(t *testing.T) {
	tests := []struct {
		name     string
		manifest func() *domain.Manifest
	}{
		{
			name:     "full",
			manifest: paperManifest,
		},
		{
			name: "minimal",
			manifest: func() *domain.Manifest {
				return &domain.Manifest{
					Project:      domain.ProjectMetadata{Name: "paper", Version: "0.1.0"},
					Dependencies: []domain.Requirement{req("numpy", ">=1.24")},
					Sources:      []string{"requirements.txt"},
				}
			},
		},
		{
			name: "empty_dependencies",
			manifest: func() *domain.Manifest {
				return &domain.Manifest{
					Project: domain.ProjectMetadata{Name: "paper", Version: "0.1.0"},
					Groups: []domain.DependencyGroup{
						{Name: "dev", Requirements: []domain.Requirement{}},
					},
					Sources: []string{"requirements.txt"},
				}
			},
		},
		{
			name: "optional_dependencies",
			manifest: func() *domain.Manifest {
				m := paperManifest()
				m.GroupTable = domain.GroupTableOptional
				m.BuildSystem = nil
				m.Groups = append(m.Groups, domain.DependencyGroup{
					Name:         "plots",
					Requirements: []domain.Requirement{req("matplotlib", ""), req("seaborn", ">=0.13")},
				})
				m.Sources = []string{"requirements.txt", "requirements-plots.txt"}
				return m
			},
		},
		{
			name: "markers_and_urls",
			manifest: func() *domain.Manifest {
				return &domain.Manifest{
					Project: domain.ProjectMetadata{Name: "paper", Version: "0.1.0"},
					Dependencies: []domain.Requirement{
						{Name: "numpy", Constraint: "==1.26", Marker: `python_version < "3.12"`},
						{Name: "shap", URL: "https://example.com/shap.whl"},
						{Name: "path", Constraint: `>=1.0`, Marker: `sys_platform == "win32" and platform_machine == "AMD64"`},
					},
					Sources: []string{"requirements.txt"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := pyproject.NewEncoder().Encode(tt.manifest())
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, out)
		})
	}
}

func TestEncoder_Encode_ValidTOML(t *testing.T) {
	out, err := pyproject.NewEncoder().Encode(paperManifest())
	require.NoError(t, err)

	var doc struct {
		Project struct {
			Name           string   `toml:"name"`
			Version        string   `toml:"version"`
			RequiresPython string   `toml:"requires-python"`
			Dependencies   []string `toml:"dependencies"`
		} `toml:"project"`
		DependencyGroups map[string][]string `toml:"dependency-groups"`
		BuildSystem      struct {
			Requires []string `toml:"requires"`
			Backend  string   `toml:"build-backend"`
		} `toml:"build-system"`
	}
	_, err = toml.Decode(string(out), &doc)
	require.NoError(t, err)

	assert.Equal(t, "accident-severity", doc.Project.Name)
	assert.Equal(t, ">=3.10", doc.Project.RequiresPython)
	assert.Equal(t, []string{"numpy>=1.24", "pandas==2.1.0", "scikit-learn[alldeps]>=1.3,<1.5"}, doc.Project.Dependencies)
	assert.Equal(t, map[string][]string{"dev": {"pytest==7.0"}}, doc.DependencyGroups)
	assert.Equal(t, []string{"hatchling"}, doc.BuildSystem.Requires)
	assert.Equal(t, "hatchling.build", doc.BuildSystem.Backend)
}

func TestEncoder_Encode_Deterministic(t *testing.T) {
	enc := pyproject.NewEncoder()
	m := paperManifest()
	m.Groups = []domain.DependencyGroup{
		{Name: "dev", Requirements: []domain.Requirement{req("pytest", "")}},
		{Name: "docs", Requirements: []domain.Requirement{req("sphinx", "")}},
		{Name: "lint", Requirements: []domain.Requirement{req("ruff", "")}},
	}

	first, err := enc.Encode(m)
	require.NoError(t, err)
	for range 20 {
		again, err := enc.Encode(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
