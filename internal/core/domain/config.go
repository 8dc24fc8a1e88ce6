package domain

import (
	"regexp"
	"slices"

	"go.trai.ch/zerr"
)

var versionRegex = regexp.MustCompile(
	`(?i)^v?([0-9]+!)?[0-9]+(\.[0-9]+)*((a|b|rc)[0-9]+)?(\.post[0-9]+)?(\.dev[0-9]+)?(\+[a-z0-9]+(\.[a-z0-9]+)*)?$`,
)

// GroupSpec configures a dependency group.
type GroupSpec struct {
	// Name is the group name as rendered in the manifest.
	Name string
	// Source is an optional requirements file whose entries all belong to the group.
	Source string
	// Packages are names moved out of the runtime source into the group.
	Packages []string
}

// Config is the resolved generator configuration.
type Config struct {
	// Root is the directory relative paths were resolved against.
	Root string
	// File is the config file path, empty when defaults were used.
	File string
	// Version is the config schema version.
	Version     string
	Project     ProjectMetadata
	Source      string
	Output      string
	Encoding    Encoding
	GroupTable  GroupTable
	Groups      []GroupSpec
	BuildSystem *BuildSystem
}

// Validate checks the configuration after all overrides have been applied.
func (c *Config) Validate() error {
	if c.Version != ConfigVersion {
		return zerr.With(ErrUnsupportedConfigVersion, "version", c.Version)
	}
	if !IsValidName(c.Project.Name) {
		return zerr.With(ErrInvalidProjectName, "name", c.Project.Name)
	}
	if !versionRegex.MatchString(c.Project.Version) {
		return zerr.With(ErrInvalidProjectVersion, "version", c.Project.Version)
	}
	if !c.Encoding.IsValid() {
		return zerr.With(ErrUnsupportedEncoding, "encoding", string(c.Encoding))
	}
	if c.GroupTable != GroupTableDependencyGroups && c.GroupTable != GroupTableOptional {
		return zerr.With(ErrUnsupportedGroupTable, "group_table", string(c.GroupTable))
	}

	owners := make(map[string]string)
	for _, g := range c.Groups {
		if !IsValidName(g.Name) {
			return zerr.With(ErrInvalidGroupName, "group", g.Name)
		}
		if g.Source == "" && len(g.Packages) == 0 {
			return zerr.With(ErrEmptyGroup, "group", g.Name)
		}
		for _, pkg := range g.Packages {
			key := NormalizeName(pkg)
			if owner, ok := owners[key]; ok && owner != g.Name {
				err := zerr.With(ErrPackageInMultipleGroups, "package", pkg)
				return zerr.With(err, "groups", []string{owner, g.Name})
			}
			owners[key] = g.Name
		}
	}
	return nil
}

// GroupFor returns the group a runtime package is assigned to, if any.
func (c *Config) GroupFor(name string) (string, bool) {
	key := NormalizeName(name)
	for _, g := range c.Groups {
		if slices.ContainsFunc(g.Packages, func(p string) bool { return NormalizeName(p) == key }) {
			return g.Name, true
		}
	}
	return "", false
}
