package domain

// GroupTable selects the table dependency groups are rendered into.
type GroupTable string

const (
	// GroupTableDependencyGroups renders groups as PEP 735 [dependency-groups].
	GroupTableDependencyGroups GroupTable = "dependency-groups"
	// GroupTableOptional renders groups as [project.optional-dependencies] extras.
	GroupTableOptional GroupTable = "optional-dependencies"
)

// ProjectMetadata holds the fixed [project] fields.
type ProjectMetadata struct {
	Name           string
	Version        string
	Description    string
	RequiresPython string
}

// BuildSystem describes the [build-system] table.
type BuildSystem struct {
	Requires []string
	Backend  string
}

// DependencyGroup is a named set of declarations outside the runtime section.
type DependencyGroup struct {
	Name         string
	Requirements []Requirement
}

// Manifest is the structured project manifest produced from a requirements source.
type Manifest struct {
	Project ProjectMetadata
	// Dependencies is the runtime section, in source order.
	Dependencies []Requirement
	// Groups are sorted by name.
	Groups      []DependencyGroup
	GroupTable  GroupTable
	BuildSystem *BuildSystem
	// Sources are the source files relative to the manifest, in slash form.
	Sources []string
}

// Group returns the group with the given name.
func (m *Manifest) Group(name string) (DependencyGroup, bool) {
	for _, g := range m.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return DependencyGroup{}, false
}
