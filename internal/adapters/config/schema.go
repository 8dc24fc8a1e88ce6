package config

// Reqsyncfile represents the structure of the reqsync.yaml configuration file.
type Reqsyncfile struct {
	Version     string               `yaml:"version"`
	Project     ProjectDTO           `yaml:"project"`
	Source      string               `yaml:"source"`
	Output      string               `yaml:"output"`
	Encoding    string               `yaml:"encoding"`
	GroupTable  string               `yaml:"groupTable"`
	Groups      map[string]*GroupDTO `yaml:"groups"`
	BuildSystem *BuildSystemDTO      `yaml:"buildSystem"`
}

// ProjectDTO represents the fixed project metadata.
type ProjectDTO struct {
	Name           string `yaml:"name"`
	Version        string `yaml:"version"`
	Description    string `yaml:"description"`
	RequiresPython string `yaml:"requiresPython"`
}

// GroupDTO represents a dependency group definition.
type GroupDTO struct {
	Source   string   `yaml:"source"`
	Packages []string `yaml:"packages"`
}

// BuildSystemDTO represents the build-system table.
type BuildSystemDTO struct {
	Requires     []string `yaml:"requires"`
	BuildBackend string   `yaml:"buildBackend"`
}
