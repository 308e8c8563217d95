package descriptor

// Descriptor represents the structure of a module.yaml descriptor file.
type Descriptor struct {
	Group        string           `yaml:"group"`
	Artifact     string           `yaml:"artifact"`
	Version      string           `yaml:"version"`
	Packaging    string           `yaml:"packaging"`
	Build        *BuildDTO        `yaml:"build"`
	Dependencies []*DependencyDTO `yaml:"dependencies"`
}

// BuildDTO describes the build output naming of a module.
type BuildDTO struct {
	Directory string `yaml:"directory"`
	FinalName string `yaml:"finalName"`
}

// DependencyDTO declares a dependency coordinate with applicable scopes.
type DependencyDTO struct {
	Coordinate string   `yaml:"coordinate"`
	Scopes     []string `yaml:"scopes"`
}
