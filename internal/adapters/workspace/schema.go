package workspace

// Workfile represents the structure of the workspace.yaml manifest.
type Workfile struct {
	Group      string        `yaml:"group"`
	Artifact   string        `yaml:"artifact"`
	Version    string        `yaml:"version"`
	Modules    []string      `yaml:"modules"`
	Repository RepositoryDTO `yaml:"repository"`
}

// RepositoryDTO configures the artifact repository used by the workspace.
type RepositoryDTO struct {
	URL   string `yaml:"url"`
	Cache string `yaml:"cache"`
}
