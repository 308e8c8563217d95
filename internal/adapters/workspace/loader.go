// Package workspace discovers the workspace manifest and assembles the build
// context: the current project, the reactor index, and the repository
// configuration.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/monday-consulting/modres/internal/adapters/descriptor"
	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CacheEnvVar overrides the local repository cache directory.
const CacheEnvVar = "MODRES_CACHE"

// Loader implements ports.ContextLoader on the filesystem.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks up from cwd to the directory holding workspace.yaml, builds the
// workspace root project and the reactor index from the manifest's member
// list, and determines the current project from cwd's own module.yaml.
func (l *Loader) Load(cwd string) (*domain.BuildContext, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceNotFound.Error())
	}

	wsDir, err := l.findWorkspace(abs)
	if err != nil {
		return nil, err
	}

	wf, err := readWorkfile(filepath.Join(wsDir, domain.WorkspaceFileName))
	if err != nil {
		return nil, err
	}

	root := &domain.Project{
		GroupID:    wf.Group,
		ArtifactID: wf.Artifact,
		Version:    wf.Version,
		Packaging:  domain.WorkspacePackaging,
		BaseDir:    wsDir,
	}

	current, err := l.currentProject(abs, wsDir, root)
	if err != nil {
		return nil, err
	}

	cacheRoot, err := resolveCacheRoot(wsDir, wf.Repository.Cache)
	if err != nil {
		return nil, err
	}

	return &domain.BuildContext{
		Current:       current,
		Reactor:       l.loadReactor(wsDir, root, wf.Modules),
		CacheRoot:     cacheRoot,
		RepositoryURL: wf.Repository.URL,
	}, nil
}

// findWorkspace walks up from cwd until it finds a workspace manifest.
func (l *Loader) findWorkspace(cwd string) (string, error) {
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, domain.WorkspaceFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return "", zerr.With(domain.ErrWorkspaceNotFound, "cwd", cwd)
}

// currentProject builds the overriding parent project of the resolution.
// Inside a member directory that is the member's own project, with the
// workspace root as its parent; at the workspace root it is the root itself.
func (l *Loader) currentProject(cwd, wsDir string, root *domain.Project) (*domain.Project, error) {
	descriptorPath := filepath.Join(cwd, domain.ModuleFileName)
	if cwd == wsDir {
		return root, nil
	}
	if _, err := os.Stat(descriptorPath); err != nil {
		return root, nil
	}

	project, err := descriptor.Parse(descriptorPath, ports.BuildOptions{
		ResolveDependencies: true,
		DefaultVersion:      root.Version,
	})
	if err != nil {
		return nil, err
	}
	project.Parent = root
	return project, nil
}

// loadReactor builds the reactor index from the manifest's member list.
// Members whose descriptors cannot be built are skipped: they simply are not
// part of the current build.
func (l *Loader) loadReactor(wsDir string, root *domain.Project, modules []string) []*domain.Project {
	reactor := make([]*domain.Project, 0, len(modules))
	for _, m := range modules {
		descriptorPath := filepath.Join(wsDir, m, domain.ModuleFileName)
		project, err := descriptor.Parse(descriptorPath, ports.BuildOptions{DefaultVersion: root.Version})
		if err != nil {
			l.logger.Debug("skipping reactor member " + m + ": " + err.Error())
			continue
		}
		project.Parent = root
		project.Origin = domain.OriginReactor

		// The reactor build produces the output artifact; existence checking
		// is deferred to the build phase that consumes it.
		if artifactFile, ok := project.OutputArtifactPath(); ok {
			project.ArtifactFile = artifactFile
		}

		reactor = append(reactor, project)
	}
	return reactor
}

func readWorkfile(path string) (*Workfile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the discovered workspace manifest
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceNotFound.Error())
	}

	var wf Workfile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceParseFailed.Error())
	}
	if wf.Group == "" {
		return nil, zerr.With(domain.ErrMissingGroup, "path", path)
	}
	if wf.Artifact == "" {
		return nil, zerr.With(domain.ErrMissingArtifact, "path", path)
	}
	return &wf, nil
}

// resolveCacheRoot picks the cache directory: the MODRES_CACHE environment
// variable wins, then the manifest's repository.cache (relative to the
// workspace root), then the per-user default.
func resolveCacheRoot(wsDir, configured string) (string, error) {
	if env := os.Getenv(CacheEnvVar); env != "" {
		return filepath.Clean(env), nil
	}
	if configured != "" {
		if filepath.IsAbs(configured) {
			return filepath.Clean(configured), nil
		}
		return filepath.Join(wsDir, configured), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	return domain.DefaultCachePath(home), nil
}
