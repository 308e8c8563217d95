package resolver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
)

// WorkspaceLocator opportunistically resolves coordinates from sibling
// directories under the workspace root that are not part of the reactor.
// Every failure in this tier causes fallthrough to the repository tier.
type WorkspaceLocator struct {
	root    *domain.Project
	builder ports.DescriptorBuilder
	logger  ports.Logger
}

// NewWorkspaceLocator creates a locator rooted at the given workspace root
// project. A nil root disables the tier.
func NewWorkspaceLocator(root *domain.Project, builder ports.DescriptorBuilder, logger ports.Logger) *WorkspaceLocator {
	return &WorkspaceLocator{root: root, builder: builder, logger: logger}
}

// Locate looks for <root>/<artifact>/module.yaml and builds a project from
// it. The tier only applies when the root project's group matches the
// coordinate's, and only succeeds when the built project's output artifact
// exists on disk.
func (l *WorkspaceLocator) Locate(_ context.Context, coord domain.Coordinate) (*domain.Project, error) {
	if l.root == nil || l.root.GroupID != coord.GroupID {
		return nil, nil
	}
	l.logger.Debug("module " + coord.Key() + " might exist locally")

	descriptorPath := filepath.Join(l.root.BaseDir, coord.ArtifactID, domain.ModuleFileName)
	if _, err := os.Stat(descriptorPath); err != nil {
		return nil, nil
	}

	project, err := l.builder.Build(descriptorPath, ports.BuildOptions{ResolveDependencies: true})
	if err != nil {
		l.logger.Debug("failed to build local project " + descriptorPath)
		return nil, nil
	}

	artifactFile, ok := project.OutputArtifactPath()
	if !ok {
		return nil, nil
	}
	if _, err := os.Stat(artifactFile); err != nil {
		// A locally built module with no artifact on disk is not usable.
		return nil, nil
	}

	project.ArtifactFile = artifactFile
	project.Origin = domain.OriginWorkspace
	l.logger.Info("resolved " + coord.String() + " via local project " + descriptorPath)
	return project, nil
}
