package resolver

import (
	"context"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
)

// ReactorLocator resolves coordinates against the projects participating in
// the current workspace build. The reactor index is read-only.
type ReactorLocator struct {
	projects []*domain.Project
	logger   ports.Logger
}

// NewReactorLocator creates a locator over the given reactor projects.
func NewReactorLocator(projects []*domain.Project, logger ports.Logger) *ReactorLocator {
	return &ReactorLocator{projects: projects, logger: logger}
}

// Locate scans the reactor for an exact (group, artifact) match. A duplicate
// entry is a logged anomaly, not a failure: the first match wins.
func (l *ReactorLocator) Locate(_ context.Context, coord domain.Coordinate) (*domain.Project, error) {
	var found *domain.Project
	for _, prj := range l.projects {
		if prj.ArtifactID != coord.ArtifactID || prj.GroupID != coord.GroupID {
			continue
		}
		if found != nil {
			l.logger.Warn("module " + coord.Key() + " found twice in reactor")
			continue
		}
		l.logger.Debug("module " + coord.Key() + " found in reactor")
		found = prj
	}
	return found, nil
}
