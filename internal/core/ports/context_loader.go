package ports

import "github.com/monday-consulting/modres/internal/core/domain"

// ContextLoader discovers the workspace and assembles the build context.
//
//go:generate mockgen -source=context_loader.go -destination=mocks/mock_context_loader.go -package=mocks
type ContextLoader interface {
	// Load walks up from cwd to find the workspace manifest and returns the
	// build context: the current project, the reactor index, and the
	// repository configuration.
	Load(cwd string) (*domain.BuildContext, error)
}
