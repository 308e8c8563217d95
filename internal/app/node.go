package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/monday-consulting/modres/internal/adapters/logger"
	"github.com/monday-consulting/modres/internal/adapters/workspace"
	"github.com/monday-consulting/modres/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the application with the adapters the CLI needs direct
// access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, workspace.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ContextLoader](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, log),
				Logger: log,
			}, nil
		},
	})
}
