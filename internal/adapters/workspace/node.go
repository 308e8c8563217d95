package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/monday-consulting/modres/internal/adapters/logger"
	"github.com/monday-consulting/modres/internal/core/ports"
)

// NodeID is the unique identifier for the context loader Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.ContextLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ContextLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
