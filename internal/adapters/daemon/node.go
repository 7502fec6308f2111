package daemon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sema/internal/adapters/config"
	"go.trai.ch/sema/internal/adapters/logger"
	"go.trai.ch/sema/internal/adapters/portalloc"
	"go.trai.ch/sema/internal/adapters/registry"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// NodeID is the unique identifier for the coordinator Graft node.
const NodeID graft.ID = "adapter.daemon"

func init() {
	graft.Register(graft.Node[ports.Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, portalloc.NodeID, config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Coordinator, error) {
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			alloc, err := graft.Dep[ports.PortAllocator](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(reg, alloc, settings, log)
		},
	})
}
