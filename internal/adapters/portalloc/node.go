package portalloc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sema/internal/adapters/config"
	"go.trai.ch/sema/internal/adapters/registry"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// NodeID is the unique identifier for the port allocator Graft node.
const NodeID graft.ID = "adapter.portalloc"

func init() {
	graft.Register(graft.Node[ports.PortAllocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PortAllocator, error) {
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, settings.PortRangeStart, settings.PortRangeEnd), nil
		},
	})
}
