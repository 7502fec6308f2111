// Package portalloc finds free loopback ports for new workspace servers.
package portalloc

import (
	"errors"
	"fmt"
	"net"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PortAllocator = (*Allocator)(nil)

// Allocator scans a fixed range ascending, consulting the registry so two
// clients spawning servers for different workspaces do not race onto the
// same port. The OS exclusive bind is still the final arbiter: a server
// that loses the race fails startup instead of rebinding elsewhere.
type Allocator struct {
	registry ports.Registry
	start    int
	end      int
	probe    func(port int) bool
}

// New creates an allocator over [start, end).
func New(reg ports.Registry, start, end int) *Allocator {
	return &Allocator{
		registry: reg,
		start:    start,
		end:      end,
		probe:    portFree,
	}
}

// WithProbeFunc overrides the bind probe. Used in tests.
func (a *Allocator) WithProbeFunc(fn func(port int) bool) *Allocator {
	a.probe = fn
	return a
}

// Allocate returns the first port in the range that is neither recorded
// live in the registry nor currently bound.
func (a *Allocator) Allocate() (int, error) {
	live, err := a.registry.List()
	if err != nil {
		return 0, zerr.Wrap(err, "failed to consult registry for port allocation")
	}

	used := make(map[int]struct{}, len(live))
	for _, s := range live {
		used[s.Port] = struct{}{}
	}

	for port := a.start; port < a.end; port++ {
		if _, taken := used[port]; taken {
			continue
		}
		if a.probe(port) {
			return port, nil
		}
	}

	return 0, errors.Join(domain.ErrNoPortAvailable, zerr.New(fmt.Sprintf("no free port in %d-%d", a.start, a.end)))
}

// portFree reports whether the loopback port accepts an exclusive bind.
func portFree(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}
