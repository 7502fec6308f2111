package ports

//go:generate mockgen -source=portalloc.go -destination=mocks/mock_portalloc.go -package=mocks

// PortAllocator finds an unused loopback port for a new server.
//
// Allocation scans the configured range ascending, skipping ports that are
// recorded live in the registry or already bound. Allocation and registry
// insertion are not atomic across processes: a server that cannot bind its
// assigned port reports startup failure instead of picking another port, and
// the coordinator retries allocation cleanly.
type PortAllocator interface {
	// Allocate returns the first free port, or domain.ErrNoPortAvailable
	// when the range is exhausted.
	Allocate() (int, error)
}
