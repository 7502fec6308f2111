package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Coordinator = (*Connector)(nil)

// Connector implements ports.Coordinator: it resolves a workspace to a
// healthy server, spawning one when needed, and owns the single retry that
// client commands get when a server dies under them.
type Connector struct {
	registry ports.Registry
	alloc    ports.PortAllocator
	settings domain.Settings
	log      ports.Logger

	executablePath string

	// dial and spawn are replaceable in tests.
	dial  func(port int) ports.ServerClient
	spawn func(root string, port int) error
}

// NewConnector creates a connector that spawns servers from the current
// executable.
func NewConnector(
	registry ports.Registry,
	alloc ports.PortAllocator,
	settings domain.Settings,
	log ports.Logger,
) (*Connector, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	c := &Connector{
		registry:       registry,
		alloc:          alloc,
		settings:       settings,
		log:            log,
		executablePath: exe,
	}
	c.dial = func(port int) ports.ServerClient { return Dial(port) }
	c.spawn = c.spawnProcess
	return c, nil
}

// Connect returns a client for the workspace root, spawning a server when
// none is registered or the registered one fails its health probe.
func (c *Connector) Connect(ctx context.Context, root string) (ports.ServerClient, error) {
	absRoot, err := ResolveWorkspace(root)
	if err != nil {
		return nil, err
	}

	if info, findErr := c.registry.Find(absRoot); findErr == nil && info != nil {
		client := c.dial(info.Port)
		if c.probe(ctx, client) {
			return client, nil
		}
		// Stale registration: the entry points at a dead or hijacked port.
		if removeErr := c.registry.Remove(absRoot); removeErr != nil {
			c.log.Warnf("failed to drop stale registration for %s: %v", absRoot, removeErr)
		}
	}

	return c.spawnAndWait(ctx, absRoot)
}

// Do runs call against the workspace's server, forcing one respawn and
// retrying exactly once when the dispatch fails on transport.
func (c *Connector) Do(ctx context.Context, root string, call func(ports.ServerClient) error) error {
	client, err := c.Connect(ctx, root)
	if err != nil {
		return err
	}

	err = call(client)
	if err == nil || !errors.Is(err, domain.ErrServerUnreachable) {
		return err
	}

	absRoot, resolveErr := ResolveWorkspace(root)
	if resolveErr != nil {
		return resolveErr
	}
	if removeErr := c.registry.Remove(absRoot); removeErr != nil {
		c.log.Warnf("failed to drop dead registration for %s: %v", absRoot, removeErr)
	}
	client, err = c.spawnAndWait(ctx, absRoot)
	if err != nil {
		return err
	}
	return call(client)
}

// Stop gracefully terminates the workspace's server. A workspace with no
// server is not an error.
func (c *Connector) Stop(ctx context.Context, root string) error {
	absRoot, err := ResolveWorkspace(root)
	if err != nil {
		return err
	}
	info, err := c.registry.Find(absRoot)
	if err != nil {
		return err
	}
	if info == nil {
		return errors.Join(domain.ErrServerNotFound, zerr.New(fmt.Sprintf("no server registered for %s", absRoot)))
	}

	client := c.dial(info.Port)
	if shutdownErr := client.Shutdown(ctx); shutdownErr != nil &&
		!errors.Is(shutdownErr, domain.ErrServerUnreachable) {
		return shutdownErr
	}
	return c.registry.Remove(absRoot)
}

func (c *Connector) probe(ctx context.Context, client ports.ServerClient) bool {
	probeCtx, cancel := context.WithTimeout(ctx, ports.ProbeTimeout)
	defer cancel()
	_, err := client.Health(probeCtx)
	return err == nil
}

// spawnAndWait starts a server for absRoot and polls its health endpoint
// until it answers or the wait budget runs out. The server registers itself
// once it is listening.
func (c *Connector) spawnAndWait(ctx context.Context, absRoot string) (ports.ServerClient, error) {
	port, err := c.alloc.Allocate()
	if err != nil {
		return nil, err
	}

	if err := c.spawn(absRoot, port); err != nil {
		return nil, err
	}

	client := c.dial(port)
	deadline := time.Now().Add(c.settings.SpawnWaitBudget)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.settings.SpawnPollInterval):
		}
		if c.probe(ctx, client) {
			return client, nil
		}
	}
	return nil, errors.Join(domain.ErrServerStartTimeout, zerr.New(fmt.Sprintf("server for %s never became healthy", absRoot)))
}

// spawnProcess launches a detached server process whose output goes to a
// per-port log file under the metadata directory.
func (c *Connector) spawnProcess(root string, port int) error {
	logsDir := domain.LogsDir()
	if err := os.MkdirAll(logsDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create log directory")
	}

	logPath := filepath.Join(logsDir, fmt.Sprintf("server_%d.log", port))
	//nolint:gosec // G304: logPath is built from the metadata dir and the allocated port
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to open server log")
	}

	//nolint:gosec // G204: executablePath is controlled, args are fixed literals
	cmd := exec.Command(c.executablePath,
		"server", "serve",
		"--root", root,
		"--port", strconv.Itoa(port),
		"--daemon",
	)
	cmd.Dir = root
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return zerr.Wrap(err, "failed to spawn server process")
	}

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()
	return nil
}

// ResolveWorkspace validates root and returns its canonical absolute form.
func ResolveWorkspace(root string) (string, error) {
	if root == "" {
		return "", zerr.Wrap(domain.ErrWorkspaceNotFound, "workspace root cannot be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve workspace root")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Join(domain.ErrWorkspaceNotFound, zerr.New(fmt.Sprintf("%s does not exist", abs)))
	}
	if !info.IsDir() {
		return "", errors.Join(domain.ErrWorkspaceNotDir, zerr.New(fmt.Sprintf("%s is not a directory", abs)))
	}
	if resolved, symErr := filepath.EvalSymlinks(abs); symErr == nil {
		abs = resolved
	}
	return abs, nil
}
