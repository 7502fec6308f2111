package daemon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/sema/internal/core/ports/mocks"
	"go.trai.ch/zerr"
)

type connectorFixture struct {
	connector *Connector
	registry  *mocks.MockRegistry
	alloc     *mocks.MockPortAllocator
	clients   map[int]ports.ServerClient
	spawned   []int
}

func newConnectorFixture(t *testing.T) *connectorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	f := &connectorFixture{
		registry: mocks.NewMockRegistry(ctrl),
		alloc:    mocks.NewMockPortAllocator(ctrl),
		clients:  make(map[int]ports.ServerClient),
	}
	f.connector = &Connector{
		registry: f.registry,
		alloc:    f.alloc,
		settings: domain.Settings{
			SpawnWaitBudget:   500 * time.Millisecond,
			SpawnPollInterval: 5 * time.Millisecond,
		}.Normalize(),
		log:            log,
		executablePath: "/usr/bin/sema",
	}
	f.connector.dial = func(port int) ports.ServerClient { return f.clients[port] }
	f.connector.spawn = func(root string, port int) error {
		f.spawned = append(f.spawned, port)
		return nil
	}
	return f
}

func healthyClient(ctrl *gomock.Controller) *mocks.MockServerClient {
	client := mocks.NewMockServerClient(ctrl)
	client.EXPECT().Health(gomock.Any()).Return(&ports.HealthInfo{Status: "ok"}, nil).AnyTimes()
	return client
}

func deadClient(ctrl *gomock.Controller) *mocks.MockServerClient {
	client := mocks.NewMockServerClient(ctrl)
	client.EXPECT().Health(gomock.Any()).
		Return(nil, errors.Join(domain.ErrServerUnreachable, zerr.New("connection refused"))).
		AnyTimes()
	return client
}

func TestConnector_ConnectReusesHealthyServer(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5001] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)

	client, err := f.connector.Connect(context.Background(), root)
	require.NoError(t, err)
	assert.Same(t, f.clients[5001], client)
	assert.Empty(t, f.spawned)
}

func TestConnector_ConnectSpawnsWhenUnregistered(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5002] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(nil, nil)
	f.alloc.EXPECT().Allocate().Return(5002, nil)

	client, err := f.connector.Connect(context.Background(), root)
	require.NoError(t, err)
	assert.Same(t, f.clients[5002], client)
	assert.Equal(t, []int{5002}, f.spawned)
}

func TestConnector_ConnectReplacesStaleRegistration(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5001] = deadClient(ctrl)
	f.clients[5002] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)
	f.registry.EXPECT().Remove(absRoot).Return(nil)
	f.alloc.EXPECT().Allocate().Return(5002, nil)

	client, err := f.connector.Connect(context.Background(), root)
	require.NoError(t, err)
	assert.Same(t, f.clients[5002], client)
	assert.Equal(t, []int{5002}, f.spawned)
}

func TestConnector_SpawnTimeout(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.connector.settings.SpawnWaitBudget = 30 * time.Millisecond
	f.clients[5002] = deadClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(nil, nil)
	f.alloc.EXPECT().Allocate().Return(5002, nil)

	_, err = f.connector.Connect(context.Background(), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerStartTimeout)
}

func TestConnector_DoRetriesOnceOnTransportFailure(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5001] = healthyClient(ctrl)
	f.clients[5002] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)
	f.registry.EXPECT().Remove(absRoot).Return(nil)
	f.alloc.EXPECT().Allocate().Return(5002, nil)

	calls := 0
	err = f.connector.Do(context.Background(), root, func(ports.ServerClient) error {
		calls++
		if calls == 1 {
			return errors.Join(domain.ErrServerUnreachable, zerr.New("connection reset"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{5002}, f.spawned)
}

func TestConnector_DoDoesNotRetryApplicationErrors(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5001] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)

	appErr := zerr.New("no symbol at position")
	calls := 0
	err = f.connector.Do(context.Background(), root, func(ports.ServerClient) error {
		calls++
		return appErr
	})

	require.ErrorIs(t, err, appErr)
	assert.Equal(t, 1, calls)
	assert.Empty(t, f.spawned)
}

func TestConnector_DoGivesUpAfterSecondFailure(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.clients[5001] = healthyClient(ctrl)
	f.clients[5002] = healthyClient(ctrl)
	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)
	f.registry.EXPECT().Remove(absRoot).Return(nil)
	f.alloc.EXPECT().Allocate().Return(5002, nil)

	calls := 0
	err = f.connector.Do(context.Background(), root, func(ports.ServerClient) error {
		calls++
		return errors.Join(domain.ErrServerUnreachable, zerr.New("connection reset"))
	})

	require.ErrorIs(t, err, domain.ErrServerUnreachable)
	assert.Equal(t, 2, calls, "exactly one retry")
	assert.Equal(t, []int{5002}, f.spawned)
}

func TestConnector_Stop(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	client := mocks.NewMockServerClient(ctrl)
	client.EXPECT().Shutdown(gomock.Any()).Return(nil)
	f.clients[5001] = client

	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)
	f.registry.EXPECT().Remove(absRoot).Return(nil)

	require.NoError(t, f.connector.Stop(context.Background(), root))
}

func TestConnector_StopWithoutServer(t *testing.T) {
	f := newConnectorFixture(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	f.registry.EXPECT().Find(absRoot).Return(nil, nil)

	err = f.connector.Stop(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrServerNotFound)
}

func TestConnector_StopRemovesEntryForDeadServer(t *testing.T) {
	f := newConnectorFixture(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	absRoot, err := ResolveWorkspace(root)
	require.NoError(t, err)

	client := mocks.NewMockServerClient(ctrl)
	client.EXPECT().Shutdown(gomock.Any()).
		Return(errors.Join(domain.ErrServerUnreachable, zerr.New("connection refused")))
	f.clients[5001] = client

	f.registry.EXPECT().Find(absRoot).Return(&domain.ServerInfo{WorkspaceRoot: absRoot, Port: 5001, PID: 100}, nil)
	f.registry.EXPECT().Remove(absRoot).Return(nil)

	require.NoError(t, f.connector.Stop(context.Background(), root))
}

func TestResolveWorkspace(t *testing.T) {
	t.Run("empty root", func(t *testing.T) {
		_, err := ResolveWorkspace("")
		require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := ResolveWorkspace("/does/not/exist")
		require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	})

	t.Run("root is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.py")
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

		_, err := ResolveWorkspace(path)
		require.ErrorIs(t, err, domain.ErrWorkspaceNotDir)
	})

	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		abs, err := ResolveWorkspace(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, abs)
	})
}
