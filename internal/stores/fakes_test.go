package stores

import (
	"context"
	"sync/atomic"

	"nathanbeddoewebdev/svrmgr/internal/api"
	"nathanbeddoewebdev/svrmgr/internal/domain"
)

type fakeServers struct {
	list   func(ctx context.Context) ([]domain.Server, error)
	get    func(ctx context.Context, id string) (*domain.Server, error)
	update func(ctx context.Context, id string, u domain.ServerUpdate) (*domain.Server, error)
	flush  func(ctx context.Context, id string) error
	calls  atomic.Int32
}

func (f *fakeServers) List(ctx context.Context) ([]domain.Server, error) {
	f.calls.Add(1)
	return f.list(ctx)
}

func (f *fakeServers) Get(ctx context.Context, id string) (*domain.Server, error) {
	f.calls.Add(1)
	return f.get(ctx, id)
}

func (f *fakeServers) Update(ctx context.Context, id string, u domain.ServerUpdate) (*domain.Server, error) {
	f.calls.Add(1)
	return f.update(ctx, id, u)
}

func (f *fakeServers) FlushPages(ctx context.Context, id string) error {
	f.calls.Add(1)
	return f.flush(ctx, id)
}

type fakeMods struct {
	list    func(ctx context.Context, serverID string) ([]domain.Mod, error)
	configs func(ctx context.Context, serverID string) ([]domain.ModConfig, error)
	update  func(ctx context.Context, serverID, modID, content string) (*domain.ModConfig, error)
	calls   atomic.Int32
}

func (f *fakeMods) List(ctx context.Context, serverID string) ([]domain.Mod, error) {
	f.calls.Add(1)
	return f.list(ctx, serverID)
}

func (f *fakeMods) ListConfigs(ctx context.Context, serverID string) ([]domain.ModConfig, error) {
	f.calls.Add(1)
	return f.configs(ctx, serverID)
}

func (f *fakeMods) UpdateConfig(ctx context.Context, serverID, modID, content string) (*domain.ModConfig, error) {
	f.calls.Add(1)
	return f.update(ctx, serverID, modID, content)
}

type fakeConsole struct {
	logs    func(ctx context.Context, serverID string, q api.LogQuery) ([]domain.ConsoleLog, error)
	execute func(ctx context.Context, serverID, command string) (*domain.ServerCommand, error)
	calls   atomic.Int32
}

func (f *fakeConsole) Logs(ctx context.Context, serverID string, q api.LogQuery) ([]domain.ConsoleLog, error) {
	f.calls.Add(1)
	return f.logs(ctx, serverID, q)
}

func (f *fakeConsole) Execute(ctx context.Context, serverID, command string) (*domain.ServerCommand, error) {
	f.calls.Add(1)
	return f.execute(ctx, serverID, command)
}

func requestFailure(msg string) error {
	return &domain.Error{Kind: domain.ErrRequest, Message: msg}
}
