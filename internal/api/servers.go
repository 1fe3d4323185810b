// Package api holds the typed query modules for the console backend.
// Each method maps to exactly one verb and path.
package api

import (
	"context"
	"net/url"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/request"
)

// ServerAPI queries the server inventory.
type ServerAPI struct {
	client *request.Client
}

// NewServerAPI creates a ServerAPI backed by client.
func NewServerAPI(client *request.Client) *ServerAPI {
	return &ServerAPI{client: client}
}

// List returns every server in the fleet.
func (a *ServerAPI) List(ctx context.Context) ([]domain.Server, error) {
	return request.Get[[]domain.Server](ctx, a.client, "/servers")
}

// Get returns a single server.
func (a *ServerAPI) Get(ctx context.Context, id string) (*domain.Server, error) {
	return request.Get[*domain.Server](ctx, a.client, serverPath(id))
}

// Update applies a partial update and returns the merged server.
func (a *ServerAPI) Update(ctx context.Context, id string, update domain.ServerUpdate) (*domain.Server, error) {
	return request.Put[*domain.Server](ctx, a.client, serverPath(id), update)
}

// FlushPages asks the server to flush its page cache.
func (a *ServerAPI) FlushPages(ctx context.Context, id string) error {
	_, err := request.Post[any](ctx, a.client, serverPath(id)+"/flush-pages", nil)
	return err
}

func serverPath(id string) string {
	return "/servers/" + url.PathEscape(id)
}
