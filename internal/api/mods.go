package api

import (
	"context"
	"net/url"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/request"
)

// ModAPI queries a server's mods and their configuration.
type ModAPI struct {
	client *request.Client
}

// NewModAPI creates a ModAPI backed by client.
func NewModAPI(client *request.Client) *ModAPI {
	return &ModAPI{client: client}
}

type configUpdate struct {
	Content string `json:"content"`
}

// List returns the mods installed on a server.
func (a *ModAPI) List(ctx context.Context, serverID string) ([]domain.Mod, error) {
	return request.Get[[]domain.Mod](ctx, a.client, serverPath(serverID)+"/mods")
}

// ListConfigs returns every mod configuration on a server.
func (a *ModAPI) ListConfigs(ctx context.Context, serverID string) ([]domain.ModConfig, error) {
	return request.Get[[]domain.ModConfig](ctx, a.client, serverPath(serverID)+"/mods/configs")
}

// GetConfig returns the configuration of one mod.
func (a *ModAPI) GetConfig(ctx context.Context, serverID, modID string) (*domain.ModConfig, error) {
	return request.Get[*domain.ModConfig](ctx, a.client, configPath(serverID, modID))
}

// UpdateConfig replaces the configuration text of a mod.
func (a *ModAPI) UpdateConfig(ctx context.Context, serverID, modID, content string) (*domain.ModConfig, error) {
	return request.Put[*domain.ModConfig](ctx, a.client, configPath(serverID, modID), configUpdate{Content: content})
}

func configPath(serverID, modID string) string {
	return serverPath(serverID) + "/mods/" + url.PathEscape(modID) + "/config"
}
