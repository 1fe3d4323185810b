package api

import (
	"context"
	"net/url"
	"strconv"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/request"
)

// LogQuery bounds a log read. Zero values are omitted from the request.
type LogQuery struct {
	// Limit keeps at most the newest Limit entries.
	Limit int
	// Offset skips the newest Offset entries before applying Limit.
	Offset int
}

func (q LogQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

// ConsoleAPI reads console logs and executes commands.
type ConsoleAPI struct {
	client *request.Client
}

// NewConsoleAPI creates a ConsoleAPI backed by client.
func NewConsoleAPI(client *request.Client) *ConsoleAPI {
	return &ConsoleAPI{client: client}
}

type commandRequest struct {
	Command string `json:"command"`
}

// Logs returns console entries in stored order.
func (a *ConsoleAPI) Logs(ctx context.Context, serverID string, q LogQuery) ([]domain.ConsoleLog, error) {
	return request.Get[[]domain.ConsoleLog](ctx, a.client, serverPath(serverID)+"/logs", request.Params(q.values()))
}

// Execute runs a console command on the server.
func (a *ConsoleAPI) Execute(ctx context.Context, serverID, command string) (*domain.ServerCommand, error) {
	return request.Post[*domain.ServerCommand](ctx, a.client, serverPath(serverID)+"/execute", commandRequest{Command: command})
}
