package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/request"
	"nathanbeddoewebdev/svrmgr/internal/retry"

	"github.com/google/go-cmp/cmp"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// newRecordingServer answers every request with data and records what
// the client sent.
func newRecordingServer(t *testing.T, data string) (*request.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.EscapedPath()
		rec.Query = r.URL.RawQuery
		rec.Body = string(body)
		_, _ = w.Write([]byte(`{"code":0,"data":` + data + `,"message":""}`))
	}))
	t.Cleanup(srv.Close)
	return request.New(srv.URL, request.WithRetry(retry.NoRetry())), rec
}

func TestServerAPI_Routes(t *testing.T) {
	ctx := context.Background()
	players := 5

	tests := []struct {
		name string
		data string
		call func(c *request.Client) error
		want recorded
	}{
		{
			name: "list",
			data: `[]`,
			call: func(c *request.Client) error { _, err := NewServerAPI(c).List(ctx); return err },
			want: recorded{Method: "GET", Path: "/api/servers"},
		},
		{
			name: "get",
			data: `{"id":"srv-001"}`,
			call: func(c *request.Client) error { _, err := NewServerAPI(c).Get(ctx, "srv-001"); return err },
			want: recorded{Method: "GET", Path: "/api/servers/srv-001"},
		},
		{
			name: "update",
			data: `{"id":"srv-001"}`,
			call: func(c *request.Client) error {
				_, err := NewServerAPI(c).Update(ctx, "srv-001", domain.ServerUpdate{Players: &players})
				return err
			},
			want: recorded{Method: "PUT", Path: "/api/servers/srv-001", Body: `{"players":5}`},
		},
		{
			name: "flush pages",
			data: `null`,
			call: func(c *request.Client) error { return NewServerAPI(c).FlushPages(ctx, "srv-001") },
			want: recorded{Method: "POST", Path: "/api/servers/srv-001/flush-pages"},
		},
		{
			name: "escapes id",
			data: `{"id":"a/b"}`,
			call: func(c *request.Client) error { _, err := NewServerAPI(c).Get(ctx, "a/b"); return err },
			want: recorded{Method: "GET", Path: "/api/servers/a%2Fb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newRecordingServer(t, tt.data)
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, *rec); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModAPI_Routes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		data string
		call func(c *request.Client) error
		want recorded
	}{
		{
			name: "list",
			data: `[]`,
			call: func(c *request.Client) error { _, err := NewModAPI(c).List(ctx, "srv-001"); return err },
			want: recorded{Method: "GET", Path: "/api/servers/srv-001/mods"},
		},
		{
			name: "configs",
			data: `[]`,
			call: func(c *request.Client) error { _, err := NewModAPI(c).ListConfigs(ctx, "srv-001"); return err },
			want: recorded{Method: "GET", Path: "/api/servers/srv-001/mods/configs"},
		},
		{
			name: "get config",
			data: `{"id":"cfg-001"}`,
			call: func(c *request.Client) error { _, err := NewModAPI(c).GetConfig(ctx, "srv-001", "mod-001"); return err },
			want: recorded{Method: "GET", Path: "/api/servers/srv-001/mods/mod-001/config"},
		},
		{
			name: "update config",
			data: `{"id":"cfg-001"}`,
			call: func(c *request.Client) error {
				_, err := NewModAPI(c).UpdateConfig(ctx, "srv-001", "mod-001", "[General]\nEnabled = true")
				return err
			},
			want: recorded{
				Method: "PUT",
				Path:   "/api/servers/srv-001/mods/mod-001/config",
				Body:   `{"content":"[General]\nEnabled = true"}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newRecordingServer(t, tt.data)
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, *rec); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConsoleAPI_Logs(t *testing.T) {
	tests := []struct {
		name  string
		query LogQuery
		want  string
	}{
		{"no bounds", LogQuery{}, ""},
		{"limit", LogQuery{Limit: 100}, "limit=100"},
		{"limit and offset", LogQuery{Limit: 10, Offset: 20}, "limit=10&offset=20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newRecordingServer(t, `[{"id":"log-001","level":"info","message":"Server started successfully","source":"system","timestamp":"2024-02-20T10:00:00Z"}]`)

			logs, err := NewConsoleAPI(client).Logs(context.Background(), "srv-001", tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Path != "/api/servers/srv-001/logs" {
				t.Errorf("unexpected path %q", rec.Path)
			}
			if rec.Query != tt.want {
				t.Errorf("expected query %q, got %q", tt.want, rec.Query)
			}
			if len(logs) != 1 || logs[0].Message != "Server started successfully" {
				t.Errorf("unexpected logs %+v", logs)
			}
		})
	}
}

func TestConsoleAPI_Execute(t *testing.T) {
	client, rec := newRecordingServer(t, `{"id":"cmd-1","command":"save","status":"success","response":"Executed command: save","timestamp":"2024-02-20T10:00:00Z"}`)

	got, err := NewConsoleAPI(client).Execute(context.Background(), "srv-001", "save")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Method != "POST" || rec.Path != "/api/servers/srv-001/execute" {
		t.Errorf("unexpected request %s %s", rec.Method, rec.Path)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(rec.Body), &body); err != nil || body["command"] != "save" {
		t.Errorf("unexpected body %q", rec.Body)
	}
	if got.Status != domain.CommandSuccess || got.Response != "Executed command: save" {
		t.Errorf("unexpected command result %+v", got)
	}
}
