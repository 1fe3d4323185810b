package request

import (
	"context"
	"net/http"
)

// Get fetches path and returns the unwrapped payload.
func Get[T any](ctx context.Context, c *Client, path string, opts ...CallOption) (T, error) {
	return send[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post sends body to path and returns the unwrapped payload.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (T, error) {
	return send[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put replaces the resource at path and returns the unwrapped payload.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (T, error) {
	return send[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Patch partially updates the resource at path.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (T, error) {
	return send[T](ctx, c, http.MethodPatch, path, body, opts...)
}

// Delete removes the resource at path.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...CallOption) (T, error) {
	return send[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

func send[T any](ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) (T, error) {
	var out T
	if err := c.Do(ctx, method, path, body, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
