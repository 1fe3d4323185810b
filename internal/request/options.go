package request

import (
	"net/http"
	"net/url"
	"time"
)

// CallOption adjusts a single request.
type CallOption func(*callConfig)

type callConfig struct {
	skipAuth bool
	timeout  time.Duration
	params   url.Values
	headers  http.Header
}

// SkipAuth sends the request without the Authorization header.
func SkipAuth() CallOption {
	return func(c *callConfig) { c.skipAuth = true }
}

// Timeout overrides the client timeout for this request.
func Timeout(d time.Duration) CallOption {
	return func(c *callConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Params sets the query string.
func Params(v url.Values) CallOption {
	return func(c *callConfig) { c.params = v }
}

// Header sets an extra header for this request.
func Header(key, value string) CallOption {
	return func(c *callConfig) {
		if c.headers == nil {
			c.headers = make(http.Header)
		}
		c.headers.Set(key, value)
	}
}
