package auth

import (
	"errors"
	"net/url"

	"nathanbeddoewebdev/svrmgr/internal/util"
)

const ServiceName = "svrmgr"

var ErrTokenNotFound = errors.New("auth token not found")

// Store persists bearer tokens keyed by backend profile.
type Store interface {
	SetToken(profile string, token string) error
	GetToken(profile string) (string, error)
	DeleteToken(profile string) error
}

// storeOverride, when non-nil, is returned by DefaultStore.
// Intended for testing. Use SetDefaultStore / ResetDefaultStore to manage.
var storeOverride Store

// SetDefaultStore replaces the store returned by DefaultStore. Intended for testing.
func SetDefaultStore(s Store) { storeOverride = s }

// ResetDefaultStore reverts DefaultStore to the OS keychain. Intended for testing.
func ResetDefaultStore() { storeOverride = nil }

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	if storeOverride != nil {
		return storeOverride
	}
	return NewKeyringStore(ServiceName)
}

// NormalizeProfile normalizes a profile name for consistent key lookup.
func NormalizeProfile(profile string) string {
	return util.NormalizeKey(profile)
}

// ProfileFor derives the profile key for a backend base URL. Tokens are
// scoped to the backend host so switching api-url never leaks a token
// to a different backend.
func ProfileFor(baseURL string) string {
	u, err := url.Parse(util.NormalizeKey(baseURL))
	if err != nil || u.Host == "" {
		return NormalizeProfile(baseURL)
	}
	return u.Host
}
