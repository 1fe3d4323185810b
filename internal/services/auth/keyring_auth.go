package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps one bearer token per backend profile in the OS
// keychain, under a single service name.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store under service, or ServiceName when
// service is empty.
func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = ServiceName
	}
	return &KeyringStore{service: service}
}

func (k *KeyringStore) SetToken(profile string, token string) error {
	if err := keyring.Set(k.service, NormalizeProfile(profile), token); err != nil {
		return fmt.Errorf("auth: failed to store token for %s: %w", profile, err)
	}
	return nil
}

// GetToken returns ErrTokenNotFound for a missing or blank entry.
func (k *KeyringStore) GetToken(profile string) (string, error) {
	token, err := keyring.Get(k.service, NormalizeProfile(profile))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	case err != nil:
		return "", fmt.Errorf("auth: failed to read token for %s: %w", profile, err)
	case token == "":
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (k *KeyringStore) DeleteToken(profile string) error {
	err := keyring.Delete(k.service, NormalizeProfile(profile))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return ErrTokenNotFound
	case err != nil:
		return fmt.Errorf("auth: failed to delete token for %s: %w", profile, err)
	}
	return nil
}
