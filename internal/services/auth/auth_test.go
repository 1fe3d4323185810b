package auth

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8080", "localhost:8080"},
		{"https://Panel.Example.com/", "panel.example.com"},
		{"  https://panel.example.com/base  ", "panel.example.com"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ProfileFor(tt.in); got != tt.want {
				t.Errorf("ProfileFor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMockStore_Lifecycle(t *testing.T) {
	store := NewMockStore()

	if _, err := store.GetToken("localhost:8080"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	if err := store.SetToken("LOCALHOST:8080", "secret"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	got, err := store.GetToken("localhost:8080")
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != "secret" {
		t.Errorf("expected token %q, got %q", "secret", got)
	}

	if err := store.DeleteToken("localhost:8080"); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if err := store.DeleteToken("localhost:8080"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound on second delete, got %v", err)
	}
}

func TestDefaultStore_Override(t *testing.T) {
	mock := NewMockStore()
	SetDefaultStore(mock)
	t.Cleanup(ResetDefaultStore)

	if got := DefaultStore(); got != Store(mock) {
		t.Errorf("expected override store, got %T", got)
	}
}

func TestKeyringStore_Lifecycle(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("")

	if _, err := store.GetToken("localhost:8080"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if err := store.SetToken("LocalHost:8080", "tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	got, err := store.GetToken("localhost:8080")
	if err != nil || got != "tok" {
		t.Fatalf("GetToken = %q, %v; want tok", got, err)
	}
	if err := store.DeleteToken("localhost:8080"); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if err := store.DeleteToken("localhost:8080"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound on second delete, got %v", err)
	}
}

func TestKeyringStore_BlankTokenIsMissing(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("svrmgr-test")

	if err := store.SetToken("localhost:8080", ""); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if _, err := store.GetToken("localhost:8080"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound for blank token, got %v", err)
	}
}
