package services

import (
	"errors"
	"testing"

	"qpg-backend/internal/models"
)

func TestUserStoreRegisterAndGet(t *testing.T) {
	store := NewUserStore()

	registered, err := store.Register(models.User{Username: "asem", Email: "asem@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.CreditsLeft != 1 {
		t.Errorf("CreditsLeft = %d, want default 1", registered.CreditsLeft)
	}

	got, err := store.Get("asem@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Username != "asem" {
		t.Errorf("Username = %q", got.Username)
	}
}

func TestUserStoreRegisterReplaces(t *testing.T) {
	store := NewUserStore()

	if _, err := store.Register(models.User{Username: "old", Email: "a@b.c"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := store.Register(models.User{Username: "new", Email: "a@b.c", IsSubscribed: true, CreditsLeft: 20}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := store.Get("a@b.c")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Username != "new" || !got.IsSubscribed || got.CreditsLeft != 20 {
		t.Errorf("user not replaced: %+v", got)
	}
}

func TestUserStoreValidation(t *testing.T) {
	store := NewUserStore()

	var verr *ValidationError
	if _, err := store.Register(models.User{Username: "x"}); !errors.As(err, &verr) {
		t.Errorf("missing email: err = %v, want ValidationError", err)
	}
	if _, err := store.Register(models.User{Email: "x@y.z"}); !errors.As(err, &verr) {
		t.Errorf("missing username: err = %v, want ValidationError", err)
	}
}

func TestUserStoreGetUnknown(t *testing.T) {
	store := NewUserStore()

	var nf *NotFoundError
	if _, err := store.Get("nobody@example.com"); !errors.As(err, &nf) {
		t.Errorf("err = %v, want NotFoundError", nf)
	}
}
