package services

import (
	"strings"
	"testing"
)

func TestUserCollectionPath(t *testing.T) {
	path := userCollectionPath("user-123")

	if path != "artifacts/default-app-id/users/user-123/progress-logs" {
		t.Errorf("unexpected collection path: %q", path)
	}
}

func TestUserCollectionPathIsDeterministic(t *testing.T) {
	first := userCollectionPath("u1")
	second := userCollectionPath("u1")

	if first != second {
		t.Errorf("path derivation is not deterministic: %q vs %q", first, second)
	}
}

func TestUserCollectionPathIsDistinctPerUser(t *testing.T) {
	a := userCollectionPath("alice")
	b := userCollectionPath("bob")

	if a == b {
		t.Errorf("distinct users share a collection path: %q", a)
	}
	if !strings.Contains(a, "/users/alice/") {
		t.Errorf("expected path to contain uid alice, got %q", a)
	}
	if !strings.Contains(b, "/users/bob/") {
		t.Errorf("expected path to contain uid bob, got %q", b)
	}
}
