package auth

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"agent-dashboard/internal/config"
	"agent-dashboard/internal/localstore"

	"github.com/rs/zerolog"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "slots.db")}
	slots, err := localstore.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { slots.Close() })
	return NewManager(slots, zerolog.Nop())
}

func TestLoginPersistsSession(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	session, err := mgr.Login(ctx, "ana.reyes@clazino.app")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !session.SignedIn() {
		t.Fatal("expected signed-in session")
	}
	if session.User.Name != "ana reyes" {
		t.Fatalf("expected display name from email, got %q", session.User.Name)
	}
	if !strings.HasPrefix(session.Token, "mock_token_") {
		t.Fatalf("unexpected token shape: %q", session.Token)
	}

	loaded, err := mgr.Session(ctx)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.Token != session.Token {
		t.Fatalf("persisted token mismatch: %q vs %q", loaded.Token, session.Token)
	}
	if loaded.User == nil || loaded.User.AgentID != session.User.AgentID {
		t.Fatalf("persisted user mismatch: %+v", loaded.User)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.Login(ctx, "agent@clazino.app"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	session, err := mgr.Session(ctx)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.SignedIn() {
		t.Fatalf("expected signed-out session, got %+v", session)
	}
}

func TestSessionWhenNeverSignedIn(t *testing.T) {
	mgr := newTestManager(t)

	session, err := mgr.Session(context.Background())
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.SignedIn() {
		t.Fatal("expected empty session")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"ana.reyes@clazino.app", "ana reyes"},
		{"bob@x.io", "bob"},
		{"@nothing.io", "Agent"},
		{"", "Agent"},
	}
	for _, tt := range tests {
		if got := displayName(tt.email); got != tt.want {
			t.Fatalf("displayName(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
