package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"agent-dashboard/internal/auth"
	"agent-dashboard/internal/config"
	"agent-dashboard/internal/domain"
	"agent-dashboard/internal/localstore"
	"agent-dashboard/internal/service"

	"github.com/rs/zerolog"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "slots.db"),
		InviteLinkBase: "https://clazino.app/invite",
	}
	slots, err := localstore.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { slots.Close() })

	svc := service.New(cfg, zerolog.Nop())
	mgr := auth.NewManager(slots, zerolog.Nop())
	return New(svc, mgr, slots, zerolog.Nop()).Routes()
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func TestGetWallet(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/wallet", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	wallet := decode[domain.WalletSummary](t, rec)
	if !wallet.Total.Equal(wallet.Available.Add(wallet.Locked)) {
		t.Fatalf("wallet invariant broken in response: %+v", wallet)
	}
}

func TestGetPlayerNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/players/nonexistent-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRegisterWarEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/wars/war_001/register", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	war := decode[domain.War](t, rec)
	if !war.Registered {
		t.Fatal("expected registered war")
	}

	// idempotent
	rec = do(t, mux, http.MethodPost, "/api/v1/wars/war_001/register", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", rec.Code)
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/wars/war_nope/register", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown war, got %d", rec.Code)
	}
}

func TestCreateAndResendInvite(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/invites", `{"channel":"Email","expiryDays":3,"label":"drop"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	invite := decode[domain.Invite](t, rec)
	if invite.Status != domain.InvitePending || invite.Channel != domain.ChannelEmail {
		t.Fatalf("unexpected invite: %+v", invite)
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/invites/"+invite.ID+"/resend", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resent := decode[domain.Invite](t, rec)
	if resent.Link == invite.Link {
		t.Fatal("expected a fresh link from resend")
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/invites/inv_nope/resend", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown invite, got %d", rec.Code)
	}
}

func TestCreateInviteRejectsBadJSON(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/invites", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDashboardSnapshot(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	snap := decode[dashboardSnapshot](t, rec)
	if len(snap.Alerts) == 0 || len(snap.Goals) == 0 || len(snap.Wars) == 0 {
		t.Fatalf("expected populated snapshot, got %+v", snap)
	}
	if !snap.Wallet.Total.Equal(snap.Wallet.Available.Add(snap.Wallet.Locked)) {
		t.Fatalf("wallet invariant broken: %+v", snap.Wallet)
	}
}

func TestAuthFlow(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/auth/login", `{"email":"ana.reyes@clazino.app"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	session := decode[domain.Session](t, rec)
	if !session.SignedIn() {
		t.Fatalf("expected signed-in session, got %+v", session)
	}

	rec = do(t, mux, http.MethodGet, "/api/v1/auth/session", "")
	loaded := decode[domain.Session](t, rec)
	if loaded.Token != session.Token {
		t.Fatalf("session not persisted: %q vs %q", loaded.Token, session.Token)
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/auth/logout", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = do(t, mux, http.MethodGet, "/api/v1/auth/session", "")
	cleared := decode[domain.Session](t, rec)
	if cleared.SignedIn() {
		t.Fatalf("expected signed-out session, got %+v", cleared)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/prefs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	prefs := decode[domain.Preferences](t, rec)
	if prefs.Theme != domain.ThemeDark {
		t.Fatalf("expected dark default, got %q", prefs.Theme)
	}

	rec = do(t, mux, http.MethodPut, "/api/v1/prefs", `{"theme":"light","sidebarCollapsed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = do(t, mux, http.MethodGet, "/api/v1/prefs", "")
	saved := decode[domain.Preferences](t, rec)
	if saved.Theme != domain.ThemeLight || !saved.SidebarCollapsed {
		t.Fatalf("prefs not persisted: %+v", saved)
	}
}
