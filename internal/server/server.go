// Package server exposes the mock domain service over JSON HTTP. Handlers
// are thin: decode, call the service, encode. Missing entities map to 404
// whether the service reported them as a nil result (read lookups) or as
// ErrNotFound (writes).
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"agent-dashboard/internal/auth"
	"agent-dashboard/internal/constants"
	"agent-dashboard/internal/domain"
	"agent-dashboard/internal/localstore"
	"agent-dashboard/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	svc    *service.Service
	auth   *auth.Manager
	slots  *localstore.Store
	logger zerolog.Logger
}

func New(svc *service.Service, authMgr *auth.Manager, slots *localstore.Store, logger zerolog.Logger) *Server {
	return &Server{svc: svc, auth: authMgr, slots: slots, logger: logger}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/wallet", s.handleWallet)
	mux.HandleFunc("GET /api/v1/ledger", s.handleLedger)
	mux.HandleFunc("GET /api/v1/players", s.handlePlayers)
	mux.HandleFunc("GET /api/v1/players/{id}", s.handlePlayer)
	mux.HandleFunc("GET /api/v1/invites", s.handleInvites)
	mux.HandleFunc("POST /api/v1/invites", s.handleCreateInvite)
	mux.HandleFunc("POST /api/v1/invites/{id}/resend", s.handleResendInvite)
	mux.HandleFunc("GET /api/v1/payouts", s.handlePayouts)
	mux.HandleFunc("GET /api/v1/statements", s.handleStatements)
	mux.HandleFunc("GET /api/v1/statements/{id}", s.handleStatement)
	mux.HandleFunc("GET /api/v1/goals", s.handleGoals)
	mux.HandleFunc("GET /api/v1/wars", s.handleWars)
	mux.HandleFunc("POST /api/v1/wars/{id}/register", s.handleRegisterWar)
	mux.HandleFunc("GET /api/v1/alerts", s.handleAlerts)
	mux.HandleFunc("GET /api/v1/deposits", s.handleDeposits)
	mux.HandleFunc("GET /api/v1/dashboard", s.handleDashboard)

	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/v1/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/v1/auth/session", s.handleSession)

	mux.HandleFunc("GET /api/v1/prefs", s.handleGetPrefs)
	mux.HandleFunc("PUT /api/v1/prefs", s.handlePutPrefs)

	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.svc.GetWalletSummary(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, wallet)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.GetLedger(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.svc.GetPlayers(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, players)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.svc.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if player == nil {
		s.writeError(w, http.StatusNotFound, "player not found")
		return
	}
	s.writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := s.svc.GetInvites(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, invites)
}

func (s *Server) handleCreateInvite(w http.ResponseWriter, r *http.Request) {
	var input service.CreateInviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	invite, err := s.svc.CreateInvite(r.Context(), input)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, invite)
}

func (s *Server) handleResendInvite(w http.ResponseWriter, r *http.Request) {
	invite, err := s.svc.ResendInvite(r.Context(), r.PathValue("id"))
	if errors.Is(err, service.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "invite not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, invite)
}

func (s *Server) handlePayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := s.svc.GetPayouts(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, payouts)
}

func (s *Server) handleStatements(w http.ResponseWriter, r *http.Request) {
	statements, err := s.svc.GetStatements(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, statements)
}

func (s *Server) handleStatement(w http.ResponseWriter, r *http.Request) {
	statement, err := s.svc.GetStatement(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if statement == nil {
		s.writeError(w, http.StatusNotFound, "statement not found")
		return
	}
	s.writeJSON(w, http.StatusOK, statement)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.svc.GetGoals(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleWars(w http.ResponseWriter, r *http.Request) {
	wars, err := s.svc.GetWars(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, wars)
}

func (s *Server) handleRegisterWar(w http.ResponseWriter, r *http.Request) {
	war, err := s.svc.RegisterWar(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if war == nil {
		s.writeError(w, http.StatusNotFound, "war not found")
		return
	}
	s.writeJSON(w, http.StatusOK, war)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.svc.GetAlerts(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := s.svc.GetDepositAttempts(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, deposits)
}

type loginRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := s.auth.Login(r.Context(), req.Email)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context()); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.auth.Session(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	prefs := domain.DefaultPreferences()
	if _, err := s.slots.Get(r.Context(), constants.PrefsSlotKey, &prefs); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handlePutPrefs(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if prefs.Theme != domain.ThemeLight && prefs.Theme != domain.ThemeDark {
		prefs.Theme = domain.ThemeDark
	}
	if err := s.slots.Put(r.Context(), constants.PrefsSlotKey, prefs); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, prefs)
}
