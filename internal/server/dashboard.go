package server

import (
	"net/http"

	"agent-dashboard/internal/domain"

	"golang.org/x/sync/errgroup"
)

type dashboardSnapshot struct {
	Wallet domain.WalletSummary `json:"wallet"`
	Alerts []domain.Alert       `json:"alerts"`
	Goals  []domain.Goal        `json:"goals"`
	Wars   []domain.War         `json:"wars"`
}

// handleDashboard aggregates the home-page loads in one response. The four
// fetches run concurrently; each one still pays its own simulated latency,
// so the response costs roughly one roundtrip instead of four.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var snap dashboardSnapshot

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		wallet, err := s.svc.GetWalletSummary(ctx)
		if err != nil {
			return err
		}
		snap.Wallet = wallet
		return nil
	})
	g.Go(func() error {
		alerts, err := s.svc.GetAlerts(ctx)
		if err != nil {
			return err
		}
		snap.Alerts = alerts
		return nil
	})
	g.Go(func() error {
		goals, err := s.svc.GetGoals(ctx)
		if err != nil {
			return err
		}
		snap.Goals = goals
		return nil
	})
	g.Go(func() error {
		wars, err := s.svc.GetWars(ctx)
		if err != nil {
			return err
		}
		snap.Wars = wars
		return nil
	})

	if err := g.Wait(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}
