// Package service implements the agent dashboard's mock domain layer. It is
// the sole owner of the in-memory entity stores: callers get fresh copies,
// every operation waits out a simulated network delay, and writes apply
// their mutations as one unit under the service lock.
package service

import (
	"context"
	"sync"
	"time"

	"agent-dashboard/internal/config"
	"agent-dashboard/internal/domain"
	"agent-dashboard/internal/seed"
	"agent-dashboard/internal/store"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type Service struct {
	mu sync.Mutex

	latency      time.Duration
	alertLatency time.Duration
	linkBase     string
	logger       zerolog.Logger

	// injectable in tests
	now   func() time.Time
	newID func(prefix string, size int) string

	players    *store.Ordered[domain.Player]
	wallet     domain.WalletSummary
	ledger     *store.Ordered[domain.LedgerEntry]
	invites    *store.Ordered[domain.Invite]
	payouts    *store.Ordered[domain.Payout]
	statements *store.Ordered[domain.Statement]
	goals      *store.Ordered[domain.Goal]
	wars       *store.Ordered[domain.War]
	alerts     *store.Ordered[domain.Alert]
	deposits   *store.Ordered[domain.DepositAttempt]
}

func New(cfg *config.Config, logger zerolog.Logger) *Service {
	return newService(seed.New(time.Now()), cfg.MockLatency, cfg.AlertLatency, cfg.InviteLinkBase, logger)
}

func newService(snap seed.Snapshot, latency, alertLatency time.Duration, linkBase string, logger zerolog.Logger) *Service {
	return &Service{
		latency:      latency,
		alertLatency: alertLatency,
		linkBase:     linkBase,
		logger:       logger,
		now:          time.Now,
		newID:        generateID,
		players:      store.NewOrderedFrom(func(p domain.Player) string { return p.ID }, snap.Players),
		wallet:       snap.Wallet,
		ledger:       store.NewOrderedFrom(func(e domain.LedgerEntry) string { return e.ID }, snap.Ledger),
		invites:      store.NewOrderedFrom(func(i domain.Invite) string { return i.ID }, snap.Invites),
		payouts:      store.NewOrderedFrom(func(p domain.Payout) string { return p.ID }, snap.Payouts),
		statements:   store.NewOrderedFrom(func(s domain.Statement) string { return s.ID }, snap.Statements),
		goals:        store.NewOrderedFrom(func(g domain.Goal) string { return g.ID }, snap.Goals),
		wars:         store.NewOrderedFrom(func(w domain.War) string { return w.ID }, snap.Wars),
		alerts:       store.NewOrderedFrom(func(a domain.Alert) string { return a.ID }, snap.Alerts),
		deposits:     store.NewOrderedFrom(func(d domain.DepositAttempt) string { return d.ID }, snap.Deposits),
	}
}

func generateID(prefix string, size int) string {
	return prefix + gonanoid.MustGenerate(idAlphabet, size)
}

// simulateLatency emulates the network roundtrip a real backend would cost.
// It runs before the service lock is taken, so a slow caller never blocks
// others, and a cancelled context aborts before any mutation.
func (s *Service) simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) GetWalletSummary(ctx context.Context) (domain.WalletSummary, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return domain.WalletSummary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet, nil
}

func (s *Service) GetLedger(ctx context.Context) ([]domain.LedgerEntry, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.ledger.List()
	for i := range entries {
		entries[i] = cloneLedgerEntry(entries[i])
	}
	return entries, nil
}

func (s *Service) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.List(), nil
}

// GetPlayer returns nil without error when the id does not resolve; an
// unknown player is an empty result, not a fault.
func (s *Service) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players.Get(id)
	if !ok {
		s.logger.Debug().Str("player_id", id).Msg("player not found")
		return nil, nil
	}
	return &player, nil
}

func (s *Service) GetPayouts(ctx context.Context) ([]domain.Payout, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	payouts := s.payouts.List()
	for i := range payouts {
		payouts[i] = payouts[i].Clone()
	}
	return payouts, nil
}

func (s *Service) GetStatements(ctx context.Context) ([]domain.Statement, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	statements := s.statements.List()
	for i := range statements {
		statements[i] = cloneStatement(statements[i])
	}
	return statements, nil
}

func (s *Service) GetStatement(ctx context.Context, id string) (*domain.Statement, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	statement, ok := s.statements.Get(id)
	if !ok {
		s.logger.Debug().Str("statement_id", id).Msg("statement not found")
		return nil, nil
	}
	statement = cloneStatement(statement)
	return &statement, nil
}

func (s *Service) GetGoals(ctx context.Context) ([]domain.Goal, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.List(), nil
}

func (s *Service) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	if err := s.simulateLatency(ctx, s.alertLatency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts.List(), nil
}

func (s *Service) GetDepositAttempts(ctx context.Context) ([]domain.DepositAttempt, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	deposits := s.deposits.List()
	for i := range deposits {
		deposits[i] = cloneDeposit(deposits[i])
	}
	return deposits, nil
}

func cloneLedgerEntry(e domain.LedgerEntry) domain.LedgerEntry {
	if e.BalanceAfter != nil {
		after := *e.BalanceAfter
		e.BalanceAfter = &after
	}
	return e
}

func cloneStatement(st domain.Statement) domain.Statement {
	if st.PaidAt != nil {
		paidAt := *st.PaidAt
		st.PaidAt = &paidAt
	}
	return st
}

func cloneDeposit(d domain.DepositAttempt) domain.DepositAttempt {
	if d.CompletedAt != nil {
		completedAt := *d.CompletedAt
		d.CompletedAt = &completedAt
	}
	if d.Amount != nil {
		amount := *d.Amount
		d.Amount = &amount
	}
	return d
}
