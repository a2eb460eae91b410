package service

import (
	"context"
	"fmt"

	"agent-dashboard/internal/domain"
)

func (s *Service) GetWars(ctx context.Context) ([]domain.War, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wars.List(), nil
}

// RegisterWar enters the clan into a war. Unknown ids resolve to nil without
// error; an already-registered war is returned unchanged. Otherwise the war,
// the wallet and the ledger are updated under one critical section: the entry
// fee moves from available to locked (total unchanged) and a War Entry Lock
// entry lands at the head of the ledger.
//
// There is deliberately no balance-sufficiency check: available may go
// negative, matching the permissive behavior the dashboard was built against.
func (s *Service) RegisterWar(ctx context.Context, id string) (*domain.War, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	war, ok := s.wars.Get(id)
	if !ok {
		s.logger.Debug().Str("war_id", id).Msg("war not found")
		return nil, nil
	}
	if war.Registered {
		s.logger.Debug().Str("war_id", id).Msg("war already registered")
		return &war, nil
	}

	war.Registered = true
	s.wars.Replace(war)

	s.wallet.Available = s.wallet.Available.Sub(war.EntryFee)
	s.wallet.Locked = s.wallet.Locked.Add(war.EntryFee)

	balanceAfter := s.wallet.Available
	s.ledger.Prepend(domain.LedgerEntry{
		ID:           s.newID("led_", 6),
		At:           s.now(),
		Type:         domain.LedgerWarEntryLock,
		Description:  fmt.Sprintf("War Entry Lock – %s", war.Name),
		Amount:       war.EntryFee.Neg(),
		BalanceAfter: &balanceAfter,
		RefID:        war.ID,
	})

	s.logger.Info().
		Str("war_id", war.ID).
		Str("entry_fee", war.EntryFee.String()).
		Str("available", s.wallet.Available.String()).
		Msg("war registration locked entry fee")

	return &war, nil
}
