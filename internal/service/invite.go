package service

import (
	"context"
	"fmt"
	"time"

	"agent-dashboard/internal/constants"
	"agent-dashboard/internal/domain"
)

type CreateInviteInput struct {
	Channel domain.InviteChannel `json:"channel"`
	Label   string               `json:"label,omitempty"`
	// ExpiryDays must be a positive integer; anything else falls back to
	// the default of 7 days.
	ExpiryDays int `json:"expiryDays,omitempty"`
}

func (s *Service) GetInvites(ctx context.Context) ([]domain.Invite, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	invites := s.invites.List()
	for i := range invites {
		invites[i] = deriveInviteStatus(invites[i], now)
	}
	return invites, nil
}

func (s *Service) CreateInvite(ctx context.Context, input CreateInviteInput) (domain.Invite, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return domain.Invite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expiryDays := input.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = constants.DefaultInviteExpiryDays
	}

	now := s.now()
	invite := domain.Invite{
		ID:        s.newID("inv_", 4),
		Label:     input.Label,
		Channel:   input.Channel,
		Status:    domain.InvitePending,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(expiryDays) * 24 * time.Hour),
		Link:      s.newInviteLink(),
	}
	s.invites.Prepend(invite)

	s.logger.Info().
		Str("invite_id", invite.ID).
		Str("channel", string(invite.Channel)).
		Int("expiry_days", expiryDays).
		Msg("invite created")

	return invite, nil
}

// ResendInvite resets an existing invite to Pending with a fresh link. The
// invite keeps its position in the listing.
func (s *Service) ResendInvite(ctx context.Context, id string) (domain.Invite, error) {
	if err := s.simulateLatency(ctx, s.latency); err != nil {
		return domain.Invite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	invite, ok := s.invites.Get(id)
	if !ok {
		s.logger.Warn().Str("invite_id", id).Msg("resend requested for unknown invite")
		return domain.Invite{}, fmt.Errorf("invite %s: %w", id, ErrNotFound)
	}

	invite.Status = domain.InvitePending
	invite.Link = s.newInviteLink()
	s.invites.Replace(invite)

	s.logger.Info().Str("invite_id", id).Msg("invite resent")
	return invite, nil
}

func (s *Service) newInviteLink() string {
	return s.linkBase + "?token=" + s.newID("", constants.InviteTokenLength)
}

// deriveInviteStatus applies the lazy Pending -> Expired transition at read
// time. The stored row is left untouched; expiry is a view, not a write.
func deriveInviteStatus(invite domain.Invite, now time.Time) domain.Invite {
	if invite.Status == domain.InvitePending && now.After(invite.ExpiresAt) {
		invite.Status = domain.InviteExpired
	}
	return invite
}
