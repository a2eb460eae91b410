// Package auth implements the dashboard's mocked session layer. Login does
// not verify anything; it synthesizes an agent user from the email and
// persists {user, token} so the session survives restarts.
package auth

import (
	"context"
	"strings"

	"agent-dashboard/internal/constants"
	"agent-dashboard/internal/domain"
	"agent-dashboard/internal/localstore"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Manager struct {
	slots  *localstore.Store
	logger zerolog.Logger
}

func NewManager(slots *localstore.Store, logger zerolog.Logger) *Manager {
	return &Manager{slots: slots, logger: logger}
}

func (m *Manager) Login(ctx context.Context, email string) (domain.Session, error) {
	session := domain.Session{
		User: &domain.AuthUser{
			ID:       "agent_user_01",
			Name:     displayName(email),
			AgentID:  "agent_001",
			ClanName: "Clazino Clan Alpha",
		},
		Token: "mock_token_" + uuid.NewString(),
	}

	if err := m.slots.Put(ctx, constants.AuthSlotKey, session); err != nil {
		return domain.Session{}, err
	}

	m.logger.Info().Str("agent_id", session.User.AgentID).Msg("agent signed in")
	return session, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.slots.Delete(ctx, constants.AuthSlotKey); err != nil {
		return err
	}
	m.logger.Info().Msg("agent signed out")
	return nil
}

// Session returns the persisted session, or an empty one when signed out.
func (m *Manager) Session(ctx context.Context) (domain.Session, error) {
	var session domain.Session
	found, err := m.slots.Get(ctx, constants.AuthSlotKey, &session)
	if err != nil {
		return domain.Session{}, err
	}
	if !found {
		return domain.Session{}, nil
	}
	return session, nil
}

// displayName turns the email local part into a readable name: dots become
// spaces, empty input falls back to "Agent".
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	name := strings.ReplaceAll(local, ".", " ")
	if strings.TrimSpace(name) == "" {
		return "Agent"
	}
	return name
}
