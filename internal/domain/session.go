package domain

// AuthUser is the signed-in agent as the dashboard sees it. Auth is mocked:
// the user is synthesized at login, not verified against anything.
type AuthUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AgentID  string `json:"agentId"`
	ClanName string `json:"clanName"`
}

// Session is the persisted auth slot. Both fields are nil/empty when
// signed out.
type Session struct {
	User  *AuthUser `json:"user"`
	Token string    `json:"token"`
}

func (s Session) SignedIn() bool {
	return s.User != nil && s.Token != ""
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences is the persisted UI preference slot.
type Preferences struct {
	Theme            Theme `json:"theme"`
	SidebarCollapsed bool  `json:"sidebarCollapsed"`
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark}
}
