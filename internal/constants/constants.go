package constants

import "time"

const (
	DefaultInviteExpiryDays = 7
	InviteTokenLength       = 16
	EntityIDLength          = 8
)

const (
	RequestTimeout = 30 * time.Second
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	AuthSlotKey  = "clazino_agent_auth_v1"
	PrefsSlotKey = "clazino_prefs_v1"
)
