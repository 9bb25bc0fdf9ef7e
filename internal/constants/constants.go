package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "duogoals"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/duogoals"
	DefaultDataFile    = "data.json"
	DefaultConfigFile  = "config.yaml"
	EnvPrefix          = "DUOGOALS_"
	EnvDBConnection    = "DUOGOALS_DB_CONNECTION"
	Version            = "v0.1.0"

	// StorageKey is the key of the single slot holding the serialized app data.
	StorageKey = "healthy-lifestyle-app-data"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SlotTimeout bounds a single read or write against a network slot.
	SlotTimeout = 5 * time.Second

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "duogoals-"
	BackupFileSuffix = ".json"

	// Storage backends
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Session States
const (
	StateSelectProfile SessionState = iota
	StateDashboard
	StateAddGoal
	StateConfirmDelete
)
