package config

import "time"

// Worker intervals
const (
	// IndexRebuildInterval defines how often the spatial indexes are rebuilt
	// from the in-memory feature set
	IndexRebuildInterval = 30 * time.Second

	// RedisBackupInterval defines how often to save changes to Redis
	RedisBackupInterval = 10 * time.Second

	// PostgresBackupInterval defines how often to save changes to PostgreSQL
	PostgresBackupInterval = 60 * time.Second
)
