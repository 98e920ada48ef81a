package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00
	BanColor     = 0xFF0000
	CleanColor   = 0xFF51FF
	LevelUpColor = 0xFF69B4

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 25
)

// Moderation Constants
const (
	// Default ceiling for spam-filter warnings before the auto-ban fires.
	DefaultMaxWarnings = 3

	// Bulk purge window for /clean and the auto-clean scheduler.
	PurgeMessageLimit = 100

	// Timeout duration bounds in minutes (28 days is the platform maximum).
	MinTimeoutMinutes = 1
	MaxTimeoutMinutes = 40320

	// Longest per-guild command prefix accepted by /prefix.
	MaxPrefixLength = 10

	// Reply sent for inbound DMs when [bot] dm_ack_message is unset.
	DefaultDMAckMessage = "Got it! Your message has been delivered to my master."
)

// Scheduling Constants
const (
	// One auto-clean countdown unit. The scheduler decrements each
	// remaining_time by exactly one per tick.
	AutoCleanTickInterval = 60 * time.Second

	// Interval between XP flushes into the database.
	XPFlushInterval = 10 * time.Second

	// Bounded concurrency for per-entry flush commits.
	XPFlushMaxConcurrent = 5
)

// Leveling Constants
const (
	// Randomized credit range for one qualifying message, inclusive.
	XPMinPerMessage = 15
	XPMaxPerMessage = 25
)

// Database and Performance Constants
const (
	DefaultQueryTimeout = 30 * time.Second
	StatsQueryTimeout   = 10 * time.Second
	GatewayCallTimeout  = 10 * time.Second

	// Bot-ban lookups run on the message hot path; keep them cached.
	BotBanCacheSize = 10000
)
