package constants

import "time"

// Timeout constants used throughout the application
const (
	// FollowPollInterval is the fallback polling interval while waiting
	// for a followed file to grow when no watcher event arrives.
	FollowPollInterval = 100 * time.Millisecond

	// InterruptTimeout is the Ctrl+C double-press window for nltail.
	InterruptTimeout = 3 * time.Second

	// ShutdownGracePeriod is how long a follower may take to drain
	// after cancellation before the process force-exits.
	ShutdownGracePeriod = 2 * time.Second
)
