// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components
// (HTTP server drain, database pool close).
const DefaultTimeout = 10 * time.Second
