// Package lifecycle holds shared start/stop settings for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook (DB ping, HTTP shutdown, client disconnect).
const DefaultTimeout = 10 * time.Second
