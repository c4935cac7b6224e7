// Package lifecycle holds shared lifecycle constants for deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 30 * time.Second
