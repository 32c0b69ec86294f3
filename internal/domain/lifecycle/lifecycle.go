// Package lifecycle holds process lifecycle constants shared by the delivery
// and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as database
// pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
