// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. Bill lifecycle and reminder logic depend on
// "now", so the clock is injected rather than read from the time package directly.
type Clock interface {
	Now() time.Time
}
