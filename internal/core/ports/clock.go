package ports

import "time"

// Clock is the server clock used for order timestamps. Implementations return
// times in the configured timezone, truncated to whole seconds.
type Clock interface {
	Now() time.Time
}
