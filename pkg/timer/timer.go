package timer

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Track returns a function that, when executed, logs the duration.
// Usage: defer timer.Track("FunctionName")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		log.Debug().Str("op", name).Dur("took", time.Since(start)).Msg("timing")
	}
}
