package bootstrap

import (
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/rs/zerolog"
)

// advance moves out to next and returns an info event the caller completes.
func (o *Orchestrator) advance(log *logger.Logger, out *Outcome, next State) *zerolog.Event {
	out.State = next
	return log.Info().Str("state", next.String())
}
