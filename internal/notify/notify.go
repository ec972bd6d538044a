// Package notify holds reporting sinks for bootstrap notices that do not
// need a terminal.
package notify

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

// Reporter receives notices. It matches bootstrap.Reporter.
type Reporter interface {
	Report(ctx context.Context, notice models.Notice)
}

// LogReporter writes notices to the logger: advisories at warn, fatal
// notices at error.
type LogReporter struct {
	logger *logger.Logger
}

func NewLogReporter(log *logger.Logger) *LogReporter {
	return &LogReporter{logger: log}
}

func (r *LogReporter) Report(_ context.Context, notice models.Notice) {
	event := r.logger.Warn()
	if notice.Severity == models.SeverityFatal {
		event = r.logger.Error()
	}
	event.Str("code", notice.Code).Str("severity", notice.Severity.String()).Msg(notice.Message)
}

// Collector keeps every reported notice in order.
type Collector struct {
	mu      sync.Mutex
	notices []models.Notice
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(_ context.Context, notice models.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, notice)
}

// Notices returns a copy of the collected notices.
func (c *Collector) Notices() []models.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.notices)
}

// Messages returns the collected notice texts.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.notices))
	for _, n := range c.notices {
		out = append(out, n.Message)
	}
	return out
}

// Multi fans a notice out to every reporter in order.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, notice models.Notice) {
	for _, r := range m {
		r.Report(ctx, notice)
	}
}
