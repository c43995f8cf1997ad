package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitweave/pkg/observability"
)

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created,
// rounded to the nearest millisecond.
// Example output: "Generated 80×24 weave (2ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports generation stage timings through the logger. Registered
// only in verbose mode.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnStageStart(stage observability.Stage) {}

func (h *logHooks) OnStageComplete(stage observability.Stage, d time.Duration) {
	h.logger.Debug("stage complete", "stage", string(stage), "took", d.Round(time.Microsecond))
}
