package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
	"github.com/robfig/cron/v3"
)

// DefaultPruneSchedule runs pruning once an hour.
const DefaultPruneSchedule = "@hourly"

// Pruner deletes stored records older than a retention window.
type Pruner struct {
	Records   skim.RecordService
	Retention time.Duration
	Logger    *slog.Logger // Optional

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	cron *cron.Cron
}

// Prune removes records created before now minus Retention and returns
// the number removed. A non-positive Retention removes nothing.
func (p *Pruner) Prune(ctx context.Context) (int, error) {
	if p.Retention <= 0 {
		return 0, nil
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	n, err := p.Records.DeleteRecordsBefore(ctx, now().Add(-p.Retention))
	if err != nil {
		return 0, fmt.Errorf("prune records: %w", err)
	}
	return n, nil
}

// Start schedules Prune on spec, a cron expression or descriptor such as
// "@hourly". Start returns once the schedule is running; Stop ends it.
func (p *Pruner) Start(ctx context.Context, spec string) error {
	if p.cron != nil {
		return skim.Errorf(skim.ECONFLICT, "pruner already started")
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := p.Prune(ctx)
		if p.Logger == nil {
			return
		}
		if err != nil {
			p.Logger.Error("prune failed", "err", err)
			return
		}
		p.Logger.Info("pruned records", "count", n, "retention", p.Retention.String())
	})
	if err != nil {
		return skim.Errorf(skim.EINVALID, "invalid prune schedule %q: %v", spec, err)
	}
	c.Start()
	p.cron = c
	return nil
}

// Stop halts the schedule and waits for a running prune to finish.
func (p *Pruner) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
	p.cron = nil
}
