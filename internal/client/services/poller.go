package services

import (
	"context"
	"time"

	"github.com/dkrasnov/inkpress/internal/unlock"
)

// Poller re-checks a package's unlock policy on a fixed interval. The caller
// owns the loop lifetime through the context.
type Poller struct {
	readService ReadService
	interval    time.Duration
}

func NewPoller(readService ReadService, interval time.Duration) *Poller {
	return &Poller{readService: readService, interval: interval}
}

// Wait blocks until the package unlocks and returns the final check. Each
// tick re-evaluates the policy against the ledger, so payments and timed
// schedules are picked up as they land. Cancelling the context returns
// ctx.Err().
func (p *Poller) Wait(ctx context.Context, txID string) (*ReadResult, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		result, err := p.readService.Status(ctx, txID)
		if err != nil {
			return nil, err
		}
		if result.Status.State == unlock.Unlocked {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
