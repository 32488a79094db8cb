package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Keys is typed into the keyboard before the first step.
	Keys []KeyEvent
}

// RunHeadless drives newApp at a fixed rate without opening a window. It
// returns nil after cfg.Ticks steps or when a step returns ErrQuit.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) func() error, hcfg HeadlessConfig) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	h := newHost(cfg)
	for _, ev := range hcfg.Keys {
		select {
		case h.kbd.ch <- ev:
		default:
		}
	}
	step := newApp(h)

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return nil
			}
		}
	}
}
