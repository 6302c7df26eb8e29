// Package watch reloads the dataset when its source file changes.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single callback. Editors
// commonly emit several filesystem events per save, and only the last
// one should cause a reload.
type Debouncer struct {
	delay    time.Duration
	callback func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer. The callback fires once per burst,
// delay after the last trigger.
func NewDebouncer(delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{delay: delay, callback: callback}
}

// Trigger restarts the delay timer.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.callback)
}

// Stop cancels the pending callback, if any. The debouncer stays usable
// after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
