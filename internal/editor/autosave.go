package editor

import (
	"sync"
	"time"
)

// DefaultIdleWindow is how long a session must be quiet before a flush fires.
const DefaultIdleWindow = 2 * time.Second

// autosave is a single-slot debounce timer. Each Touch cancels any pending
// fire and schedules a new one, so only the trailing edge of an edit burst
// triggers the callback.
type autosave struct {
	mu    sync.Mutex
	idle  time.Duration
	timer *time.Timer
	fire  func()
}

func newAutosave(idle time.Duration, fire func()) *autosave {
	if idle <= 0 {
		idle = DefaultIdleWindow
	}
	return &autosave{idle: idle, fire: fire}
}

// Touch resets the idle countdown.
func (a *autosave) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.idle, a.fire)
}

// Stop cancels any pending fire without invoking it.
func (a *autosave) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
