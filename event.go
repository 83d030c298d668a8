//go:build windows

package winmm

import "sync"

// event is a manual-reset boolean flag. set leaves it signaled until clear is
// called, so a completion that arrives before the writer starts waiting is not
// lost.
type event struct {
	mu    sync.Mutex
	cond  *sync.Cond
	fired bool
}

func newEvent() *event {
	ev := &event{}
	ev.cond = sync.NewCond(&ev.mu)

	return ev
}

func (ev *event) set() {
	ev.mu.Lock()
	ev.fired = true
	ev.mu.Unlock()

	ev.cond.Broadcast()
}

func (ev *event) clear() {
	ev.mu.Lock()
	ev.fired = false
	ev.mu.Unlock()
}

// wait blocks until the event is signaled. It does not consume the signal.
func (ev *event) wait() {
	ev.mu.Lock()
	defer ev.mu.Unlock()

	for !ev.fired {
		ev.cond.Wait()
	}
}
