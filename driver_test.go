//go:build windows

package winmm

import (
	"sync"
	"testing"
	"time"

	"golang.org/x/sys/windows"
)

// fakeDriver implements mmDriver in memory. Write completions are delivered
// asynchronously through waveOutProc the way a real driver thread would, with
// an optional delay, so the submission handshake is exercised for real.
type fakeDriver struct {
	mu   sync.Mutex
	cond *sync.Cond
	wg   sync.WaitGroup

	devs     uint32
	caps     waveOutCaps
	calls    []string
	instance uintptr

	queue      []*fakeWrite
	pending    int
	maxPending int
	writeLens  []uint32
	writeDelay func() time.Duration
	paused     bool

	prepareCount  int
	failPrepareAt int
	failOpen      MMRESULT
	failWrite     MMRESULT
	failReset     MMRESULT

	volume      uint32
	volumeCalls int
}

// fakeWrite tracks one submitted block until its completion is delivered,
// either by the playback goroutine or by Reset draining the queue.
type fakeWrite struct {
	hwo       uintptr
	instance  uintptr
	done      bool
	cancelled chan struct{}
}

func newFakeDriver() *fakeDriver {
	d := &fakeDriver{devs: 1}
	d.cond = sync.NewCond(&d.mu)

	return d
}

// install makes d the active driver for the duration of the test. Tests that
// install a driver must not run in parallel.
func (d *fakeDriver) install(t *testing.T) {
	t.Helper()

	orig := driver
	driver = d

	t.Cleanup(func() {
		d.wg.Wait()
		driver = orig
	})
}

func (d *fakeDriver) record(call string) {
	d.mu.Lock()
	d.calls = append(d.calls, call)
	d.mu.Unlock()
}

func (d *fakeDriver) callCount(call string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, c := range d.calls {
		if c == call {
			n++
		}
	}

	return n
}

func (d *fakeDriver) GetNumDevs() uint32 {
	return d.devs
}

func (d *fakeDriver) GetDevCaps(deviceID uint32, caps *waveOutCaps) MMRESULT {
	if deviceID != WAVE_MAPPER && deviceID >= d.devs {
		return MMSYSERR_BADDEVICEID
	}

	*caps = d.caps

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) Open(hwo *uintptr, deviceID uint32, format *waveFormatEx, callback, instance uintptr) MMRESULT {
	d.record("Open")

	if d.failOpen != MMSYSERR_NOERROR {
		return d.failOpen
	}

	if callback == 0 {
		return MMSYSERR_INVALPARAM
	}

	d.mu.Lock()
	d.instance = instance
	d.mu.Unlock()

	*hwo = 0xBEEF

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) Close(hwo uintptr) MMRESULT {
	d.record("Close")

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) PrepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT {
	d.record("PrepareHeader")

	d.mu.Lock()
	d.prepareCount++
	fail := d.failPrepareAt != 0 && d.prepareCount == d.failPrepareAt
	d.mu.Unlock()

	if fail {
		return MMSYSERR_NOMEM
	}

	hdr.Flags |= WHDR_PREPARED

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) UnprepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT {
	d.record("UnprepareHeader")

	hdr.Flags &^= WHDR_PREPARED

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) Write(hwo uintptr, hdr *waveHdr) MMRESULT {
	d.record("Write")

	if d.failWrite != MMSYSERR_NOERROR {
		return d.failWrite
	}

	d.mu.Lock()
	d.pending++
	if d.pending > d.maxPending {
		d.maxPending = d.pending
	}

	d.writeLens = append(d.writeLens, hdr.BufferLength)

	var delay time.Duration
	if d.writeDelay != nil {
		delay = d.writeDelay()
	}

	w := &fakeWrite{hwo: hwo, instance: d.instance, cancelled: make(chan struct{})}
	d.queue = append(d.queue, w)
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		select {
		case <-time.After(delay):
		case <-w.cancelled:
		}

		d.mu.Lock()
		for d.paused && !w.done {
			d.cond.Wait()
		}

		if w.done {
			d.mu.Unlock()
			return
		}

		w.done = true
		d.pending--
		d.mu.Unlock()

		waveOutProc(w.hwo, WOM_DONE, w.instance, 0, 0)
	}()

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) Pause(hwo uintptr) MMRESULT {
	d.record("Pause")

	d.mu.Lock()
	d.paused = true
	d.mu.Unlock()

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) Restart(hwo uintptr) MMRESULT {
	d.record("Restart")

	d.mu.Lock()
	d.paused = false
	d.mu.Unlock()

	d.cond.Broadcast()

	return MMSYSERR_NOERROR
}

// Reset drains the queue and delivers a completion for every block still
// pending, the way waveOutReset returns outstanding buffers to the caller.
func (d *fakeDriver) Reset(hwo uintptr) MMRESULT {
	d.record("Reset")

	if d.failReset != MMSYSERR_NOERROR {
		return d.failReset
	}

	d.mu.Lock()
	var drained []*fakeWrite
	for _, w := range d.queue {
		if !w.done {
			w.done = true
			d.pending--
			close(w.cancelled)
			drained = append(drained, w)
		}
	}
	d.mu.Unlock()

	d.cond.Broadcast()

	for _, w := range drained {
		waveOutProc(w.hwo, WOM_DONE, w.instance, 0, 0)
	}

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) SetVolume(hwo uintptr, volume uint32) MMRESULT {
	d.record("SetVolume")

	d.mu.Lock()
	d.volume = volume
	d.volumeCalls++
	d.mu.Unlock()

	return MMSYSERR_NOERROR
}

func (d *fakeDriver) GetVolume(hwo uintptr, volume *uint32) MMRESULT {
	d.record("GetVolume")

	d.mu.Lock()
	*volume = d.volume
	d.mu.Unlock()

	return MMSYSERR_NOERROR
}

func registeredCallbacks() int {
	callbacks.Lock()
	defer callbacks.Unlock()

	return len(callbacks.m)
}

func utf16Name(name string) (out [32]uint16) {
	encoded, _ := windows.UTF16FromString(name)
	copy(out[:], encoded)

	return out
}
