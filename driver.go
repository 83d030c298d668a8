//go:build windows

package winmm

import (
	"sync"

	"golang.org/x/sys/windows"
)

// mmDriver is the waveform-audio call surface used by the package. Production
// code goes through sysDriver; tests substitute their own implementation.
type mmDriver interface {
	GetNumDevs() uint32
	GetDevCaps(deviceID uint32, caps *waveOutCaps) MMRESULT
	Open(hwo *uintptr, deviceID uint32, format *waveFormatEx, callback, instance uintptr) MMRESULT
	Close(hwo uintptr) MMRESULT
	PrepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT
	UnprepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT
	Write(hwo uintptr, hdr *waveHdr) MMRESULT
	Pause(hwo uintptr) MMRESULT
	Restart(hwo uintptr) MMRESULT
	Reset(hwo uintptr) MMRESULT
	SetVolume(hwo uintptr, volume uint32) MMRESULT
	GetVolume(hwo uintptr, volume *uint32) MMRESULT
}

var driver mmDriver = sysDriver{}

// callbacks maps dwInstance tokens to completion events. Go pointers must not
// be passed through native code, so opened devices register an integer token
// here and the waveform callback looks the event up again.
var callbacks = struct {
	sync.Mutex
	m    map[uintptr]*event
	next uintptr
}{m: make(map[uintptr]*event)}

func registerCallback(ev *event) uintptr {
	callbacks.Lock()
	defer callbacks.Unlock()

	callbacks.next++
	callbacks.m[callbacks.next] = ev

	return callbacks.next
}

func unregisterCallback(token uintptr) {
	callbacks.Lock()
	defer callbacks.Unlock()

	delete(callbacks.m, token)
}

// waveOutProc handles waveform-audio output messages. It runs on a driver
// thread, so it only signals the completion event and returns.
func waveOutProc(hwo, msg, instance, param1, param2 uintptr) uintptr {
	if msg != WOM_DONE {
		return 0
	}

	callbacks.Lock()
	ev := callbacks.m[instance]
	callbacks.Unlock()

	if ev != nil {
		ev.set()
	}

	return 0
}

// waveOutProcPtr returns the native-callable address of waveOutProc. The
// callback is created once; windows.NewCallback allocations are never released.
var waveOutProcPtr = sync.OnceValue(func() uintptr {
	return windows.NewCallback(waveOutProc)
})
