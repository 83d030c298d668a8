//go:build windows

package winmm

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modwinmm = windows.NewLazySystemDLL("winmm.dll")

	procWaveOutGetNumDevs      = modwinmm.NewProc("waveOutGetNumDevs")
	procWaveOutGetDevCapsW     = modwinmm.NewProc("waveOutGetDevCapsW")
	procWaveOutOpen            = modwinmm.NewProc("waveOutOpen")
	procWaveOutClose           = modwinmm.NewProc("waveOutClose")
	procWaveOutPrepareHeader   = modwinmm.NewProc("waveOutPrepareHeader")
	procWaveOutUnprepareHeader = modwinmm.NewProc("waveOutUnprepareHeader")
	procWaveOutWrite           = modwinmm.NewProc("waveOutWrite")
	procWaveOutPause           = modwinmm.NewProc("waveOutPause")
	procWaveOutRestart         = modwinmm.NewProc("waveOutRestart")
	procWaveOutReset           = modwinmm.NewProc("waveOutReset")
	procWaveOutSetVolume       = modwinmm.NewProc("waveOutSetVolume")
	procWaveOutGetVolume       = modwinmm.NewProc("waveOutGetVolume")
)

// sysDriver issues waveform-audio calls against winmm.dll.
type sysDriver struct{}

func (sysDriver) GetNumDevs() uint32 {
	r, _, _ := procWaveOutGetNumDevs.Call()

	return uint32(r)
}

func (sysDriver) GetDevCaps(deviceID uint32, caps *waveOutCaps) MMRESULT {
	r, _, _ := procWaveOutGetDevCapsW.Call(uintptr(deviceID), uintptr(unsafe.Pointer(caps)), unsafe.Sizeof(*caps))

	return MMRESULT(r)
}

func (sysDriver) Open(hwo *uintptr, deviceID uint32, format *waveFormatEx, callback, instance uintptr) MMRESULT {
	r, _, _ := procWaveOutOpen.Call(uintptr(unsafe.Pointer(hwo)), uintptr(deviceID),
		uintptr(unsafe.Pointer(format)), callback, instance, CALLBACK_FUNCTION)

	return MMRESULT(r)
}

func (sysDriver) Close(hwo uintptr) MMRESULT {
	r, _, _ := procWaveOutClose.Call(hwo)

	return MMRESULT(r)
}

func (sysDriver) PrepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT {
	r, _, _ := procWaveOutPrepareHeader.Call(hwo, uintptr(unsafe.Pointer(hdr)), unsafe.Sizeof(*hdr))

	return MMRESULT(r)
}

func (sysDriver) UnprepareHeader(hwo uintptr, hdr *waveHdr) MMRESULT {
	r, _, _ := procWaveOutUnprepareHeader.Call(hwo, uintptr(unsafe.Pointer(hdr)), unsafe.Sizeof(*hdr))

	return MMRESULT(r)
}

func (sysDriver) Write(hwo uintptr, hdr *waveHdr) MMRESULT {
	r, _, _ := procWaveOutWrite.Call(hwo, uintptr(unsafe.Pointer(hdr)), unsafe.Sizeof(*hdr))

	return MMRESULT(r)
}

func (sysDriver) Pause(hwo uintptr) MMRESULT {
	r, _, _ := procWaveOutPause.Call(hwo)

	return MMRESULT(r)
}

func (sysDriver) Restart(hwo uintptr) MMRESULT {
	r, _, _ := procWaveOutRestart.Call(hwo)

	return MMRESULT(r)
}

func (sysDriver) Reset(hwo uintptr) MMRESULT {
	r, _, _ := procWaveOutReset.Call(hwo)

	return MMRESULT(r)
}

func (sysDriver) SetVolume(hwo uintptr, volume uint32) MMRESULT {
	r, _, _ := procWaveOutSetVolume.Call(hwo, uintptr(volume))

	return MMRESULT(r)
}

func (sysDriver) GetVolume(hwo uintptr, volume *uint32) MMRESULT {
	r, _, _ := procWaveOutGetVolume.Call(hwo, uintptr(unsafe.Pointer(volume)))

	return MMRESULT(r)
}
