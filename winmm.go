//go:build windows

// Package winmm provides a Go interface to the waveform-audio output half of the Windows
// Multimedia API (winmm.dll). It enumerates playback devices, queries their capabilities,
// and streams PCM audio to a device through the waveOut* family of functions.
package winmm

import (
	"fmt"
)

// MMRESULT is a status code returned by the multimedia API.
// A value of MMSYSERR_NOERROR indicates success.
type MMRESULT uint32

const (
	MMSYSERR_NOERROR      MMRESULT = 0  // No error.
	MMSYSERR_ERROR        MMRESULT = 1  // Unspecified error.
	MMSYSERR_BADDEVICEID  MMRESULT = 2  // Device ID out of range.
	MMSYSERR_NOTENABLED   MMRESULT = 3  // Driver failed enable.
	MMSYSERR_ALLOCATED    MMRESULT = 4  // Device already allocated.
	MMSYSERR_INVALHANDLE  MMRESULT = 5  // Device handle is invalid.
	MMSYSERR_NODRIVER     MMRESULT = 6  // No device driver present.
	MMSYSERR_NOMEM        MMRESULT = 7  // Memory allocation error.
	MMSYSERR_NOTSUPPORTED MMRESULT = 8  // Function is not supported.
	MMSYSERR_BADERRNUM    MMRESULT = 9  // Error value out of range.
	MMSYSERR_INVALFLAG    MMRESULT = 10 // Invalid flag passed.
	MMSYSERR_INVALPARAM   MMRESULT = 11 // Invalid parameter passed.
	MMSYSERR_HANDLEBUSY   MMRESULT = 12 // Handle being used by another thread.
	MMSYSERR_INVALIDALIAS MMRESULT = 13 // Specified alias not found.
	MMSYSERR_BADDB        MMRESULT = 14 // Bad registry database.
	MMSYSERR_KEYNOTFOUND  MMRESULT = 15 // Registry key not found.
	MMSYSERR_READERROR    MMRESULT = 16 // Registry read error.
	MMSYSERR_WRITEERROR   MMRESULT = 17 // Registry write error.
	MMSYSERR_DELETEERROR  MMRESULT = 18 // Registry delete error.
	MMSYSERR_VALNOTFOUND  MMRESULT = 19 // Registry value not found.
	MMSYSERR_NODRIVERCB   MMRESULT = 20 // Driver does not call DriverCallback.
	MMSYSERR_MOREDATA     MMRESULT = 21 // More data to be returned.

	WAVERR_BADFORMAT    MMRESULT = 32 // Unsupported waveform-audio format.
	WAVERR_STILLPLAYING MMRESULT = 33 // There are still buffers in the queue.
	WAVERR_UNPREPARED   MMRESULT = 34 // The data block has not been prepared.
	WAVERR_SYNC         MMRESULT = 35 // The device is synchronous.
)

// mmResultNames maps native status codes to human-readable messages.
var mmResultNames = map[MMRESULT]string{
	MMSYSERR_ERROR:        "unspecified error",
	MMSYSERR_BADDEVICEID:  "device ID out of range",
	MMSYSERR_NOTENABLED:   "driver failed enable",
	MMSYSERR_ALLOCATED:    "device already allocated",
	MMSYSERR_INVALHANDLE:  "device handle is invalid",
	MMSYSERR_NODRIVER:     "no device driver present",
	MMSYSERR_NOMEM:        "memory allocation error",
	MMSYSERR_NOTSUPPORTED: "function is not supported",
	MMSYSERR_BADERRNUM:    "error value out of range",
	MMSYSERR_INVALFLAG:    "invalid flag passed",
	MMSYSERR_INVALPARAM:   "invalid parameter passed",
	MMSYSERR_HANDLEBUSY:   "handle being used by another thread",
	MMSYSERR_INVALIDALIAS: "specified alias not found",
	MMSYSERR_BADDB:        "bad registry database",
	MMSYSERR_KEYNOTFOUND:  "registry key not found",
	MMSYSERR_READERROR:    "registry read error",
	MMSYSERR_WRITEERROR:   "registry write error",
	MMSYSERR_DELETEERROR:  "registry delete error",
	MMSYSERR_VALNOTFOUND:  "registry value not found",
	MMSYSERR_NODRIVERCB:   "driver does not call DriverCallback",
	MMSYSERR_MOREDATA:     "more data to be returned",
	WAVERR_BADFORMAT:      "unsupported waveform-audio format",
	WAVERR_STILLPLAYING:   "there are still buffers in the queue",
	WAVERR_UNPREPARED:     "the data block has not been prepared",
	WAVERR_SYNC:           "the device is synchronous",
}

// MMError represents a non-zero status code returned by a native multimedia call.
type MMError MMRESULT

// Error implements the error interface. Codes without a known message, such as
// driver-defined sub-errors, are rendered numerically.
func (e MMError) Error() string {
	if name, ok := mmResultNames[MMRESULT(e)]; ok {
		return name
	}

	return fmt.Sprintf("multimedia error %d", uint32(e))
}

// WAVE_MAPPER selects a waveform-audio output device capable of playing the given format.
const WAVE_MAPPER = 0xFFFFFFFF

// Flags and messages for the waveOutOpen callback contract.
const (
	// CALLBACK_FUNCTION requests that completion notifications are delivered by
	// invoking a callback function on a driver-owned thread.
	CALLBACK_FUNCTION = 0x00030000

	WOM_OPEN  = 0x3BB // The device was opened.
	WOM_CLOSE = 0x3BC // The device was closed.
	WOM_DONE  = 0x3BD // The device finished playing a data block.
)

// WAVEHDR flag bits maintained by the driver.
const (
	WHDR_DONE      = 0x00000001 // The driver finished with the buffer.
	WHDR_PREPARED  = 0x00000002 // The buffer is prepared with waveOutPrepareHeader.
	WHDR_BEGINLOOP = 0x00000004 // The buffer is the first in a loop.
	WHDR_ENDLOOP   = 0x00000008 // The buffer is the last in a loop.
	WHDR_INQUEUE   = 0x00000010 // The buffer is queued on the device.
)

// StdFormat identifies one of the standard PCM sample-rate/bit-depth/channel
// combinations a device can report support for in its capability mask.
type StdFormat uint32

const (
	WAVE_FORMAT_1M08  StdFormat = 0x00000001 // 11.025 kHz, mono, 8-bit.
	WAVE_FORMAT_1S08  StdFormat = 0x00000002 // 11.025 kHz, stereo, 8-bit.
	WAVE_FORMAT_1M16  StdFormat = 0x00000004 // 11.025 kHz, mono, 16-bit.
	WAVE_FORMAT_1S16  StdFormat = 0x00000008 // 11.025 kHz, stereo, 16-bit.
	WAVE_FORMAT_2M08  StdFormat = 0x00000010 // 22.05 kHz, mono, 8-bit.
	WAVE_FORMAT_2S08  StdFormat = 0x00000020 // 22.05 kHz, stereo, 8-bit.
	WAVE_FORMAT_2M16  StdFormat = 0x00000040 // 22.05 kHz, mono, 16-bit.
	WAVE_FORMAT_2S16  StdFormat = 0x00000080 // 22.05 kHz, stereo, 16-bit.
	WAVE_FORMAT_4M08  StdFormat = 0x00000100 // 44.1 kHz, mono, 8-bit.
	WAVE_FORMAT_4S08  StdFormat = 0x00000200 // 44.1 kHz, stereo, 8-bit.
	WAVE_FORMAT_4M16  StdFormat = 0x00000400 // 44.1 kHz, mono, 16-bit.
	WAVE_FORMAT_4S16  StdFormat = 0x00000800 // 44.1 kHz, stereo, 16-bit.
	WAVE_FORMAT_48M08 StdFormat = 0x00001000 // 48 kHz, mono, 8-bit.
	WAVE_FORMAT_48S08 StdFormat = 0x00002000 // 48 kHz, stereo, 8-bit.
	WAVE_FORMAT_48M16 StdFormat = 0x00004000 // 48 kHz, mono, 16-bit.
	WAVE_FORMAT_48S16 StdFormat = 0x00008000 // 48 kHz, stereo, 16-bit.
	WAVE_FORMAT_96M08 StdFormat = 0x00010000 // 96 kHz, mono, 8-bit.
	WAVE_FORMAT_96S08 StdFormat = 0x00020000 // 96 kHz, stereo, 8-bit.
	WAVE_FORMAT_96M16 StdFormat = 0x00040000 // 96 kHz, mono, 16-bit.
	WAVE_FORMAT_96S16 StdFormat = 0x00080000 // 96 kHz, stereo, 16-bit.
)

// StdFormatNames provides human-readable names for the standard device formats.
var StdFormatNames = map[StdFormat]string{
	WAVE_FORMAT_1M08:  "11.025 kHz mono 8-bit",
	WAVE_FORMAT_1S08:  "11.025 kHz stereo 8-bit",
	WAVE_FORMAT_1M16:  "11.025 kHz mono 16-bit",
	WAVE_FORMAT_1S16:  "11.025 kHz stereo 16-bit",
	WAVE_FORMAT_2M08:  "22.05 kHz mono 8-bit",
	WAVE_FORMAT_2S08:  "22.05 kHz stereo 8-bit",
	WAVE_FORMAT_2M16:  "22.05 kHz mono 16-bit",
	WAVE_FORMAT_2S16:  "22.05 kHz stereo 16-bit",
	WAVE_FORMAT_4M08:  "44.1 kHz mono 8-bit",
	WAVE_FORMAT_4S08:  "44.1 kHz stereo 8-bit",
	WAVE_FORMAT_4M16:  "44.1 kHz mono 16-bit",
	WAVE_FORMAT_4S16:  "44.1 kHz stereo 16-bit",
	WAVE_FORMAT_48M08: "48 kHz mono 8-bit",
	WAVE_FORMAT_48S08: "48 kHz stereo 8-bit",
	WAVE_FORMAT_48M16: "48 kHz mono 16-bit",
	WAVE_FORMAT_48S16: "48 kHz stereo 16-bit",
	WAVE_FORMAT_96M08: "96 kHz mono 8-bit",
	WAVE_FORMAT_96S08: "96 kHz stereo 8-bit",
	WAVE_FORMAT_96M16: "96 kHz mono 16-bit",
	WAVE_FORMAT_96S16: "96 kHz stereo 16-bit",
}

// stdFormats lists the standard formats in mask-bit order for capability filtering.
var stdFormats = []StdFormat{
	WAVE_FORMAT_1M08, WAVE_FORMAT_1S08, WAVE_FORMAT_1M16, WAVE_FORMAT_1S16,
	WAVE_FORMAT_2M08, WAVE_FORMAT_2S08, WAVE_FORMAT_2M16, WAVE_FORMAT_2S16,
	WAVE_FORMAT_4M08, WAVE_FORMAT_4S08, WAVE_FORMAT_4M16, WAVE_FORMAT_4S16,
	WAVE_FORMAT_48M08, WAVE_FORMAT_48S08, WAVE_FORMAT_48M16, WAVE_FORMAT_48S16,
	WAVE_FORMAT_96M08, WAVE_FORMAT_96S08, WAVE_FORMAT_96M16, WAVE_FORMAT_96S16,
}

// Functionality identifies optional capabilities a device driver may provide.
type Functionality uint32

const (
	WAVECAPS_PITCH          Functionality = 0x0001 // Supports pitch control.
	WAVECAPS_PLAYBACKRATE   Functionality = 0x0002 // Supports playback rate control.
	WAVECAPS_VOLUME         Functionality = 0x0004 // Supports volume control.
	WAVECAPS_LRVOLUME       Functionality = 0x0008 // Supports separate left and right volume control.
	WAVECAPS_SYNC           Functionality = 0x0010 // The driver is synchronous and blocks while playing a buffer.
	WAVECAPS_SAMPLEACCURATE Functionality = 0x0020 // Returns sample-accurate position information.
)

// FunctionalityNames provides human-readable names for the optional capabilities.
var FunctionalityNames = map[Functionality]string{
	WAVECAPS_PITCH:          "pitch control",
	WAVECAPS_PLAYBACKRATE:   "playback rate control",
	WAVECAPS_VOLUME:         "volume control",
	WAVECAPS_LRVOLUME:       "separate left/right volume control",
	WAVECAPS_SYNC:           "synchronous driver",
	WAVECAPS_SAMPLEACCURATE: "sample-accurate position",
}

// functionalities lists the capability bits in a stable order for filtering.
var functionalities = []Functionality{
	WAVECAPS_PITCH, WAVECAPS_PLAYBACKRATE, WAVECAPS_VOLUME,
	WAVECAPS_LRVOLUME, WAVECAPS_SYNC, WAVECAPS_SAMPLEACCURATE,
}
