//go:build windows

package winmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gen2brain/winmm"
)

func TestMMError(t *testing.T) {
	assert.EqualError(t, winmm.MMError(winmm.MMSYSERR_BADDEVICEID), "device ID out of range")
	assert.EqualError(t, winmm.MMError(winmm.WAVERR_BADFORMAT), "unsupported waveform-audio format")

	// Driver-defined codes render numerically instead of panicking.
	assert.EqualError(t, winmm.MMError(1234), "multimedia error 1234")
}

func TestNameTables(t *testing.T) {
	assert.Equal(t, "PCM", winmm.TagNames[winmm.WAVE_FORMAT_PCM])
	assert.Equal(t, "Microsoft Corporation", winmm.ManufacturerNames[winmm.MM_MICROSOFT])
	assert.Equal(t, "Wave mapper", winmm.ProductNames[winmm.MM_WAVE_MAPPER])
	assert.Equal(t, "44.1 kHz stereo 16-bit", winmm.StdFormatNames[winmm.WAVE_FORMAT_4S16])
	assert.Equal(t, "volume control", winmm.FunctionalityNames[winmm.WAVECAPS_VOLUME])
}
