//go:build windows

package winmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceCount(t *testing.T) {
	fake := newFakeDriver()
	fake.devs = 3
	fake.install(t)

	assert.Equal(t, uint32(3), DeviceCount())
}

func TestDeviceCaps(t *testing.T) {
	fake := newFakeDriver()
	fake.caps = waveOutCaps{
		Mid:           uint16(MM_MICROSOFT),
		Pid:           uint16(MM_MSFT_GENERIC_WAVEOUT),
		DriverVersion: 0x1307,
		Pname:         utf16Name("Speakers (High Definition Audio)"),
		Formats:       uint32(WAVE_FORMAT_4M16 | WAVE_FORMAT_4S16 | WAVE_FORMAT_96S16),
		Channels:      2,
		Support:       uint32(WAVECAPS_VOLUME | WAVECAPS_LRVOLUME),
	}
	fake.install(t)

	caps, err := DeviceCaps(0)
	require.NoError(t, err)

	assert.Equal(t, "Speakers (High Definition Audio)", caps.Name())
	assert.Equal(t, MM_MICROSOFT, caps.Manufacturer())
	assert.Equal(t, uint16(2), caps.Channels())

	product, ok := caps.Product()
	assert.True(t, ok)
	assert.Equal(t, MM_MSFT_GENERIC_WAVEOUT, product)

	major, minor := caps.DriverVersion()
	assert.Equal(t, uint8(0x13), major)
	assert.Equal(t, uint8(0x07), minor)

	assert.Equal(t, []StdFormat{WAVE_FORMAT_4M16, WAVE_FORMAT_4S16, WAVE_FORMAT_96S16}, caps.SupportedFormats())
	assert.Equal(t, []Functionality{WAVECAPS_VOLUME, WAVECAPS_LRVOLUME}, caps.Functionality())

	assert.Contains(t, caps.String(), "Speakers")
	assert.Contains(t, caps.String(), "driver 19.7")
}

func TestDeviceCapsVendorProduct(t *testing.T) {
	fake := newFakeDriver()
	fake.caps = waveOutCaps{
		Mid:      uint16(MM_CREATIVE),
		Pid:      412, // vendor-specific, not in the curated table
		Pname:    utf16Name("Sound Blaster"),
		Channels: 2,
	}
	fake.install(t)

	caps, err := DeviceCaps(0)
	require.NoError(t, err)

	product, ok := caps.Product()
	assert.False(t, ok)
	assert.Equal(t, Product(412), product)
}

func TestDeviceCapsBadID(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	_, err := DeviceCaps(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, MMError(MMSYSERR_BADDEVICEID))
}
