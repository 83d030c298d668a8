//go:build windows

package winmm

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// DeviceCount returns the number of waveform-audio output devices present.
// Valid device identifiers are 0 through DeviceCount()-1, plus WAVE_MAPPER.
func DeviceCount() uint32 {
	return driver.GetNumDevs()
}

// Caps describes the capabilities of a waveform-audio output device.
type Caps struct {
	caps waveOutCaps
}

// DeviceCaps queries the capabilities of the device identified by deviceID.
func DeviceCaps(deviceID uint32) (*Caps, error) {
	c := &Caps{}

	res := driver.GetDevCaps(deviceID, &c.caps)
	if res != MMSYSERR_NOERROR {
		return nil, fmt.Errorf("waveOutGetDevCaps failed: %w", MMError(res))
	}

	return c, nil
}

// Name returns the product name of the device.
func (c *Caps) Name() string {
	return windows.UTF16ToString(c.caps.Pname[:])
}

// Manufacturer returns the manufacturer identifier of the device driver.
func (c *Caps) Manufacturer() Manufacturer {
	return Manufacturer(c.caps.Mid)
}

// Product returns the product identifier of the device. ok is false when the
// identifier is not one of the named products; vendors reuse identifier values,
// so an unrecognized identifier is not an error.
func (c *Caps) Product() (p Product, ok bool) {
	p = Product(c.caps.Pid)
	_, ok = ProductNames[p]

	return p, ok
}

// DriverVersion returns the major and minor version of the device driver.
func (c *Caps) DriverVersion() (major, minor uint8) {
	return uint8(c.caps.DriverVersion >> 8), uint8(c.caps.DriverVersion)
}

// Channels returns the number of channels the device supports, either 1 or 2.
func (c *Caps) Channels() uint16 {
	return c.caps.Channels
}

// SupportedFormats returns the standard formats the device supports.
func (c *Caps) SupportedFormats() []StdFormat {
	var formats []StdFormat

	for _, f := range stdFormats {
		if c.caps.Formats&uint32(f) != 0 {
			formats = append(formats, f)
		}
	}

	return formats
}

// Functionality returns the optional functionality the device supports.
func (c *Caps) Functionality() []Functionality {
	var fns []Functionality

	for _, f := range functionalities {
		if c.caps.Support&uint32(f) != 0 {
			fns = append(fns, f)
		}
	}

	return fns
}

// String returns a one-line summary of the device capabilities.
func (c *Caps) String() string {
	major, minor := c.DriverVersion()

	manufacturer, ok := ManufacturerNames[c.Manufacturer()]
	if !ok {
		manufacturer = fmt.Sprintf("manufacturer %d", c.caps.Mid)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s, driver %d.%d, %d ch",
		c.Name(), manufacturer, major, minor, c.Channels())

	if fns := c.Functionality(); len(fns) > 0 {
		names := make([]string, len(fns))
		for i, f := range fns {
			names[i] = FunctionalityNames[f]
		}

		fmt.Fprintf(&sb, ", %s", strings.Join(names, " "))
	}

	sb.WriteString(")")

	return sb.String()
}
