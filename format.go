//go:build windows

package winmm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Format describes a waveform-audio data format, the Go-side counterpart of
// the WAVEFORMATEX structure.
type Format struct {
	Tag            Tag
	Channels       uint16
	SamplesPerSec  uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// NewFormat returns a PCM format with the derived block alignment and byte
// rate filled in.
func NewFormat(channels uint16, samplesPerSec uint32, bitsPerSample uint16) *Format {
	align := channels * bitsPerSample / 8

	return &Format{
		Tag:            WAVE_FORMAT_PCM,
		Channels:       channels,
		SamplesPerSec:  samplesPerSec,
		AvgBytesPerSec: samplesPerSec * uint32(align),
		BlockAlign:     align,
		BitsPerSample:  bitsPerSample,
	}
}

// FormatFromWAV decodes the 16-byte format record of a .wav file starting at
// offset. Formats whose tag is not in TagNames are rejected.
func FormatFromWAV(r io.ReadSeeker, offset int64) (*Format, error) {
	_, err := r.Seek(offset, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("seek failed: %w", err)
	}

	var rec struct {
		Tag            uint16
		Channels       uint16
		SamplesPerSec  uint32
		AvgBytesPerSec uint32
		BlockAlign     uint16
		BitsPerSample  uint16
	}

	err = binary.Read(r, binary.LittleEndian, &rec)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	if _, ok := TagNames[Tag(rec.Tag)]; !ok {
		return nil, fmt.Errorf("unknown format tag %#04x", rec.Tag)
	}

	return &Format{
		Tag:            Tag(rec.Tag),
		Channels:       rec.Channels,
		SamplesPerSec:  rec.SamplesPerSec,
		AvgBytesPerSec: rec.AvgBytesPerSec,
		BlockAlign:     rec.BlockAlign,
		BitsPerSample:  rec.BitsPerSample,
	}, nil
}

// String returns the format in a human-readable form, e.g. `PCM 44100 Hz 16 bit stereo`.
func (f *Format) String() string {
	name, ok := TagNames[f.Tag]
	if !ok {
		name = fmt.Sprintf("tag %#04x", uint16(f.Tag))
	}

	layout := fmt.Sprintf("%d ch", f.Channels)
	switch f.Channels {
	case 1:
		layout = "mono"
	case 2:
		layout = "stereo"
	}

	return fmt.Sprintf("%s %d Hz %d bit %s", name, f.SamplesPerSec, f.BitsPerSample, layout)
}

func (f *Format) waveFormatEx() waveFormatEx {
	return waveFormatEx{
		FormatTag:      uint16(f.Tag),
		Channels:       f.Channels,
		SamplesPerSec:  f.SamplesPerSec,
		AvgBytesPerSec: f.AvgBytesPerSec,
		BlockAlign:     f.BlockAlign,
		BitsPerSample:  f.BitsPerSample,
	}
}
