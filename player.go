//go:build windows

package winmm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Player plays uncompressed .wav files on a waveform-audio output device.
type Player struct {
	format  *Format
	file    *os.File
	dataLen uint32
}

// OpenPlayer opens the .wav file at path and parses its header. The format
// must carry a tag known to TagNames; whether the device accepts the format is
// only determined when Play opens it.
func OpenPlayer(path string) (*Player, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open failed: %w", err)
	}

	p := &Player{file: file}

	err = p.parseHeader()
	if err != nil {
		file.Close()

		return nil, err
	}

	return p, nil
}

func (p *Player) parseHeader() error {
	var riff [12]byte

	_, err := io.ReadFull(p.file, riff[:])
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	if string(riff[:4]) != "RIFF" {
		return errors.New("not a RIFF file")
	}

	if string(riff[8:12]) != "WAVE" {
		return errors.New("not a WAVE file")
	}

	fmtOff, err := p.scanChunk(12, "fmt ")
	if err != nil {
		return err
	}

	p.format, err = FormatFromWAV(p.file, fmtOff+8)
	if err != nil {
		return err
	}

	dataOff, err := p.scanChunk(fmtOff+8+16, "data")
	if err != nil {
		return err
	}

	_, err = p.file.Seek(dataOff+4, io.SeekStart)
	if err != nil {
		return fmt.Errorf("seek failed: %w", err)
	}

	err = binary.Read(p.file, binary.LittleEndian, &p.dataLen)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	info, err := p.file.Stat()
	if err != nil {
		return fmt.Errorf("stat failed: %w", err)
	}

	if dataOff+8+int64(p.dataLen) > info.Size() {
		return errors.New("data chunk larger than file")
	}

	// The file is left positioned at the start of the audio data.
	return nil
}

// scanChunk searches forward from offset for a 4-byte chunk marker, advancing
// one byte at a time so markers need not be aligned.
func (p *Player) scanChunk(offset int64, marker string) (int64, error) {
	var tag [4]byte

	for {
		_, err := p.file.Seek(offset, io.SeekStart)
		if err != nil {
			return 0, fmt.Errorf("seek failed: %w", err)
		}

		_, err = io.ReadFull(p.file, tag[:])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("chunk %q not found", marker)
			}

			return 0, fmt.Errorf("read failed: %w", err)
		}

		if string(tag[:]) == marker {
			return offset, nil
		}

		offset++
	}
}

// Format returns the audio format of the file.
func (p *Player) Format() *Format {
	return p.format
}

// Duration returns the playing time of the file.
func (p *Player) Duration() time.Duration {
	if p.format.AvgBytesPerSec == 0 {
		return 0
	}

	return time.Duration(p.dataLen) * time.Second / time.Duration(p.format.AvgBytesPerSec)
}

// Play opens the default output device and plays the file to completion. It
// returns once the final buffer has been submitted and the device drained.
// Play may be called only once per Player.
func (p *Player) Play() error {
	return p.PlayOn(WAVE_MAPPER)
}

// PlayOn is Play on a specific output device.
func (p *Player) PlayOn(deviceID uint32) error {
	out, err := Open(deviceID, p.format)
	if err != nil {
		return err
	}
	defer out.Close()

	data := &io.LimitedReader{R: p.file, N: int64(p.dataLen)}
	buffers := out.Buffers()

	for slot := 0; ; slot ^= 1 {
		exhausted, err := buffers[slot].Fill(data)
		if err != nil {
			return err
		}

		if exhausted && buffers[slot].Len() == 0 {
			break
		}

		if slot == 0 {
			err = out.WriteFirst()
		} else {
			err = out.WriteSecond()
		}
		if err != nil {
			return err
		}

		if exhausted {
			break
		}
	}

	out.Wait()

	return nil
}

// Close closes the underlying file.
func (p *Player) Close() error {
	return p.file.Close()
}
