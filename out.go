//go:build windows

package winmm

import (
	"fmt"
	"unsafe"
)

// bufferSize is the nominal size of each of the two playback buffers. The
// actual size is rounded up to the format's block alignment.
const bufferSize = 256 * 1024

// Out is an open waveform-audio output device. It owns two prepared buffers
// that the caller fills and submits alternately; at most one submission may be
// outstanding at a time.
//
// Out is not safe for concurrent use.
type Out struct {
	hwo     uintptr
	done    *event
	token   uintptr
	buffers [2]*Buffer
}

// Open opens the waveform-audio output device identified by deviceID for
// playback in the given format. Use WAVE_MAPPER to let the system pick a
// device. The returned device is idle with both buffers ready to fill.
func Open(deviceID uint32, format *Format) (*Out, error) {
	o := &Out{done: newEvent()}

	// Signaled from the start, so the first write does not block.
	o.done.set()
	o.token = registerCallback(o.done)

	wfx := format.waveFormatEx()

	res := driver.Open(&o.hwo, deviceID, &wfx, waveOutProcPtr(), o.token)
	if res != MMSYSERR_NOERROR {
		unregisterCallback(o.token)

		return nil, fmt.Errorf("waveOutOpen failed: %w", MMError(res))
	}

	for i := range o.buffers {
		buf, err := prepareBuffer(o.hwo, int(format.BlockAlign), bufferSize)
		if err != nil {
			for _, b := range o.buffers[:i] {
				driver.UnprepareHeader(o.hwo, &b.hdr)
			}

			driver.Close(o.hwo)
			unregisterCallback(o.token)

			return nil, err
		}

		o.buffers[i] = buf
	}

	return o, nil
}

// prepareBuffer allocates a block rounded up to align bytes and registers it
// with the driver.
func prepareBuffer(hwo uintptr, align, size int) (*Buffer, error) {
	if rem := size % align; rem != 0 {
		size += align - rem
	}

	buf := &Buffer{data: make([]byte, size)}
	buf.hdr.Data = uintptr(unsafe.Pointer(&buf.data[0]))
	buf.hdr.BufferLength = uint32(size)

	res := driver.PrepareHeader(hwo, &buf.hdr)
	if res != MMSYSERR_NOERROR {
		return nil, fmt.Errorf("waveOutPrepareHeader failed: %w", MMError(res))
	}

	if buf.hdr.Flags&WHDR_PREPARED == 0 {
		return nil, fmt.Errorf("waveOutPrepareHeader failed: %w", MMError(MMSYSERR_INVALFLAG))
	}

	return buf, nil
}

// Buffers returns the device's two playback buffers. The first is submitted
// with WriteFirst, the second with WriteSecond.
func (o *Out) Buffers() []*Buffer {
	return o.buffers[:]
}

// WriteFirst submits the first buffer for playback. It blocks until the
// previously submitted buffer, if any, has completed.
func (o *Out) WriteFirst() error {
	return o.write(0)
}

// WriteSecond submits the second buffer for playback. It blocks until the
// previously submitted buffer, if any, has completed.
func (o *Out) WriteSecond() error {
	return o.write(1)
}

func (o *Out) write(slot int) error {
	o.done.wait()
	o.done.clear()

	res := driver.Write(o.hwo, &o.buffers[slot].hdr)
	if res != MMSYSERR_NOERROR {
		// The block was never queued, so no completion will arrive.
		o.done.set()
		return fmt.Errorf("waveOutWrite failed: %w", MMError(res))
	}

	return nil
}

// Wait blocks until the last submitted buffer has completed. Calling Wait on
// an idle device returns immediately.
func (o *Out) Wait() {
	o.done.wait()
}

// Pause pauses playback. Pausing an already paused device is a no-op. While
// paused, submitted buffers never complete, so WriteFirst and WriteSecond
// block until Resume is called.
func (o *Out) Pause() error {
	res := driver.Pause(o.hwo)
	if res != MMSYSERR_NOERROR {
		return fmt.Errorf("waveOutPause failed: %w", MMError(res))
	}

	return nil
}

// Resume resumes paused playback. Resuming a device that is not paused is a
// no-op.
func (o *Out) Resume() error {
	res := driver.Restart(o.hwo)
	if res != MMSYSERR_NOERROR {
		return fmt.Errorf("waveOutRestart failed: %w", MMError(res))
	}

	return nil
}

// Stop stops playback and marks all pending buffers as complete. The device
// remains open and playback can start again with a new write.
func (o *Out) Stop() error {
	res := driver.Reset(o.hwo)
	if res != MMSYSERR_NOERROR {
		return fmt.Errorf("waveOutReset failed: %w", MMError(res))
	}

	return nil
}

// SetVolume sets the playback volume per channel. Both values must be in
// [0, 1]; on mono devices only left is used. Some drivers control the volume
// of the whole device rather than the session.
func (o *Out) SetVolume(left, right float32) error {
	if left < 0 || left > 1 || right < 0 || right > 1 {
		return fmt.Errorf("volume %v, %v out of range: %w", left, right, MMError(MMSYSERR_INVALPARAM))
	}

	volume := uint32(left*0xffff) | uint32(right*0xffff)<<16

	res := driver.SetVolume(o.hwo, volume)
	if res != MMSYSERR_NOERROR {
		return fmt.Errorf("waveOutSetVolume failed: %w", MMError(res))
	}

	return nil
}

// Volume returns the playback volume per channel, each in [0, 1]. On mono
// devices right duplicates left.
func (o *Out) Volume() (left, right float32, err error) {
	var volume uint32

	res := driver.GetVolume(o.hwo, &volume)
	if res != MMSYSERR_NOERROR {
		return 0, 0, fmt.Errorf("waveOutGetVolume failed: %w", MMError(res))
	}

	left = float32(volume&0xffff) / 0xffff
	right = float32(volume>>16) / 0xffff

	return left, right, nil
}

// Close stops playback and releases the device. Every teardown step runs even
// if an earlier one fails; the first failure is reported. Close on a nil
// device is a no-op.
func (o *Out) Close() error {
	if o == nil {
		return nil
	}

	var err error

	if res := driver.Reset(o.hwo); res != MMSYSERR_NOERROR {
		err = fmt.Errorf("waveOutReset failed: %w", MMError(res))
	}

	for _, buf := range o.buffers {
		if buf == nil || buf.hdr.Flags&WHDR_PREPARED == 0 {
			continue
		}

		if res := driver.UnprepareHeader(o.hwo, &buf.hdr); res != MMSYSERR_NOERROR && err == nil {
			err = fmt.Errorf("waveOutUnprepareHeader failed: %w", MMError(res))
		}
	}

	if res := driver.Close(o.hwo); res != MMSYSERR_NOERROR && err == nil {
		err = fmt.Errorf("waveOutClose failed: %w", MMError(res))
	}

	unregisterCallback(o.token)

	return err
}
