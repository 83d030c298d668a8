//go:build windows

package winmm

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is one of the two blocks of audio data owned by an open output
// device. The backing storage stays prepared with the driver for the lifetime
// of the device, so callers refill it in place rather than allocating.
type Buffer struct {
	hdr  waveHdr
	data []byte
}

// Cap returns the capacity of the buffer in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the number of valid bytes, set by the last Fill.
func (b *Buffer) Len() int {
	return int(b.hdr.BufferLength)
}

// Data returns the valid portion of the buffer.
func (b *Buffer) Data() []byte {
	return b.data[:b.hdr.BufferLength]
}

// Fill reads from r until the buffer is full or the reader is drained. The
// unread tail is zeroed and the submission length is set to the bytes read, so
// a partial final block plays without trailing garbage. exhausted reports that
// r has no more data.
func (b *Buffer) Fill(r io.Reader) (exhausted bool, err error) {
	n, err := io.ReadFull(r, b.data)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("read failed: %w", err)
	}

	for i := n; i < len(b.data); i++ {
		b.data[i] = 0
	}

	b.hdr.BufferLength = uint32(n)

	return n < len(b.data), nil
}
