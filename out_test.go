//go:build windows

package winmm

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFailure(t *testing.T) {
	fake := newFakeDriver()
	fake.failOpen = MMSYSERR_ALLOCATED
	fake.install(t)

	before := registeredCallbacks()

	out, err := Open(WAVE_MAPPER, NewFormat(2, 44100, 16))
	require.Error(t, err)
	assert.ErrorIs(t, err, MMError(MMSYSERR_ALLOCATED))
	assert.Nil(t, out)

	// A failed open must not leak its callback registration.
	assert.Equal(t, before, registeredCallbacks())
}

func TestOpenPrepareFailureRollback(t *testing.T) {
	fake := newFakeDriver()
	fake.failPrepareAt = 2
	fake.install(t)

	before := registeredCallbacks()

	out, err := Open(WAVE_MAPPER, NewFormat(2, 44100, 16))
	require.Error(t, err)
	assert.ErrorIs(t, err, MMError(MMSYSERR_NOMEM))
	assert.Nil(t, out)

	// The first buffer was prepared before the second failed; it must be
	// unprepared and the device closed again.
	assert.Equal(t, 1, fake.callCount("UnprepareHeader"))
	assert.Equal(t, 1, fake.callCount("Close"))
	assert.Equal(t, before, registeredCallbacks())
}

func TestOpenBufferAlignment(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	// 3 bytes per frame does not divide the nominal buffer size.
	format := NewFormat(1, 48000, 24)
	require.Equal(t, uint16(3), format.BlockAlign)

	out, err := Open(WAVE_MAPPER, format)
	require.NoError(t, err)
	defer out.Close()

	buffers := out.Buffers()
	require.Len(t, buffers, 2)

	for _, buf := range buffers {
		assert.Zero(t, buf.Cap()%int(format.BlockAlign))
		assert.GreaterOrEqual(t, buf.Cap(), bufferSize)
	}
}

func TestWriteSingleOutstanding(t *testing.T) {
	fake := newFakeDriver()
	fake.writeDelay = func() time.Duration {
		return time.Duration(rand.Intn(300)) * time.Microsecond
	}
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(1, 8000, 8))
	require.NoError(t, err)
	defer out.Close()

	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			err = out.WriteFirst()
		} else {
			err = out.WriteSecond()
		}

		require.NoError(t, err)
	}

	out.Wait()

	fake.mu.Lock()
	maxPending := fake.maxPending
	fake.mu.Unlock()

	assert.LessOrEqual(t, maxPending, 1, "more than one buffer was queued at once")
	assert.Equal(t, 200, fake.callCount("Write"))
}

func TestWriteError(t *testing.T) {
	fake := newFakeDriver()
	fake.failWrite = WAVERR_UNPREPARED
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(1, 8000, 8))
	require.NoError(t, err)
	defer out.Close()

	err = out.WriteFirst()
	require.Error(t, err)
	assert.ErrorIs(t, err, MMError(WAVERR_UNPREPARED))

	// The rejected block was never queued, so neither Wait nor the next
	// write may block on a completion that will not arrive.
	waited := make(chan struct{})
	go func() {
		out.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after a failed write")
	}
}

func TestPauseBlocksWrites(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(1, 8000, 8))
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.Pause())
	require.NoError(t, out.WriteFirst())

	// The first submission never completes while paused, so the second
	// write has to block until Resume.
	second := make(chan error, 1)
	go func() {
		second <- out.WriteSecond()
	}()

	select {
	case <-second:
		t.Fatal("write completed while the device was paused")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, out.Resume())

	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("write did not complete after resume")
	}

	out.Wait()
}

func TestStop(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(1, 8000, 8))
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.Stop())
	assert.Equal(t, 1, fake.callCount("Reset"))
}

func TestStopCompletesOutstandingWrite(t *testing.T) {
	fake := newFakeDriver()
	fake.writeDelay = func() time.Duration {
		return time.Hour
	}
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(1, 8000, 8))
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.WriteFirst())

	// The first block would play for an hour, so the second write blocks
	// until Stop returns it.
	second := make(chan error, 1)
	go func() {
		second <- out.WriteSecond()
	}()

	select {
	case <-second:
		t.Fatal("write completed while a block was still playing")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, out.Stop())

	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("write did not complete after stop")
	}
}

func TestSetVolume(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(2, 44100, 16))
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.SetVolume(0.5, 1))
	assert.Equal(t, uint32(0x7FFF)|uint32(0xFFFF)<<16, fake.volume)

	require.NoError(t, out.SetVolume(0, 0))
	assert.Zero(t, fake.volume)

	left, right, err := out.Volume()
	require.NoError(t, err)
	assert.Zero(t, left)
	assert.Zero(t, right)

	require.NoError(t, out.SetVolume(1, 0.25))

	left, right, err = out.Volume()
	require.NoError(t, err)
	assert.Equal(t, float32(1), left)
	assert.InDelta(t, 0.25, right, 0.0001)
}

func TestSetVolumeRange(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	out, err := Open(WAVE_MAPPER, NewFormat(2, 44100, 16))
	require.NoError(t, err)
	defer out.Close()

	for _, volume := range [][2]float32{{-0.1, 0}, {0, -0.1}, {1.1, 0}, {0, 1.1}} {
		err = out.SetVolume(volume[0], volume[1])
		require.Error(t, err)
		assert.ErrorIs(t, err, MMError(MMSYSERR_INVALPARAM))
	}

	// Rejected values never reach the device.
	assert.Zero(t, fake.volumeCalls)
}

func TestCloseRunsAllSteps(t *testing.T) {
	fake := newFakeDriver()
	fake.failReset = MMSYSERR_INVALHANDLE
	fake.install(t)

	before := registeredCallbacks()

	out, err := Open(WAVE_MAPPER, NewFormat(2, 44100, 16))
	require.NoError(t, err)

	err = out.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, MMError(MMSYSERR_INVALHANDLE))

	// The failed reset must not stop the rest of the teardown.
	assert.Equal(t, 2, fake.callCount("UnprepareHeader"))
	assert.Equal(t, 1, fake.callCount("Close"))
	assert.Equal(t, before, registeredCallbacks())
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, (*Out)(nil).Close())
}

func TestBufferFill(t *testing.T) {
	buf := &Buffer{data: make([]byte, 8)}
	for i := range buf.data {
		buf.data[i] = 0xAA
	}

	exhausted, err := buf.Fill(bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []byte{1, 2, 3}, buf.Data())

	// The unread tail is zeroed, not left over from the previous fill.
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf.data[3:])

	exhausted, err = buf.Fill(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	require.NoError(t, err)
	assert.False(t, exhausted)
	assert.Equal(t, 8, buf.Len())
}
