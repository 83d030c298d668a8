//go:build windows

package winmm

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWAVFile writes a minimal canonical .wav file with the given number of
// 8 kHz mono 8-bit payload bytes.
func writeWAVFile(t *testing.T, dataLen int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	data := make([]byte, dataLen)
	for i := range data {
		data[i] = byte(i)
	}

	file.Write([]byte("RIFF"))
	binary.Write(file, binary.LittleEndian, uint32(36+dataLen))
	file.Write([]byte("WAVE"))

	file.Write([]byte("fmt "))
	binary.Write(file, binary.LittleEndian, uint32(16))
	binary.Write(file, binary.LittleEndian, uint16(WAVE_FORMAT_PCM))
	binary.Write(file, binary.LittleEndian, uint16(1))    // channels
	binary.Write(file, binary.LittleEndian, uint32(8000)) // samples per second
	binary.Write(file, binary.LittleEndian, uint32(8000)) // bytes per second
	binary.Write(file, binary.LittleEndian, uint16(1))    // block align
	binary.Write(file, binary.LittleEndian, uint16(8))    // bits per sample

	file.Write([]byte("data"))
	binary.Write(file, binary.LittleEndian, uint32(dataLen))
	_, err = file.Write(data)
	require.NoError(t, err)

	return path
}

func TestPlayerPlay(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	// Two and a half buffers of payload, so both slots are used and the
	// final block is partial.
	dataLen := bufferSize*2 + bufferSize/2

	player, err := OpenPlayer(writeWAVFile(t, dataLen))
	require.NoError(t, err)
	defer player.Close()

	require.NoError(t, player.Play())

	fake.wg.Wait()

	require.Equal(t, []uint32{bufferSize, bufferSize, bufferSize / 2}, fake.writeLens)
	assert.Equal(t, 1, fake.callCount("Open"))
	assert.Equal(t, 1, fake.callCount("Close"))
}

func TestPlayerPlayExactMultiple(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	player, err := OpenPlayer(writeWAVFile(t, bufferSize))
	require.NoError(t, err)
	defer player.Close()

	require.NoError(t, player.Play())

	fake.wg.Wait()

	// No empty trailing block is submitted.
	require.Equal(t, []uint32{bufferSize}, fake.writeLens)
}

func TestPlayerPlayShort(t *testing.T) {
	fake := newFakeDriver()
	fake.install(t)

	// One second at 8 kHz mono 8-bit, well under one buffer's capacity.
	player, err := OpenPlayer(writeWAVFile(t, 8000))
	require.NoError(t, err)
	defer player.Close()

	require.NoError(t, player.Play())

	fake.wg.Wait()

	// Exactly one fill and submit cycle.
	require.Equal(t, []uint32{8000}, fake.writeLens)
}
