//go:build windows

package winmm_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/winmm"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func u32(v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)

	return buf[:]
}

// wavHeader assembles a .wav file from raw chunks.
func wavHeader(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}

	out := []byte("RIFF")
	out = append(out, u32(uint32(4+len(body)))...)
	out = append(out, []byte("WAVE")...)

	return append(out, body...)
}

func fmtChunk() []byte {
	c := []byte("fmt ")
	c = append(c, u32(16)...)
	c = append(c, formatRecord(uint16(winmm.WAVE_FORMAT_PCM), 1, 8000, 8)...)

	return c
}

func dataChunk(payload []byte) []byte {
	c := []byte("data")
	c = append(c, u32(uint32(len(payload)))...)

	return append(c, payload...)
}

func TestOpenPlayerExtraChunks(t *testing.T) {
	// A LIST chunk between fmt and data must be skipped over.
	list := append([]byte("LIST"), u32(10)...)
	list = append(list, []byte("INFOartist")...)

	payload := []byte{1, 2, 3, 4}
	path := writeFile(t, wavHeader(fmtChunk(), list, dataChunk(payload)))

	player, err := winmm.OpenPlayer(path)
	require.NoError(t, err)
	defer player.Close()

	assert.Equal(t, uint16(1), player.Format().Channels)
}

func TestOpenPlayerNotRIFF(t *testing.T) {
	path := writeFile(t, []byte("MThd this is not a wave file at all"))

	_, err := winmm.OpenPlayer(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RIFF")
}

func TestOpenPlayerNotWAVE(t *testing.T) {
	content := append([]byte("RIFF"), u32(100)...)
	content = append(content, []byte("AVI LIST")...)

	_, err := winmm.OpenPlayer(writeFile(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAVE")
}

func TestOpenPlayerMissingData(t *testing.T) {
	_, err := winmm.OpenPlayer(writeFile(t, wavHeader(fmtChunk())))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"data" not found`)
}

func TestOpenPlayerMissingFmt(t *testing.T) {
	_, err := winmm.OpenPlayer(writeFile(t, wavHeader(dataChunk([]byte{1, 2}))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fmt " not found`)
}

func TestOpenPlayerDataTooLarge(t *testing.T) {
	// Claimed data length extends past the end of the file.
	chunk := append([]byte("data"), u32(1<<20)...)
	chunk = append(chunk, []byte{1, 2, 3}...)

	_, err := winmm.OpenPlayer(writeFile(t, wavHeader(fmtChunk(), chunk)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than file")
}

func TestOpenPlayerUnknownTag(t *testing.T) {
	c := []byte("fmt ")
	c = append(c, u32(16)...)
	c = append(c, formatRecord(0x4242, 1, 8000, 8)...)

	_, err := winmm.OpenPlayer(writeFile(t, wavHeader(c, dataChunk([]byte{1, 2}))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format tag")
}

func TestOpenPlayerMissingFile(t *testing.T) {
	_, err := winmm.OpenPlayer(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
}
