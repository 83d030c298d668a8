//go:build windows

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/gen2brain/winmm"
)

func main() {
	var help bool
	flag.BoolVar(&help, "help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <wav-file>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nOptions:")
		fmt.Fprintln(os.Stderr, "  --help      Show this help message")
	}

	flag.Parse()

	if help || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	wavPath := flag.Arg(0)

	player, err := winmm.OpenPlayer(wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse file: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()

	format := player.Format()

	fmt.Printf("Filename:           %s\n", wavPath)
	fmt.Printf("Format:             %s\n", winmm.TagNames[format.Tag])
	fmt.Printf("Channels:           %d\n", format.Channels)
	fmt.Printf("Sample Rate:        %d Hz\n", format.SamplesPerSec)
	fmt.Printf("Bits Per Sample:    %d\n", format.BitsPerSample)
	fmt.Printf("Block Align:        %d\n", format.BlockAlign)
	fmt.Printf("Byte Rate:          %d\n", format.AvgBytesPerSec)
	fmt.Printf("Duration:           %s\n", formatDuration(player.Duration()))

	// Cross-check the header against the go-audio decoder; a mismatch points
	// at a non-canonical header that other software may reject.
	file, err := os.Open(wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		fmt.Println("\nWarning: the go-audio decoder rejects this file.")

		return
	}

	if uint16(decoder.NumChans) != format.Channels || decoder.SampleRate != format.SamplesPerSec ||
		uint16(decoder.BitDepth) != format.BitsPerSample {
		fmt.Println("\nWarning: the go-audio decoder reads a different format from this header.")
	}
}

// formatDuration formats a time.Duration into a more readable HH:MM:SS.ms format.
func formatDuration(d time.Duration) string {
	nanos := d.Nanoseconds() % 1e9
	millis := nanos / 1e6

	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
