//go:build windows

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gen2brain/winmm"
)

func main() {
	var (
		device int
		volume float64
	)

	flag.IntVar(&device, "device", -1, "The device to play on (-1 = let the system pick)")
	flag.Float64Var(&volume, "volume", -1, "The playback volume, 0.0 to 1.0 (-1 = leave unchanged)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <wav-file>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	wavPath := flag.Arg(0)

	player, err := winmm.OpenPlayer(wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening WAV file: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()

	deviceID := uint32(winmm.WAVE_MAPPER)
	if device >= 0 {
		deviceID = uint32(device)
	}

	if volume >= 0 {
		// The volume of a device persists across opens, so set it on a
		// throwaway handle before playback starts.
		out, err := winmm.Open(deviceID, player.Format())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening device: %v\n", err)
			os.Exit(1)
		}

		err = out.SetVolume(float32(volume), float32(volume))
		out.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting volume: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Playing WAV file: %s\n", wavPath)
	fmt.Printf("Format: %s, duration %v\n", player.Format(), player.Duration())

	if err := player.PlayOn(deviceID); err != nil {
		fmt.Fprintf(os.Stderr, "Error during playback: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Playback finished.")
}
