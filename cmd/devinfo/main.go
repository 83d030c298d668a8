//go:build windows

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gen2brain/winmm"
)

func main() {
	var device int

	flag.IntVar(&device, "device", -1, "The device to query (-1 = all devices)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Displays the capabilities of waveform-audio output devices.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	count := winmm.DeviceCount()
	if count == 0 {
		fmt.Fprintln(os.Stderr, "No waveform-audio output devices found.")
		os.Exit(1)
	}

	fmt.Printf("%d waveform-audio output device(s):\n\n", count)

	for id := uint32(0); id < count; id++ {
		if device >= 0 && uint32(device) != id {
			continue
		}

		printDevice(id)
	}
}

func printDevice(id uint32) {
	caps, err := winmm.DeviceCaps(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying device %d: %v\n", id, err)

		return
	}

	major, minor := caps.DriverVersion()

	fmt.Printf("Device %d: %s\n", id, caps.Name())

	manufacturer, ok := winmm.ManufacturerNames[caps.Manufacturer()]
	if !ok {
		manufacturer = fmt.Sprintf("unknown (%d)", caps.Manufacturer())
	}
	fmt.Printf("  Manufacturer:   %s\n", manufacturer)

	if product, ok := caps.Product(); ok {
		fmt.Printf("  Product:        %s\n", winmm.ProductNames[product])
	} else {
		fmt.Printf("  Product:        unknown (%d)\n", product)
	}

	fmt.Printf("  Driver version: %d.%d\n", major, minor)
	fmt.Printf("  Channels:       %d\n", caps.Channels())

	if fns := caps.Functionality(); len(fns) > 0 {
		fmt.Println("  Functionality:")
		for _, f := range fns {
			fmt.Printf("    %s\n", winmm.FunctionalityNames[f])
		}
	}

	if formats := caps.SupportedFormats(); len(formats) > 0 {
		fmt.Println("  Standard formats:")
		for _, f := range formats {
			fmt.Printf("    %s\n", winmm.StdFormatNames[f])
		}
	}

	fmt.Println()
}
