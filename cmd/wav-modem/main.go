// Command wav-modem transfers files over an audible waveform: it encodes a
// file into a WAV transmission and decodes a recorded WAV back into the file.
//
// Usage:
//
//	wav-modem -encode document.txt -o transmission.wav
//	wav-modem -decode recording.wav -o document.txt
//	wav-modem -decode recording.wav -config modem.yaml -v
//
// The modem parameters default to the nominal design set (19 kHz sample
// rate, 50 baud, carriers 1000-6000 Hz); -config loads a YAML parameter file
// when both ends agree on a different set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	modem "github.com/tphakala/go-acoustic-modem"
)

const (
	defaultEncodeOutput = "transmission.wav"
	defaultDecodeOutput = "decoded_output.bin"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	encodePath := flag.String("encode", "", "Path to the file to encode into a WAV transmission")
	decodePath := flag.String("decode", "", "Path to the WAV file to decode")
	outputPath := flag.String("o", "", "Output path (default transmission.wav or decoded_output.bin)")
	configPath := flag.String("config", "", "YAML modem parameter file (default: nominal design constants)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if (*encodePath == "") == (*decodePath == "") {
		fmt.Fprintf(os.Stderr, "Usage: %s (-encode FILE | -decode FILE.wav) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("exactly one of -encode or -decode is required")
	}

	cfg, err := loadConfig(*configPath, *verbose)
	if err != nil {
		return err
	}
	m, err := modem.New(cfg)
	if err != nil {
		return err
	}

	if *encodePath != "" {
		out := *outputPath
		if out == "" {
			out = defaultEncodeOutput
		}
		start := time.Now()
		stats, err := encodeFile(m, *encodePath, out)
		if err != nil {
			return err
		}
		fmt.Printf("Encoded %s -> %s\n", filepath.Base(*encodePath), filepath.Base(out))
		fmt.Printf("  %d bytes -> %d bits framed -> %d samples at %d Hz\n",
			stats.payloadBytes, stats.frameBits, stats.samples, stats.sampleRate)
		fmt.Printf("  Transmission length: %.2fs, encoded in %.3fs\n",
			stats.airTime().Seconds(), time.Since(start).Seconds())
		return nil
	}

	out := *outputPath
	if out == "" {
		out = defaultDecodeOutput
	}
	start := time.Now()
	stats, err := decodeFile(m, *decodePath, out)
	if err != nil {
		return err
	}
	if stats.rateMismatch != nil {
		// Non-fatal: timing is off in proportion to the difference.
		fmt.Fprintln(os.Stderr, "warning:", stats.rateMismatch)
	}
	fmt.Printf("Decoded %s -> %s\n", filepath.Base(*decodePath), filepath.Base(out))
	fmt.Printf("  %d samples at %d Hz -> %d payload bits -> %d bytes\n",
		stats.samples, stats.sampleRate, stats.payloadBits, stats.payloadBytes)
	fmt.Printf("  Decoded in %.3fs\n", time.Since(start).Seconds())
	return nil
}

// loadConfig resolves the modem parameters for this invocation.
func loadConfig(path string, verbose bool) (*modem.Config, error) {
	if path == "" {
		return nil, nil // modem.New falls back to the nominal defaults
	}
	cfg, err := modem.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Config: %d Hz, %d baud, %d carriers %v",
			cfg.SampleRate, cfg.SymbolRate, len(cfg.Carriers), cfg.Carriers)
	}
	return cfg, nil
}
