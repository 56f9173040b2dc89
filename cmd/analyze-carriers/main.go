// Command analyze-carriers inspects a recorded transmission WAV and reports
// how much spectral energy sits on each configured carrier frequency. Useful
// for checking that a recording actually contains the expected tones before
// blaming the demodulator.
//
// Usage:
//
//	analyze-carriers recording.wav
//	analyze-carriers -config modem.yaml -top 10 recording.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math/cmplx"
	"os"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	modem "github.com/tphakala/go-acoustic-modem"
	"github.com/tphakala/go-acoustic-modem/internal/wavio"
)

const defaultTopBins = 8

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML modem parameter file (default: nominal design constants)")
	topBins := flag.Int("top", defaultTopBins, "Number of strongest spectrum bins to list")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] recording.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("exactly one WAV file is required")
	}
	path := flag.Arg(0)

	cfg := modem.DefaultConfig()
	if *configPath != "" {
		loaded, err := modem.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	rate, samples, err := wavio.ReadPCM(path)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("%s contains no samples", path)
	}

	signal := make([]float64, len(samples))
	for i, s := range samples {
		signal[i] = float64(s)
	}

	fft := fourier.NewFFT(len(signal))
	coeffs := fft.Coefficients(nil, signal)
	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	fmt.Printf("=== Carrier energy in %s ===\n", path)
	fmt.Printf("%d samples at %d Hz (%.2fs), %d spectrum bins, %.2f Hz/bin\n\n",
		len(samples), rate, float64(len(samples))/float64(rate),
		len(mags), float64(rate)/float64(len(signal)))

	fmt.Println("Configured carriers:")
	for _, f := range cfg.Carriers {
		bin := carrierBin(f, rate, len(signal))
		if bin < 0 || bin >= len(mags) {
			fmt.Printf("  %7.0f Hz: above Nyquist for this recording\n", f)
			continue
		}
		fmt.Printf("  %7.0f Hz (bin %6d): magnitude %.3e\n", f, bin, mags[bin])
	}

	fmt.Printf("\nStrongest %d bins:\n", *topBins)
	order := make([]int, len(mags))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return mags[order[a]] > mags[order[b]] })
	for i := 0; i < *topBins && i < len(order); i++ {
		bin := order[i]
		freq := float64(bin) * float64(rate) / float64(len(signal))
		fmt.Printf("  %9.1f Hz (bin %6d): magnitude %.3e\n", freq, bin, mags[bin])
	}
	return nil
}

// carrierBin returns the spectrum bin nearest to freq for an n-point FFT at
// the given sample rate.
func carrierBin(freq float64, rate, n int) int {
	return int(freq*float64(n)/float64(rate) + 0.5)
}
