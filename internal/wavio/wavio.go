// Package wavio is the audio-I/O collaborator of the modem: it reads and
// writes the 16-bit mono PCM WAV files that carry a transmission.
//
// Reading goes through github.com/go-audio/wav. Writing emits the RIFF
// container directly: the sample count is known up front, so the header is
// written once with final sizes and the PCM data streamed behind it.
package wavio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	modem "github.com/tphakala/go-acoustic-modem"
)

// WAV container layout constants (PCM, mono, 16-bit).
const (
	wavHeaderSize      = 44 // total header size in bytes
	wavRiffHeaderSize  = 36 // RIFF chunk size = riffHeaderSize + dataSize
	wavPCMSubchunkSize = 16 // fmt subchunk size for PCM
	wavFormatPCM       = 1  // AudioFormat tag for uncompressed PCM

	channelsMono     = 1
	bitsPerSample16  = 16
	bytesPerSample16 = 2

	writerBufferSize = 256 * 1024 // write buffer, large enough to matter for long payloads
)

// ReadPCM opens a WAV file and returns its sample rate and 16-bit mono PCM
// samples. Files that are not parseable 16-bit mono PCM WAV fail with a
// wrapped modem.ErrUnreadableAudio.
func ReadPCM(path string) (sampleRate int, samples []int16, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", modem.ErrUnreadableAudio, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, nil, fmt.Errorf("%w: %s is not a valid WAV file", modem.ErrUnreadableAudio, path)
	}
	format := dec.Format()
	if format.NumChannels != channelsMono {
		return 0, nil, fmt.Errorf("%w: %s has %d channels, want mono", modem.ErrUnreadableAudio, path, format.NumChannels)
	}
	if int(dec.BitDepth) != bitsPerSample16 {
		return 0, nil, fmt.Errorf("%w: %s is %d-bit, want 16-bit", modem.ErrUnreadableAudio, path, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", modem.ErrUnreadableAudio, err)
	}

	samples = make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	return format.SampleRate, samples, nil
}

// WritePCM writes samples as a 16-bit mono PCM WAV file at sampleRate.
func WritePCM(path string, sampleRate int, samples []int16) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriterSize(f, writerBufferSize)
	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return fmt.Errorf("wavio: write %q: %w", path, err)
	}

	buf := make([]byte, len(samples)*bytesPerSample16)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample16:], uint16(s))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wavio: write %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("wavio: write %q: %w", path, err)
	}
	return nil
}

// writeHeader emits the 44-byte RIFF/fmt/data header for 16-bit mono PCM with
// final sizes filled in.
func writeHeader(w *bufio.Writer, sampleRate, numSamples int) error {
	dataSize := uint32(numSamples * bytesPerSample16)
	byteRate := uint32(sampleRate * channelsMono * bytesPerSample16)
	blockAlign := uint16(channelsMono * bytesPerSample16)

	header := make([]byte, wavHeaderSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], wavRiffHeaderSize+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], wavPCMSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channelsMono)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample16)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	_, err := w.Write(header)
	return err
}
