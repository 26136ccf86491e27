// Command firwav runs a WAV file through a Kaiser-windowed FIR low-pass or
// high-pass filter and writes the result, optionally playing it back.
//
// Usage:
//
//	firwav [flags] input.wav output.wav
//
// Examples:
//
//	firwav -cutoff 2000 in.wav out.wav
//	firwav -type highpass -cutoff 300 -atten 80 -width 100 in.wav out.wav
//	firwav -dcblock -play in.wav out.wav
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-motion/dsp/core"
	"github.com/cwbudde/algo-motion/dsp/filter"
	"github.com/cwbudde/algo-motion/dsp/filter/design"
	"github.com/cwbudde/algo-motion/dsp/filter/fir"
	"github.com/cwbudde/algo-motion/dsp/filter/iir"
)

// dcBlockPole is the pole of the optional DC blocker
// y[n] = x[n] - x[n-1] + dcBlockPole*y[n-1].
const dcBlockPole = 0.995

func main() {
	kind := flag.String("type", "lowpass", "filter type: lowpass, highpass")
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	atten := flag.Float64("atten", 60, "stopband attenuation in dB")
	width := flag.Float64("width", 200, "transition width in Hz")
	dcblock := flag.Bool("dcblock", false, "remove DC with a one-pole IIR before the FIR")
	play := flag.Bool("play", false, "play the filtered audio after writing it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firwav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Filters a WAV file with a Kaiser-windowed FIR filter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	buf, err := readWAV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rate := float64(buf.Format.SampleRate)
	omega := 2 * math.Pi * *cutoff / rate
	w := 2 * math.Pi * *width / rate

	var gains []float64
	switch *kind {
	case "lowpass":
		gains, err = design.KaiserLowpass(omega, *atten, w)
	case "highpass":
		gains, err = design.KaiserHighpass(omega, *atten, w)
	default:
		err = fmt.Errorf("unknown filter type %q", *kind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d Hz, %d ch, %d bit, %d frames; %s %d taps\n",
		flag.Arg(0), buf.Format.SampleRate, buf.Format.NumChannels, buf.SourceBitDepth,
		buf.NumFrames(), *kind, len(gains))

	clipped := process(buf, gains, *dcblock)
	if clipped > 0 {
		fmt.Printf("warning: %d samples clipped\n", clipped)
	}

	if err := writeWAV(flag.Arg(1), buf); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *play {
		if err := playback(buf); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func readWAV(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(dec.BitDepth)
	}
	if err := checkFormat(buf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

// checkFormat rejects buffers process cannot handle.
func checkFormat(buf *audio.IntBuffer) error {
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return errors.New("no audio channels")
	}
	switch buf.SourceBitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", buf.SourceBitDepth)
	}
	return nil
}

// process filters buf in place, one filter chain per channel, and returns
// the number of clipped samples. buf must have passed checkFormat.
func process(buf *audio.IntBuffer, gains []float64, dcblock bool) int {
	channels := buf.Format.NumChannels
	scale := float64(int(1) << (buf.SourceBitDepth - 1))

	chains := make([][]filter.Processor[float64], channels)
	for ch := range chains {
		if dcblock {
			chains[ch] = append(chains[ch], iir.New([]float64{1, -1}, []float64{-dcBlockPole}))
		}
		chains[ch] = append(chains[ch], fir.New(gains))
	}

	clipped := 0
	for i, v := range buf.Data {
		x := float64(v) / scale
		for _, p := range chains[i%channels] {
			x = p.ProcessSample(x)
		}

		y := math.Round(x * scale)
		if c := core.Clamp(y, -scale, scale-1); c != y {
			y = c
			clipped++
		}
		buf.Data[i] = int(y)
	}

	return clipped
}

func writeWAV(path string, buf *audio.IntBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

func playback(buf *audio.IntBuffer) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   buf.Format.SampleRate,
		ChannelCount: buf.Format.NumChannels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	<-ready

	shift := buf.SourceBitDepth - 16
	pcm := make([]byte, 2*len(buf.Data))
	for i, v := range buf.Data {
		if shift > 0 {
			v >>= shift
		} else if shift < 0 {
			v <<= -shift
		}
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v)))
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	return player.Err()
}
