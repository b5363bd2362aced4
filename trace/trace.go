// This file is part of Famisim.
//
// Famisim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famisim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famisim.  If not, see <https://www.gnu.org/licenses/>.

// Package trace records the state of the CPU pins, one entry per half-cycle,
// and writes the recording as text or as a WAV file.
//
// In the WAV file each pin is a channel of 8-bit samples and each half-cycle
// is one sample. A high pin is the maximum sample value and a low pin is the
// minimum. Opening the file in an audio editor shows the pins in the manner of
// a logic analyser. The order of the channels is:
//
//	PHI2, RnW, SYNC, A0 to A15, D0 to D7
package trace

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/bench"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/logger"
)

// Error is the pattern for all errors raised by the package.
const Error = "trace: %v"

// SampleRate of the WAV file. The value is nominal, one sample is one
// half-cycle whatever the value.
const SampleRate = 44100

// NumChannels is the number of channels in the WAV file.
const NumChannels = 3 + 16 + 8

// sample values for low and high pins. an undefined or floating pin is
// written as the mid-point.
const (
	sampleLow  = 0
	sampleMid  = 128
	sampleHigh = 255
)

// Recorder collects the pin states of a bench.
type Recorder struct {
	// record only the PHI2 half-cycles
	PHI2Only bool

	entries []bench.PinState
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(phi2Only bool) *Recorder {
	return &Recorder{
		PHI2Only: phi2Only,
	}
}

// Attach the recorder to a bench. Recording begins with the next half-cycle.
func (rec *Recorder) Attach(b *bench.Bench) {
	b.AddObserver(rec.Observe)
}

// Observe implements the bench.Observer type.
func (rec *Recorder) Observe(ps bench.PinState) {
	if rec.PHI2Only && ps.PHI2 != logic.One {
		return
	}
	rec.entries = append(rec.entries, ps)
}

// Len returns the number of entries in the recording.
func (rec *Recorder) Len() int {
	return len(rec.entries)
}

// Clear the recording.
func (rec *Recorder) Clear() {
	rec.entries = rec.entries[:0]
}

// WriteText writes one line for every entry in the recording.
func (rec *Recorder) WriteText(w io.Writer) error {
	for _, e := range rec.entries {
		if _, err := fmt.Fprintln(w, textEntry(e)); err != nil {
			return curated.Errorf(Error, err)
		}
	}
	return nil
}

func textEntry(e bench.PinState) string {
	phase := "PHI1"
	if e.PHI2 == logic.One {
		phase = "PHI2"
	}

	var rw string
	switch e.RnW {
	case logic.One:
		rw = "R"
	case logic.Zero:
		rw = "W"
	default:
		rw = "?"
	}

	sync := ""
	if e.SYNC == logic.One {
		sync = " SYNC"
	}

	return fmt.Sprintf("%8d %s %04x %02x %s%s", e.HalfCycle, phase, e.Address, e.Data, rw, sync)
}

func pinSample(s logic.Signal) int {
	switch s {
	case logic.One:
		return sampleHigh
	case logic.Zero:
		return sampleLow
	}
	return sampleMid
}

func bitSample(v uint16, n int) int {
	if v&(1<<n) != 0 {
		return sampleHigh
	}
	return sampleLow
}

// WriteWAV writes the recording as a multichannel WAV file.
func (rec *Recorder) WriteWAV(w io.WriteSeeker) error {
	if len(rec.entries) == 0 {
		return curated.Errorf(Error, "nothing to write")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  SampleRate,
		},
		Data:           make([]int, 0, len(rec.entries)*NumChannels),
		SourceBitDepth: 8,
	}

	for _, e := range rec.entries {
		buf.Data = append(buf.Data, pinSample(e.PHI2), pinSample(e.RnW), pinSample(e.SYNC))
		for n := 0; n < 16; n++ {
			buf.Data = append(buf.Data, bitSample(e.Address, n))
		}
		for n := 0; n < 8; n++ {
			buf.Data = append(buf.Data, bitSample(uint16(e.Data), n))
		}
	}

	// audio format 1 is PCM
	enc := wav.NewEncoder(w, SampleRate, 8, NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(Error, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(Error, err)
	}

	logger.Logf(logger.Allow, "trace", "wrote %d samples in %d channels", len(rec.entries), NumChannels)

	return nil
}
