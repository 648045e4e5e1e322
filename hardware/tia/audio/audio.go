// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package audio implements the TIA's two polynomial-counter sound
// channels: AUDC/AUDF/AUDV drive a 4-bit and a 5-bit linear-feedback shift
// register per channel, whose low bit gates the channel's volume on and
// off at the programmed frequency divider. Ported from the original's
// TiaSound (audio/tiasound.rs); poly4/poly5/poly5clk are preserved
// bit-for-bit since they define the 16 documented AUDC distortion modes.
package audio

import (
	"sync"

	"github.com/jetsetilly/vcscore/hardware/clocks"
)

// Sample rate and channel count of the generated stream.
const (
	SampleRate   = 32050
	Channels     = 2
	freqDataMask = 0x1f
)

// colourClockHz is the rate at which the shared Clock advances: the TIA's
// own clock, ported from the original's Constants::CLOCK_HZ (the NTSC
// colour clock rate, clocks.NTSC_TIA MHz).
const colourClockHz = clocks.NTSC_TIA * 1_000_000

// channel holds one of the TIA's two independent sound generators.
type channel struct {
	waveForm uint8
	freq     uint8
	volume   uint8

	poly4, poly5 uint8
	freqPos      uint32
}

// poly4 clocks the 4-bit shift register one step, returning its next
// state. Preserved verbatim from the original - these boolean expressions
// are the documented AUDC distortion circuits, not something to simplify.
func poly4(audioCtrl, poly5State, poly4State uint8) uint8 {
	i := (audioCtrl&0xf == 0) ||
		(audioCtrl&0xc == 0 && (poly4State&0x3 != 0x3) && (poly4State&0x3 != 0) && (poly4State&0xf != 0xa)) ||
		(audioCtrl&0xc == 0xc && poly4State&0xc != 0 && poly4State&0x2 == 0) ||
		(audioCtrl&0xc == 0x4 && poly4State&0x8 == 0) ||
		(audioCtrl&0xc == 0x8 && poly5State&0x1 == 0)

	var bit uint8
	if i {
		bit = 1
	}
	return (0x7 ^ (poly4State >> 1)) | bit<<3
}

// poly5 clocks the 5-bit shift register one step, returning its next state.
func poly5(audioCtrl, poly5State, poly4State uint8) uint8 {
	in5 := (audioCtrl&0xf == 0) ||
		((audioCtrl&0x3 != 0 || poly4State&0xf == 0xa) && poly5State&0x1f == 0) ||
		!(((audioCtrl&0x3 != 0 || poly4State&0x1 == 0) && (poly5State&0x8 == 0 || audioCtrl&0x3 == 0)) != (poly5State&0x1 != 0))

	var bit uint8
	if in5 {
		bit = 1
	}
	return (poly5State >> 1) | bit<<4
}

// poly5clk reports whether poly4 should be clocked this step.
func poly5clk(audioCtrl, poly5State uint8) bool {
	return (audioCtrl&0x3 != 0x2 || poly5State&0x1e == 0x2) &&
		(audioCtrl&0x3 != 0x3 || poly5State&0x1 != 0)
}

func (c *channel) generate(length int) []uint8 {
	stream := make([]uint8, length)
	for i := 0; i < length; i++ {
		if c.freqPos%(uint32(c.freq)+1) == 0 {
			next5 := poly5(c.waveForm, c.poly5, c.poly4)
			if poly5clk(c.waveForm, c.poly5) {
				c.poly4 = poly4(c.waveForm, c.poly5, c.poly4)
			}
			c.poly5 = next5
		}
		if c.poly4&0x1 != 0 {
			stream[i] = (c.volume & 0xf) * 0x7
		}
		c.freqPos++
	}
	return stream
}

// TiaSound is the TIA's sound generator: two channels, resampled into an
// interleaved-stereo output stream the host drains via GetNextAudioChunk.
type TiaSound struct {
	// RealTime controls the back-pressure policy (spec.md section 4.3): in
	// real-time mode a host draining slower than generation should pace
	// itself against Backlog(); in unlimited mode the stream is simply
	// truncated to bound memory rather than grow without limit.
	RealTime bool

	mu             sync.Mutex
	channels       [Channels]channel
	lastUpdateTime int
	workingStream  []uint8
}

// NewTiaSound creates a sound generator.
func NewTiaSound(realtime bool) *TiaSound {
	return &TiaSound{RealTime: realtime}
}

// WriteAUDC0 sets channel 0's distortion mode.
func (s *TiaSound) WriteAUDC0(clock *clocks.Clock, data uint8) { s.writeCtrl(clock, 0, data) }

// WriteAUDC1 sets channel 1's distortion mode.
func (s *TiaSound) WriteAUDC1(clock *clocks.Clock, data uint8) { s.writeCtrl(clock, 1, data) }

// WriteAUDF0 sets channel 0's frequency divider.
func (s *TiaSound) WriteAUDF0(clock *clocks.Clock, data uint8) { s.writeFreq(clock, 0, data) }

// WriteAUDF1 sets channel 1's frequency divider.
func (s *TiaSound) WriteAUDF1(clock *clocks.Clock, data uint8) { s.writeFreq(clock, 1, data) }

// WriteAUDV0 sets channel 0's volume.
func (s *TiaSound) WriteAUDV0(clock *clocks.Clock, data uint8) { s.writeVol(clock, 0, data) }

// WriteAUDV1 sets channel 1's volume.
func (s *TiaSound) WriteAUDV1(clock *clocks.Clock, data uint8) { s.writeVol(clock, 1, data) }

func (s *TiaSound) writeCtrl(clock *clocks.Clock, ch int, data uint8) {
	s.preWriteGenerate(clock)
	s.channels[ch].waveForm = data
}

func (s *TiaSound) writeFreq(clock *clocks.Clock, ch int, data uint8) {
	s.preWriteGenerate(clock)
	s.channels[ch].freq = data & freqDataMask
}

func (s *TiaSound) writeVol(clock *clocks.Clock, ch int, data uint8) {
	s.preWriteGenerate(clock)
	s.channels[ch].volume = data
}

// Step catches the sound generator up to the current clock without any
// register having changed, called once per CPU step so audio keeps pace
// with a long run of instructions that never touch AUDC/AUDF/AUDV.
func (s *TiaSound) Step(clock *clocks.Clock) {
	s.preWriteGenerate(clock)
}

// preWriteGenerate produces however many samples have elapsed since the
// last catch-up and appends them (channel-interleaved) to the working
// stream, under the FIFO's mutex.
func (s *TiaSound) preWriteGenerate(clock *clocks.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := clock.Ticks() - s.lastUpdateTime
	if elapsed <= 0 {
		return
	}

	numSamples := int(uint64(SampleRate) * uint64(elapsed) / uint64(colourClockHz))
	raw0 := s.channels[0].generate(numSamples)
	raw1 := s.channels[1].generate(numSamples)

	s.lastUpdateTime += int(uint64(numSamples) * uint64(colourClockHz) / uint64(SampleRate))

	for i := 0; i < numSamples; i++ {
		s.workingStream = append(s.workingStream, raw0[i], raw1[i])
	}
}

// Backlog returns how many milliseconds of audio are queued and not yet
// drained, the back-pressure signal a real-time host can sleep against.
func (s *TiaSound) Backlog() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 1000 * (len(s.workingStream) / Channels) / SampleRate
}

// GetNextAudioChunk returns up to length interleaved stereo samples,
// draining them from the internal FIFO. In non-real-time mode, once the
// FIFO has built up a full chunk's worth of backlog it's dropped instead
// of returned, so a host that can't keep up doesn't slow the emulation
// down further.
func (s *TiaSound) GetNextAudioChunk(length int) []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := length * Channels
	if want > len(s.workingStream) {
		want = len(s.workingStream)
	}
	out := make([]uint8, want)
	copy(out, s.workingStream[:want])
	s.workingStream = s.workingStream[want:]

	if !s.RealTime && len(s.workingStream) >= length*Channels {
		s.workingStream = nil
	}

	return out
}
