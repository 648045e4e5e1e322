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

package hardware

import (
	"github.com/jetsetilly/vcscore/errors"
	"github.com/jetsetilly/vcscore/hardware/cartridge"
	"github.com/jetsetilly/vcscore/hardware/clocks"
	"github.com/jetsetilly/vcscore/hardware/cpu"
	"github.com/jetsetilly/vcscore/hardware/memory"
	"github.com/jetsetilly/vcscore/hardware/riot"
	"github.com/jetsetilly/vcscore/hardware/tia"
	"github.com/jetsetilly/vcscore/hardware/tia/audio"
	"github.com/jetsetilly/vcscore/random"
)

// VCS is the root of the emulation: the 6507, the memory bus that routes it
// to the TIA/RIOT/cartridge, and the TIA's own video and audio generators,
// wired together and stepped as one unit. Ported from the original's
// Atari2600 struct (atari2600/atari2600.rs) and its run_atari2600 loop,
// restructured around a single Step rather than a function that owns the
// host's run/render/delay loop - that loop is a host concern, not this
// core's.
type VCS struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	TIA   *tia.TIA
	RIOT  *riot.RIOT
	Cart  cartridge.Cartridge
	Clock *clocks.Clock
	Audio *audio.TiaSound

	// Stereo selects GetNextAudioChunk's output format: interleaved stereo
	// when true, averaged mono when false.
	Stereo bool
}

// Option configures a VCS at construction time.
type Option func(*vcsConfig)

type vcsConfig struct {
	palette  *tia.Palette
	random   *random.Random
	realTime bool
	stereo   bool
}

// WithPalette selects the colour palette used to rasterize the display.
// Defaults to NTSCPalette.
func WithPalette(p *tia.Palette) Option {
	return func(c *vcsConfig) { c.palette = p }
}

// WithRandomPowerOn scatters RIOT RAM with rnd's pattern instead of leaving
// it zeroed, matching real SRAM's undefined power-on state. A nil rnd (the
// default) leaves RAM zeroed.
func WithRandomPowerOn(rnd *random.Random) Option {
	return func(c *vcsConfig) { c.random = rnd }
}

// WithRealTimeAudio enables the audio generator's real-time back-pressure
// policy (see hardware/tia/audio.TiaSound.RealTime) instead of the default
// truncate-on-overrun policy.
func WithRealTimeAudio(realTime bool) Option {
	return func(c *vcsConfig) { c.realTime = realTime }
}

// WithStereo selects interleaved-stereo output from GetNextAudioChunk rather
// than the default averaged-mono output.
func WithStereo(stereo bool) Option {
	return func(c *vcsConfig) { c.stereo = stereo }
}

// NewVCS creates a VCS around the given cartridge image, wiring the CPU to
// the reset vector it finds there.
func NewVCS(cart cartridge.Cartridge, opts ...Option) (*VCS, error) {
	cfg := vcsConfig{palette: tia.NTSCPalette()}
	for _, opt := range opts {
		opt(&cfg)
	}

	clock := &clocks.Clock{}

	var r *riot.RIOT
	if cfg.random != nil {
		r = riot.NewRIOTWithRandom(cfg.random)
	} else {
		r = riot.NewRIOT()
	}

	snd := audio.NewTiaSound(cfg.realTime)
	video := tia.NewTIA(cfg.palette, snd)
	mem := memory.NewMemory(video, r, cart, clock)

	c, err := cpu.NewCPU(mem, clock)
	if err != nil {
		return nil, err
	}

	return &VCS{
		CPU:    c,
		Mem:    mem,
		TIA:    video,
		RIOT:   r,
		Cart:   cart,
		Clock:  clock,
		Audio:  snd,
		Stereo: cfg.stereo,
	}, nil
}

// Step executes one CPU instruction, catches the TIA's display up to the
// resulting clock, and steps the audio generator so it keeps pace even
// across a run of instructions that never touch AUDC/AUDF/AUDV. Without this
// catch-up the display buffer would only ever be painted as far as the last
// register write, since screen_scan is otherwise only driven from
// TIA.WriteRegister.
func (v *VCS) Step() error {
	if _, err := v.CPU.Step(); err != nil {
		return err
	}
	v.TIA.ScreenScan(v.Clock, 0)
	v.Audio.Step(v.Clock)
	return nil
}

// Reset reloads the program counter from the cartridge's reset vector and
// zeroes the shared clock, as if the console had just been powered on.
func (v *VCS) Reset() error {
	v.Clock.Reset()
	return v.CPU.Reset()
}

// GenerateDisplay writes one frame's worth of RGB888 pixels (row-major,
// top-left origin) into buffer, which must be at least
// tia.FrameWidth*tia.FrameHeight*3 bytes long.
func (v *VCS) GenerateDisplay(buffer []byte) error {
	want := tia.FrameWidth * tia.FrameHeight * 3
	if len(buffer) < want {
		return errors.Errorf("display buffer too small: got %d bytes, want %d", len(buffer), want)
	}
	v.TIA.GenerateDisplay(buffer)
	return nil
}

// GetNextAudioChunk drains up to length samples from the audio generator's
// FIFO. With Stereo set it returns 2*length interleaved left/right bytes;
// otherwise it returns length bytes, each the average of the stereo pair the
// TIA's two channels produced for that sample.
func (v *VCS) GetNextAudioChunk(length int) []byte {
	stereo := v.Audio.GetNextAudioChunk(length)
	if v.Stereo {
		return stereo
	}

	mono := make([]byte, len(stereo)/audio.Channels)
	for i := range mono {
		l := int(stereo[i*audio.Channels])
		r := int(stereo[i*audio.Channels+1])
		mono[i] = byte((l + r) / 2)
	}
	return mono
}

// SetInput updates the switch/difficulty state the RIOT reports back via
// SWCHA/SWCHB.
func (v *VCS) SetInput(ports riot.Switches) {
	v.RIOT.SetSwitches(ports)
}
