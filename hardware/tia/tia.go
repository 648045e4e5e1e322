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

// Package tia implements the rasterizing half of the Television Interface
// Adaptor: the six graphics objects (playfield, two players, two missiles,
// one ball), their collision latches, and the screen_scan algorithm that
// paints a run of colour clocks into the display buffer lazily, catching up
// only when a register write forces it or a caller invokes ScreenScan
// directly (VCS.Step does so after every instruction).
//
// Ported directly from the original's Stella struct (graphics/stella.rs):
// every register write there recomputes one object's precomputed scanline
// (screen_scan is called with the *pre-write* clock value first, so the
// write's effect only becomes visible from the next pixel on), rather than
// tracking per-pixel position counters the way real hardware - and
// Gopher2600's own TIA - does it.
package tia

import "github.com/jetsetilly/vcscore/hardware/clocks"

// Frame geometry, ported verbatim from the original's Stella constants.
const (
	FrameWidth  = 160
	FrameHeight = 220

	horizontalBlank     = 68
	lateHorizontalBlank = 76
	horizontalTicks     = FrameWidth + horizontalBlank

	vblankLines   = 37
	overscanLines = 30

	startDrawY = 20
	endDrawY   = vblankLines + FrameHeight + overscanLines
)

// bit masks within VSYNC/VBLANK.
const (
	vsyncMask            = 0x2
	vsyncOn              = 0x2
	vsyncOff             = 0x0
	input45LatchMask     = 0x40
	blankPaddleRecharge  = 0x80
	blankMask            = 0x2
	blankOn              = 0x2
	blankOff             = 0x0
	pfPriority           = 0x4
)

// writeDelay tabulates how many colour clocks in the future each TIA
// register write's effect becomes visible, indexed by the register's
// offset within the 6-bit TIA write window (addr & 0x3f). A write's
// screen_scan happens against the *current* clock before the register
// changes; this table says how much further to draw before stopping, so
// that the old value paints right up to the moment it's superseded.
var writeDelay = [64]uint8{
	0x00: 1, 0x01: 1, 0x02: 1, 0x03: 1,
	0x04: 1, 0x05: 1, 0x06: 1, 0x07: 1,
	0x08: 1, 0x09: 1, 0x0a: 1, 0x0b: 1, 0x0c: 1,
	0x0d: 5, 0x0e: 5, 0x0f: 5,
	0x10: 5, 0x11: 5,
	0x12: 4, 0x13: 4, 0x14: 4,
	0x15: 1, 0x16: 1, 0x17: 1, 0x18: 1, 0x19: 1, 0x1a: 1,
	0x1b: 1, 0x1c: 1, 0x1d: 1, 0x1e: 1, 0x1f: 1,
	0x20: 1, 0x21: 1, 0x22: 1, 0x23: 1, 0x24: 1,
	0x25: 1, 0x26: 1, 0x27: 1,
	0x28: 1, 0x29: 1,
	0x2a: 6, 0x2b: 1, 0x2c: 1,
}

const defaultWriteDelay = 1

func delayFor(addr uint16) uint8 {
	d := writeDelay[addr&0x3f]
	if d == 0 {
		return defaultWriteDelay
	}
	return d
}

// lineState latches the colour/priority registers in effect while the
// scanline between the last catch-up and this one is painted - writes to
// these registers take effect for the row currently being drawn, not
// retroactively.
type lineState struct {
	p0Colour, p1Colour Colour
	backgroundColour   Colour
	playfieldColour    Colour
	ctrlpf             uint8
	hmp0, hmp1         uint8
	hmm0, hmm1         uint8
	hmbl               uint8
}

// AudioChip receives AUDC/AUDF/AUDV writes, which the TIA's own register
// decode routes through but doesn't otherwise interpret. Writes carry the
// shared clock because the generator resamples colour clocks elapsed
// since its last catch-up into output samples on every write.
type AudioChip interface {
	WriteAUDC0(clock *clocks.Clock, v uint8)
	WriteAUDC1(clock *clocks.Clock, v uint8)
	WriteAUDF0(clock *clocks.Clock, v uint8)
	WriteAUDF1(clock *clocks.Clock, v uint8)
	WriteAUDV0(clock *clocks.Clock, v uint8)
	WriteAUDV1(clock *clocks.Clock, v uint8)
}

// Ports supplies the INPT4/INPT5 joystick-fire-button bits the TIA reads
// back directly, unbuffered by RIOT.
type Ports struct {
	INPT4, INPT5 uint8
}

// TIA is the part of the chip responsible for video: object state,
// collision latches, and the lazily-painted display buffer.
type TIA struct {
	Audio AudioChip

	palette *Palette
	ports   Ports

	screenStartClock       int
	paddleStartClock       int
	lastScreenUpdateClock  int
	vsyncDebugOutputClock  int
	isVsync                bool
	isBlank                bool
	isInputLatched         bool
	isUpdateTime           bool
	isHmoveScan            bool

	nextLine lineState

	collisions collisions
	playfield  playfield
	p0, p1     player
	m0, m1     missile
	bl         ball

	// paddle capacitor-charge model: bit 7 goes high roughly
	// 20000+32000*position colour clocks after the paddle was last reset
	// via VBLANK's recharge bit. position is fixed at the Go core's
	// boundary at 0.5 (centred) since paddle position input isn't wired
	// to a host device in this core - the per-paddle INPTn bit is still
	// computed the documented way so a host can drive it by varying
	// Ports in a future revision.
	input0, input1, input2, input3 uint8

	display [endDrawY][FrameWidth]Colour
}

// NewTIA creates a TIA with the given palette (see NTSCPalette) and audio
// sink attached.
func NewTIA(palette *Palette, audio AudioChip) *TIA {
	t := &TIA{
		palette: palette,
		Audio:   audio,
		isBlank: true,
	}
	return t
}

// SetPorts updates the externally supplied joystick fire-button state.
func (t *TIA) SetPorts(p Ports) {
	t.ports.INPT4 = p.INPT4
	t.ports.INPT5 = p.INPT5
}

// ReadRegister services a CPU read of a TIA register (addr already
// normalised to the chip's own 0-0x7f window by the memory bus).
func (t *TIA) ReadRegister(addr uint16, clock *clocks.Clock) uint8 {
	switch addr & 0xf {
	case 0x0:
		return t.collisions.cxm0p
	case 0x1:
		return t.collisions.cxm1p
	case 0x2:
		return t.collisions.cxp0fb
	case 0x3:
		return t.collisions.cxp1fb
	case 0x4:
		return t.collisions.cxm0fb
	case 0x5:
		return t.collisions.cxm1fb
	case 0x6:
		return t.collisions.cxblpf
	case 0x7:
		return t.collisions.cxppmm
	case 0x8:
		t.input0 = paddleINPT(t.paddleStartClock, clock, 0.5, t.input0)
		return t.input0
	case 0x9:
		t.input1 = paddleINPT(t.paddleStartClock, clock, 0.5, t.input1)
		return t.input1
	case 0xa:
		t.input2 = paddleINPT(t.paddleStartClock, clock, 0.5, t.input2)
		return t.input2
	case 0xb:
		t.input3 = paddleINPT(t.paddleStartClock, clock, 0.5, t.input3)
		return t.input3
	case 0xc:
		return t.ports.INPT4
	case 0xd:
		return t.ports.INPT5
	}
	return 0
}

// paddleINPT implements the single-bit capacitor-charge model: bit 7 reads
// high once enough colour clocks have elapsed since the paddle was last
// reset. Once latched high it stays latched until the next recharge.
func paddleINPT(resetClock int, clock *clocks.Clock, position float64, current uint8) uint8 {
	if current != 0 {
		return current
	}
	threshold := resetClock + 20000 + int(32000*position)
	if clock.Ticks() > threshold {
		return 0x80
	}
	return 0x00
}

// WriteRegister services a CPU write of a TIA register. It returns false
// for an address the TIA doesn't recognise (>= 0x2d within its 6-bit
// window), which the memory bus treats as the "unmapped address" case.
func (t *TIA) WriteRegister(addr uint16, data uint8, clock *clocks.Clock) bool {
	future := delayFor(addr)
	if !t.isBlank {
		t.ScreenScan(clock, future)
	}
	return t.writeFunctions(addr, data, clock, future)
}

func (t *TIA) writeFunctions(addr uint16, data uint8, clock *clocks.Clock, future uint8) bool {
	switch addr & 0x3f {
	case 0x00:
		t.writeVSYNC(clock, data)
	case 0x01:
		t.writeVBLANK(clock, data)
	case 0x02:
		t.writeWSYNC(clock)
	case 0x03:
		t.writeRSYNC(clock)
	case 0x04:
		t.p0.updateNUSIZ(data)
		t.m0.updateNUSIZ(data)
	case 0x05:
		t.p1.updateNUSIZ(data)
		t.m1.updateNUSIZ(data)
	case 0x06:
		t.nextLine.p0Colour = t.palette.Get(data)
	case 0x07:
		t.nextLine.p1Colour = t.palette.Get(data)
	case 0x08:
		t.nextLine.playfieldColour = t.palette.Get(data)
	case 0x09:
		t.nextLine.backgroundColour = t.palette.Get(data)
	case 0x0a:
		t.nextLine.ctrlpf = data
		t.playfield.updateCTRLPF(data)
		t.bl.updateCTRLPF(data)
	case 0x0b:
		t.p0.updateREFP(data)
	case 0x0c:
		t.p1.updateREFP(data)
	case 0x0d:
		t.playfield.updatePF0(data)
	case 0x0e:
		t.playfield.updatePF1(data)
	case 0x0f:
		t.playfield.updatePF2(data)
	case 0x10:
		t.p0.updateRESP(t.posFromClock(clock, future))
	case 0x11:
		t.p1.updateRESP(t.posFromClock(clock, future))
	case 0x12:
		t.m0.updateRESM(t.posFromClock(clock, future))
	case 0x13:
		t.m1.updateRESM(t.posFromClock(clock, future))
	case 0x14:
		t.bl.updateRESBL(t.posFromClock(clock, future))
	case 0x15:
		t.Audio.WriteAUDC0(clock, data)
	case 0x16:
		t.Audio.WriteAUDC1(clock, data)
	case 0x17:
		t.Audio.WriteAUDF0(clock, data)
	case 0x18:
		t.Audio.WriteAUDF1(clock, data)
	case 0x19:
		t.Audio.WriteAUDV0(clock, data)
	case 0x1a:
		t.Audio.WriteAUDV1(clock, data)
	case 0x1b:
		t.p0.updateP(data)
		t.p1.updatePOld(t.p1.p)
	case 0x1c:
		t.p1.updateP(data)
		t.p0.updatePOld(t.p0.p)
		t.bl.updateENABLOld(t.bl.enabl)
	case 0x1d:
		t.m0.updateENAM(data)
	case 0x1e:
		t.m1.updateENAM(data)
	case 0x1f:
		t.bl.updateENABL(data)
	case 0x20:
		t.nextLine.hmp0 = data
	case 0x21:
		t.nextLine.hmp1 = data
	case 0x22:
		t.nextLine.hmm0 = data
	case 0x23:
		t.nextLine.hmm1 = data
	case 0x24:
		t.nextLine.hmbl = data
	case 0x25:
		t.p0.updateVDELP(data)
	case 0x26:
		t.p1.updateVDELP(data)
	case 0x27:
		t.bl.updateVDELBL(data)
	case 0x28, 0x29:
		// RESMP0/RESMP1: accepted, but locking a missile to its player is
		// not modelled.
	case 0x2a:
		t.hmove(clock)
	case 0x2b:
		t.nextLine.hmp0 = 0
		t.nextLine.hmp1 = 0
		t.nextLine.hmm0 = 0
		t.nextLine.hmm1 = 0
		t.nextLine.hmbl = 0
	case 0x2c:
		t.collisions.clear()
	default:
		return false
	}
	return true
}

func (t *TIA) posFromClock(clock *clocks.Clock, future uint8) uint8 {
	return uint8((clock.Ticks() + int(future) - t.screenStartClock) % horizontalTicks)
}

func (t *TIA) writeVSYNC(clock *clocks.Clock, data uint8) {
	if !t.isVsync {
		if data&vsyncMask == vsyncOn {
			t.isUpdateTime = true
			t.isVsync = true
		}
	} else if data&vsyncMask == vsyncOff {
		t.isVsync = false
		t.vsyncDebugOutputClock = clock.Ticks()
		t.screenStartClock = clock.Ticks()
		t.lastScreenUpdateClock = t.screenStartClock
	}
}

func (t *TIA) writeVBLANK(clock *clocks.Clock, data uint8) {
	t.isInputLatched = data&input45LatchMask != 0

	if data&blankPaddleRecharge == blankPaddleRecharge {
		t.paddleStartClock = clock.Ticks()
		t.input0 = 0x00
		t.input1 = 0x00
		t.input2 = 0x00
		t.input3 = 0x00
	}

	if data&blankMask == blankOn {
		t.isBlank = true
	} else if data&blankMask == blankOff {
		t.isBlank = false
	}
}

// writeWSYNC halts the CPU until the start of the next scanline by
// advancing the shared Clock directly - WSYNC's entire effect is this
// stall, there's no register state to update.
func (t *TIA) writeWSYNC(clock *clocks.Clock) {
	elapsed := (clock.Ticks() - t.screenStartClock) % horizontalTicks
	if elapsed > 3 {
		clock.AddTicks(horizontalTicks - elapsed)
	}
}

// writeRSYNC resets the horizontal counter early, a few clocks short of a
// full line (the "fudge" accounts for the reset's own latency on real
// hardware).
func (t *TIA) writeRSYNC(clock *clocks.Clock) {
	const fudge = 3
	elapsed := clock.Ticks() - t.screenStartClock
	if elapsed > 3 {
		clock.AddTicks(horizontalTicks - (elapsed+fudge)%horizontalTicks)
	}
}

func (t *TIA) hmove(clock *clocks.Clock) {
	t.isHmoveScan = true

	sinceScan := uint8((clock.Ticks() - t.screenStartClock) % horizontalTicks)
	t.p0.resp = (t.p0.resp - hmoveClocks(t.nextLine.hmp0, sinceScan)) % horizontalTicks
	t.p1.resp = (t.p1.resp - hmoveClocks(t.nextLine.hmp1, sinceScan)) % horizontalTicks
	t.m0.resm = (t.m0.resm - hmoveClocks(t.nextLine.hmm0, sinceScan)) % horizontalTicks
	t.m1.resm = (t.m1.resm - hmoveClocks(t.nextLine.hmm1, sinceScan)) % horizontalTicks
	t.bl.resbl = (t.bl.resbl - hmoveClocks(t.nextLine.hmbl, sinceScan)) % horizontalTicks

	t.p0.update()
	t.p1.update()
	t.m0.update()
	t.m1.update()
	t.bl.update()
}

// hmoveClocks approximates the extra motion HMOVE applies, keyed on the
// horizontal scan count in CPU cycles (colour clocks / 3) since the start of
// the scanline: a signed 4-bit shift (hm's top nibble, sign-extended) for
// counts 0-4 and 75, that shift plus the documented +8 "late HMOVE" quirk
// for counts 73-74, and no motion at any other count. Real hardware drives
// this off the TIA's own counters for every clock of the line; this is a lookup-table approximation of that,
// matching the original's TODO-flagged hmove_clocks.
func hmoveClocks(hm uint8, ticksSinceScanStart uint8) uint8 {
	shift := int8(hm) >> 4
	horizontalScanCount := ticksSinceScanStart / clocks.CyclesToClock
	switch {
	case horizontalScanCount <= 4:
		return uint8(shift)
	case horizontalScanCount == 73 || horizontalScanCount == 74:
		return uint8(shift + 8)
	case horizontalScanCount == 75:
		return uint8(shift)
	default:
		return 0
	}
}

// ScreenScan paints every colour clock between the last catch-up point and
// clock.Ticks()+future into the display buffer, applying collision
// detection as it goes. future_pixels lets a register write finish drawing
// up to the moment its own effect becomes visible, per the write-delay
// table, before the register actually changes.
func (t *TIA) ScreenScan(clock *clocks.Clock, future uint8) {
	lastScreenPos := t.lastScreenUpdateClock - t.screenStartClock
	screenPos := clock.Ticks() - t.screenStartClock + int(future)

	yStart := lastScreenPos/horizontalTicks - startDrawY
	yStop := screenPos/horizontalTicks - startDrawY

	if yStop < endDrawY-startDrawY && yStart >= 0 && yStop >= 0 {
		priorityCtrl := t.nextLine.ctrlpf&pfPriority == 0
		p0Colour := t.nextLine.p0Colour
		p1Colour := t.nextLine.p1Colour
		pfColour := t.nextLine.playfieldColour
		bgColour := t.nextLine.backgroundColour

		xStart := 0
		if lastScreenPos%horizontalTicks >= horizontalBlank {
			xStart = lastScreenPos%horizontalTicks - horizontalBlank
		}
		lastXStop := 0
		if screenPos%horizontalTicks >= horizontalBlank {
			lastXStop = screenPos%horizontalTicks - horizontalBlank
		}

		for y := yStart; y <= yStop; y++ {
			xStop := FrameWidth
			if y == yStop {
				xStop = lastXStop
			}

			if t.isHmoveScan {
				blankingPixels := lateHorizontalBlank - horizontalBlank
				if xStart < blankingPixels {
					xStart = blankingPixels
				}
				if xStop >= blankingPixels {
					t.isHmoveScan = false
				}
			}

			line := &t.display[y]
			for x := xStart; x < xStop; x++ {
				pf := t.playfield.scan[x]
				bl := t.bl.scan[x]
				m1 := t.m1.scan[x]
				p1 := t.p1.scan[x]
				m0 := t.m0.scan[x]
				p0 := t.p0.scan[x]

				pixel := bgColour
				hits := 0

				paintPF := func() {
					pixel = pfColour
					if bl {
						hits++
					}
					if pf {
						hits++
					}
				}
				paint1 := func() {
					pixel = p1Colour
					if m1 {
						hits++
					}
					if p1 {
						hits++
					}
				}
				paint0 := func() {
					pixel = p0Colour
					if m0 {
						hits++
					}
					if p0 {
						hits++
					}
				}

				if priorityCtrl {
					if pf || bl {
						paintPF()
					}
					if p1 || m1 {
						paint1()
					}
					if p0 || m0 {
						paint0()
					}
				} else {
					if p1 || m1 {
						paint1()
					}
					if p0 || m0 {
						paint0()
					}
					if pf || bl {
						paintPF()
					}
				}

				if hits > 1 {
					t.collisions.update(p0, p1, m0, m1, bl, pf)
				}

				line[x] = pixel
			}

			xStart = 0
		}
	}

	t.lastScreenUpdateClock = clock.Ticks() + int(future)
}

// Export reports and clears whether a VSYNC-on transition has occurred
// since the last call, the signal a host uses to know a frame is ready.
func (t *TIA) Export() bool {
	result := t.isUpdateTime
	t.isUpdateTime = false
	return result
}

// GenerateDisplay writes FrameWidth*FrameHeight RGB888 pixels (row-major,
// top-left origin) into buffer, which must be at least
// FrameWidth*FrameHeight*3 bytes long.
func (t *TIA) GenerateDisplay(buffer []byte) {
	i := 0
	for y := 0; y < FrameHeight; y++ {
		line := &t.display[y+startDrawY]
		for x := 0; x < FrameWidth; x++ {
			buffer[i] = line[x].R
			buffer[i+1] = line[x].G
			buffer[i+2] = line[x].B
			i += 3
		}
	}
}
