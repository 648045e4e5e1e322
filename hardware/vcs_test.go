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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/hardware"
	"github.com/jetsetilly/vcscore/hardware/cartridge"
	"github.com/jetsetilly/vcscore/hardware/riot"
	"github.com/jetsetilly/vcscore/hardware/tia"
	"github.com/jetsetilly/vcscore/test"
)

// blankCart builds a flat 4KiB cartridge image with a given reset vector and
// otherwise all NOPs (0xea), leaving room for the caller to patch in a short
// program at the start of the image.
func blankCart(t *testing.T, resetVector uint16, program ...uint8) *cartridge.Flat {
	t.Helper()
	data := make([]uint8, cartridge.Size)
	for i := range data {
		data[i] = 0xea // NOP
	}
	copy(data, program)
	data[0x0ffc] = uint8(resetVector)
	data[0x0ffd] = uint8(resetVector >> 8)
	c, err := cartridge.NewFlat(data)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestResetLoadsProgramCounterFromCartridgeVector(t *testing.T) {
	cart := blankCart(t, 0x1234)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectEquality(t, vcs.CPU.Reg.PC, uint16(0x1234))
}

func TestStepAdvancesClockByInstructionCycles(t *testing.T) {
	cart := blankCart(t, 0x1000) // NOP at reset vector: 2 cycles
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	if err := vcs.Step(); err != nil {
		t.Fatal(err)
	}
	test.ExpectEquality(t, vcs.Clock.Ticks(), 2*3)
}

func TestGenerateDisplayFillsAFullFrameBuffer(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	buffer := make([]byte, tia.FrameWidth*tia.FrameHeight*3)
	if err := vcs.GenerateDisplay(buffer); err != nil {
		t.Fatal(err)
	}
	test.ExpectEquality(t, len(buffer), tia.FrameWidth*tia.FrameHeight*3)
}

// TestVSYNCWriteThroughBusSignalsFrameReady exercises the end-to-end wiring
// of a CPU-style register write (through VCS.Mem, exactly as the memory bus
// routes a real STA zbv instruction) reaching the TIA's own frame-ready
// latch.
func TestVSYNCWriteThroughBusSignalsFrameReady(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectEquality(t, vcs.TIA.Export(), false)
	if err := vcs.Mem.Write(0x00, 0x02); err != nil { // VSYNC on
		t.Fatal(err)
	}
	test.ExpectEquality(t, vcs.TIA.Export(), true)
}

func TestGenerateDisplayRejectsUndersizedBuffer(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	err = vcs.GenerateDisplay(make([]byte, 1))
	test.ExpectEquality(t, err != nil, true)
}

func TestSilentAudioProducesZeroBytes(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart, hardware.WithStereo(true))
	if err != nil {
		t.Fatal(err)
	}
	vcs.Mem.Write(0x19, 0x00) // AUDV0 = 0
	vcs.Mem.Write(0x1a, 0x00) // AUDV1 = 0
	for i := 0; i < 100; i++ {
		if err := vcs.Step(); err != nil {
			t.Fatal(err)
		}
	}

	chunk := vcs.GetNextAudioChunk(1024)
	for i, b := range chunk {
		if b != 0 {
			t.Fatalf("expected silence, got %d at offset %d", b, i)
		}
	}
}

func TestMonoAudioChunkIsAtMostLength(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart) // Stereo defaults to false
	if err != nil {
		t.Fatal(err)
	}
	vcs.Mem.Write(0x19, 0x00)
	vcs.Mem.Write(0x1a, 0x00)
	for i := 0; i < 100; i++ {
		if err := vcs.Step(); err != nil {
			t.Fatal(err)
		}
	}
	chunk := vcs.GetNextAudioChunk(64)
	test.ExpectEquality(t, len(chunk) <= 64, true)
}

func TestSetInputUpdatesSwitches(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	vcs.SetInput(riot.Switches{SWCHA: 0xff, SWCHB: 0x3f})
	a, err := vcs.Mem.Read(0x280) // SWCHA, RIOT I/O page
	if err != nil {
		t.Fatal(err)
	}
	test.ExpectEquality(t, a, uint8(0xff))
}

func TestDefaultPowerOnLeavesRIOTRAMZeroed(t *testing.T) {
	cart := blankCart(t, 0x1000)
	vcs, err := hardware.NewVCS(cart)
	if err != nil {
		t.Fatal(err)
	}
	allZero := true
	for _, b := range vcs.RIOT.RAM {
		if b != 0 {
			allZero = false
			break
		}
	}
	test.ExpectEquality(t, allZero, true)
}
