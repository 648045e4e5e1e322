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

// Package memory implements the pure combinational address decode that
// routes every CPU access to the right chip: the TIA, the RIOT's RAM/stack
// and ports, or the cartridge. There are no wait states beyond what the
// addressing-mode cycle counts in hardware/cpu already account for - a
// Read/Write call resolves in zero emulated time of its own. Ported from
// the original's Memory struct (memory/memory.rs), with memorymap.Classify
// standing in for its STELLA_MASK/RIOT_MASK/ROM_ADDRLINE decode.
package memory

import (
	"github.com/jetsetilly/vcscore/errors"
	"github.com/jetsetilly/vcscore/hardware/cartridge"
	"github.com/jetsetilly/vcscore/hardware/clocks"
	"github.com/jetsetilly/vcscore/hardware/memory/memorymap"
	"github.com/jetsetilly/vcscore/hardware/riot"
)

// Chip is satisfied by the TIA: the only chip register reads the CPU sees
// other than RIOT's are the TIA's, and read-only/write-only behaviour lives
// entirely inside the TIA's own register decode. WriteRegister reports
// whether addr named a recognised register; an unrecognised write (TIA
// addresses >= 0x2D) is the "unmapped address" case the bus's Debug flag
// cares about. Both methods take the shared Clock because the TIA's
// screen_scan catch-up and paddle capacitor model are clock-driven.
type Chip interface {
	ReadRegister(addr uint16, clock *clocks.Clock) uint8
	WriteRegister(addr uint16, data uint8, clock *clocks.Clock) (recognised bool)
}

// Memory is the 6507's view of the whole 8KiB address space.
type Memory struct {
	TIA   Chip
	RIOT  *riot.RIOT
	Cart  cartridge.Cartridge
	Clock *clocks.Clock

	// Debug makes an invalid write (to an unmapped address below the
	// cartridge space) a reported error instead of being silently
	// ignored, per the fatal/ignored error taxonomy: unmapped writes are
	// fatal in a debugging context and harmless noise otherwise.
	Debug bool
}

// NewMemory creates a Memory with the given chips already attached.
func NewMemory(tia Chip, r *riot.RIOT, cart cartridge.Cartridge, clock *clocks.Clock) *Memory {
	return &Memory{TIA: tia, RIOT: r, Cart: cart, Clock: clock}
}

// Read services a CPU read at address, satisfying bus.CPUBus.
func (m *Memory) Read(address uint16) (uint8, error) {
	addr := memorymap.Normalise(address)
	switch memorymap.Classify(addr) {
	case memorymap.TIA:
		return m.TIA.ReadRegister(memorymap.MapChip(addr), m.Clock), nil
	case memorymap.RAM:
		return m.RIOT.ReadRAM(memorymap.MapRAM(addr)), nil
	case memorymap.RIOT:
		return m.RIOT.Read(memorymap.MapChip(addr)), nil
	case memorymap.Cartridge:
		return m.Cart.Read(addr & 0x0fff)
	}
	return 0, errors.Errorf(errors.MemoryBusError, address)
}

// Write services a CPU write at address, satisfying bus.CPUBus.
func (m *Memory) Write(address uint16, data uint8) error {
	addr := memorymap.Normalise(address)
	switch memorymap.Classify(addr) {
	case memorymap.TIA:
		if !m.TIA.WriteRegister(memorymap.MapChip(addr), data, m.Clock) && m.Debug {
			return errors.Errorf(errors.MemoryBusError, address)
		}
		return nil
	case memorymap.RAM:
		m.RIOT.WriteRAM(memorymap.MapRAM(addr), data)
		return nil
	case memorymap.RIOT:
		m.RIOT.Write(memorymap.MapChip(addr), data)
		return nil
	case memorymap.Cartridge:
		return m.Cart.Write(addr&0x0fff, data)
	}
	return nil
}

// Peek reads a byte without side effects, satisfying bus.DebuggerBus.
func (m *Memory) Peek(address uint16) (uint8, error) {
	addr := memorymap.Normalise(address)
	if memorymap.Classify(addr) == memorymap.Cartridge {
		return m.Cart.Peek(addr & 0x0fff)
	}
	return m.Read(address)
}

// Poke writes a byte directly, bypassing chip-specific write behaviour
// where that matters (cartridge ROM), satisfying bus.DebuggerBus.
func (m *Memory) Poke(address uint16, value uint8) error {
	addr := memorymap.Normalise(address)
	if memorymap.Classify(addr) == memorymap.Cartridge {
		return m.Cart.Poke(addr&0x0fff, value)
	}
	return m.Write(address, value)
}
