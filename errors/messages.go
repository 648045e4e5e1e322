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

package errors

// error messages used by the core packages. kept to the handful of
// conditions that can actually occur inside vcscore; the debugger,
// GUI and disassembly messages that used to live here went with those
// packages.
const (
	// cpu
	UnimplementedInstruction = "cpu error: unimplemented instruction (%#02x) at (%#04x)"
	InvalidDuringExecution   = "cpu error: invalid operation mid-instruction (%v)"
	CPUBug                   = "cpu bug: %v"

	// memory
	UnpokeableAddress = "memory error: cannot poke address (%v)"
	UnpeekableAddress = "memory error: cannot peek address (%v)"
	MemoryBusError     = "memory error: inaccessible address (%#04x)"

	// cartridge
	CartridgeEjected = "cartridge error: no cartridge attached"
	CartridgeSize    = "cartridge error: unexpected cartridge size (%d bytes)"

	// tia
	UnknownTIARegister = "tia error: unrecognised register (%#04x)"
	PaletteSize        = "tia error: palette must have exactly %d entries"

	// audio
	WavWriter = "audio error: wav writer: %v"

	// prefs
	PrefsInvalidValue = "prefs: invalid value for %s (%v)"
)
