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

// Package cartridge implements the cartridge slot of the memory bus.
//
// Loading a ROM image from disk, and the many bank-switching schemes real
// VCS carts used (Atari's own 8K/16K/32K schemes, CBS's RAM+ROM scheme,
// Parker Brothers, M-Network, Tigervision, the DPC/DPC+/CDF coprocessor
// carts) are all an external collaborator's concern - vcscore only
// implements the flat 4KiB mapper every other scheme builds on. The
// Cartridge interface is kept small enough that a bank-switching mapper can
// be added later without touching the bus.
package cartridge

import "github.com/jetsetilly/vcscore/errors"

// Size is the number of bytes in a flat, unbanked VCS cartridge image.
const Size = 4096

// Cartridge is satisfied by anything the memory bus can route cartridge
// address space (0x1000-0x1fff) reads and writes to.
type Cartridge interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
	Peek(addr uint16) (uint8, error)
	Poke(addr uint16, data uint8) error
}

// Flat is a 4KiB ROM image with no bank-switching. addr is expected already
// normalised to the 0x000-0xfff range by the memory bus.
type Flat struct {
	data [Size]uint8
}

// NewFlat creates a Flat cartridge from a ROM image. The image must be
// exactly Size bytes.
func NewFlat(data []uint8) (*Flat, error) {
	if len(data) != Size {
		return nil, errors.Errorf("cartridge error: unexpected cartridge size (%d bytes)", len(data))
	}
	c := &Flat{}
	copy(c.data[:], data)
	return c, nil
}

// Read returns the byte at addr. Cartridge ROM is read-only; writes are
// ignored, matching real VCS cartridge hardware (there's nothing to
// acknowledge a write, the bus simply floats).
func (c *Flat) Read(addr uint16) (uint8, error) {
	return c.data[addr&0x0fff], nil
}

// Write is a no-op: flat cartridges have no writable state.
func (c *Flat) Write(addr uint16, data uint8) error {
	return nil
}

// Peek reads a byte without side effects, for debugging tools.
func (c *Flat) Peek(addr uint16) (uint8, error) {
	return c.Read(addr)
}

// Poke writes a byte directly into ROM, bypassing the normal (ignored)
// write path. Useful for patching a cartridge image under debugger control.
func (c *Flat) Poke(addr uint16, data uint8) error {
	c.data[addr&0x0fff] = data
	return nil
}
