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

// Package random wraps math/rand for the one place vcscore needs
// randomisation: filling RIOT RAM with an undefined value at power-on. Real
// hardware has no defined power-on state; the default behaviour (no Random,
// or one with ZeroSeed set) is to leave RAM at zero, matching spec's Reset
// semantics, but a Random instance can be asked to scatter a plausible
// power-on pattern instead.
package random

import "math/rand"

// Ticker supplies the current position of the emulated clock, used to vary
// the random sequence produced on different runs. Satisfied by
// *hardware/clocks.Clock.
type Ticker interface {
	Ticks() int
}

// Random generates rewindable pseudo-random byte sequences.
type Random struct {
	// ZeroSeed disables randomisation; Rewindable always behaves as if
	// asked for a fixed, ticker-independent sequence. Used by regression
	// tests that require a deterministic starting state.
	ZeroSeed bool

	ticker Ticker
}

// NewRandom creates a Random tied to the given Ticker.
func NewRandom(ticker Ticker) *Random {
	return &Random{ticker: ticker}
}

// Rewindable returns a pseudo-random byte. Calling it again with the same n,
// on a Random instance at the same point in the emulated clock, reproduces
// the same byte - necessary so that stepping backward and forward through
// emulation (outside the scope of this core, but relied on by consumers that
// implement rewind) doesn't change what "random" power-on state looks like.
func (r *Random) Rewindable(n int) uint8 {
	seed := int64(n)
	if !r.ZeroSeed && r.ticker != nil {
		seed += int64(r.ticker.Ticks())
	}
	src := rand.New(rand.NewSource(seed))
	return uint8(src.Intn(256))
}
