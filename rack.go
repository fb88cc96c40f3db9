// rack.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
// Adapted for the GADDAG-based move generator.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordplay

import "fmt"

// RackTile pairs a rack slot with the tile symbol occupying it.
type RackTile struct {
	Slot int
	Tile byte
}

// Rack holds up to RackSize tiles. present is a bitmask: bit i set
// means slot i currently holds a usable tile. Slots whose bit is
// clear are logically absent even if the underlying byte is stale,
// so mark/unmark never need to touch the tiles array itself — this
// is what keeps generate_all_moves's rack byte-identical across a
// full call.
type Rack struct {
	tiles   [RackSize]byte
	present uint8
	count   int
}

// NewRack returns an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// FromArrays builds a rack from the first length tiles of tiles.
func FromArrays(tiles []byte, length int) *Rack {
	if length < 0 || length > RackSize {
		panic(fmt.Sprintf("wordplay: invalid rack length %d", length))
	}
	r := &Rack{}
	for i := 0; i < length; i++ {
		t := tiles[i]
		if !isValidRackTile(t) {
			panic(fmt.Sprintf("wordplay: invalid rack tile %q", t))
		}
		r.tiles[i] = t
		r.present |= 1 << uint(i)
	}
	r.count = length
	return r
}

// MarkUsed removes slot from the set of available tiles without
// touching the stored symbol, so UnmarkUsed can restore it cheaply.
func (r *Rack) MarkUsed(slot int) {
	bit := uint8(1) << uint(slot)
	if r.present&bit == 0 {
		panic(fmt.Sprintf("wordplay: mark_used: slot %d already unavailable", slot))
	}
	r.present &^= bit
	r.count--
}

// UnmarkUsed restores slot to the set of available tiles.
func (r *Rack) UnmarkUsed(slot int) {
	bit := uint8(1) << uint(slot)
	if r.present&bit != 0 {
		panic(fmt.Sprintf("wordplay: unmark_used: slot %d already available", slot))
	}
	r.present |= bit
	r.count++
}

// AvailableTiles returns the currently usable (slot, tile) pairs in
// ascending slot order.
func (r *Rack) AvailableTiles() []RackTile {
	out := make([]RackTile, 0, r.count)
	for i := 0; i < RackSize; i++ {
		if r.present&(1<<uint(i)) != 0 {
			out = append(out, RackTile{Slot: i, Tile: r.tiles[i]})
		}
	}
	return out
}

// IsEmpty reports whether no tiles are currently available.
func (r *Rack) IsEmpty() bool {
	return r.count == 0
}

// Count returns the number of currently available tiles.
func (r *Rack) Count() int {
	return r.count
}

// Equal reports whether two racks are byte-identical, including the
// present mask and the raw slot contents (even stale, unmarked ones).
// This is the exact notion of equality generate_all_moves's
// pre/post-call invariant relies on.
func (r *Rack) Equal(other *Rack) bool {
	return *r == *other
}
