// move.go
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

import (
	"fmt"
	"sort"
	"strings"
)

// Move records the newly placed tiles of a single legal play, as
// parallel arrays of tile symbols and board positions. It never
// records the pre-existing board tiles the word also touches, and it
// never records which rack slot supplied each tile (see DESIGN.md for
// what that costs the optional scoring package).
type Move struct {
	Tiles     [RackSize]byte
	Positions [RackSize]int
	Len       int
}

// append adds one newly placed tile to the move. It is only ever
// called and unwound within a single recursive generation step, so it
// keeps the same stack discipline as Rack.MarkUsed/UnmarkUsed.
func (m *Move) append(tile byte, position int) {
	if m.Len >= RackSize {
		panic("wordplay: move already has RackSize tiles")
	}
	m.Tiles[m.Len] = tile
	m.Positions[m.Len] = position
	m.Len++
}

// removeLast undoes the most recent append.
func (m *Move) removeLast() {
	if m.Len == 0 {
		panic("wordplay: removeLast on empty move")
	}
	m.Len--
}

// pair is a single (position, tile) placement used to compare moves
// as a multiset, independent of the order tiles were placed in.
type pair struct {
	pos  int
	tile byte
}

func (m Move) pairs() []pair {
	out := make([]pair, m.Len)
	for i := 0; i < m.Len; i++ {
		out[i] = pair{m.Positions[i], m.Tiles[i]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos < out[j].pos })
	return out
}

// Equal reports whether two moves place the same tiles at the same
// positions, regardless of placement order.
func (m Move) Equal(other Move) bool {
	if m.Len != other.Len {
		return false
	}
	a, b := m.pairs(), other.pairs()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// key returns a canonical string uniquely identifying the multiset of
// (position, tile) placements, used to deduplicate moves discovered
// via different anchors or recursion paths.
func (m Move) key() string {
	var sb strings.Builder
	for _, p := range m.pairs() {
		fmt.Fprintf(&sb, "%d:%c,", p.pos, p.tile)
	}
	return sb.String()
}
