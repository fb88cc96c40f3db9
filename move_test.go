package wordplay

import "testing"

func TestMoveEqualIgnoresPlacementOrder(t *testing.T) {
	var a, b Move
	a.append('C', 10)
	a.append('A', 11)
	a.append('T', 12)

	b.append('T', 12)
	b.append('C', 10)
	b.append('A', 11)

	if !a.Equal(b) {
		t.Fatal("moves placing the same tiles at the same positions should be equal regardless of order")
	}
}

func TestMoveEqualDiffersOnPosition(t *testing.T) {
	var a, b Move
	a.append('C', 10)
	b.append('C', 11)
	if a.Equal(b) {
		t.Fatal("moves at different positions should not be equal")
	}
}

func TestMoveAppendRemoveLast(t *testing.T) {
	var m Move
	m.append('A', 1)
	m.append('B', 2)
	if m.Len != 2 {
		t.Fatalf("Len = %d, want 2", m.Len)
	}
	m.removeLast()
	if m.Len != 1 || m.Tiles[0] != 'A' {
		t.Fatalf("removeLast left Len=%d Tiles[0]=%q", m.Len, m.Tiles[0])
	}
}

func TestMoveKeyStableUnderReordering(t *testing.T) {
	var a, b Move
	a.append('X', 5)
	a.append('Y', 3)
	b.append('Y', 3)
	b.append('X', 5)
	if a.key() != b.key() {
		t.Fatalf("key() should be independent of placement order: %q != %q", a.key(), b.key())
	}
}
