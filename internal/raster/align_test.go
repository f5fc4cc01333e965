package raster

import "testing"

func TestAlignEqualSize(t *testing.T) {
	a := Align(100, 100, 100, 100)
	if a.DX != 0 || a.DY != 0 {
		t.Fatalf("equal-size alignment = (%d,%d), want (0,0)", a.DX, a.DY)
	}
}

func TestAlignBottomCenteredPair(t *testing.T) {
	// Image A is 100x200, image B is 60x180.
	a := Align(60, 180, 100, 200)
	if a.DX != 20 || a.DY != 20 {
		t.Fatalf("alignment = (%d,%d), want (20,20)", a.DX, a.DY)
	}
}

func TestAlignTruncatesTowardZero(t *testing.T) {
	// (prevW - w) is odd and negative: (-3)/2 in Go truncates to -1.
	a := Align(13, 10, 10, 10)
	if a.DX != -1 {
		t.Fatalf("DX = %d, want -1", a.DX)
	}
}

func TestTryFetchOutOfRange(t *testing.T) {
	prev := New(5, 5)
	a := Alignment{DX: 100, DY: 100}
	if _, ok := a.TryFetch(prev, 0, 0); ok {
		t.Fatalf("expected out-of-range fetch to fail")
	}
}

func TestTryFetchNilPrev(t *testing.T) {
	a := Alignment{}
	if _, ok := a.TryFetch(nil, 0, 0); ok {
		t.Fatalf("expected fetch against nil prev to fail")
	}
}

func TestEqualIdenticalImages(t *testing.T) {
	prev := New(4, 4)
	cur := New(4, 4)
	for i := range prev.Pix {
		prev.Pix[i] = byte(i)
		cur.Pix[i] = byte(i)
	}
	a := Align(4, 4, 4, 4)
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			if !a.Equal(cur, prev, x, y) {
				t.Fatalf("pixel (%d,%d) reported unequal for identical images", x, y)
			}
		}
	}
}

func TestEqualNegativeAlignment(t *testing.T) {
	prev := New(0, 0)
	cur := New(1, 1)
	a := Align(1, 1, 0, 0)
	if a.Equal(cur, prev, 0, 0) {
		t.Fatalf("pixel against empty predecessor must never be equal")
	}
}
