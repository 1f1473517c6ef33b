package gridspace_test

import (
	"testing"

	"github.com/eikonal-go/fastmarch/gridspace"
)

func TestFaceOffsets(t *testing.T) {
	for n := 1; n <= 4; n++ {
		offsets := gridspace.FaceOffsets(n)
		if len(offsets) != 2*n {
			t.Fatalf("FaceOffsets(%d) len = %d; want %d", n, len(offsets), 2*n)
		}
		for _, off := range offsets {
			nonZero := 0
			for _, c := range off {
				if c != 0 {
					nonZero++
					if c != 1 && c != -1 {
						t.Errorf("FaceOffsets(%d): unexpected magnitude in %v", n, off)
					}
				}
			}
			if nonZero != 1 {
				t.Errorf("FaceOffsets(%d): offset %v is not a unit offset", n, off)
			}
		}
	}
}

func TestVertexOffsets(t *testing.T) {
	for n := 1; n <= 4; n++ {
		offsets := gridspace.VertexOffsets(n)
		want := 1
		for i := 0; i < n; i++ {
			want *= 3
		}
		want--
		if len(offsets) != want {
			t.Fatalf("VertexOffsets(%d) len = %d; want %d", n, len(offsets), want)
		}
		seen := map[string]bool{}
		for _, off := range offsets {
			allZero := true
			for _, c := range off {
				if c < -1 || c > 1 {
					t.Errorf("VertexOffsets(%d): component out of {-1,0,1} in %v", n, off)
				}
				if c != 0 {
					allZero = false
				}
			}
			if allZero {
				t.Errorf("VertexOffsets(%d) must not include the all-zero offset", n)
			}
			key := ""
			for _, c := range off {
				key += string(rune('0' + c + 1))
			}
			if seen[key] {
				t.Errorf("VertexOffsets(%d): duplicate offset %v", n, off)
			}
			seen[key] = true
		}
	}
}

func TestVertexOffsets_MemoizedStable(t *testing.T) {
	a := gridspace.VertexOffsets(3)
	b := gridspace.VertexOffsets(3)
	if len(a) != len(b) {
		t.Fatalf("VertexOffsets(3) length changed between calls")
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("VertexOffsets(3) order changed between calls at %d", i)
			}
		}
	}
}
