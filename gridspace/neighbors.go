package gridspace

import "sync"

// faceCache and vertexCache memoize the offset tables per dimension count,
// since they are pure functions of n and are recomputed on every march
// initialization otherwise. Guarded by an RWMutex rather than left
// unsynchronized because these tables may be shared read-only across
// concurrent driver invocations.
var (
	faceMu    sync.RWMutex
	faceCache = map[int][]Index{}

	vertexMu    sync.RWMutex
	vertexCache = map[int][]Index{}
)

// FaceOffsets returns the 2n unit offsets +/-e_i, one pair per axis, for
// an n-dimensional grid. The order is stable across calls: for axis i
// (0-indexed), offset 2i is -e_i and offset 2i+1 is +e_i.
//
// Complexity: O(n), memoized after the first call for a given n.
func FaceOffsets(n int) []Index {
	faceMu.RLock()
	if cached, ok := faceCache[n]; ok {
		faceMu.RUnlock()
		return cached
	}
	faceMu.RUnlock()

	offsets := make([]Index, 0, 2*n)
	for i := 0; i < n; i++ {
		neg := make(Index, n)
		neg[i] = -1
		pos := make(Index, n)
		pos[i] = 1
		offsets = append(offsets, neg, pos)
	}

	faceMu.Lock()
	faceCache[n] = offsets
	faceMu.Unlock()

	return offsets
}

// VertexOffsets returns all 3^n - 1 non-zero offsets in {-1,0,1}^n, i.e.
// every way of nudging each axis by -1, 0 or +1 excluding the all-zero
// tuple. Generated by an odometer-style counter over base-3 digits shifted
// into {-1,0,1}. Order is stable across calls.
//
// Complexity: O(3^n), memoized after the first call for a given n.
func VertexOffsets(n int) []Index {
	vertexMu.RLock()
	if cached, ok := vertexCache[n]; ok {
		vertexMu.RUnlock()
		return cached
	}
	vertexMu.RUnlock()

	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}

	offsets := make([]Index, 0, total-1)
	digits := make([]int, n)
	for count := 0; count < total; count++ {
		allZero := true
		offset := make(Index, n)
		for i, d := range digits {
			offset[i] = d - 1
			if offset[i] != 0 {
				allZero = false
			}
		}
		if !allZero {
			offsets = append(offsets, offset)
		}

		// Advance the base-3 odometer.
		for i := 0; i < n; i++ {
			digits[i]++
			if digits[i] < 3 {
				break
			}
			digits[i] = 0
		}
	}

	vertexMu.Lock()
	vertexCache[n] = offsets
	vertexMu.Unlock()

	return offsets
}
