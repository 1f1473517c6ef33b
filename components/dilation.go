package components

import "github.com/eikonal-go/fastmarch/gridspace"

// DilationBands returns the maximally connected shells surrounding
// component, discovered by vertex-adjacency dilation and re-partitioned
// by face adjacency. A component that encloses one or more regions yields
// one band per enclosed region plus its outer shell; a component that
// encloses nothing (e.g. an isolated cell) yields a single band. A band
// whose cells all fall outside the grid after unpadding is dropped, so a
// component whose outer shell lies entirely off-grid (e.g. the border
// ring of the grid) yields only its inner bands. The caller treats a
// single-band result as an OpenComponent error.
//
// The dilation grid is padded by one cell in every direction so
// vertex-neighbor lookups never need boundary branching; foreground cells
// are dilated via VertexOffsets, and the dilated cells are re-partitioned
// via FaceOffsets before unpadding.
//
// Complexity: O(len(component) * 3^N).
func DilationBands(component []gridspace.Index, size gridspace.Size) [][]gridspace.Index {
	n := len(size)
	padded := make(gridspace.Size, n)
	for i, d := range size {
		padded[i] = d + 2
	}

	grid, err := gridspace.New(padded, make([]byte, padded.LinearExtent()))
	if err != nil {
		panic(err)
	}

	for _, idx := range component {
		_ = grid.Set(pad(idx), foreground)
	}

	vertexOffsets := gridspace.VertexOffsets(n)
	var dilated []gridspace.Index
	for _, idx := range component {
		p := pad(idx)
		for _, off := range vertexOffsets {
			np := p.Add(off)
			if !grid.Inside(np) {
				continue
			}
			v, _ := grid.At(np)
			if v == background {
				_ = grid.Set(np, marked)
				dilated = append(dilated, np)
			}
		}
	}

	faceOffsets := gridspace.FaceOffsets(n)
	dilationComponents := ConnectedComponents(dilated, padded, faceOffsets)

	var bands [][]gridspace.Index
	for _, dc := range dilationComponents {
		var band []gridspace.Index
		for _, p := range dc {
			g := unpad(p)
			if gridspace.Inside(g, size) {
				band = append(band, g)
			}
		}
		if len(band) > 0 {
			bands = append(bands, band)
		}
	}

	return bands
}

func pad(idx gridspace.Index) gridspace.Index {
	out := make(gridspace.Index, len(idx))
	for i, c := range idx {
		out[i] = c + 1
	}
	return out
}

func unpad(idx gridspace.Index) gridspace.Index {
	out := make(gridspace.Index, len(idx))
	for i, c := range idx {
		out[i] = c - 1
	}
	return out
}

// BoundingBox returns, per axis, the [min, max] extent of indices. Panics
// if indices is empty; callers only ever invoke this on a non-empty
// dilation band.
func BoundingBox(indices []gridspace.Index) [][2]int {
	if len(indices) == 0 {
		panic("components: BoundingBox of empty indices")
	}

	n := len(indices[0])
	bbox := make([][2]int, n)
	for i := range bbox {
		bbox[i] = [2]int{indices[0][i], indices[0][i]}
	}

	for _, idx := range indices[1:] {
		for i, c := range idx {
			if c < bbox[i][0] {
				bbox[i][0] = c
			}
			if c > bbox[i][1] {
				bbox[i][1] = c
			}
		}
	}

	return bbox
}

// HyperVolume returns the product, over every axis, of (max - min + 1) —
// the cell count of the smallest axis-aligned box containing bbox.
func HyperVolume(bbox [][2]int) int {
	vol := 1
	for _, axis := range bbox {
		vol *= axis[1] - axis[0] + 1
	}
	return vol
}
