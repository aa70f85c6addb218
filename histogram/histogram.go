// Package histogram bins raw energies into equal-width buckets and renders
// them as text.
package histogram

import (
	"fmt"
	"io"
	"strings"
)

// Bucket covers [Low, High), except for the last bucket of a histogram,
// which also includes High.
type Bucket struct {
	Low   float64
	High  float64
	Count uint64
}

type Histogram struct {
	// edges has one more element than counts; bucket i is
	// [edges[i], edges[i+1])
	edges  []float64
	counts []uint64
	total  uint64
}

// New bins energies into the given number of equal-width buckets spanning
// the smallest to the largest energy. bins < 1 is treated as 1. If every
// energy is equal there is a single zero-width bucket.
func New(energies []float64, bins int) *Histogram {
	h := &Histogram{edges: []float64{}, counts: []uint64{}}
	if len(energies) == 0 {
		return h
	}
	lo, hi := energies[0], energies[0]
	for _, e := range energies {
		lo = min(lo, e)
		hi = max(hi, e)
	}
	if bins < 1 || lo == hi {
		bins = 1
	}
	// hi-lo may overflow, so edges are interpolated between lo and hi
	h.edges = append(h.edges, lo)
	for i := 1; i < bins; i++ {
		a := float64(i) / float64(bins)
		edge := lo*(1-a) + hi*a
		h.edges = append(h.edges, min(max(edge, h.edges[i-1]), hi))
	}
	h.edges = append(h.edges, hi)
	h.counts = make([]uint64, bins)
	for _, e := range energies {
		h.counts[h.bucketIdx(e)]++
		h.total++
	}
	return h
}

// bucketIdx finds the bucket for v by binary search over the lower edges. v
// must lie within [edges[0], edges[len(edges)-1]].
func (h *Histogram) bucketIdx(v float64) uint64 {
	lower := h.edges[:len(h.edges)-1]
	var i = uint64(0)
	var j = uint64(len(lower))
	// find the first lower edge greater than v
	for i < j {
		mid := i + (j-i)/2
		if lower[mid] <= v {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

func (h *Histogram) Buckets() []Bucket {
	var buckets = []Bucket{}
	for i, c := range h.counts {
		buckets = append(buckets, Bucket{Low: h.edges[i], High: h.edges[i+1], Count: c})
	}
	return buckets
}

// Total returns the number of energies binned.
func (h *Histogram) Total() uint64 {
	return h.total
}

const barWidth = 40

// Describe writes one line per bucket with a bar scaled to the fullest
// bucket.
func (h *Histogram) Describe(w io.Writer) error {
	var sb strings.Builder
	var mx uint64
	for _, c := range h.counts {
		mx = max(mx, c)
	}
	buckets := h.Buckets()
	for i, b := range buckets {
		closing := ")"
		if i == len(buckets)-1 {
			closing = "]"
		}
		var bar int
		if mx > 0 {
			bar = int(uint64(barWidth) * b.Count / mx)
		}
		fmt.Fprintf(&sb, "[%10.3f, %10.3f%s %-*s %d\n",
			b.Low, b.High, closing, barWidth, strings.Repeat("#", bar), b.Count)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
