package histogram

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSample(t *testing.T) {
	assert := assert.New(t)
	h := New([]float64{30, 10, 50, 20, 10, 50, 50, 35, 27}, 4)

	assert.Equal([]Bucket{
		{10, 20, 2},
		{20, 30, 2},
		{30, 40, 2},
		{40, 50, 3},
	}, h.Buckets())
	assert.Equal(uint64(9), h.Total())
}

func TestEmpty(t *testing.T) {
	assert := assert.New(t)
	h := New(nil, 20)
	assert.Empty(h.Buckets())
	assert.Equal(uint64(0), h.Total())

	var sb strings.Builder
	assert.NoError(h.Describe(&sb))
	assert.Equal("", sb.String())
}

func TestAllEqual(t *testing.T) {
	h := New([]float64{7, 7, 7}, 10)
	assert.Equal(t, []Bucket{{7, 7, 3}}, h.Buckets())
}

func TestExtremeRange(t *testing.T) {
	assert := assert.New(t)
	// the span between the extremes does not fit in a float64
	h := New([]float64{-1e308, 0, 1e308}, 4)

	buckets := h.Buckets()
	if assert.Len(buckets, 4) {
		for i, b := range buckets {
			assert.False(math.IsNaN(b.Low) || math.IsInf(b.Low, 0), "bucket %d low %v", i, b.Low)
			assert.False(math.IsNaN(b.High) || math.IsInf(b.High, 0), "bucket %d high %v", i, b.High)
			assert.Less(b.Low, b.High)
			if i > 0 {
				assert.Equal(buckets[i-1].High, b.Low)
			}
		}
		assert.Equal(-1e308, buckets[0].Low)
		assert.Equal(1e308, buckets[3].High)
		assert.Equal([]uint64{1, 0, 1, 1}, []uint64{
			buckets[0].Count, buckets[1].Count, buckets[2].Count, buckets[3].Count,
		})
	}

	var sb strings.Builder
	assert.NoError(h.Describe(&sb))
	assert.NotContains(sb.String(), "NaN")
	assert.NotContains(sb.String(), "Inf")
}

func TestBinsClamped(t *testing.T) {
	h := New([]float64{1, 2, 3}, 0)
	assert.Equal(t, []Bucket{{1, 3, 3}}, h.Buckets())
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)
	h := New([]float64{0, 1, 1, 2, 2, 2, 2}, 2)

	var sb strings.Builder
	assert.NoError(h.Describe(&sb))
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if assert.Len(lines, 2) {
		assert.True(strings.HasPrefix(lines[0], "[     0.000,      1.000)"), lines[0])
		assert.True(strings.HasPrefix(lines[1], "[     1.000,      2.000]"), lines[1])
		// fullest bucket gets a full bar
		assert.Contains(lines[1], strings.Repeat("#", barWidth)+" 6")
		assert.Contains(lines[0], strings.Repeat("#", barWidth/6)+" ")
		assert.True(strings.HasSuffix(lines[0], " 1"))
	}
}

func TestHistogramProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		energies := rapid.SliceOfN(rapid.OneOf(
			rapid.Float64Range(-1e3, 1e3),
			rapid.Float64Range(-math.MaxFloat64, math.MaxFloat64),
		), 1, 200).Draw(t, "energies")
		bins := rapid.IntRange(1, 30).Draw(t, "bins")
		h := New(energies, bins)

		buckets := h.Buckets()
		var total uint64
		for i, b := range buckets {
			assert.LessOrEqual(b.Low, b.High)
			if i > 0 {
				assert.Equal(buckets[i-1].High, b.Low)
			}
			total += b.Count
		}
		assert.Equal(uint64(len(energies)), total)
		assert.Equal(uint64(len(energies)), h.Total())

		// every energy lands in a bucket whose range contains it
		for _, e := range energies {
			b := buckets[h.bucketIdx(e)]
			assert.LessOrEqual(b.Low, e)
			assert.LessOrEqual(e, b.High)
		}
	})
}
