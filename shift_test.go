package vasp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceShifted(t *testing.T) {
	R, err := NewReference(2.0, Options{Title: "Si", ZeroFermi: false, Window: 3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, R.Level)
	assert.Equal(t, -1.0, R.Min)
	assert.Equal(t, 5.0, R.Max)
	assert.Equal(t, "Energy (eV)", R.Label)
	assert.Equal(t, "Si (Fermi Energy = 2.00 eV)", R.Title)
	raw := []float64{1, 2, 3, 4}
	assert.Equal(t, []float64{3, 4, 5, 6}, R.Apply(raw))
	assert.Equal(t, []float64{1, 2, 3, 4}, raw, "Apply must not modify its argument")
}

func TestReferenceZeroed(t *testing.T) {
	R, err := NewReference(-1.2345, Options{ZeroFermi: true, Window: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, R.Level)
	assert.Equal(t, -1.2345, R.Fermi)
	assert.Equal(t, -1.5, R.Min)
	assert.Equal(t, 1.5, R.Max)
	assert.Equal(t, "Energy - Fermi Energy (eV)", R.Label)
	assert.Equal(t, " (Fermi Energy = -1.23 eV)", R.Title)
	raw := []float64{-0.5, 0.25, 7}
	assert.Equal(t, raw, R.Apply(raw))
}

func TestOptionsCheck(t *testing.T) {
	assert.NoError(t, DefaultOptions().Check())
	assert.Equal(t, DefaultWindow, DefaultOptions().Window)
	assert.True(t, DefaultOptions().ZeroFermi)
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewReference(1, Options{Window: w})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBadOptions))
	}
}

func TestSegments(t *testing.T) {
	labels := []KLabel{{"GAMMA", 0}, {"X|Y", 0.5}, {"M", 1.0}, {"K|GAMMA", 1.8}, {"L", 2.5}}
	seg := Segments(labels, nil)
	require.Len(t, seg, 3)
	assert.Equal(t, [2]float64{0, 0.5}, seg[0])
	assert.Equal(t, [2]float64{0.5, 1.8}, seg[1])
	assert.Equal(t, [2]float64{1.8, 2.5}, seg[2])
}

func TestSegmentsUnsorted(t *testing.T) {
	labels := []KLabel{{"A", 0}, {"C|D", 2}, {"B|C", 1}, {"E", 3}}
	seg := Segments(labels, nil)
	assert.Equal(t, [][2]float64{{0, 1}, {1, 2}, {2, 3}}, seg)
}

func TestSegmentsContinuous(t *testing.T) {
	labels := []KLabel{{"GAMMA", 0}, {"X", 0.5}, {"M", 1.0}}
	assert.Equal(t, [][2]float64{{0, 1}}, Segments(labels, []float64{0, 0.2, 1}))
	assert.Equal(t, [][2]float64{{0, 3}}, Segments(nil, []float64{1, 0, 3, 2}))
}
