package vasp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const klabels = `K-Label    K-Coordinate in band-structure plots
GAMMA              0.000

X|Y                0.500
M                  1.000


* Give the label for each high symmetry point in KPOINTS (KPATH.in) file. Otherwise, they will be identified as 'Undefined' in KLABELS file
`

func TestKLabels(t *testing.T) {
	labels, err := KLabels(strings.NewReader(klabels))
	require.NoError(t, err)
	assert.Equal(t, []KLabel{{"GAMMA", 0}, {"X|Y", 0.5}, {"M", 1}}, labels)
	assert.Equal(t, []float64{0.5}, Discontinuities(labels))
	assert.False(t, labels[0].Discontinuous())
	assert.True(t, labels[1].Discontinuous())
}

func TestReadKLabels(t *testing.T) {
	labels, err := ReadKLabels(writeFile(t, "KLABELS", "GAMMA 0.0\nX|Y 0.5\nM 1.0\n"))
	require.NoError(t, err)
	require.Len(t, labels, 3)
	assert.Equal(t, []float64{0.5}, Discontinuities(labels))
}

func TestReadKLabelsCompressed(t *testing.T) {
	want, err := KLabels(strings.NewReader(klabels))
	require.NoError(t, err)
	for _, name := range []string{writeGzip(t, "KLABELS.gz", klabels), writeZstd(t, "KLABELS.zst", klabels)} {
		labels, err := ReadKLabels(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, labels, name)
		assert.Equal(t, []float64{0.5}, Discontinuities(labels), name)
	}
}

func TestKLabelsBadPosition(t *testing.T) {
	_, err := KLabels(strings.NewReader("GAMMA 0.0\nX far\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadValue))
}

func TestNoDiscontinuities(t *testing.T) {
	labels, err := KLabels(strings.NewReader("GAMMA 0.0\nX 0.5\n"))
	require.NoError(t, err)
	assert.Empty(t, Discontinuities(labels))
}

func TestTickLabel(t *testing.T) {
	cases := map[string]string{
		"GAMMA":      "Γ",
		"X":          "X",
		"GAMMA|X":    "Γ|X",
		"K|GAMMA":    "K|Γ",
		"GAMMAGAMMA": "ΓΓ",
		"Gamma":      "Gamma",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, TickLabel(in), in)
		assert.Equal(t, want, TickLabel(TickLabel(in)), in)
		assert.Equal(t, want, KLabel{Name: in}.TickLabel(), in)
	}
}
