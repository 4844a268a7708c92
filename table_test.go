package vasp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const banddat = `#K-Path(1/A) Energy-Level(eV)
# NKPTS & NBANDS:  4  1
# Band-Index    1
  0.000  1.000  0.000
  1.000  2.000  1.000
  2.000  3.000  2.000   # a comment
  3.000  4.000  3.000

`

func TestParseTable(t *testing.T) {
	T, err := ParseTable(strings.NewReader(banddat), TableCols)
	require.NoError(t, err)
	assert.Equal(t, 4, T.Len())
	r, c := T.Dense().Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	B := BandTable{T}
	assert.Equal(t, []float64{0, 1, 2, 3}, B.K())
	assert.Equal(t, []float64{1, 2, 3, 4}, B.Up())
	assert.Equal(t, []float64{0, 1, 2, 3}, B.Down())
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind error
	}{
		{"too few columns", "1 2 3\n4 5\n", ErrBadRow},
		{"too many columns", "1 2 3 4\n", ErrBadRow},
		{"not a number", "1 2 3\n4 five 6\n", ErrBadRow},
		{"empty", "# only a header\n\n", ErrEmptyTable},
		{"nothing", "", ErrEmptyTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			T, err := ParseTable(strings.NewReader(tt.data), TableCols)
			require.Error(t, err)
			assert.Nil(t, T)
			assert.True(t, errors.Is(err, tt.kind), err.Error())
		})
	}
}

func TestReadTables(t *testing.T) {
	B, err := ReadBandTable(writeFile(t, "BAND.dat", banddat))
	require.NoError(t, err)
	assert.Equal(t, 4, B.Len())

	D, err := ReadDosTable(writeFile(t, "TDOS.dat", "-1.0 0.1 0.2\n0.0 0.3 0.4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0}, D.Energy())
	assert.Equal(t, []float64{0.1, 0.3}, D.Up())
	assert.Equal(t, []float64{0.2, 0.4}, D.Down())

	_, err = ReadDosTable(writeFile(t, "TDOS.dat", "-1.0 0.1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRow))
	var e *CError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Table <- ReadTable <- ReadDosTable", e.Trail())
}

func TestReadTablesCompressed(t *testing.T) {
	for _, name := range []string{writeGzip(t, "BAND.dat.gz", banddat), writeZstd(t, "BAND.dat.zst", banddat)} {
		B, err := ReadBandTable(name)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{0, 1, 2, 3}, B.K(), name)
		assert.Equal(t, []float64{1, 2, 3, 4}, B.Up(), name)
		assert.Equal(t, []float64{0, 1, 2, 3}, B.Down(), name)
	}
	D, err := ReadDosTable(writeGzip(t, "TDOS.dat.gz", "-1.0 0.1 0.2\n0.0 0.3 0.4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0}, D.Energy())

	_, err = ReadBandTable(writeZstd(t, "BAND.dat.zst", "0 1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRow))
}
