package vasp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outcar = ` vasp.6.3.0 18Jan22 (build Feb 02 2022 14:40:46) complex
 executed on             LinuxIFC date 2024.03.29  10:21:07
 ----------------------------------------------------
 E-fermi :  -1.9010     XC(G=0): -10.0813     alpha+bet :-11.4452
 Fermi energy: -1.2345
 Fermi energy: 7.0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFermiEnergy(t *testing.T) {
	e, err := FermiEnergy(strings.NewReader(outcar))
	require.NoError(t, err)
	assert.Equal(t, -1.2345, e)
}

func TestFermiEnergyMissing(t *testing.T) {
	_, err := FermiEnergy(strings.NewReader(" E-fermi :  -1.9010\n\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFermi))
	assert.False(t, errors.Is(err, ErrBadValue))
}

func TestFermiEnergyMalformed(t *testing.T) {
	_, err := FermiEnergy(strings.NewReader("Fermi energy: lots\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadValue))
}

func TestFermiEnergyNoNewline(t *testing.T) {
	e, err := FermiEnergy(strings.NewReader("Fermi energy:3.5"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, e)
}

func TestReadFermiEnergy(t *testing.T) {
	e, err := ReadFermiEnergy(writeFile(t, "OUTCAR", outcar))
	require.NoError(t, err)
	assert.Equal(t, -1.2345, e)

	_, err = ReadFermiEnergy(filepath.Join(t.TempDir(), "nothere"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnableToOpen))
	var e2 Error
	require.True(t, errors.As(err, &e2))
	assert.Equal(t, []string{"openInput", "ReadFermiEnergy"}, e2.Decorate(""))
}

func TestReadFermiEnergyMissingFile(t *testing.T) {
	path := writeFile(t, "OUTCAR", "nothing to see here\n")
	_, err := ReadFermiEnergy(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFermi))
	assert.Contains(t, err.Error(), path)
}

// writeGzip and writeZstd write content compressed to a new file name
// in a temporary directory, and return its path.
func writeGzip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

func writeZstd(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zs, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zs.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zs.Close())
	return path
}

func TestReadFermiEnergyCompressed(t *testing.T) {
	for _, name := range []string{writeGzip(t, "OUTCAR.gz", outcar), writeZstd(t, "OUTCAR.zst", outcar)} {
		e, err := ReadFermiEnergy(name)
		require.NoError(t, err, name)
		assert.Equal(t, -1.2345, e, name)
	}
}
