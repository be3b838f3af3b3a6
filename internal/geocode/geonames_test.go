package geocode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureTSV = "PT\t4000-007\tPorto\tPorto\t13\tPorto\t1312\tSé\t131216\t41.1494\t-8.6108\t6\n" +
	"PT\t4000-050\tPorto\tPorto\t13\tPorto\t1312\tBonfim\t131203\t41.1476\t-8.5965\t6\n" +
	"PT\t9999-999\tNowhere\tNowhere\t01\tNowhere\t0101\tNowhere\t010101\t\t\t\n"

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "PT.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTSV), 0o644))
	return path
}

func TestKey(t *testing.T) {
	assert.Equal(t, "4000-007", Key(4000, 7))
	assert.Equal(t, "0750-001", Key(750, 1))
}

func TestGeoNamesResolve(t *testing.T) {
	geocoder, err := NewGeoNames(writeDataset(t))
	require.NoError(t, err)
	// The row without coordinates is dropped.
	assert.Equal(t, 2, geocoder.Len())

	point, err := geocoder.Resolve(4000, 7)
	require.NoError(t, err)
	require.NotNil(t, point)
	assert.InDelta(t, -8.6108, point[0], 1e-9)
	assert.InDelta(t, 41.1494, point[1], 1e-9)
}

func TestGeoNamesResolveMissingIsNotAnError(t *testing.T) {
	geocoder, err := NewGeoNames(writeDataset(t))
	require.NoError(t, err)

	point, err := geocoder.Resolve(4000, 999)
	require.NoError(t, err)
	assert.Nil(t, point)
}

func TestGeoNamesMissingFile(t *testing.T) {
	_, err := NewGeoNames(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
