package domain

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultiPolygonWrapsBarePolygon(t *testing.T) {
	poly := orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

	mp, err := NewMultiPolygon(poly)
	require.NoError(t, err)
	require.Len(t, mp.MultiPolygon, 1)
	assert.Equal(t, poly, mp.MultiPolygon[0])
}

func TestNewMultiPolygonRejectsNonPolygonal(t *testing.T) {
	_, err := NewMultiPolygon(orb.Point{1, 2})
	require.Error(t, err)
}

func TestMultiPolygonSQLRoundTrip(t *testing.T) {
	mp, err := NewMultiPolygon(orb.Polygon{orb.Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})
	require.NoError(t, err)

	value, err := mp.Value()
	require.NoError(t, err)
	require.NotNil(t, value)

	var scanned MultiPolygon
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, mp.MultiPolygon, scanned.MultiPolygon)
	assert.Equal(t, "MultiPolygon", scanned.MultiPolygon.GeoJSONType())
}

func TestMultiPolygonNullColumn(t *testing.T) {
	var mp MultiPolygon
	require.NoError(t, mp.Scan(nil))
	assert.True(t, mp.IsZero())

	value, err := mp.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
