package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLonLatIdentity(t *testing.T) {
	lon, lat := LonLat()(-8.6, 41.1)
	assert.Equal(t, -8.6, lon)
	assert.Equal(t, 41.1, lat)
}

func TestPortugalTM06Origin(t *testing.T) {
	// The grid origin of PT-TM06 projects back onto its defining geodetic
	// origin.
	transform := FromCRS(ETRS89PortugalTM06())
	lon, lat := transform(0, 0)
	assert.InDelta(t, -8.13310833333333, lon, 1e-6)
	assert.InDelta(t, 39.6682583333333, lat, 1e-6)
}

func TestFromEPSGUnknownCode(t *testing.T) {
	_, err := FromEPSG(999999)
	require.Error(t, err)
}
