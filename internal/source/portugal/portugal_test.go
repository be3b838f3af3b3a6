package portugal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/source"
)

const caopCSV = `DICOFRE,DISTRITO_ILHA_DSG,CONCELHO_DSG,FREGUESIA_DSG,AREA_T_HA
131216,Porto,Porto,Sé,48.2
131203,Porto,Porto,Bonfim,305.1
131216,Porto,Porto,Sé,48.2
XX,Bad,Bad,Bad,0
`

const cttCSV = `cod_distrito,cod_concelho,cod_localidade,nome_localidade,tipo_arteria,prep1,titulo_arteria,prep2,nome_arteria,local_arteria,num_cod_postal,ext_cod_postal,desig_postal
13,12,1312,Porto,Rua,de,,,Dom Hugo,,4000,7,PORTO
13,12,1312,Porto,,,,,,,4000,9,PORTO
`

const geonamesTSV = "PT\t4000-007\tPorto\tPorto\t13\tPorto\t1312\tSé\t131216\t41.1494\t-8.6108\t6\n"

// A square roughly over Porto in the PT-TM06 grid (metres from the origin).
const boundaryGeoJSON = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"Dicofre": "131216"},
		"geometry": {"type": "Polygon", "coordinates": [[[-45000,160000],[-35000,160000],[-35000,170000],[-45000,170000],[-45000,160000]]]}
	}]
}`

func testSource(t *testing.T) *Portugal {
	t.Helper()
	dataDir := t.TempDir()
	dir := filepath.Join(dataDir, Name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "boundaries"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "caop.csv"), []byte(caopCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codigos_postais.csv"), []byte(cttCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PT.txt"), []byte(geonamesTSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boundaries", "porto.geojson"), []byte(boundaryGeoJSON), 0o644))

	src, err := New(source.Config{DataDir: dataDir, Logger: zap.NewNop()})
	require.NoError(t, err)
	return src.(*Portugal)
}

func TestCountryIdentity(t *testing.T) {
	src := testSource(t)
	assert.Equal(t, "Portugal", src.CountryName())
	assert.Equal(t, "PT", src.CountryCode())
}

func TestLoadReferenceTable(t *testing.T) {
	rows, err := testSource(t).LoadReferenceTable()
	require.NoError(t, err)
	// The short dicofre row is dropped; duplicates survive here, the
	// hierarchy builder owns dedup.
	require.Len(t, rows, 3)

	assert.Equal(t, source.ReferenceRow{
		District:     "Porto",
		County:       "Porto",
		Locality:     "Sé",
		RegionCode:   "131216",
		DistrictCode: "13",
		CountyCode:   "12",
	}, rows[0])
}

func TestLoadPostalRecords(t *testing.T) {
	records, err := testSource(t).LoadPostalRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 4000, records[0].PostalCode)
	assert.Equal(t, 7, records[0].Extension)
	assert.Equal(t, "13", records[0].DistrictCode)
	assert.Equal(t, "12", records[0].CountyCode)
	assert.Equal(t, "PORTO", records[0].Designation)
	assert.Equal(t, "Rua", records[0].ArteryType)
	assert.Equal(t, "Dom Hugo", records[0].ArteryName)
	assert.Empty(t, records[1].ArteryType)
}

func TestLoadGeometriesReprojectsToLonLat(t *testing.T) {
	store, err := testSource(t).LoadGeometries()
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	mp, err := store.Find("131216")
	require.NoError(t, err)
	bound := mp.Bound()
	// 40 km west and 165 km north of the PT-TM06 origin is the Porto area.
	assert.Greater(t, bound.Min[0], -9.0)
	assert.Less(t, bound.Max[0], -8.0)
	assert.Greater(t, bound.Min[1], 41.0)
	assert.Less(t, bound.Max[1], 41.5)
}

func TestGeocoder(t *testing.T) {
	geocoder, err := testSource(t).Geocoder()
	require.NoError(t, err)

	point, err := geocoder.Resolve(4000, 7)
	require.NoError(t, err)
	require.NotNil(t, point)
	assert.InDelta(t, 41.1494, point[1], 1e-9)
}

func TestPadCode(t *testing.T) {
	assert.Equal(t, "03", padCode("3"))
	assert.Equal(t, "13", padCode(" 13 "))
}
