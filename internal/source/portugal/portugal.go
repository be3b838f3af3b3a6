// Package portugal imports Portuguese postal data: the CAOP administrative
// reference table and boundary files from Direção-Geral do Território, the
// CTT postal code table and the GeoNames PT postal dump for coordinates.
package portugal

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/geocode"
	"github.com/ubiwhere/go-postal-codes/internal/geometry"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

const Name = "portugal"

// CAOP reference table columns.
const (
	colDicofre  = "DICOFRE"
	colDistrict = "DISTRITO_ILHA_DSG"
	colCounty   = "CONCELHO_DSG"
	colLocality = "FREGUESIA_DSG"
)

// CTT postal table columns.
const (
	colDistrictCode = "cod_distrito"
	colCountyCode   = "cod_concelho"
	colLocalityName = "nome_localidade"
	colArteryType   = "tipo_arteria"
	colPrep1        = "prep1"
	colArteryTitle  = "titulo_arteria"
	colPrep2        = "prep2"
	colArteryName   = "nome_arteria"
	colArteryLocal  = "local_arteria"
	colPostalCode   = "num_cod_postal"
	colExtension    = "ext_cod_postal"
	colDesignation  = "desig_postal"
)

// Boundary features carry the freguesia code in this property.
const geometryCodeProperty = "Dicofre"

type Portugal struct {
	dir    string
	logger *zap.Logger
}

func New(cfg source.Config) (source.Source, error) {
	return &Portugal{
		dir:    filepath.Join(cfg.DataDir, Name),
		logger: cfg.Logger,
	}, nil
}

func (p *Portugal) CountryName() string { return "Portugal" }

func (p *Portugal) CountryCode() string { return "PT" }

// LoadReferenceTable reads the CAOP sheet. The six digit dicofre doubles as
// the administrative context: the first two digits are the district code and
// the next two the county code, the same codes the CTT table declares.
func (p *Portugal) LoadReferenceTable() ([]source.ReferenceRow, error) {
	path := filepath.Join(p.dir, "caop.csv")
	table, err := readCSV(path, ',')
	if err != nil {
		return nil, errors.Wrap(err, "load caop reference table")
	}

	rows := make([]source.ReferenceRow, 0, len(table.rows))
	for _, row := range table.rows {
		dicofre := table.get(row, colDicofre)
		if len(dicofre) < 4 {
			continue
		}
		rows = append(rows, source.ReferenceRow{
			District:     table.get(row, colDistrict),
			County:       table.get(row, colCounty),
			Locality:     table.get(row, colLocality),
			RegionCode:   dicofre,
			DistrictCode: dicofre[:2],
			CountyCode:   dicofre[2:4],
		})
	}
	return rows, nil
}

// LoadGeometries indexes the CAOP boundary files by dicofre, reprojecting
// from the PT-TM06 grid the files ship in.
func (p *Portugal) LoadGeometries() (*geometry.Store, error) {
	paths, err := filepath.Glob(filepath.Join(p.dir, "boundaries", "*.geojson"))
	if err != nil {
		return nil, errors.Wrap(err, "glob boundary files")
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no boundary files under %s", filepath.Join(p.dir, "boundaries"))
	}

	store := geometry.NewStore(geometry.FromCRS(geometry.ETRS89PortugalTM06()))
	if err := store.Load(paths, geometryCodeProperty); err != nil {
		return nil, err
	}
	p.logger.Info("loaded boundary features",
		zap.Int("regions", store.Len()),
		zap.Int("files", len(paths)),
	)
	return store, nil
}

func (p *Portugal) LoadPostalRecords() ([]source.PostalRecord, error) {
	path := filepath.Join(p.dir, "codigos_postais.csv")
	table, err := readCSV(path, ',')
	if err != nil {
		return nil, errors.Wrap(err, "load ctt postal table")
	}

	records := make([]source.PostalRecord, 0, len(table.rows))
	for i, row := range table.rows {
		code, err := strconv.Atoi(table.get(row, colPostalCode))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: postal code", i+2)
		}
		ext, err := strconv.Atoi(table.get(row, colExtension))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: postal code extension", i+2)
		}
		records = append(records, source.PostalRecord{
			PostalCode:   code,
			Extension:    ext,
			DistrictCode: padCode(table.get(row, colDistrictCode)),
			CountyCode:   padCode(table.get(row, colCountyCode)),
			Designation:  table.get(row, colDesignation),
			LocalityName: table.get(row, colLocalityName),
			ArteryType:   table.get(row, colArteryType),
			Prep1:        table.get(row, colPrep1),
			ArteryTitle:  table.get(row, colArteryTitle),
			Prep2:        table.get(row, colPrep2),
			ArteryName:   table.get(row, colArteryName),
			ArteryLocal:  table.get(row, colArteryLocal),
		})
	}
	return records, nil
}

func (p *Portugal) Geocoder() (geocode.Resolver, error) {
	return geocode.NewGeoNames(filepath.Join(p.dir, "PT.txt"))
}

// padCode left pads a numeric administrative code to the two digit form the
// dicofre uses.
func padCode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 1 {
		return "0" + code
	}
	return code
}

type csvTable struct {
	columns map[string]int
	rows    [][]string
}

func (t *csvTable) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readCSV(path string, comma rune) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return &csvTable{columns: columns, rows: rows}, nil
}
