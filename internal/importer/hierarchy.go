package importer

import (
	"errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/geometry"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

// adminKey scopes localities by the national district and county codes postal
// records declare.
type adminKey struct {
	districtCode string
	countyCode   string
}

// localityInfo is the read-only view of a built locality the record resolver
// works against.
type localityInfo struct {
	id       uuid.UUID
	name     string
	county   string
	district string
	polygon  orb.MultiPolygon
}

// hierarchy is the fully built in-memory administrative tree for one country.
// It is frozen before postal record resolution starts, which is what makes
// the resolver fan-out safe without locks.
type hierarchy struct {
	country    domain.Country
	districts  []domain.District
	counties   []domain.County
	localities []domain.Locality

	byAdminCode map[adminKey][]*localityInfo
}

type countyKey struct {
	district string
	county   string
}

type localityKey struct {
	district string
	county   string
	locality string
}

// buildHierarchy runs the three dedup passes over the reference table:
// districts, then counties keyed by district, then localities keyed by
// county. Rows with missing names are dropped at the level they fail. Bulk
// write order follows first appearance, so identical input always produces a
// structurally identical tree.
func buildHierarchy(countryName string, rows []source.ReferenceRow, store *geometry.Store, logger *zap.Logger) *hierarchy {
	h := &hierarchy{
		country:     domain.Country{ID: uuid.New(), Name: countryName},
		byAdminCode: make(map[adminKey][]*localityInfo),
	}

	districts := make(map[string]uuid.UUID)
	for _, row := range rows {
		if row.District == "" {
			continue
		}
		if _, ok := districts[row.District]; ok {
			continue
		}
		district := domain.District{
			ID:        uuid.New(),
			CountryID: h.country.ID,
			Name:      row.District,
		}
		districts[row.District] = district.ID
		h.districts = append(h.districts, district)
	}

	counties := make(map[countyKey]uuid.UUID)
	for _, row := range rows {
		if row.District == "" || row.County == "" {
			continue
		}
		key := countyKey{district: row.District, county: row.County}
		if _, ok := counties[key]; ok {
			continue
		}
		county := domain.County{
			ID:         uuid.New(),
			DistrictID: districts[row.District],
			Name:       row.County,
		}
		counties[key] = county.ID
		h.counties = append(h.counties, county)
	}

	localities := make(map[localityKey]struct{})
	for _, row := range rows {
		if row.District == "" || row.County == "" || row.Locality == "" {
			continue
		}
		key := localityKey{district: row.District, county: row.County, locality: row.Locality}
		if _, ok := localities[key]; ok {
			continue
		}
		localities[key] = struct{}{}

		locality := domain.Locality{
			ID:       uuid.New(),
			CountyID: counties[countyKey{district: row.District, county: row.County}],
			Name:     row.Locality,
		}
		polygon, err := store.Find(row.RegionCode)
		switch {
		case errors.Is(err, domain.ErrGeometryNotFound):
			// A region without a boundary still exists in the hierarchy, it
			// just cannot receive containment-resolved postal codes.
			logger.Warn("no boundary for region, storing null polygon",
				zap.String("region_code", row.RegionCode),
				zap.String("locality", row.Locality),
				zap.String("county", row.County),
				zap.String("district", row.District),
			)
		case err != nil:
			logger.Warn("boundary lookup failed, storing null polygon",
				zap.String("region_code", row.RegionCode),
				zap.Error(err),
			)
		default:
			locality.Polygon = domain.MultiPolygon{MultiPolygon: polygon}
		}
		h.localities = append(h.localities, locality)

		scope := adminKey{districtCode: row.DistrictCode, countyCode: row.CountyCode}
		h.byAdminCode[scope] = append(h.byAdminCode[scope], &localityInfo{
			id:       locality.ID,
			name:     locality.Name,
			county:   row.County,
			district: row.District,
			polygon:  polygon,
		})
	}

	return h
}
