package importer

import (
	"strings"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
)

// FullAddress derives the persisted full address of a postal code from its
// artery components and the names of its administrative ancestry. Absent
// components are skipped; when the locality carries the same name as its
// county the locality is left out of the suffix so the name never repeats.
func FullAddress(record *domain.PostalCode, locality, county, district, country string) string {
	components := make([]string, 0, 6)
	for _, c := range []string{
		record.ArteryType.String,
		record.Prep1.String,
		record.ArteryTitle.String,
		record.Prep2.String,
		record.ArteryName.String,
		record.ArteryLocal.String,
	} {
		if c != "" {
			components = append(components, c)
		}
	}

	suffix := county + ", " + district + ", " + country
	if locality != county {
		suffix = locality + ", " + suffix
	}

	street := strings.Join(components, " ")
	if street == "" {
		return suffix
	}
	return street + ", " + suffix
}
