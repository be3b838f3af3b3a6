package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
)

func TestFullAddressAllComponents(t *testing.T) {
	record := &domain.PostalCode{
		ArteryType:  nullString("Rua"),
		Prep1:       nullString("de"),
		ArteryTitle: nullString("Dom"),
		Prep2:       nullString(""),
		ArteryName:  nullString("Hugo"),
		ArteryLocal: nullString("Porto"),
	}
	got := FullAddress(record, "Sé", "Porto", "Porto", "Portugal")
	assert.Equal(t, "Rua de Dom Hugo Porto, Sé, Porto, Porto, Portugal", got)
}

func TestFullAddressOmitsLocalityEqualToCounty(t *testing.T) {
	record := &domain.PostalCode{ArteryName: nullString("Rua Central")}
	got := FullAddress(record, "Braga", "Braga", "Braga", "Portugal")
	assert.Equal(t, "Rua Central, Braga, Braga, Portugal", got)
}

func TestFullAddressNoComponents(t *testing.T) {
	record := &domain.PostalCode{}
	assert.Equal(t, "Sé, Porto, Porto, Portugal", FullAddress(record, "Sé", "Porto", "Porto", "Portugal"))
	assert.Equal(t, "Porto, Porto, Portugal", FullAddress(record, "Porto", "Porto", "Porto", "Portugal"))
}
