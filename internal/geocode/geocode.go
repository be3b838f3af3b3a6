// Package geocode resolves postal codes to approximate coordinates using a
// GeoNames style postal dataset, the same data pgeocode style services sit on.
package geocode

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Resolver maps a postal code pair to an approximate coordinate. A nil point
// with a nil error means the dataset has no row for that exact pair, which is
// a common and expected outcome, not a failure.
type Resolver interface {
	Resolve(postalCode, extension int) (*orb.Point, error)
}

// Key is the canonical zero padded "BBBB-EEE" form used to index postal
// geocoding datasets.
func Key(postalCode, extension int) string {
	return fmt.Sprintf("%04d-%03d", postalCode, extension)
}
