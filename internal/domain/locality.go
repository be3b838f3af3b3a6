package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type Locality struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	CountyID  uuid.UUID    `db:"county_id" json:"county_id"`
	Name      string       `db:"name" json:"name"`
	Polygon   MultiPolygon `db:"polygon" json:"polygon"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// MultiPolygon is a nullable multipolygon column stored as GeoJSON. A bare
// polygon assigned to it is wrapped on write, so a non-empty value always
// round-trips as a MultiPolygon geometry.
type MultiPolygon struct {
	orb.MultiPolygon
}

// NewMultiPolygon normalizes any polygonal orb geometry to multipolygon form.
func NewMultiPolygon(g orb.Geometry) (MultiPolygon, error) {
	switch geom := g.(type) {
	case nil:
		return MultiPolygon{}, nil
	case orb.Polygon:
		return MultiPolygon{orb.MultiPolygon{geom}}, nil
	case orb.MultiPolygon:
		return MultiPolygon{geom}, nil
	default:
		return MultiPolygon{}, fmt.Errorf("unsupported geometry type %q", g.GeoJSONType())
	}
}

func (m MultiPolygon) IsZero() bool {
	return len(m.MultiPolygon) == 0
}

func (m MultiPolygon) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}
	return geojson.NewGeometry(m.MultiPolygon).MarshalJSON()
}

func (m *MultiPolygon) Scan(src interface{}) error {
	if src == nil {
		m.MultiPolygon = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into MultiPolygon", src)
	}

	var g geojson.Geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return fmt.Errorf("multipolygon geojson unmarshal failed: %w", err)
	}
	normalized, err := NewMultiPolygon(g.Geometry())
	if err != nil {
		return err
	}
	*m = normalized
	return nil
}
