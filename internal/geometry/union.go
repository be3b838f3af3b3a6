package geometry

import (
	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Union dissolves a set of multipolygons into one. Nil and empty inputs are
// skipped; an empty input set yields an empty multipolygon, which is the valid
// aggregate of a region with no resolved children yet.
func Union(polygons ...orb.MultiPolygon) (orb.MultiPolygon, error) {
	geoms := make([]polygol.Geom, 0, len(polygons))
	for _, p := range polygons {
		if len(p) == 0 {
			continue
		}
		geoms = append(geoms, toGeom(p))
	}
	if len(geoms) == 0 {
		return orb.MultiPolygon{}, nil
	}

	merged, err := polygol.Union(geoms[0], geoms[1:]...)
	if err != nil {
		return nil, errors.Wrap(err, "polygon union failed")
	}
	return fromGeom(merged), nil
}

func toGeom(mp orb.MultiPolygon) polygol.Geom {
	g := make(polygol.Geom, len(mp))
	for i, poly := range mp {
		g[i] = make([][][]float64, len(poly))
		for j, ring := range poly {
			g[i][j] = make([][]float64, len(ring))
			for k, pt := range ring {
				g[i][j][k] = []float64{pt[0], pt[1]}
			}
		}
	}
	return g
}

func fromGeom(g polygol.Geom) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(g))
	for _, poly := range g {
		p := make(orb.Polygon, 0, len(poly))
		for _, ring := range poly {
			r := make(orb.Ring, 0, len(ring))
			for _, pt := range ring {
				if len(pt) < 2 {
					continue
				}
				r = append(r, orb.Point{pt[0], pt[1]})
			}
			p = append(p, r)
		}
		mp = append(mp, p)
	}
	return mp
}
