package spatial

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Tile is one cell of a fixed-size geodesic grid. Corners are lon/lat.
type Tile struct {
	ID         string
	Row, Col   int
	Ring       orb.Ring
	SizeMeters float64
}

// Bound returns the tile's bounding box.
func (t Tile) Bound() orb.Bound {
	return t.Ring.Bound()
}

// BuildFixedSizeGrid covers the bound with tiles of roughly
// tileSizeMeters x tileSizeMeters square meters. Tile height is always
// tileSizeMeters; width in degrees widens toward the poles so each tile
// keeps the target area. Rows run north to south, columns west to east.
func BuildFixedSizeGrid(bound orb.Bound, tileSizeMeters float64) []Tile {
	if tileSizeMeters <= 0 {
		return nil
	}

	minLat, maxLat := bound.Min[1], bound.Max[1]
	minLon, maxLon := bound.Min[0], bound.Max[0]
	targetArea := tileSizeMeters * tileSizeMeters

	var tiles []Tile

	lat := maxLat
	row := 0
	for {
		nextLat := DestinationPoint(orb.Point{minLon, lat}, 180, tileSizeMeters)[1]

		lon := minLon
		col := 0
		for {
			// Longitude span shrinks with cos(lat), so compute the width
			// at the row's mid-latitude to hold the target area.
			midLat := (lat + nextLat) / 2
			targetWidth := targetArea / tileSizeMeters
			lonDiff := targetWidth / (earthRadiusMeters * math.Cos(midLat*math.Pi/180)) * 180 / math.Pi
			nextLon := lon + lonDiff

			tiles = append(tiles, Tile{
				ID:  fmt.Sprintf("tile_%d_%d", row, col),
				Row: row,
				Col: col,
				Ring: orb.Ring{
					{lon, lat},
					{nextLon, lat},
					{nextLon, nextLat},
					{lon, nextLat},
					{lon, lat},
				},
				SizeMeters: tileSizeMeters,
			})

			lon = nextLon
			col++
			if lon > maxLon {
				break
			}
		}

		lat = nextLat
		row++
		if lat < minLat {
			break
		}
	}

	return tiles
}

// TilesToGeoJSON converts tiles to a feature collection with measured edge
// lengths in the properties, for visual inspection of the grid.
func TilesToGeoJSON(tiles []Tile) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, tile := range tiles {
		feature := geojson.NewFeature(orb.Polygon{tile.Ring})

		topWidth := HaversineMeters(tile.Ring[0], tile.Ring[1])
		bottomWidth := HaversineMeters(tile.Ring[3], tile.Ring[2])
		leftHeight := HaversineMeters(tile.Ring[0], tile.Ring[3])
		rightHeight := HaversineMeters(tile.Ring[1], tile.Ring[2])
		area := (topWidth + bottomWidth) * (leftHeight + rightHeight) / 4

		feature.Properties["id"] = tile.ID
		feature.Properties["row"] = tile.Row
		feature.Properties["col"] = tile.Col
		feature.Properties["top_width_km"] = roundKm(topWidth)
		feature.Properties["bottom_width_km"] = roundKm(bottomWidth)
		feature.Properties["left_height_km"] = roundKm(leftHeight)
		feature.Properties["right_height_km"] = roundKm(rightHeight)
		feature.Properties["area_sq_km"] = roundKm(area / 1000)

		fc.Append(feature)
	}
	return fc
}

func roundKm(meters float64) float64 {
	return math.Round(meters) / 1000
}
