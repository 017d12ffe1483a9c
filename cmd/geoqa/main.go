package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/paulmach/orb"

	"geosupport/internal/model"
	"geosupport/internal/quality"
	"geosupport/internal/source"
	"geosupport/internal/spatial"
)

// Command line flags
var (
	geojsonPath  string
	osmPath      string
	osmTag       string
	reportPath   string
	hashGeometry bool
	hashFields   string
	maxVertices  int
	maxParts     int
	gridOutput   string
	tileSize     float64
)

func init() {
	flag.StringVar(&geojsonPath, "geojson", "", "Path to a GeoJSON feature collection to audit")
	flag.StringVar(&osmPath, "osm-file", "", "Path to an OSM PBF extract to audit")
	flag.StringVar(&osmTag, "osm-tag", "building", "OSM tag a way must carry to be included")
	flag.StringVar(&reportPath, "report", "", "Write the quality report to this file (default: stdout)")
	flag.BoolVar(&hashGeometry, "hash-geometry", true, "Include geometry in duplicate detection")
	flag.StringVar(&hashFields, "fields", "", "Comma-separated attribute names for duplicate detection (default: all)")
	flag.IntVar(&maxVertices, "max-vertices", 0, "Vertex count above which a feature is flagged complex")
	flag.IntVar(&maxParts, "max-parts", 0, "Part count above which a feature is flagged complex")
	flag.StringVar(&gridOutput, "grid-output", "", "Export a fixed-size tile grid over the input's bounds to this GeoJSON file")
	flag.Float64Var(&tileSize, "tile-size", 5000.0, "Tile size in meters for the grid export")
}

func main() {
	flag.Parse()

	if geojsonPath == "" && osmPath == "" {
		log.Fatal("An input must be specified: -geojson or -osm-file")
	}

	features := loadFeatures()
	log.Printf("Loaded %d features", len(features))

	runReport(features)

	if gridOutput != "" {
		exportGrid(features)
	}
}

func loadFeatures() []*model.Feature {
	var all []*model.Feature

	if geojsonPath != "" {
		src, err := source.OpenGeoJSON(geojsonPath)
		if err != nil {
			log.Fatalf("Failed to open GeoJSON input: %v", err)
		}
		features, err := source.ReadAll(src)
		if err != nil {
			log.Fatalf("Failed to read GeoJSON input: %v", err)
		}
		all = append(all, features...)
	}

	if osmPath != "" {
		src, err := source.NewOSMSource(osmPath, source.OSMOptions{TagFilter: osmTag})
		if err != nil {
			log.Fatalf("Failed to open OSM input: %v", err)
		}
		defer src.Close()

		features, err := source.ReadAll(src)
		if err != nil {
			log.Fatalf("Failed to read OSM input: %v", err)
		}
		all = append(all, features...)
	}

	return all
}

func runReport(features []*model.Feature) {
	opts := quality.Options{
		HashGeometry: hashGeometry,
		MaxVertices:  maxVertices,
		MaxParts:     maxParts,
	}
	if hashFields != "" {
		opts.Fields = strings.Split(hashFields, ",")
	}

	report := quality.Check(features, opts)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}

	if reportPath == "" {
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	} else {
		if err := os.WriteFile(reportPath, data, 0644); err != nil {
			log.Fatalf("Failed to write report file: %v", err)
		}
		log.Printf("Wrote quality report to %s", reportPath)
	}

	if report.Clean() {
		log.Println("No issues found")
	} else {
		log.Printf("Found: %d duplicate groups, %d bad field names, %d type conflicts, %d CRS conflicts, %d complex features",
			len(report.DuplicateGroups), len(report.BadFieldNames),
			len(report.TypeConflicts), len(report.CRSConflicts), len(report.ComplexFeatures))
	}
}

// exportGrid covers the collection's bounding box with fixed-size tiles and
// writes them as GeoJSON for visual inspection.
func exportGrid(features []*model.Feature) {
	var bound orb.Bound
	first := true
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		if first {
			bound = f.Bound()
			first = false
			continue
		}
		bound = bound.Union(f.Bound())
	}
	if first {
		log.Fatal("Grid export requires at least one feature with geometry")
	}

	tiles := spatial.BuildFixedSizeGrid(bound, tileSize)
	log.Printf("Created %d tiles over %v", len(tiles), bound)

	fc := spatial.TilesToGeoJSON(tiles)
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal GeoJSON: %v", err)
	}
	if err := os.WriteFile(gridOutput, data, 0644); err != nil {
		log.Fatalf("Failed to write GeoJSON file: %v", err)
	}
	log.Printf("Wrote tile grid to %s", gridOutput)
}
