package source

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"

	"geosupport/internal/model"
)

// OSMOptions filters which ways become features.
type OSMOptions struct {
	// TagFilter, when non-empty, keeps only ways carrying this tag with a
	// value other than "no". Empty keeps every way.
	TagFilter string
}

// OSMSource extracts way geometries from an OSM PBF extract. The file is
// decoded in two passes: the first collects every node's coordinates, the
// second streams ways through Next, resolving node references against the
// collected coordinates.
type OSMSource struct {
	file    *os.File
	decoder *osmpbf.Decoder
	nodes   map[int64]orb.Point
	opts    OSMOptions
}

// NewOSMSource opens an OSM PBF file and runs the node-collection pass.
// Call Close when done iterating.
func NewOSMSource(path string, opts OSMOptions) (*OSMSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open OSM file: %w", err)
	}

	s := &OSMSource{
		file:  file,
		nodes: make(map[int64]orb.Point),
		opts:  opts,
	}
	if err := s.collectNodes(); err != nil {
		file.Close()
		return nil, err
	}

	// Rewind for the way pass.
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("source: failed to rewind OSM file: %w", err)
	}
	s.decoder = newDecoder(file)
	return s, nil
}

func newDecoder(file *os.File) *osmpbf.Decoder {
	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	decoder.Start(runtime.GOMAXPROCS(-1))
	return decoder
}

func (s *OSMSource) collectNodes() error {
	decoder := newDecoder(s.file)
	count := 0
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("source: error decoding OSM data: %w", err)
		}
		if node, ok := obj.(*osmpbf.Node); ok {
			s.nodes[node.ID] = orb.Point{node.Lon, node.Lat}
			count++
			if count%1000000 == 0 {
				log.Printf("Collected %d nodes...", count)
			}
		}
	}
	return nil
}

// Next returns the next way that passes the tag filter and resolves to at
// least two known nodes. It returns io.EOF when the file is exhausted.
func (s *OSMSource) Next() (*model.Feature, error) {
	for {
		obj, err := s.decoder.Decode()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("source: error decoding OSM data: %w", err)
		}

		way, ok := obj.(*osmpbf.Way)
		if !ok {
			continue
		}
		if s.opts.TagFilter != "" {
			if v, ok := way.Tags[s.opts.TagFilter]; !ok || v == "no" {
				continue
			}
		}

		feature := s.wayToFeature(way)
		if feature == nil {
			continue
		}
		return feature, nil
	}
}

// wayToFeature resolves a way's node references to coordinates. Closed ways
// with enough vertices become polygons, open ways become line strings.
func (s *OSMSource) wayToFeature(way *osmpbf.Way) *model.Feature {
	points := make([]orb.Point, 0, len(way.NodeIDs))
	for _, nodeID := range way.NodeIDs {
		if p, exists := s.nodes[nodeID]; exists {
			points = append(points, p)
		}
	}
	if len(points) < 2 {
		return nil
	}

	var geom orb.Geometry
	if len(points) >= 4 && points[0] == points[len(points)-1] {
		geom = orb.Polygon{orb.Ring(points)}
	} else {
		geom = orb.LineString(points)
	}

	fields := make(map[string]any, len(way.Tags))
	for k, v := range way.Tags {
		fields[k] = v
	}

	return &model.Feature{
		ID:       strconv.FormatInt(way.ID, 10),
		CRS:      model.CRSWGS84,
		Geometry: geom,
		Fields:   fields,
	}
}

// Close releases the underlying file.
func (s *OSMSource) Close() error {
	return s.file.Close()
}
