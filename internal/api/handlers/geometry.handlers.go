package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"geosupport/internal/geometry"
	"geosupport/internal/spatial"
	"geosupport/internal/util"
)

// SetupGeometryHandlers registers the geometry operation endpoints
func SetupGeometryHandlers(router *gin.RouterGroup) {
	router.POST("/lines/extend", ExtendLines)
	router.POST("/polygons/reduce", ReducePolygon)
}

// extendRequest carries the line extension inputs. Lines and boundary may
// be given as coordinate arrays or encoded polylines; both are accepted in
// the same request.
type extendRequest struct {
	Lines           [][][2]float64 `json:"lines"`
	EncodedLines    []string       `json:"encoded_lines"`
	Boundary        [][][2]float64 `json:"boundary"`
	EncodedBoundary []string       `json:"encoded_boundary"`
	MaxDistance     float64        `json:"max_distance"`
	OppositeDir     bool           `json:"opposite"`
	DecodePrecision float64        `json:"decode_precision"`
}

func (r *extendRequest) decodeLines() []orb.LineString {
	return decodeLineSet(r.Lines, r.EncodedLines, r.DecodePrecision)
}

func (r *extendRequest) decodeBoundary() []orb.LineString {
	return decodeLineSet(r.Boundary, r.EncodedBoundary, r.DecodePrecision)
}

func decodeLineSet(coords [][][2]float64, encoded []string, precision float64) []orb.LineString {
	if precision <= 0 {
		precision = 1e-5
	}
	var lines []orb.LineString
	for _, raw := range coords {
		line := make(orb.LineString, len(raw))
		for i, pt := range raw {
			line[i] = orb.Point{pt[0], pt[1]}
		}
		lines = append(lines, line)
	}
	for _, enc := range encoded {
		lines = append(lines, util.DecodePolylineWithPrecision(enc, precision))
	}
	return lines
}

// ExtendLines extends lines up to a barrier and cuts them at the nearest
// crossing
func ExtendLines(c *gin.Context) {
	var req extendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}

	lines := req.decodeLines()
	barrier := req.decodeBoundary()
	if len(lines) == 0 || len(barrier) == 0 {
		c.JSON(400, gin.H{"error": "lines and boundary are required"})
		return
	}
	if req.MaxDistance <= 0 {
		c.JSON(400, gin.H{"error": "max_distance must be positive"})
		return
	}

	dir := geometry.DirAzimuth
	if req.OppositeDir {
		dir = geometry.DirOpposite
	}

	boundary := spatial.NewBoundary(barrier)
	extended := spatial.ExtendToIntersections(lines, boundary, req.MaxDistance, dir)

	out := make([][][2]float64, len(extended))
	for i, line := range extended {
		out[i] = make([][2]float64, len(line))
		for j, pt := range line {
			out[i][j] = [2]float64{pt[0], pt[1]}
		}
	}
	c.JSON(200, gin.H{"lines": out})
}

// reduceRequest carries the polygon reduction inputs.
type reduceRequest struct {
	Ring            [][2]float64 `json:"ring"`
	ReductionRatio  float64      `json:"reduction_ratio"`
	ReferencePoints [][2]float64 `json:"reference_points"`
	MaxIterations   int          `json:"max_iterations"`
}

// ReducePolygon bisects a polygon's bounding rectangle until the result
// meets the target length-to-width ratio, keeping the half that holds the
// reference point
func ReducePolygon(c *gin.Context) {
	var req reduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}
	if req.ReductionRatio <= 0 {
		c.JSON(400, gin.H{"error": "reduction_ratio must be positive"})
		return
	}

	ring := make(orb.Ring, len(req.Ring))
	for i, pt := range req.Ring {
		ring[i] = orb.Point{pt[0], pt[1]}
	}
	refs := make([]orb.Point, len(req.ReferencePoints))
	for i, pt := range req.ReferencePoints {
		refs[i] = orb.Point{pt[0], pt[1]}
	}

	reduced, err := geometry.Reduce(ring, req.ReductionRatio, refs, &geometry.ReduceOptions{
		MaxIterations: req.MaxIterations,
	})
	if err != nil {
		c.JSON(422, gin.H{"error": err.Error()})
		return
	}

	out := make([][2]float64, len(reduced))
	for i, pt := range reduced {
		out[i] = [2]float64{pt[0], pt[1]}
	}
	c.JSON(200, gin.H{"ring": out})
}
