package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geosupport/internal/model"
	"geosupport/internal/service/feature"
)

// SetupFeatureHandlers registers the feature query endpoints
func SetupFeatureHandlers(router *gin.RouterGroup) {
	featureGroup := router.Group("/features")

	featureGroup.GET("/nearest", NearestFeatures)
	featureGroup.GET("/near", FeaturesNear)
	featureGroup.GET("/:id", GetFeature)
	featureGroup.POST("", UpsertFeature)
}

// NearestFeatures returns the k features closest to a query point
func NearestFeatures(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(400, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	k := 1
	if kStr := c.Query("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil || parsed < 1 {
			c.JSON(400, gin.H{"error": "k must be a positive integer"})
			return
		}
		k = parsed
	}

	features := feature.GetFeatureService().NearestFeatures(orb.Point{lon, lat}, k)
	c.JSON(200, gin.H{
		"count":    len(features),
		"features": featuresToGeoJSON(features),
	})
}

// FeaturesNear returns the IDs of features with a vertex near a query point
func FeaturesNear(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	radius, err3 := strconv.ParseFloat(c.Query("radius"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(400, gin.H{"error": "lat, lon and radius query parameters are required"})
		return
	}

	ids := feature.GetFeatureService().FeatureIDsNear(lat, lon, radius, radius, radius)
	c.JSON(200, gin.H{
		"count": len(ids),
		"ids":   ids,
	})
}

// GetFeature returns one feature by ID
func GetFeature(c *gin.Context) {
	f, ok := feature.GetFeatureService().GetFeature(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "feature not found"})
		return
	}
	c.JSON(200, featureToGeoJSON(f))
}

// UpsertFeature stores a GeoJSON feature
func UpsertFeature(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read request body"})
		return
	}

	gf, err := geojson.UnmarshalFeature(data)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid GeoJSON feature"})
		return
	}

	id, _ := gf.ID.(string)
	if id == "" {
		c.JSON(400, gin.H{"error": "feature id is required"})
		return
	}

	f := &model.Feature{
		ID:       id,
		CRS:      model.CRSWGS84,
		Geometry: gf.Geometry,
		Fields:   gf.Properties,
	}
	feature.GetFeatureService().UpsertFeature(f)

	log.Printf("Upserted feature %s", id)
	c.JSON(200, gin.H{"status": "success", "id": id})
}

func featureToGeoJSON(f *model.Feature) *geojson.Feature {
	gf := geojson.NewFeature(f.Geometry)
	gf.ID = f.ID
	gf.Properties = f.Fields
	if gf.Properties == nil {
		gf.Properties = geojson.Properties{}
	}
	return gf
}

func featuresToGeoJSON(features []*model.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(featureToGeoJSON(f))
	}
	return fc
}
