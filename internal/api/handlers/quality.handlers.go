package routes

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"geosupport/internal/quality"
	"geosupport/internal/redis"
	"geosupport/internal/service/feature"
	"geosupport/internal/util"
)

const qualityReportRedisKey = "quality_report"

// qualityReportTTL keeps finished reports around long enough to fetch.
const qualityReportTTL = 24 * time.Hour

// SetupQualityHandlers registers the quality report endpoints
func SetupQualityHandlers(router *gin.RouterGroup) {
	qualityGroup := router.Group("/quality")

	qualityGroup.POST("/report", RunQualityReport)
	qualityGroup.GET("/report/:id", GetQualityReport)
}

// RunQualityReport audits the in-memory feature set and caches the result
func RunQualityReport(c *gin.Context) {
	var opts quality.Options
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			c.JSON(400, gin.H{"error": "invalid request body"})
			return
		}
	}

	features := feature.GetFeatureService().AllFeatures()
	report := quality.Check(features, opts)

	reportID := util.ShortUUID()
	data, err := json.Marshal(report)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to encode report"})
		return
	}
	if err := redis.Set(reportKey(reportID), data, qualityReportTTL); err != nil {
		log.Printf("Failed to cache quality report %s: %v", reportID, err)
	}

	c.JSON(200, gin.H{
		"report_id": reportID,
		"clean":     report.Clean(),
		"report":    report,
	})
}

// GetQualityReport returns a previously cached report
func GetQualityReport(c *gin.Context) {
	data, err := redis.Get(reportKey(c.Param("id")))
	if err != nil {
		c.JSON(404, gin.H{"error": "report not found"})
		return
	}

	var report quality.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		c.JSON(500, gin.H{"error": "failed to decode cached report"})
		return
	}
	c.JSON(200, report)
}

func reportKey(id string) string {
	return fmt.Sprintf("%s:%s", qualityReportRedisKey, id)
}
