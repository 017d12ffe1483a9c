package worker

import (
	"log"
	"time"

	"geosupport/internal/config"
	"geosupport/internal/service/feature"
)

// StartIndexWorker starts the worker that periodically rebuilds the spatial
// indexes from the in-memory feature set.
func StartIndexWorker() {
	featureService := feature.GetFeatureService()

	ticker := time.NewTicker(config.IndexRebuildInterval)
	go func() {
		for range ticker.C {
			start := time.Now()
			if err := featureService.RebuildIndexes(); err != nil {
				log.Printf("Index worker: rebuild failed: %v", err)
				continue
			}
			log.Printf("Index worker: rebuilt indexes over %d features in %v",
				featureService.Count(), time.Since(start))
		}
	}()

	log.Println("Index worker started with interval:", config.IndexRebuildInterval)
}
