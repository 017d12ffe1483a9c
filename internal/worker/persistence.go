package worker

import (
	"log"
	"time"

	"geosupport/internal/config"
	"geosupport/internal/service/feature"
)

// StartPersistenceWorkers starts the write-behind workers: dirty features
// go to Redis frequently, the full set goes to PostgreSQL on a slower
// cadence.
func StartPersistenceWorkers() {
	featureService := feature.GetFeatureService()

	redisTicker := time.NewTicker(config.RedisBackupInterval)
	go func() {
		for range redisTicker.C {
			if err := featureService.SaveDirtyFeaturesToRedis(); err != nil {
				log.Printf("Persistence worker: error saving to Redis: %v", err)
			}
		}
	}()

	pgTicker := time.NewTicker(config.PostgresBackupInterval)
	go func() {
		for range pgTicker.C {
			if err := featureService.SaveAllFeaturesToPG(); err != nil {
				log.Printf("Persistence worker: error saving to PostgreSQL: %v", err)
			}
		}
	}()

	log.Printf("Persistence workers started (redis %v, postgres %v)",
		config.RedisBackupInterval, config.PostgresBackupInterval)
}
