package feature

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"gorm.io/gorm"

	"geosupport/internal/model"
	pg "geosupport/internal/postgres"
	redis_client "geosupport/internal/redis"
	"geosupport/internal/service/storage"
	"geosupport/internal/source"
	"geosupport/internal/spatial"
)

const FeatureRedisKey = "feature"

// FeatureService owns the in-memory feature set and its spatial indexes.
// Durable state lives in PostgreSQL with Redis as the hot write-behind; on
// startup both are merged, newest timestamp wins.
type FeatureService struct {
	storage storage.Storage[string, *model.Feature]

	gridSize    float64
	fuzzyMargin float64

	gridIndex  *spatial.Index
	rtreeIndex *spatial.FeatureIndex
	indexMutex sync.RWMutex

	initialized bool
	initMutex   sync.RWMutex
}

var (
	featureServiceInstance *FeatureService
	featureServiceOnce     sync.Once
)

// GetFeatureService returns the singleton instance of FeatureService.
func GetFeatureService() *FeatureService {
	featureServiceOnce.Do(func() {
		featureServiceInstance = &FeatureService{
			storage:     storage.NewMemoryStorage[string, *model.Feature](),
			gridSize:    0.01,
			fuzzyMargin: spatial.DefaultFuzzyMargin,
		}
	})
	return featureServiceInstance
}

// Configure sets the spatial index parameters. Call before InitService.
func (s *FeatureService) Configure(gridSize, fuzzyMargin float64) {
	if gridSize > 0 {
		s.gridSize = gridSize
	}
	if fuzzyMargin > 0 {
		s.fuzzyMargin = fuzzyMargin
	}
}

// InitService loads features from PostgreSQL, overlays newer updates from
// Redis and builds the spatial indexes.
func (s *FeatureService) InitService(ctx context.Context) error {
	s.initMutex.Lock()
	defer s.initMutex.Unlock()

	if s.initialized {
		return nil
	}

	log.Println("Initializing FeatureService...")
	startTime := time.Now()

	log.Println("Loading features from PostgreSQL...")
	pgFeatures, err := s.loadAllFeaturesFromPG()
	if err != nil {
		return fmt.Errorf("failed to load features from PostgreSQL: %w", err)
	}
	log.Printf("Loaded %d features from PostgreSQL in %v", len(pgFeatures), time.Since(startTime))

	log.Println("Loading feature updates from Redis...")
	redisFeatures, err := s.loadAllFeaturesFromRedis(ctx)
	if err != nil {
		return fmt.Errorf("failed to load features from Redis: %w", err)
	}
	log.Printf("Loaded %d feature updates from Redis", len(redisFeatures))

	merged := s.mergeFeaturesIntoMemory(pgFeatures, redisFeatures)
	log.Printf("Merged %d newer features from Redis", merged)

	// The load pass marked everything dirty; these rows came straight from
	// the stores, nothing needs writing back.
	keys := make([]string, 0, s.storage.Count())
	for id := range s.storage.GetAll() {
		keys = append(keys, id)
	}
	s.storage.ClearDirty(keys)

	if err := s.RebuildIndexes(); err != nil {
		return fmt.Errorf("failed to build spatial indexes: %w", err)
	}

	log.Printf("Initialization complete: %d features in memory, took %v",
		s.storage.Count(), time.Since(startTime))

	s.initialized = true
	return nil
}

func (s *FeatureService) loadAllFeaturesFromPG() ([]*model.Feature, error) {
	db := pg.GetDB()
	var rows []*pg.FeaturePG

	result := db.Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	features := make([]*model.Feature, 0, len(rows))
	for _, row := range rows {
		f, err := row.ToFeature()
		if err != nil {
			log.Printf("Skipping unreadable feature %s: %v", row.ID, err)
			continue
		}
		features = append(features, f)
	}
	return features, nil
}

func (s *FeatureService) loadAllFeaturesFromRedis(ctx context.Context) (map[string]*model.Feature, error) {
	client := redis_client.GetClient()
	var cursor uint64
	var keys []string
	pattern := fmt.Sprintf("%s:*", FeatureRedisKey)

	for {
		batch, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	features := make(map[string]*model.Feature)
	if len(keys) == 0 {
		return features, nil
	}

	jsonData, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, data := range jsonData {
		jsonStr, ok := data.(string)
		if !ok || jsonStr == "" {
			continue
		}

		var row featureRedis
		if err := json.Unmarshal([]byte(jsonStr), &row); err != nil {
			continue
		}
		f, err := row.toFeature()
		if err != nil {
			continue
		}
		features[f.ID] = f
	}
	return features, nil
}

func (s *FeatureService) mergeFeaturesIntoMemory(pgFeatures []*model.Feature, redisFeatures map[string]*model.Feature) int {
	for _, f := range pgFeatures {
		s.storage.Set(f.ID, f)
	}

	merged := 0
	for id, rf := range redisFeatures {
		existing, exists := s.storage.Get(id)
		if !exists || rf.UpdatedAt.After(existing.UpdatedAt) {
			s.storage.Set(id, rf)
			merged++
		}
	}
	return merged
}

// UpsertFeature adds or replaces a feature and stamps its update time.
// Indexes are not touched; the rebuild worker folds the change in.
func (s *FeatureService) UpsertFeature(f *model.Feature) {
	f.UpdatedAt = time.Now()
	s.storage.Set(f.ID, f)
}

// GetFeature returns a feature by ID.
func (s *FeatureService) GetFeature(id string) (*model.Feature, bool) {
	return s.storage.Get(id)
}

// DeleteFeature removes a feature from memory.
func (s *FeatureService) DeleteFeature(id string) bool {
	return s.storage.Delete(id)
}

// AllFeatures returns the current in-memory feature set.
func (s *FeatureService) AllFeatures() []*model.Feature {
	return s.storage.GetAllValues()
}

// Count returns the number of features in memory.
func (s *FeatureService) Count() int {
	return s.storage.Count()
}

// LoadFromSource drains a feature source into memory. Features arriving
// this way are dirty and flow to the stores on the next persistence pass.
func (s *FeatureService) LoadFromSource(src source.FeatureSource) (int, error) {
	features, err := source.ReadAll(src)
	if err != nil {
		return 0, err
	}
	for _, f := range features {
		s.UpsertFeature(f)
	}
	return len(features), nil
}

// RebuildIndexes rebuilds the grid and r-tree indexes from the in-memory
// set. Queries keep using the previous indexes until the swap.
func (s *FeatureService) RebuildIndexes() error {
	features := s.storage.GetAllValues()

	gridIndex, err := spatial.BuildIndex(features, spatial.IndexOptions{
		GridSize:    s.gridSize,
		FuzzyMargin: s.fuzzyMargin,
	})
	if err != nil {
		return err
	}
	rtreeIndex := spatial.NewFeatureIndex(features)

	s.indexMutex.Lock()
	s.gridIndex = gridIndex
	s.rtreeIndex = rtreeIndex
	s.indexMutex.Unlock()

	return nil
}

// NearestFeatures returns up to k features closest to p by bounding box.
func (s *FeatureService) NearestFeatures(p orb.Point, k int) []*model.Feature {
	s.indexMutex.RLock()
	defer s.indexMutex.RUnlock()

	if s.rtreeIndex == nil {
		return nil
	}
	return s.rtreeIndex.Nearest(p, k)
}

// FeatureIDsNear returns the IDs of features with a vertex in the grid
// cells within minRadius of the query point.
func (s *FeatureService) FeatureIDsNear(lat, lon, maxLatDelta, maxLonDelta, minRadius float64) []string {
	s.indexMutex.RLock()
	defer s.indexMutex.RUnlock()

	if s.gridIndex == nil {
		return nil
	}
	keys := spatial.NearbyKeys(lat, lon, maxLatDelta, maxLonDelta, s.gridSize, minRadius)
	return s.gridIndex.FeatureIDsNear(keys)
}

// SaveDirtyFeaturesToRedis pushes modified features to Redis in one
// pipeline, then acknowledges them.
func (s *FeatureService) SaveDirtyFeaturesToRedis() error {
	dirty := s.storage.GetDirty()
	if len(dirty) == 0 {
		return nil
	}

	client := redis_client.GetClient()
	ctx := context.Background()
	pipe := client.Pipeline()

	keys := make([]string, 0, len(dirty))
	for id, f := range dirty {
		row, err := toRedisRow(f)
		if err != nil {
			return err
		}
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		pipe.Set(ctx, fmt.Sprintf("%s:%s", FeatureRedisKey, id), data, 0)
		keys = append(keys, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	s.storage.ClearDirty(keys)
	log.Printf("Saved %d features to Redis", len(dirty))
	return nil
}

// SaveAllFeaturesToPG writes the full in-memory set to PostgreSQL in
// batched transactions.
func (s *FeatureService) SaveAllFeaturesToPG() error {
	features := s.storage.GetAllValues()
	if len(features) == 0 {
		return nil
	}

	db := pg.GetDB()
	batchSize := 1000

	for i := 0; i < len(features); i += batchSize {
		end := i + batchSize
		if end > len(features) {
			end = len(features)
		}
		batch := features[i:end]

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, f := range batch {
				row, err := pg.FromFeature(f)
				if err != nil {
					return err
				}
				if result := tx.Save(row); result.Error != nil {
					return result.Error
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Printf("Saved batch of %d features to PostgreSQL (%d/%d)",
			len(batch), end, len(features))
	}

	return nil
}

// featureRedis is the wire form a feature takes in the Redis write-behind.
type featureRedis struct {
	ID        string         `json:"id"`
	CRS       int            `json:"crs"`
	Geometry  string         `json:"geometry"`
	Fields    map[string]any `json:"fields,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toRedisRow(f *model.Feature) (*featureRedis, error) {
	row := &featureRedis{
		ID:        f.ID,
		CRS:       int(f.CRS),
		Fields:    f.Fields,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Geometry != nil {
		row.Geometry = wkt.MarshalString(f.Geometry)
	}
	return row, nil
}

func (r *featureRedis) toFeature() (*model.Feature, error) {
	f := &model.Feature{
		ID:        r.ID,
		CRS:       model.CRS(r.CRS),
		Fields:    r.Fields,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Geometry != "" {
		geom, err := wkt.Unmarshal(r.Geometry)
		if err != nil {
			return nil, err
		}
		f.Geometry = geom
	}
	return f, nil
}
