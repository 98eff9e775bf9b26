package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/internal/workout/remote"
)

const (
	keyPrefix          = "catalog::"
	keyMuscleGroups    = keyPrefix + "muscle_groups"
	keyVariations      = keyPrefix + "variations"
	keyCardioExercises = keyPrefix + "cardio_exercises"

	megabyte = 1024 * 1024

	DefaultLocalTTL  = time.Minute
	DefaultSharedTTL = time.Hour
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

type metadataStore interface {
	MuscleGroups(ctx context.Context) ([]remote.MuscleGroup, error)
	Variations(ctx context.Context) ([]remote.Variation, error)
	CardioExercises(ctx context.Context) ([]remote.CardioExercise, error)
	CreateMuscleGroup(ctx context.Context, req remote.CreateMuscleGroupRequest) (int64, error)
	CreateVariation(ctx context.Context, req remote.CreateVariationRequest) (int64, error)
	CreateCardioExercise(ctx context.Context, req remote.CreateCardioExerciseRequest) (int64, error)
}

type Params struct {
	LocalCacheSizeMB int
	LocalTTL         time.Duration
	SharedTTL        time.Duration
}

// Catalog serves the workout reference data: muscle groups, exercise
// variations and cardio activities. Lists are cached in process and in redis;
// a failing cache tier is skipped, never fatal.
type Catalog struct {
	store       metadataStore
	local       *freecache.Cache
	localTTL    int // seconds, as freecache wants it
	redisClient *redis.Client
	sharedTTL   time.Duration
}

// New creates a catalog over the given store. redisClient may be nil, in which
// case only the process local cache is used.
func New(store metadataStore, redisClient *redis.Client, params Params) *Catalog {
	if params.LocalCacheSizeMB <= 0 {
		params.LocalCacheSizeMB = 8
	}
	if params.LocalTTL <= 0 {
		params.LocalTTL = DefaultLocalTTL
	}
	if params.SharedTTL <= 0 {
		params.SharedTTL = DefaultSharedTTL
	}

	return &Catalog{
		store:       store,
		local:       freecache.NewCache(params.LocalCacheSizeMB * megabyte),
		localTTL:    int(params.LocalTTL.Seconds()),
		redisClient: redisClient,
		sharedTTL:   params.SharedTTL,
	}
}

func (c *Catalog) MuscleGroups(ctx context.Context) (_ []remote.MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return cachedList(ctx, c, keyMuscleGroups, c.store.MuscleGroups)
}

// Variations lists exercise variations, only those of the given muscle group
// when muscleGroupID > 0.
func (c *Catalog) Variations(ctx context.Context, muscleGroupID int64) (_ []remote.Variation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.variations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("muscle_group.id", muscleGroupID))

	variations, err := cachedList(ctx, c, keyVariations, c.store.Variations)
	if err != nil {
		return nil, err
	}
	if muscleGroupID <= 0 {
		return variations, nil
	}

	filtered := make([]remote.Variation, 0)
	for _, v := range variations {
		if v.MuscleGroupID == muscleGroupID {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (c *Catalog) CardioExercises(ctx context.Context) (_ []remote.CardioExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.cardioExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return cachedList(ctx, c, keyCardioExercises, c.store.CardioExercises)
}

func (c *Catalog) CreateMuscleGroup(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, &draft.ValidationError{Field: "name", Reason: "missing"}
	}
	id, err := c.store.CreateMuscleGroup(ctx, remote.CreateMuscleGroupRequest{Name: name})
	if err != nil {
		return 0, fmt.Errorf("create muscle group: %w", err)
	}
	c.invalidate(ctx, keyMuscleGroups)
	return id, nil
}

func (c *Catalog) CreateVariation(ctx context.Context, muscleGroupID int64, name, description string) (int64, error) {
	if muscleGroupID <= 0 {
		return 0, &draft.ValidationError{Field: "muscle_group_id", Reason: "missing"}
	}
	if name == "" {
		return 0, &draft.ValidationError{Field: "name", Reason: "missing"}
	}
	id, err := c.store.CreateVariation(ctx, remote.CreateVariationRequest{
		MuscleGroupID: muscleGroupID,
		Name:          name,
		Description:   description,
	})
	if err != nil {
		return 0, fmt.Errorf("create variation: %w", err)
	}
	c.invalidate(ctx, keyVariations)
	return id, nil
}

func (c *Catalog) CreateCardioExercise(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, &draft.ValidationError{Field: "name", Reason: "missing"}
	}
	id, err := c.store.CreateCardioExercise(ctx, remote.CreateCardioExerciseRequest{Name: name})
	if err != nil {
		return 0, fmt.Errorf("create cardio exercise: %w", err)
	}
	c.invalidate(ctx, keyCardioExercises)
	return id, nil
}

// Labels resolves display labels of entry groups.
type Labels struct {
	muscleGroups map[int64]string
	variations   map[int64]string
	cardio       map[int64]string
}

// Label returns "Muscle Group - Variation" for strength groups and the
// activity name for cardio groups. Unknown ids are shown by number.
func (l *Labels) Label(key draft.GroupKey) string {
	if key.Kind == draft.KindCardio {
		if name, ok := l.cardio[key.ActivityID]; ok {
			return name
		}
		return fmt.Sprintf("cardio #%d", key.ActivityID)
	}

	group, ok := l.muscleGroups[key.MuscleGroupID]
	if !ok {
		group = fmt.Sprintf("muscle group #%d", key.MuscleGroupID)
	}
	variation, ok := l.variations[key.VariationID]
	if !ok {
		variation = fmt.Sprintf("variation #%d", key.VariationID)
	}
	return group + " - " + variation
}

func NewLabels(groups []remote.MuscleGroup, variations []remote.Variation, cardio []remote.CardioExercise) *Labels {
	labels := &Labels{
		muscleGroups: make(map[int64]string, len(groups)),
		variations:   make(map[int64]string, len(variations)),
		cardio:       make(map[int64]string, len(cardio)),
	}
	for _, g := range groups {
		labels.muscleGroups[g.ID] = g.Name
	}
	for _, v := range variations {
		labels.variations[v.ID] = v.Name
	}
	for _, ce := range cardio {
		labels.cardio[ce.ID] = ce.Name
	}
	return labels
}

func (c *Catalog) Labels(ctx context.Context) (*Labels, error) {
	groups, err := c.MuscleGroups(ctx)
	if err != nil {
		return nil, err
	}
	variations, err := c.Variations(ctx, 0)
	if err != nil {
		return nil, err
	}
	cardio, err := c.CardioExercises(ctx)
	if err != nil {
		return nil, err
	}

	return NewLabels(groups, variations, cardio), nil
}

func cachedList[T any](ctx context.Context, c *Catalog, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var list []T

	if cachedBytes, err := c.local.Get([]byte(key)); err == nil {
		if err := json.Unmarshal(cachedBytes, &list); err == nil {
			log.Tracef("catalog: [%s] from local cache", key)
			return list, nil
		}
		log.Errorf("catalog: unmarshal local cache value [%s]: %s", key, err)
	}

	if c.redisClient != nil {
		cmd := c.redisClient.Get(ctx, key)
		if err := cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
			log.Errorf("catalog: failed to get [%s] from redis: %s", key, err)
		} else if val := cmd.Val(); val != "" {
			if err := json.Unmarshal([]byte(val), &list); err == nil {
				log.Tracef("catalog: [%s] from redis", key)
				c.setLocal(key, []byte(val))
				return list, nil
			}
			log.Errorf("catalog: unmarshal redis value [%s]: %s", key, err)
		}
	}

	list, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch [%s]: %w", key, err)
	}

	listBytes, err := json.Marshal(list)
	if err != nil {
		log.Errorf("catalog: marshal [%s]: %s", key, err)
		return list, nil
	}
	c.setLocal(key, listBytes)
	if c.redisClient != nil {
		if err := c.redisClient.Set(ctx, key, string(listBytes), c.sharedTTL).Err(); err != nil {
			log.Errorf("catalog: failed to cache [%s] in redis: %s", key, err)
		}
	}

	return list, nil
}

func (c *Catalog) setLocal(key string, value []byte) {
	if err := c.local.Set([]byte(key), value, c.localTTL); err != nil {
		log.Errorf("catalog: failed to cache [%s] locally: %s", key, err)
	}
}

func (c *Catalog) invalidate(ctx context.Context, key string) {
	c.local.Del([]byte(key))
	if c.redisClient == nil {
		return
	}
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		log.Errorf("catalog: failed to invalidate [%s] in redis: %s", key, err)
	}
}
