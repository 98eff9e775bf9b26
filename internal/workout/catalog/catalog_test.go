package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/2beens/fittrack/internal/workout/catalog"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/internal/workout/remote"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
		// idle docker client connections of the integration tests
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

var (
	testMuscleGroups = []remote.MuscleGroup{
		{ID: 1, Name: "Chest"},
		{ID: 2, Name: "Legs"},
	}
	testVariations = []remote.Variation{
		{ID: 5, MuscleGroupID: 1, Name: "Bench Press"},
		{ID: 6, MuscleGroupID: 2, Name: "Squat"},
		{ID: 7, MuscleGroupID: 1, Name: "Dips"},
	}
	testCardio = []remote.CardioExercise{
		{ID: 2, Name: "Running"},
	}
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestCatalog_LocalCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	store.EXPECT().MuscleGroups(gomock.Any()).Return(testMuscleGroups, nil).Times(1)

	c := catalog.New(store, nil, catalog.Params{})
	for i := 0; i < 3; i++ {
		groups, err := c.MuscleGroups(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testMuscleGroups, groups)
	}
}

func TestCatalog_SharedCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	store.EXPECT().Variations(gomock.Any()).Return(testVariations, nil).Times(1)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("catalog::variations").RedisNil()
	redisMock.ExpectSet("catalog::variations", mustJSON(t, testVariations), time.Hour).SetVal("OK")

	ctx := context.Background()
	first := catalog.New(store, rdb, catalog.Params{})
	variations, err := first.Variations(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, testVariations, variations)

	// another instance finds the list in redis
	redisMock.ExpectGet("catalog::variations").SetVal(mustJSON(t, testVariations))
	second := catalog.New(store, rdb, catalog.Params{})
	variations, err = second.Variations(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []remote.Variation{testVariations[0], testVariations[2]}, variations)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCatalog_RedisFailureIsBypassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	store.EXPECT().CardioExercises(gomock.Any()).Return(testCardio, nil)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("catalog::cardio_exercises").SetErr(errors.New("connection refused"))
	redisMock.ExpectSet("catalog::cardio_exercises", mustJSON(t, testCardio), time.Hour).SetErr(errors.New("connection refused"))

	c := catalog.New(store, rdb, catalog.Params{})
	exercises, err := c.CardioExercises(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCardio, exercises)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCatalog_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	errRemote := errors.New("remote down")
	store.EXPECT().MuscleGroups(gomock.Any()).Return(nil, errRemote)

	c := catalog.New(store, nil, catalog.Params{})
	_, err := c.MuscleGroups(context.Background())
	assert.ErrorIs(t, err, errRemote)
}

func TestCatalog_CreateInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)

	rdb, redisMock := redismock.NewClientMock()
	ctx := context.Background()
	c := catalog.New(store, rdb, catalog.Params{})

	store.EXPECT().MuscleGroups(gomock.Any()).Return(testMuscleGroups, nil)
	redisMock.ExpectGet("catalog::muscle_groups").RedisNil()
	redisMock.ExpectSet("catalog::muscle_groups", mustJSON(t, testMuscleGroups), time.Hour).SetVal("OK")
	_, err := c.MuscleGroups(ctx)
	require.NoError(t, err)

	store.EXPECT().
		CreateMuscleGroup(gomock.Any(), remote.CreateMuscleGroupRequest{Name: "Back"}).
		Return(int64(3), nil)
	redisMock.ExpectDel("catalog::muscle_groups").SetVal(1)
	id, err := c.CreateMuscleGroup(ctx, "Back")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	updated := append(testMuscleGroups, remote.MuscleGroup{ID: 3, Name: "Back"})
	store.EXPECT().MuscleGroups(gomock.Any()).Return(updated, nil)
	redisMock.ExpectGet("catalog::muscle_groups").RedisNil()
	redisMock.ExpectSet("catalog::muscle_groups", mustJSON(t, updated), time.Hour).SetVal("OK")
	groups, err := c.MuscleGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 3)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCatalog_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	c := catalog.New(store, nil, catalog.Params{})
	ctx := context.Background()

	var validationErr *draft.ValidationError
	_, err := c.CreateMuscleGroup(ctx, "")
	assert.ErrorAs(t, err, &validationErr)
	_, err = c.CreateVariation(ctx, 0, "Dips", "")
	assert.ErrorAs(t, err, &validationErr)
	_, err = c.CreateVariation(ctx, 1, "", "")
	assert.ErrorAs(t, err, &validationErr)
	_, err = c.CreateCardioExercise(ctx, "")
	assert.ErrorAs(t, err, &validationErr)

	store.EXPECT().
		CreateVariation(gomock.Any(), remote.CreateVariationRequest{MuscleGroupID: 1, Name: "Dips", Description: "bodyweight"}).
		Return(int64(8), nil)
	id, err := c.CreateVariation(ctx, 1, "Dips", "bodyweight")
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestCatalog_Labels(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockmetadataStore(ctrl)
	store.EXPECT().MuscleGroups(gomock.Any()).Return(testMuscleGroups, nil)
	store.EXPECT().Variations(gomock.Any()).Return(testVariations, nil)
	store.EXPECT().CardioExercises(gomock.Any()).Return(testCardio, nil)

	c := catalog.New(store, nil, catalog.Params{})
	labels, err := c.Labels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Chest - Bench Press", labels.Label(draft.GroupKey{Kind: draft.KindStrength, MuscleGroupID: 1, VariationID: 5}))
	assert.Equal(t, "Running", labels.Label(draft.GroupKey{Kind: draft.KindCardio, ActivityID: 2}))
	assert.Equal(t, "muscle group #9 - variation #99", labels.Label(draft.GroupKey{Kind: draft.KindStrength, MuscleGroupID: 9, VariationID: 99}))
	assert.Equal(t, "cardio #4", labels.Label(draft.GroupKey{Kind: draft.KindCardio, ActivityID: 4}))
}
