package workoutstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/remote"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workoutstore_test

type workoutRepo interface {
	CreateSession(ctx context.Context, req remote.SessionRequest) (int64, error)
	UpdateSession(ctx context.Context, id int64, req remote.SessionRequest) error
	DeleteSession(ctx context.Context, id int64) error
	GetSession(ctx context.Context, id int64) (*remote.SessionDetails, error)
	History(ctx context.Context, params HistoryParams) ([]remote.SessionRecord, error)
	CreateSet(ctx context.Context, req remote.CreateSetRequest) (int64, error)
	UpdateSet(ctx context.Context, id int64, req remote.UpdateSetRequest) error
	DeleteSet(ctx context.Context, id int64) error
	CreateCardioLog(ctx context.Context, req remote.CreateCardioRequest) (int64, error)
	UpdateCardioLog(ctx context.Context, id int64, req remote.UpdateCardioRequest) error
	DeleteCardioLog(ctx context.Context, id int64) error
	MuscleGroups(ctx context.Context) ([]remote.MuscleGroup, error)
	Variations(ctx context.Context) ([]remote.Variation, error)
	CardioExercises(ctx context.Context) ([]remote.CardioExercise, error)
	CreateMuscleGroup(ctx context.Context, req remote.CreateMuscleGroupRequest) (int64, error)
	CreateVariation(ctx context.Context, req remote.CreateVariationRequest) (int64, error)
	CreateCardioExercise(ctx context.Context, req remote.CreateCardioExerciseRequest) (int64, error)
}

type Handler struct {
	repo workoutRepo
}

func NewHandler(repo workoutRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	workoutsRouter := router.PathPrefix("/api/workouts").Subrouter()
	workoutsRouter.HandleFunc("/addsession", handler.HandleCreateSession).Methods("POST", "OPTIONS").Name("create-session")
	workoutsRouter.HandleFunc("/session/{id}", handler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	workoutsRouter.HandleFunc("/session/{id}", handler.HandleUpdateSession).Methods("PUT", "OPTIONS").Name("update-session")
	workoutsRouter.HandleFunc("/session/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	workoutsRouter.HandleFunc("/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("session-history")

	workoutsRouter.HandleFunc("/addset", handler.HandleCreateSet).Methods("POST", "OPTIONS").Name("create-set")
	workoutsRouter.HandleFunc("/set/{id}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	workoutsRouter.HandleFunc("/set/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	workoutsRouter.HandleFunc("/addcardio", handler.HandleCreateCardioLog).Methods("POST", "OPTIONS").Name("create-cardio-log")
	workoutsRouter.HandleFunc("/cardio/{id}", handler.HandleUpdateCardioLog).Methods("PUT", "OPTIONS").Name("update-cardio-log")
	workoutsRouter.HandleFunc("/cardio/{id}", handler.HandleDeleteCardioLog).Methods("DELETE", "OPTIONS").Name("delete-cardio-log")

	workoutsRouter.HandleFunc("/muscle_groups", handler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	workoutsRouter.HandleFunc("/muscle_groups", handler.HandleCreateMuscleGroup).Methods("POST", "OPTIONS").Name("create-muscle-group")
	workoutsRouter.HandleFunc("/variations", handler.HandleListVariations).Methods("GET", "OPTIONS").Name("list-variations")
	workoutsRouter.HandleFunc("/variations", handler.HandleCreateVariation).Methods("POST", "OPTIONS").Name("create-variation")
	workoutsRouter.HandleFunc("/cardio_exercises", handler.HandleListCardioExercises).Methods("GET", "OPTIONS").Name("list-cardio-exercises")
	workoutsRouter.HandleFunc("/cardio_exercises", handler.HandleCreateCardioExercise).Methods("POST", "OPTIONS").Name("create-cardio-exercise")
}

func sendMutationOK(w http.ResponseWriter, status int, id *int64, message string) {
	pkg.SendJsonResponse(w, status, remote.MutationResponse{
		ID:      id,
		Success: true,
		Message: message,
	})
}

func sendMutationFailed(w http.ResponseWriter, status int, message string) {
	pkg.SendJsonResponse(w, status, remote.MutationResponse{
		Success: false,
		Message: message,
	})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, what string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Errorf("%s, unmarshal json params: %s", what, err)
		sendMutationFailed(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeRepoError maps repo errors to a failed mutation response.
func writeRepoError(w http.ResponseWriter, what string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrSetNotFound),
		errors.Is(err, ErrCardioLogNotFound):
		sendMutationFailed(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmptyName):
		sendMutationFailed(w, http.StatusBadRequest, err.Error())
	case pkg.IsUniqueViolationError(err):
		sendMutationFailed(w, http.StatusConflict, "already exists")
	case pkg.IsForeignKeyViolationError(err):
		log.Debugf("%s: foreign key [%s] violated", what, pkg.PgConstraintName(err))
		sendMutationFailed(w, http.StatusBadRequest, "references an unknown session or catalog item")
	default:
		log.Errorf("%s: %s", what, err)
		sendMutationFailed(w, http.StatusInternalServerError, what+" failed")
	}
}

func (handler *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.session.create")
	defer span.End()

	var req remote.SessionRequest
	if !decodeBody(w, r, "create session", &req) {
		return
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.Before(req.EndTime.Time) {
		sendMutationFailed(w, http.StatusBadRequest, "start time must be before end time")
		return
	}

	id, err := handler.repo.CreateSession(ctx, req)
	if err != nil {
		writeRepoError(w, "create session", err)
		return
	}
	log.Debugf("workout session [%d] created", id)
	sendMutationOK(w, http.StatusCreated, &id, "session created")
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.session.get")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	details, err := handler.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session [%d]: %s", id, err)
		http.Error(w, "get session failed", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, details)
}

func (handler *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.session.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid session id")
		return
	}
	var req remote.SessionRequest
	if !decodeBody(w, r, "update session", &req) {
		return
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.Before(req.EndTime.Time) {
		sendMutationFailed(w, http.StatusBadRequest, "start time must be before end time")
		return
	}

	if err := handler.repo.UpdateSession(ctx, id, req); err != nil {
		writeRepoError(w, "update session", err)
		return
	}
	sendMutationOK(w, http.StatusOK, &id, "session updated")
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.session.delete")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid session id")
		return
	}
	if err := handler.repo.DeleteSession(ctx, id); err != nil {
		writeRepoError(w, "delete session", err)
		return
	}
	log.Debugf("workout session [%d] deleted", id)
	sendMutationOK(w, http.StatusOK, &id, "session deleted")
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.session.history")
	defer span.End()

	var params HistoryParams
	query := r.URL.Query()
	if limitParam := query.Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}
	for param, target := range map[string]*time.Time{
		"start_date": &params.StartDate,
		"end_date":   &params.EndDate,
	} {
		value := query.Get(param)
		if value == "" {
			continue
		}
		parsed, err := time.ParseInLocation(remote.DateLayout, value, time.UTC)
		if err != nil {
			http.Error(w, "invalid "+param+", expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		*target = parsed
	}

	sessions, err := handler.repo.History(ctx, params)
	if err != nil {
		log.Errorf("session history: %s", err)
		http.Error(w, "session history failed", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, sessions)
}

func (handler *Handler) HandleCreateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.set.create")
	defer span.End()

	var req remote.CreateSetRequest
	if !decodeBody(w, r, "create set", &req) {
		return
	}
	if req.WorkoutSessionID <= 0 || req.MuscleGroupID <= 0 || req.VariationID <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "session, muscle group and variation are required")
		return
	}
	if req.Weight < 0 || req.Reps <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "weight must not be negative and reps must be positive")
		return
	}

	id, err := handler.repo.CreateSet(ctx, req)
	if err != nil {
		writeRepoError(w, "create set", err)
		return
	}
	sendMutationOK(w, http.StatusCreated, &id, "set added")
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.set.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid set id")
		return
	}
	var req remote.UpdateSetRequest
	if !decodeBody(w, r, "update set", &req) {
		return
	}
	if (req.Weight != nil && *req.Weight < 0) || (req.Reps != nil && *req.Reps <= 0) {
		sendMutationFailed(w, http.StatusBadRequest, "weight must not be negative and reps must be positive")
		return
	}

	if err := handler.repo.UpdateSet(ctx, id, req); err != nil {
		writeRepoError(w, "update set", err)
		return
	}
	sendMutationOK(w, http.StatusOK, &id, "set updated")
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.set.delete")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid set id")
		return
	}
	if err := handler.repo.DeleteSet(ctx, id); err != nil {
		writeRepoError(w, "delete set", err)
		return
	}
	sendMutationOK(w, http.StatusOK, &id, "set deleted")
}

func (handler *Handler) HandleCreateCardioLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.cardio.create")
	defer span.End()

	var req remote.CreateCardioRequest
	if !decodeBody(w, r, "create cardio log", &req) {
		return
	}
	if req.WorkoutSessionID <= 0 || req.CardioExerciseID <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "session and cardio exercise are required")
		return
	}
	if req.Duration <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "duration must be positive")
		return
	}

	id, err := handler.repo.CreateCardioLog(ctx, req)
	if err != nil {
		writeRepoError(w, "create cardio log", err)
		return
	}
	sendMutationOK(w, http.StatusCreated, &id, "cardio log added")
}

func (handler *Handler) HandleUpdateCardioLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.cardio.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid cardio log id")
		return
	}
	var req remote.UpdateCardioRequest
	if !decodeBody(w, r, "update cardio log", &req) {
		return
	}
	if req.Duration != nil && *req.Duration <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "duration must be positive")
		return
	}

	if err := handler.repo.UpdateCardioLog(ctx, id, req); err != nil {
		writeRepoError(w, "update cardio log", err)
		return
	}
	sendMutationOK(w, http.StatusOK, &id, "cardio log updated")
}

func (handler *Handler) HandleDeleteCardioLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.cardio.delete")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		sendMutationFailed(w, http.StatusBadRequest, "invalid cardio log id")
		return
	}
	if err := handler.repo.DeleteCardioLog(ctx, id); err != nil {
		writeRepoError(w, "delete cardio log", err)
		return
	}
	sendMutationOK(w, http.StatusOK, &id, "cardio log deleted")
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.muscle_groups.list")
	defer span.End()

	groups, err := handler.repo.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		http.Error(w, "list muscle groups failed", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, groups)
}

func (handler *Handler) HandleListVariations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.variations.list")
	defer span.End()

	variations, err := handler.repo.Variations(ctx)
	if err != nil {
		log.Errorf("list variations: %s", err)
		http.Error(w, "list variations failed", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, variations)
}

func (handler *Handler) HandleListCardioExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.cardio_exercises.list")
	defer span.End()

	exercises, err := handler.repo.CardioExercises(ctx)
	if err != nil {
		log.Errorf("list cardio exercises: %s", err)
		http.Error(w, "list cardio exercises failed", http.StatusInternalServerError)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, exercises)
}

func (handler *Handler) HandleCreateMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.muscle_groups.create")
	defer span.End()

	var req remote.CreateMuscleGroupRequest
	if !decodeBody(w, r, "create muscle group", &req) {
		return
	}
	id, err := handler.repo.CreateMuscleGroup(ctx, req)
	if err != nil {
		writeRepoError(w, "create muscle group", err)
		return
	}
	sendMutationOK(w, http.StatusCreated, &id, "muscle group added")
}

func (handler *Handler) HandleCreateVariation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.variations.create")
	defer span.End()

	var req remote.CreateVariationRequest
	if !decodeBody(w, r, "create variation", &req) {
		return
	}
	if req.MuscleGroupID <= 0 {
		sendMutationFailed(w, http.StatusBadRequest, "muscle group is required")
		return
	}
	id, err := handler.repo.CreateVariation(ctx, req)
	if err != nil {
		writeRepoError(w, "create variation", err)
		return
	}
	sendMutationOK(w, http.StatusCreated, &id, "variation added")
}

func (handler *Handler) HandleCreateCardioExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutstore.cardio_exercises.create")
	defer span.End()

	var req remote.CreateCardioExerciseRequest
	if !decodeBody(w, r, "create cardio exercise", &req) {
		return
	}
	id, err := handler.repo.CreateCardioExercise(ctx, req)
	if err != nil {
		writeRepoError(w, "create cardio exercise", err)
		return
	}
	sendMutationOK(w, http.StatusCreated, &id, "cardio exercise added")
}
