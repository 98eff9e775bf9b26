package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/pkg"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	catalogRouter := router.PathPrefix("/catalog").Subrouter()
	catalogRouter.HandleFunc("/muscle_groups", handler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	catalogRouter.HandleFunc("/muscle_groups", handler.HandleNewMuscleGroup).Methods("POST", "OPTIONS").Name("new-muscle-group")
	catalogRouter.HandleFunc("/variations", handler.HandleListVariations).Methods("GET", "OPTIONS").Name("list-variations")
	catalogRouter.HandleFunc("/variations", handler.HandleNewVariation).Methods("POST", "OPTIONS").Name("new-variation")
	catalogRouter.HandleFunc("/cardio_exercises", handler.HandleListCardioExercises).Methods("GET", "OPTIONS").Name("list-cardio-exercises")
	catalogRouter.HandleFunc("/cardio_exercises", handler.HandleNewCardioExercise).Methods("POST", "OPTIONS").Name("new-cardio-exercise")
}

type newItemRequest struct {
	MuscleGroupID int64  `json:"muscle_group_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

type newItemResponse struct {
	ID int64 `json:"id"`
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.muscle_groups.list")
	defer span.End()

	groups, err := handler.catalog.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		http.Error(w, "list muscle groups failed", http.StatusBadGateway)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, groups)
}

func (handler *Handler) HandleListVariations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.variations.list")
	defer span.End()

	var muscleGroupID int64
	if muscleGroupIDParam := r.URL.Query().Get("muscle_group_id"); muscleGroupIDParam != "" {
		id, err := strconv.ParseInt(muscleGroupIDParam, 10, 64)
		if err != nil {
			http.Error(w, "invalid muscle group id", http.StatusBadRequest)
			return
		}
		muscleGroupID = id
	}

	variations, err := handler.catalog.Variations(ctx, muscleGroupID)
	if err != nil {
		log.Errorf("list variations: %s", err)
		http.Error(w, "list variations failed", http.StatusBadGateway)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, variations)
}

func (handler *Handler) HandleListCardioExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.cardio_exercises.list")
	defer span.End()

	exercises, err := handler.catalog.CardioExercises(ctx)
	if err != nil {
		log.Errorf("list cardio exercises: %s", err)
		http.Error(w, "list cardio exercises failed", http.StatusBadGateway)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, exercises)
}

func (handler *Handler) HandleNewMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.muscle_groups.new")
	defer span.End()

	req, ok := decodeNewItem(w, r)
	if !ok {
		return
	}
	id, err := handler.catalog.CreateMuscleGroup(ctx, req.Name)
	writeNewItemResult(w, "muscle group", id, err)
}

func (handler *Handler) HandleNewVariation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.variations.new")
	defer span.End()

	req, ok := decodeNewItem(w, r)
	if !ok {
		return
	}
	id, err := handler.catalog.CreateVariation(ctx, req.MuscleGroupID, req.Name, req.Description)
	writeNewItemResult(w, "variation", id, err)
}

func (handler *Handler) HandleNewCardioExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.cardio_exercises.new")
	defer span.End()

	req, ok := decodeNewItem(w, r)
	if !ok {
		return
	}
	id, err := handler.catalog.CreateCardioExercise(ctx, req.Name)
	writeNewItemResult(w, "cardio exercise", id, err)
}

func decodeNewItem(w http.ResponseWriter, r *http.Request) (newItemRequest, bool) {
	var req newItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new catalog item, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeNewItemResult(w http.ResponseWriter, what string, id int64, err error) {
	if err != nil {
		var validationErr *draft.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("new %s: %s", what, err)
		http.Error(w, "add "+what+" failed", http.StatusBadGateway)
		return
	}

	log.Debugf("new %s added: %d", what, id)
	pkg.SendJsonResponse(w, http.StatusCreated, newItemResponse{ID: id})
}
