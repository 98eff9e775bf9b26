package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/catalog"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/internal/workout/reconcile"
	"github.com/2beens/fittrack/internal/workout/remote"
	"github.com/2beens/fittrack/pkg"
)

// shown to the user on a failed save, per entry failures stay in the logs
const saveFailedMessage = "failed to save workout, please try again"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=editor_test

type labelSource interface {
	Labels(ctx context.Context) (*catalog.Labels, error)
}

type Handler struct {
	editor *Editor
	labels labelSource
}

func NewHandler(editor *Editor, labels labelSource) *Handler {
	return &Handler{
		editor: editor,
		labels: labels,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	saveAllowedPerMin int,
) {
	draftsRouter := router.PathPrefix("/drafts").Subrouter()
	draftsRouter.HandleFunc("", handler.HandleNew).Methods("POST", "OPTIONS").Name("new-draft")
	draftsRouter.HandleFunc("/session/{sessionId}", handler.HandleEdit).Methods("POST", "OPTIONS").Name("edit-session-draft")
	draftsRouter.HandleFunc("/{draftId}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-draft")
	draftsRouter.HandleFunc("/{draftId}", handler.HandleDiscard).Methods("DELETE", "OPTIONS").Name("discard-draft")
	draftsRouter.HandleFunc("/{draftId}/metadata", handler.HandleUpdateMetadata).Methods("PUT", "OPTIONS").Name("update-draft-metadata")
	draftsRouter.HandleFunc("/{draftId}/entries", handler.HandleAddEntry).Methods("POST", "OPTIONS").Name("add-draft-entry")
	draftsRouter.HandleFunc("/{draftId}/entries/{entryId}", handler.HandleUpdateEntry).Methods("PUT", "OPTIONS").Name("update-draft-entry")
	draftsRouter.HandleFunc("/{draftId}/entries/{entryId}", handler.HandleRemoveEntry).Methods("DELETE", "OPTIONS").Name("remove-draft-entry")
	draftsRouter.HandleFunc("/{draftId}/groups", handler.HandleGroups).Methods("GET", "OPTIONS").Name("draft-groups")
	draftsRouter.HandleFunc("/{draftId}/dirty", handler.HandleDirty).Methods("GET", "OPTIONS").Name("draft-dirty")

	// saving fans out to the workout store, limit how often it can be triggered
	saveRateLimit := middleware.RateLimit(rateLimiter, "draft-save", saveAllowedPerMin, metricsManager)
	draftsRouter.Handle("/{draftId}/save", saveRateLimit(http.HandlerFunc(handler.HandleSave))).Methods("POST", "OPTIONS").Name("save-draft")
}

type metadataRequest struct {
	Title     string          `json:"title"`
	Notes     string          `json:"notes"`
	Date      remote.Date     `json:"date"`
	StartTime remote.DateTime `json:"startTime"`
	EndTime   remote.DateTime `json:"endTime"`
}

func (m metadataRequest) toMetadata() draft.Metadata {
	return draft.Metadata{
		Title:     m.Title,
		Notes:     m.Notes,
		Date:      m.Date.Time,
		StartTime: m.StartTime.Time,
		EndTime:   m.EndTime.Time,
	}
}

type entryRequest struct {
	Type          string               `json:"type"`
	PerformedDate remote.Date          `json:"performedDate"`
	Strength      *draft.StrengthInput `json:"strength,omitempty"`
	Cardio        *draft.CardioInput   `json:"cardio,omitempty"`
}

type EntryView struct {
	ID            draft.Identity  `json:"id"`
	Type          string          `json:"type"`
	PerformedDate remote.Date     `json:"performedDate"`
	Strength      *draft.Strength `json:"strength,omitempty"`
	Cardio        *draft.Cardio   `json:"cardio,omitempty"`
}

type MetadataView struct {
	Title     string          `json:"title"`
	Notes     string          `json:"notes"`
	Date      remote.Date     `json:"date"`
	StartTime remote.DateTime `json:"startTime"`
	EndTime   remote.DateTime `json:"endTime"`
}

type DraftView struct {
	DraftID   string           `json:"draftId"`
	SessionID int64            `json:"sessionId,omitempty"`
	IsNew     bool             `json:"isNew"`
	Metadata  MetadataView     `json:"metadata"`
	Entries   []EntryView      `json:"entries"`
	Deletions []draft.Identity `json:"deletions"`
	Modified  bool             `json:"modified"`
}

type GroupView struct {
	Key     string      `json:"key"`
	Label   string      `json:"label"`
	Entries []EntryView `json:"entries"`
}

func newEntryView(e draft.Entry) EntryView {
	return EntryView{
		ID:            e.ID,
		Type:          e.Kind.String(),
		PerformedDate: remote.NewDate(e.PerformedDate),
		Strength:      e.Strength,
		Cardio:        e.Cardio,
	}
}

func newEntryViews(entries []draft.Entry) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newEntryView(e))
	}
	return views
}

func newDraftView(draftID string, d *draft.Draft) DraftView {
	meta := d.Metadata()
	return DraftView{
		DraftID:   draftID,
		SessionID: d.SessionID,
		IsNew:     d.IsNew(),
		Metadata: MetadataView{
			Title:     meta.Title,
			Notes:     meta.Notes,
			Date:      remote.NewDate(meta.Date),
			StartTime: remote.NewDateTime(meta.StartTime),
			EndTime:   remote.NewDateTime(meta.EndTime),
		},
		Entries:   newEntryViews(d.Entries.Entries()),
		Deletions: d.Deletions.Snapshot(),
		Modified:  d.Modified(),
	}
}

func (handler *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.new")
	defer span.End()

	// an empty body means no metadata
	var req metadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Errorf("new draft, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	meta := req.toMetadata()
	if meta.Date.IsZero() {
		meta.Date = time.Now().UTC()
	}

	draftID, err := handler.editor.BeginNew(meta)
	if err != nil {
		writeError(w, "new draft", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusCreated, map[string]string{"draftId": draftID})
}

func (handler *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.edit")
	defer span.End()

	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil || sessionID <= 0 {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	draftID, err := handler.editor.BeginEdit(ctx, sessionID)
	if err != nil {
		writeError(w, "edit session", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusCreated, map[string]string{"draftId": draftID})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.get")
	defer span.End()

	draftID := mux.Vars(r)["draftId"]
	var view DraftView
	if err := handler.editor.Do(draftID, func(d *draft.Draft) error {
		view = newDraftView(draftID, d)
		return nil
	}); err != nil {
		writeError(w, "get draft", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, view)
}

func (handler *Handler) HandleUpdateMetadata(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.metadata.update")
	defer span.End()

	var req metadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update draft metadata, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	draftID := mux.Vars(r)["draftId"]
	var view DraftView
	if err := handler.editor.Do(draftID, func(d *draft.Draft) error {
		if err := d.SetMetadata(req.toMetadata()); err != nil {
			return err
		}
		view = newDraftView(draftID, d)
		return nil
	}); err != nil {
		writeError(w, "update draft metadata", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, view)
}

func (handler *Handler) HandleAddEntry(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.entries.add")
	defer span.End()

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add draft entry, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	kind, err := draft.ParseKind(req.Type)
	if err != nil {
		writeError(w, "add draft entry", err)
		return
	}

	var added draft.Entry
	if err := handler.editor.Do(mux.Vars(r)["draftId"], func(d *draft.Draft) error {
		performed := req.PerformedDate.Time
		if performed.IsZero() {
			performed = d.Metadata().Date
		}
		entry, err := d.Entries.Add(draft.EntryInput{
			Kind:          kind,
			PerformedDate: performed,
			Strength:      req.Strength,
			Cardio:        req.Cardio,
		})
		added = entry
		return err
	}); err != nil {
		writeError(w, "add draft entry", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusCreated, newEntryView(added))
}

func (handler *Handler) HandleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.entries.update")
	defer span.End()

	entryID, err := draft.ParseIdentity(mux.Vars(r)["entryId"])
	if err != nil {
		writeError(w, "update draft entry", err)
		return
	}
	var patch draft.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update draft entry, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var updated draft.Entry
	if err := handler.editor.Do(mux.Vars(r)["draftId"], func(d *draft.Draft) error {
		entry, err := d.Entries.Update(entryID, patch)
		updated = entry
		return err
	}); err != nil {
		writeError(w, "update draft entry", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, newEntryView(updated))
}

func (handler *Handler) HandleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.entries.remove")
	defer span.End()

	entryID, err := draft.ParseIdentity(mux.Vars(r)["entryId"])
	if err != nil {
		writeError(w, "remove draft entry", err)
		return
	}

	var removed draft.Entry
	if err := handler.editor.Do(mux.Vars(r)["draftId"], func(d *draft.Draft) error {
		entry, err := d.Entries.Remove(entryID)
		removed = entry
		return err
	}); err != nil {
		writeError(w, "remove draft entry", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, newEntryView(removed))
}

func (handler *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.groups")
	defer span.End()

	var date time.Time
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.ParseInLocation(remote.DateLayout, dateParam, time.UTC)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	var groups []draft.Group
	if err := handler.editor.Do(mux.Vars(r)["draftId"], func(d *draft.Draft) error {
		if date.IsZero() {
			groups = d.Entries.Grouped()
		} else {
			groups = d.Entries.GroupedForDate(date)
		}
		return nil
	}); err != nil {
		writeError(w, "draft groups", err)
		return
	}

	// labels are cosmetic, an unreachable catalog must not hide the draft
	labels, err := handler.labels.Labels(ctx)
	if err != nil {
		log.Errorf("draft groups, resolve labels: %s", err)
		labels = nil
	}

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		label := g.Key.String()
		if labels != nil {
			label = labels.Label(g.Key)
		}
		views = append(views, GroupView{
			Key:     g.Key.String(),
			Label:   label,
			Entries: newEntryViews(g.Entries),
		})
	}
	pkg.SendJsonResponse(w, http.StatusOK, views)
}

func (handler *Handler) HandleDirty(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.dirty")
	defer span.End()

	modified, err := handler.editor.HasUnsavedChanges(mux.Vars(r)["draftId"])
	if err != nil {
		writeError(w, "draft dirty check", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, map[string]bool{"unsavedChanges": modified})
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.save")
	defer span.End()

	result, err := handler.editor.Save(ctx, mux.Vars(r)["draftId"])
	if err != nil {
		writeError(w, "save draft", err)
		return
	}
	pkg.SendJsonResponse(w, http.StatusOK, map[string]int64{"sessionId": result.SessionID})
}

func (handler *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.discard")
	defer span.End()

	if err := handler.editor.Discard(mux.Vars(r)["draftId"]); err != nil {
		writeError(w, "discard draft", err)
		return
	}
	pkg.WriteTextResponseOK(w, "discarded")
}

func writeError(w http.ResponseWriter, what string, err error) {
	var (
		validationErr *draft.ValidationError
		notFoundErr   *draft.NotFoundError
		partialErr    *reconcile.PartialCommitError
	)
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDraftNotFound):
		http.Error(w, "draft not found", http.StatusNotFound)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.Is(err, remote.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.As(err, &partialErr):
		log.Errorf("%s: %d of %d operations failed", what, len(partialErr.Failed), partialErr.Total)
		http.Error(w, saveFailedMessage, http.StatusBadGateway)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, what+" failed", http.StatusBadGateway)
	}
}
