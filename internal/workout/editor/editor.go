package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/internal/workout/reconcile"
	"github.com/2beens/fittrack/internal/workout/remote"
)

var ErrDraftNotFound = errors.New("draft not found")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=editor_test

type sessionFetcher interface {
	FetchSession(ctx context.Context, sessionID int64) (*remote.SessionDetails, error)
}

type committer interface {
	Execute(ctx context.Context, plan reconcile.Plan) (*reconcile.Result, error)
}

type Params struct {
	Metrics *metrics.Manager
	// Now is used for idle tracking, time.Now when nil.
	Now func() time.Time
}

// Editor owns the open drafts. A draft is only ever touched through the
// editor, one caller at a time.
type Editor struct {
	mu     sync.RWMutex
	drafts map[string]*openDraft

	fetcher        sessionFetcher
	committer      committer
	metricsManager *metrics.Manager
	now            func() time.Time
}

type openDraft struct {
	mu          sync.Mutex
	draft       *draft.Draft
	lastTouched time.Time
	// progress of failed saves, so a retry does not repeat remote effects
	progress reconcile.Progress
	// closed is set once the draft is saved or discarded; callers that waited
	// on mu must not use it anymore
	closed bool
}

func New(fetcher sessionFetcher, committer committer, params Params) *Editor {
	metricsManager := params.Metrics
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Editor{
		drafts:         make(map[string]*openDraft),
		fetcher:        fetcher,
		committer:      committer,
		metricsManager: metricsManager,
		now:            now,
	}
}

// BeginNew opens a draft for a brand-new workout.
func (e *Editor) BeginNew(meta draft.Metadata) (string, error) {
	d, err := draft.New(meta)
	if err != nil {
		return "", err
	}
	draftID := e.register(d)
	e.metricsManager.CounterDraftsOpened.WithLabelValues("new").Inc()
	log.Debugf("editor: new workout draft [%s] opened", draftID)
	return draftID, nil
}

// BeginEdit loads an existing session from the remote store and opens a draft
// for it.
func (e *Editor) BeginEdit(ctx context.Context, sessionID int64) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.beginEdit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	details, err := e.fetcher.FetchSession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("fetch session [%d]: %w", sessionID, err)
	}
	d, err := details.Draft()
	if err != nil {
		return "", fmt.Errorf("load session [%d]: %w", sessionID, err)
	}

	draftID := e.register(d)
	e.metricsManager.CounterDraftsOpened.WithLabelValues("edit").Inc()
	log.Debugf("editor: draft [%s] opened for session [%d] with %d entries", draftID, sessionID, d.Entries.Len())
	return draftID, nil
}

func (e *Editor) register(d *draft.Draft) string {
	draftID := uuid.NewString()
	e.mu.Lock()
	e.drafts[draftID] = &openDraft{
		draft:       d,
		lastTouched: e.now(),
	}
	e.mu.Unlock()
	e.metricsManager.GaugeOpenDrafts.Inc()
	return draftID
}

// acquire returns the draft locked; the caller must unlock it.
func (e *Editor) acquire(draftID string) (*openDraft, error) {
	e.mu.RLock()
	od, ok := e.drafts[draftID]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrDraftNotFound
	}

	od.mu.Lock()
	if od.closed {
		od.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	od.lastTouched = e.now()
	return od, nil
}

// close drops a draft held by the caller.
func (e *Editor) close(draftID string, od *openDraft) {
	od.closed = true
	e.mu.Lock()
	delete(e.drafts, draftID)
	e.mu.Unlock()
	e.metricsManager.GaugeOpenDrafts.Dec()
}

// Do runs fn with exclusive access to the draft. fn must not keep the draft
// beyond its return.
func (e *Editor) Do(draftID string, fn func(d *draft.Draft) error) error {
	od, err := e.acquire(draftID)
	if err != nil {
		return err
	}
	defer od.mu.Unlock()
	return fn(od.draft)
}

// Save reconciles the draft with the remote store. On success the draft is
// closed. On failure it stays open and unchanged, and the editor remembers what
// the failed save did achieve: saving again updates the session and rows it
// created and skips the deletes that went through.
func (e *Editor) Save(ctx context.Context, draftID string) (_ *reconcile.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	od, err := e.acquire(draftID)
	if err != nil {
		return nil, err
	}
	defer od.mu.Unlock()

	d := od.draft
	if d.IsNew() && d.Entries.Len() == 0 {
		return nil, &draft.ValidationError{Field: "entries", Reason: "add at least one set"}
	}

	plan := reconcile.NewPlan(d).Resume(od.progress)
	span.SetAttributes(
		attribute.Bool("plan.resumed", !od.progress.IsEmpty()),
		attribute.Int64("session.id", d.SessionID),
		attribute.Int("plan.creates", len(plan.ToCreate)),
		attribute.Int("plan.updates", len(plan.ToUpdate)),
		attribute.Int("plan.deletes", len(plan.ToDelete)),
	)

	result, err := e.committer.Execute(ctx, plan)
	if err != nil {
		var partialErr *reconcile.PartialCommitError
		if errors.As(err, &partialErr) {
			od.progress.Record(partialErr)
		}
		log.Errorf("editor: save draft [%s]: %s", draftID, err)
		return nil, err
	}

	e.close(draftID, od)
	log.Debugf("editor: draft [%s] saved as session [%d]", draftID, result.SessionID)
	return result, nil
}

// Discard abandons the draft without any remote effect.
func (e *Editor) Discard(draftID string) error {
	od, err := e.acquire(draftID)
	if err != nil {
		return err
	}
	defer od.mu.Unlock()

	e.close(draftID, od)
	e.metricsManager.CounterDraftsDiscarded.WithLabelValues("user").Inc()
	log.Debugf("editor: draft [%s] discarded", draftID)
	return nil
}

// HasUnsavedChanges reports whether leaving the draft now would lose edits.
func (e *Editor) HasUnsavedChanges(draftID string) (bool, error) {
	var modified bool
	err := e.Do(draftID, func(d *draft.Draft) error {
		modified = d.Modified()
		return nil
	})
	return modified, err
}

func (e *Editor) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.drafts)
}

// CleanupIdle discards drafts untouched for longer than ttl and returns how
// many were dropped. Drafts in use are skipped.
func (e *Editor) CleanupIdle(ttl time.Duration) int {
	e.mu.RLock()
	candidates := make(map[string]*openDraft, len(e.drafts))
	for id, od := range e.drafts {
		candidates[id] = od
	}
	e.mu.RUnlock()

	cutoff := e.now().Add(-ttl)
	removed := 0
	for draftID, od := range candidates {
		if !od.mu.TryLock() {
			continue
		}
		if !od.closed && od.lastTouched.Before(cutoff) {
			e.close(draftID, od)
			e.metricsManager.CounterDraftsDiscarded.WithLabelValues("idle").Inc()
			removed++
		}
		od.mu.Unlock()
	}

	if removed > 0 {
		log.Warnf("editor: %d idle drafts discarded", removed)
	}
	return removed
}

// RunCleanup calls CleanupIdle every interval until ctx is done.
func (e *Editor) RunCleanup(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debugln("editor: idle drafts cleanup stopped")
			return
		case <-ticker.C:
			e.CleanupIdle(ttl)
		}
	}
}
