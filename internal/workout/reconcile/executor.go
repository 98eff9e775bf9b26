package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/draft"
	"github.com/2beens/fittrack/internal/workout/remote"
)

const DefaultConcurrency = 8

// ErrSessionNotCreated is the cause reported for entry operations of a new
// workout that were not attempted because the session itself was not created.
var ErrSessionNotCreated = errors.New("session not created")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=reconcile_test

// RemoteStore is the workout store: per-entry create, update and delete, with
// no batch or transactional API.
type RemoteStore interface {
	CreateSession(ctx context.Context, meta draft.Metadata) (int64, error)
	UpdateSession(ctx context.Context, sessionID int64, meta draft.Metadata) error
	CreateStrengthSet(ctx context.Context, sessionID int64, performedOn time.Time, set draft.Strength) (int64, error)
	UpdateStrengthSet(ctx context.Context, id int64, weight float64, reps int) error
	DeleteStrengthSet(ctx context.Context, id int64) error
	CreateCardioLog(ctx context.Context, sessionID int64, performedOn time.Time, run draft.Cardio) (int64, error)
	UpdateCardioLog(ctx context.Context, id int64, durationMinutes int) error
	DeleteCardioLog(ctx context.Context, id int64) error
}

type ExecutorParams struct {
	// Concurrency limits the number of remote calls in flight.
	Concurrency int
	// OperationTimeout bounds every single remote call, 0 means no timeout.
	OperationTimeout time.Duration
	Metrics          *metrics.Manager
}

// Executor commits reconciliation plans against the remote store.
type Executor struct {
	store            RemoteStore
	concurrency      int
	operationTimeout time.Duration
	metricsManager   *metrics.Manager
}

func NewExecutor(store RemoteStore, params ExecutorParams) *Executor {
	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	metricsManager := params.Metrics
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}
	return &Executor{
		store:            store,
		concurrency:      concurrency,
		operationTimeout: params.OperationTimeout,
		metricsManager:   metricsManager,
	}
}

// Result is the outcome of a fully successful commit.
type Result struct {
	SessionID int64
	// Created maps provisional identities to the remote ids they were given.
	Created map[draft.Identity]int64
	Updated []draft.Identity
	Deleted []draft.Identity
}

type outcome struct {
	mu        sync.Mutex
	result    *Result
	failed    []FailedOperation
	succeeded []Operation
}

func (o *outcome) fail(op Operation, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, FailedOperation{Op: op, Err: err})
}

func (o *outcome) succeed(op Operation, remoteID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.succeeded = append(o.succeeded, op)
	switch {
	case op.Target == TargetSession:
		o.result.SessionID = remoteID
	case op.Kind == OpCreate:
		o.result.Created[op.ID] = remoteID
	case op.Kind == OpUpdate:
		o.result.Updated = append(o.result.Updated, op.ID)
	case op.Kind == OpDelete:
		o.result.Deleted = append(o.result.Deleted, op.ID)
	}
}

// Execute issues every operation of the plan and waits for all of them to
// settle. A failed operation never cancels its siblings. The session create of a
// new workout is issued first, since entries need the new session id; all other
// operations run concurrently. If any operation fails, a *PartialCommitError is
// returned; nothing is retried or rolled back. The error carries what did
// succeed, see Progress and Plan.Resume.
//
// Once issued, operations are not cancelled with ctx: they run to completion or
// failure independently.
func (e *Executor) Execute(ctx context.Context, plan Plan) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconcile.executor.execute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	ops := plan.Operations()
	span.SetAttributes(attribute.Int("commit.operations", len(ops)))

	out := &outcome{
		result: &Result{
			SessionID: plan.Session.SessionID,
			Created:   make(map[draft.Identity]int64, len(plan.ToCreate)+len(plan.Previous)),
			Updated:   make([]draft.Identity, 0),
			Deleted:   make([]draft.Identity, 0),
		},
	}
	for provisional, remoteID := range plan.Previous {
		out.result.Created[provisional] = remoteID
	}

	opsCtx := context.WithoutCancel(ctx)
	sessionID := plan.Session.SessionID
	concurrent := ops
	if plan.Session.Kind == OpCreate {
		concurrent = ops[1:]
		newID, err := e.run(opsCtx, plan.Session, 0)
		if err != nil {
			out.fail(plan.Session, err)
			for _, op := range concurrent {
				out.fail(op, fmt.Errorf("%s: %w", op, ErrSessionNotCreated))
			}
			return nil, e.finish(start, len(ops), out)
		}
		out.succeed(plan.Session, newID)
		sessionID = newID
	}

	g := new(errgroup.Group)
	g.SetLimit(e.concurrency)
	for _, op := range concurrent {
		g.Go(func() error {
			remoteID, err := e.run(opsCtx, op, sessionID)
			if err != nil {
				log.Errorf("commit: [%s] failed: %s", op, err)
				out.fail(op, err)
				return nil
			}
			out.succeed(op, remoteID)
			return nil
		})
	}
	// goroutines never return an error
	_ = g.Wait()

	if err := e.finish(start, len(ops), out); err != nil {
		return nil, err
	}
	return out.result, nil
}

func (e *Executor) finish(start time.Time, total int, out *outcome) error {
	e.metricsManager.HistCommitDuration.Observe(time.Since(start).Seconds())

	if len(out.failed) == 0 {
		e.metricsManager.CounterCommits.WithLabelValues("ok").Inc()
		log.Debugf("commit: all %d operations succeeded", total)
		return nil
	}

	e.metricsManager.CounterCommits.WithLabelValues("failed").Inc()
	log.Warnf("commit: %d of %d operations failed", len(out.failed), total)
	return &PartialCommitError{
		Failed:    out.failed,
		Succeeded: out.succeeded,
		Total:     total,
		SessionID: out.result.SessionID,
		Created:   out.result.Created,
	}
}

// run issues a single remote call and returns the remote id it produced, if any.
func (e *Executor) run(ctx context.Context, op Operation, sessionID int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, fmt.Sprintf("reconcile.executor.%s.%s", op.Kind, op.Target))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		result := "ok"
		if err != nil {
			result = "failed"
		}
		e.metricsManager.CounterRemoteOperations.WithLabelValues(op.Kind.String(), op.Target.String(), result).Inc()
	}()

	if !op.ID.IsZero() {
		span.SetAttributes(attribute.String("entry.id", op.ID.String()))
	}

	if e.operationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.operationTimeout)
		defer cancel()
	}

	switch op.Target {
	case TargetSession:
		if op.Kind == OpCreate {
			return e.store.CreateSession(ctx, op.Metadata)
		}
		return op.SessionID, e.store.UpdateSession(ctx, op.SessionID, op.Metadata)
	case TargetStrengthSet:
		return e.runStrength(ctx, op, sessionID)
	case TargetCardioLog:
		return e.runCardio(ctx, op, sessionID)
	default:
		return 0, fmt.Errorf("unknown operation target [%d]", op.Target)
	}
}

func (e *Executor) runStrength(ctx context.Context, op Operation, sessionID int64) (int64, error) {
	switch op.Kind {
	case OpCreate:
		if op.Entry.Strength == nil {
			return 0, fmt.Errorf("strength entry [%s] without strength fields", op.ID)
		}
		return e.store.CreateStrengthSet(ctx, sessionID, op.Entry.PerformedDate, *op.Entry.Strength)
	case OpUpdate:
		if op.Entry.Strength == nil {
			return 0, fmt.Errorf("strength entry [%s] without strength fields", op.ID)
		}
		return op.ID.RemoteID(), e.store.UpdateStrengthSet(ctx, op.ID.RemoteID(), op.Entry.Strength.Weight, op.Entry.Strength.Reps)
	case OpDelete:
		return op.ID.RemoteID(), alreadyGone(op, e.store.DeleteStrengthSet(ctx, op.ID.RemoteID()))
	default:
		return 0, fmt.Errorf("unknown operation kind [%d]", op.Kind)
	}
}

func (e *Executor) runCardio(ctx context.Context, op Operation, sessionID int64) (int64, error) {
	switch op.Kind {
	case OpCreate:
		if op.Entry.Cardio == nil {
			return 0, fmt.Errorf("cardio entry [%s] without cardio fields", op.ID)
		}
		return e.store.CreateCardioLog(ctx, sessionID, op.Entry.PerformedDate, *op.Entry.Cardio)
	case OpUpdate:
		if op.Entry.Cardio == nil {
			return 0, fmt.Errorf("cardio entry [%s] without cardio fields", op.ID)
		}
		return op.ID.RemoteID(), e.store.UpdateCardioLog(ctx, op.ID.RemoteID(), op.Entry.Cardio.DurationMinutes)
	case OpDelete:
		return op.ID.RemoteID(), alreadyGone(op, e.store.DeleteCardioLog(ctx, op.ID.RemoteID()))
	default:
		return 0, fmt.Errorf("unknown operation kind [%d]", op.Kind)
	}
}

// alreadyGone treats a delete of a row the store no longer has as done.
func alreadyGone(op Operation, err error) error {
	if remote.IsNotFound(err) {
		log.Debugf("commit: [%s] already deleted remotely", op)
		return nil
	}
	return err
}
