package reconcile

import (
	"fmt"

	"github.com/2beens/fittrack/internal/workout/draft"
)

type OpKind int

const (
	OpCreate OpKind = iota + 1
	OpUpdate
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Target is the remote collection an operation is issued against.
type Target int

const (
	TargetSession Target = iota + 1
	TargetStrengthSet
	TargetCardioLog
)

func (t Target) String() string {
	switch t {
	case TargetSession:
		return "session"
	case TargetStrengthSet:
		return "strength_set"
	case TargetCardioLog:
		return "cardio_log"
	default:
		return "unknown"
	}
}

func targetOf(kind draft.Kind) Target {
	if kind == draft.KindCardio {
		return TargetCardioLog
	}
	return TargetStrengthSet
}

// Operation is a single remote call of a commit.
type Operation struct {
	Kind   OpKind
	Target Target

	// ID is the entry identity for entry operations: provisional for creates,
	// persisted for updates and deletes.
	ID    draft.Identity
	Entry draft.Entry

	// session operations only
	SessionID int64
	Metadata  draft.Metadata
}

func (o Operation) String() string {
	if o.Target == TargetSession {
		if o.Kind == OpCreate {
			return "create session"
		}
		return fmt.Sprintf("%s session [%d]", o.Kind, o.SessionID)
	}
	return fmt.Sprintf("%s %s [%s]", o.Kind, o.Target, o.ID)
}

// Plan holds the remote operations needed to align the workout store with a
// draft. ToCreate, ToUpdate and ToDelete are disjoint.
type Plan struct {
	Session  Operation
	ToCreate []draft.Entry
	ToUpdate []draft.Entry
	ToDelete []draft.Identity

	// Previous maps provisional identities to rows created by an earlier,
	// failed commit of the same draft. Set by Resume only.
	Previous map[draft.Identity]int64
}

// NewPlan partitions the draft: provisional entries are created, every
// surviving persisted entry is updated (there is no cheap way to tell an
// unchanged entry apart) and recorded deletions are deleted. Exactly one
// session operation is always planned.
func NewPlan(d *draft.Draft) Plan {
	plan := Plan{
		ToCreate: make([]draft.Entry, 0),
		ToUpdate: make([]draft.Entry, 0),
		ToDelete: d.Deletions.Snapshot(),
	}

	if d.IsNew() {
		plan.Session = Operation{Kind: OpCreate, Target: TargetSession, Metadata: d.Metadata()}
	} else {
		plan.Session = Operation{Kind: OpUpdate, Target: TargetSession, SessionID: d.SessionID, Metadata: d.Metadata()}
	}

	for _, e := range d.Entries.Entries() {
		if e.ID.IsProvisional() {
			plan.ToCreate = append(plan.ToCreate, e)
		} else {
			plan.ToUpdate = append(plan.ToUpdate, e)
		}
	}

	return plan
}

// Operations flattens the plan: the session operation first, then creates,
// updates and deletes, each in draft order.
func (p Plan) Operations() []Operation {
	ops := make([]Operation, 0, p.Len())
	ops = append(ops, p.Session)
	for _, e := range p.ToCreate {
		ops = append(ops, Operation{Kind: OpCreate, Target: targetOf(e.Kind), ID: e.ID, Entry: e})
	}
	for _, e := range p.ToUpdate {
		ops = append(ops, Operation{Kind: OpUpdate, Target: targetOf(e.Kind), ID: e.ID, Entry: e})
	}
	for _, id := range p.ToDelete {
		ops = append(ops, Operation{Kind: OpDelete, Target: targetOf(id.Kind()), ID: id})
	}
	return ops
}

func (p Plan) Len() int {
	return 1 + len(p.ToCreate) + len(p.ToUpdate) + len(p.ToDelete)
}
