package draft

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the variant of a log entry.
type Kind int

const (
	KindStrength Kind = iota + 1
	KindCardio
)

func (k Kind) String() string {
	switch k {
	case KindStrength:
		return "strength"
	case KindCardio:
		return "cardio"
	default:
		return "unknown"
	}
}

func (k Kind) IsValid() bool {
	return k == KindStrength || k == KindCardio
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "strength":
		return KindStrength, nil
	case "cardio":
		return KindCardio, nil
	default:
		return 0, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown entry type [%s]", s)}
	}
}

const (
	persistedSetPrefix    = "set"
	persistedCardioPrefix = "cardio"
	provisionalPrefix     = "tmp"
)

// Identity identifies an entry within a draft. It is either persisted, i.e. the
// remote store assigned it an id in the collection of its kind, or provisional,
// i.e. minted locally for an entry not created remotely yet.
// The zero value is not a valid identity.
type Identity struct {
	provisional bool
	kind        Kind
	value       int64
}

// Persisted returns the identity of a remote row. Strength sets and cardio logs
// live in separate remote collections, so the kind is part of the identity.
func Persisted(kind Kind, remoteID int64) Identity {
	return Identity{kind: kind, value: remoteID}
}

func (id Identity) IsPersisted() bool {
	return !id.provisional && id.kind.IsValid() && id.value > 0
}

func (id Identity) IsProvisional() bool {
	return id.provisional && id.value > 0
}

func (id Identity) IsZero() bool {
	return id == Identity{}
}

// RemoteID returns the remote store id, or 0 for provisional identities.
func (id Identity) RemoteID() int64 {
	if !id.IsPersisted() {
		return 0
	}
	return id.value
}

// Kind returns the remote collection of a persisted identity.
func (id Identity) Kind() Kind {
	return id.kind
}

func (id Identity) String() string {
	switch {
	case id.IsProvisional():
		return fmt.Sprintf("%s:%d", provisionalPrefix, id.value)
	case id.IsPersisted() && id.kind == KindStrength:
		return fmt.Sprintf("%s:%d", persistedSetPrefix, id.value)
	case id.IsPersisted() && id.kind == KindCardio:
		return fmt.Sprintf("%s:%d", persistedCardioPrefix, id.value)
	default:
		return "none"
	}
}

func (id Identity) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("marshal empty identity")
	}
	return []byte(id.String()), nil
}

func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseIdentity parses the text form produced by Identity.String:
// set:<id>, cardio:<id> or tmp:<n>.
func ParseIdentity(s string) (Identity, error) {
	prefix, numStr, found := strings.Cut(s, ":")
	if !found {
		return Identity{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("malformed identity [%s]", s)}
	}

	n, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil || n <= 0 {
		return Identity{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("malformed identity number [%s]", s)}
	}

	switch prefix {
	case provisionalPrefix:
		return Identity{provisional: true, value: n}, nil
	case persistedSetPrefix:
		return Persisted(KindStrength, n), nil
	case persistedCardioPrefix:
		return Persisted(KindCardio, n), nil
	default:
		return Identity{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("unknown identity prefix [%s]", s)}
	}
}

// Tokens mints provisional identities for a single draft. Tokens are drawn from
// a counter that only grows, so no two calls of one Tokens ever return the same
// identity.
type Tokens struct {
	last int64
}

func (t *Tokens) Next() Identity {
	t.last++
	return Identity{provisional: true, value: t.last}
}
