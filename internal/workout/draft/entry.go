package draft

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var entryValidate *validator.Validate

func init() {
	entryValidate = validator.New()
	// report json field names, those are what the client sent
	entryValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

type Strength struct {
	MuscleGroupID int64   `json:"muscleGroupId" validate:"gt=0"`
	VariationID   int64   `json:"variationId" validate:"gt=0"`
	Weight        float64 `json:"weight" validate:"gte=0"`
	Reps          int     `json:"reps" validate:"gt=0"`
}

type Cardio struct {
	ActivityID      int64 `json:"activityId" validate:"gt=0"`
	DurationMinutes int   `json:"durationMinutes" validate:"gt=0"`
}

// Entry is a single log entry of a session draft. Exactly one of Strength and
// Cardio is set, matching Kind.
type Entry struct {
	ID            Identity
	Kind          Kind
	PerformedDate time.Time
	Strength      *Strength
	Cardio        *Cardio
}

func (e Entry) clone() Entry {
	c := e
	if e.Strength != nil {
		s := *e.Strength
		c.Strength = &s
	}
	if e.Cardio != nil {
		cd := *e.Cardio
		c.Cardio = &cd
	}
	return c
}

func (e Entry) validate() error {
	if e.PerformedDate.IsZero() {
		return &ValidationError{Field: "performedDate", Reason: "missing"}
	}

	switch e.Kind {
	case KindStrength:
		if e.Strength == nil || e.Cardio != nil {
			return &ValidationError{Field: "strength", Reason: "strength entry must carry only strength fields"}
		}
		return validationErr(entryValidate.Struct(e.Strength))
	case KindCardio:
		if e.Cardio == nil || e.Strength != nil {
			return &ValidationError{Field: "cardio", Reason: "cardio entry must carry only cardio fields"}
		}
		return validationErr(entryValidate.Struct(e.Cardio))
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown entry kind [%d]", e.Kind)}
	}
}

// StrengthInput holds the caller supplied fields of a new strength entry.
// Pointers distinguish a missing value from a zero one.
type StrengthInput struct {
	MuscleGroupID int64    `json:"muscleGroupId" validate:"gt=0"`
	VariationID   int64    `json:"variationId" validate:"gt=0"`
	Weight        *float64 `json:"weight" validate:"required,gte=0"`
	Reps          *int     `json:"reps" validate:"required,gt=0"`
}

type CardioInput struct {
	ActivityID      int64 `json:"activityId" validate:"gt=0"`
	DurationMinutes *int  `json:"durationMinutes" validate:"required,gt=0"`
}

// EntryInput is what a caller supplies to Store.Add: the variant specific
// fields, never an identity.
type EntryInput struct {
	Kind          Kind
	PerformedDate time.Time
	Strength      *StrengthInput
	Cardio        *CardioInput
}

func (in EntryInput) toEntry(id Identity) (Entry, error) {
	if in.PerformedDate.IsZero() {
		return Entry{}, &ValidationError{Field: "performedDate", Reason: "missing"}
	}

	e := Entry{
		ID:            id,
		Kind:          in.Kind,
		PerformedDate: in.PerformedDate,
	}

	switch in.Kind {
	case KindStrength:
		if in.Strength == nil {
			return Entry{}, &ValidationError{Field: "strength", Reason: "missing strength fields"}
		}
		if err := validationErr(entryValidate.Struct(in.Strength)); err != nil {
			return Entry{}, err
		}
		e.Strength = &Strength{
			MuscleGroupID: in.Strength.MuscleGroupID,
			VariationID:   in.Strength.VariationID,
			Weight:        *in.Strength.Weight,
			Reps:          *in.Strength.Reps,
		}
	case KindCardio:
		if in.Cardio == nil {
			return Entry{}, &ValidationError{Field: "cardio", Reason: "missing cardio fields"}
		}
		if err := validationErr(entryValidate.Struct(in.Cardio)); err != nil {
			return Entry{}, err
		}
		e.Cardio = &Cardio{
			ActivityID:      in.Cardio.ActivityID,
			DurationMinutes: *in.Cardio.DurationMinutes,
		}
	default:
		return Entry{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown entry kind [%d]", in.Kind)}
	}

	return e, nil
}

// Patch holds the mutable fields of an entry. Nil fields are left as they are.
type Patch struct {
	Weight          *float64 `json:"weight,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

func (p Patch) applyTo(e Entry) (Entry, error) {
	patched := e.clone()
	switch e.Kind {
	case KindStrength:
		if p.DurationMinutes != nil {
			return Entry{}, &ValidationError{Field: "durationMinutes", Reason: "not applicable to a strength entry"}
		}
		if p.Weight != nil {
			patched.Strength.Weight = *p.Weight
		}
		if p.Reps != nil {
			patched.Strength.Reps = *p.Reps
		}
	case KindCardio:
		if p.Weight != nil || p.Reps != nil {
			return Entry{}, &ValidationError{Field: "weight/reps", Reason: "not applicable to a cardio entry"}
		}
		if p.DurationMinutes != nil {
			patched.Cardio.DurationMinutes = *p.DurationMinutes
		}
	}

	if err := patched.validate(); err != nil {
		return Entry{}, err
	}
	return patched, nil
}

func validationErr(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := fmt.Sprintf("failed on [%s]", fe.Tag())
		if fe.Tag() == "required" {
			reason = "missing"
		} else if fe.Param() != "" {
			reason = fmt.Sprintf("must be %s %s", fe.Tag(), fe.Param())
		}
		return &ValidationError{Field: fe.Field(), Reason: reason}
	}

	return &ValidationError{Reason: err.Error()}
}
